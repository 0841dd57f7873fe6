package policy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// CanManageAuthors reports whether actor may change who owns or co-writes
// article. Co-writers may not.
func CanManageAuthors(actor domain.Actor, article domain.Article) bool {
	if actor.IsAnonymous() {
		return false
	}
	return actor.IsStaff() || article.IsOwner(actor.ID)
}

// PlanCoWriters replaces the co-writer set of article with ids. users holds
// the stored user for every id that exists. Every offending id is reported in
// one ValidationError. Duplicate ids are collapsed and order is preserved.
func PlanCoWriters(actor domain.Actor, article domain.Article, ids []string, users map[string]*domain.User) (Plan, error) {
	if !CanManageAuthors(actor, article) {
		return Plan{}, domain.ErrForbidden
	}

	next := make([]string, 0, len(ids))
	var errs []domain.FieldError
	for i, raw := range ids {
		id := strings.TrimSpace(raw)
		field := fmt.Sprintf("co_writer_ids[%d]", i)
		switch {
		case id == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			continue
		case slices.Contains(next, id):
			continue
		case id == article.OwnerID:
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("%s is the owner", id)})
			continue
		}

		u, ok := users[id]
		switch {
		case !ok || u == nil:
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("user %s not found", id)})
		case !u.CanAuthor():
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("user %s is not a writer", id)})
		default:
			next = append(next, id)
		}
	}
	if len(errs) > 0 {
		return Plan{}, domain.NewValidationErrors(errs)
	}

	state := article.State()
	plan := Plan{From: state, To: state}
	if slices.Equal(next, article.CoWriterIDs) {
		return plan, nil
	}
	plan.Changed = true
	plan.Patch = domain.ArticlePatch{CoWriterIDs: &next}
	return plan, nil
}

// PlanTransfer hands ownership of article to newOwner. The previous owner
// becomes a co-writer and the new owner leaves the co-writer set, both in
// the same patch as the owner change.
func PlanTransfer(actor domain.Actor, article domain.Article, newOwner *domain.User) (Plan, error) {
	if !CanManageAuthors(actor, article) {
		return Plan{}, domain.ErrForbidden
	}
	if newOwner == nil {
		return Plan{}, domain.NewValidationError("new_owner_id", "user not found")
	}
	if !newOwner.CanAuthor() {
		return Plan{}, domain.NewValidationError("new_owner_id", fmt.Sprintf("user %s is not a writer", newOwner.ID))
	}

	state := article.State()
	plan := Plan{From: state, To: state}
	if newOwner.ID == article.OwnerID {
		return plan, nil
	}

	coWriters := make([]string, 0, len(article.CoWriterIDs)+1)
	for _, id := range article.CoWriterIDs {
		if id != newOwner.ID {
			coWriters = append(coWriters, id)
		}
	}
	if article.OwnerID != "" && !slices.Contains(coWriters, article.OwnerID) {
		coWriters = append(coWriters, article.OwnerID)
	}

	plan.Changed = true
	plan.Patch = domain.ArticlePatch{
		OwnerID:     ptr(newOwner.ID),
		CoWriterIDs: &coWriters,
	}
	return plan, nil
}
