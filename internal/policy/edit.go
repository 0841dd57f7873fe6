package policy

import "github.com/heartmarshall/newsroom-backend/internal/domain"

// EditPolicy holds the deployment switches that shape PlanEdit.
type EditPolicy struct {
	// ReviewOnDraftEdit sends a Draft into review when a non-staff author edits it.
	ReviewOnDraftEdit bool
}

// CanCreate reports whether actor may create articles.
func CanCreate(actor domain.Actor) bool {
	return !actor.IsAnonymous() && (actor.CanAuthor() || actor.IsEditorial())
}

// CanEdit reports whether actor may change the content or sharing of article.
func CanEdit(actor domain.Actor, article domain.Article) bool {
	return !actor.IsAnonymous() && authorOrStaff(actor, article)
}

// PlanEdit validates a content edit. Only the content fields of content
// (title, body, location, categories, tags) are taken over; lifecycle, sharing
// and ownership fields are ignored.
//
// Staff edits never change state. An edit by any other author pulls a
// Published article back into review, clears readyToPublish on an article in
// review, and leaves a Draft alone unless p.ReviewOnDraftEdit is set.
func PlanEdit(actor domain.Actor, article domain.Article, content domain.ArticlePatch, p EditPolicy) (Plan, error) {
	if !CanEdit(actor, article) {
		return Plan{}, domain.ErrForbidden
	}

	patch := domain.ArticlePatch{
		Title:       content.Title,
		Body:        content.Body,
		Location:    content.Location,
		CategoryIDs: content.CategoryIDs,
		Tags:        content.Tags,
	}

	from := article.State()
	plan := Plan{From: from, To: from}
	if patch.IsEmpty() {
		return plan, nil
	}
	plan.Changed = true

	if actor.IsStaff() {
		return finishEdit(plan, patch, article)
	}

	switch from {
	case domain.ArticleStatePublished:
		patch.Published = ptr(false)
		patch.UnderReview = ptr(true)
		patch.ReadyToPublish = ptr(false)
		plan.To = domain.ArticleStateUnderReview
		plan.Effects = append(plan.Effects, EffectReviewRequested)
	case domain.ArticleStateReadyToPublish:
		patch.ReadyToPublish = ptr(false)
		plan.To = domain.ArticleStateUnderReview
	case domain.ArticleStateDraft:
		if p.ReviewOnDraftEdit {
			patch.UnderReview = ptr(true)
			plan.To = domain.ArticleStateUnderReview
			plan.Effects = append(plan.Effects, EffectReviewRequested)
		}
	}

	return finishEdit(plan, patch, article)
}

// finishEdit rejects an edit that would leave a published article without a
// category.
func finishEdit(plan Plan, patch domain.ArticlePatch, article domain.Article) (Plan, error) {
	if after := patch.Apply(article); after.Published && len(after.CategoryIDs) == 0 {
		return Plan{}, domain.NewPreconditionError("published article must keep at least one category")
	}
	plan.Patch = patch
	return plan, nil
}

// PlanSharing sets the sharing sub-state. Switching sharing off rotates the
// share token so links handed out earlier stop working.
func PlanSharing(actor domain.Actor, article domain.Article, shared, toTeam bool, newToken string) (Plan, error) {
	if !CanEdit(actor, article) {
		return Plan{}, domain.ErrForbidden
	}

	state := article.State()
	plan := Plan{From: state, To: state}
	if article.Shared == shared && article.SharedToTeam == toTeam {
		return plan, nil
	}

	plan.Changed = true
	plan.Patch = domain.ArticlePatch{
		Shared:       ptr(shared),
		SharedToTeam: ptr(toTeam),
	}
	if article.Shared && !shared {
		if newToken == "" {
			return Plan{}, errEmptyToken
		}
		plan.Patch.SharedID = ptr(newToken)
		plan.Effects = []Effect{EffectShareRevoked, EffectShareTokenRotated}
	}
	return plan, nil
}

// PlanRotateShare replaces the share token.
func PlanRotateShare(actor domain.Actor, article domain.Article, newToken string) (Plan, error) {
	if !CanEdit(actor, article) {
		return Plan{}, domain.ErrForbidden
	}
	if newToken == "" {
		return Plan{}, errEmptyToken
	}

	state := article.State()
	return Plan{
		From:    state,
		To:      state,
		Patch:   domain.ArticlePatch{SharedID: ptr(newToken)},
		Effects: []Effect{EffectShareTokenRotated},
		Changed: true,
	}, nil
}
