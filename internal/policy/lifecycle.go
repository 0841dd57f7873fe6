package policy

import (
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// Effect names a side effect a plan carries beyond its field patch.
type Effect string

const (
	EffectShareRevoked      Effect = "SHARE_REVOKED"
	EffectShareTokenRotated Effect = "SHARE_TOKEN_ROTATED"
	EffectPublishedAtReset  Effect = "PUBLISHED_AT_RESET"
	EffectReviewRequested   Effect = "REVIEW_REQUESTED"
	EffectMediaPurge        Effect = "MEDIA_PURGE"
)

// Plan is the outcome of a guard: the patch to commit and its effects.
// Changed is false when the request is already satisfied and nothing
// should be written.
type Plan struct {
	From    domain.ArticleState
	To      domain.ArticleState
	Patch   domain.ArticlePatch
	Effects []Effect
	Changed bool
}

// HasEffect reports whether e is among the plan's effects.
func (p Plan) HasEffect(e Effect) bool {
	for _, got := range p.Effects {
		if got == e {
			return true
		}
	}
	return false
}

type edge struct {
	from, to domain.ArticleState
}

// allowFunc decides whether actor may take an edge on article.
type allowFunc func(actor domain.Actor, article domain.Article) bool

func authorOrStaff(actor domain.Actor, article domain.Article) bool {
	return actor.IsStaff() || article.IsAuthor(actor.ID)
}

func staffOnly(actor domain.Actor, _ domain.Article) bool {
	return actor.IsStaff()
}

func adminOnly(actor domain.Actor, _ domain.Article) bool {
	return actor.IsAdmin()
}

var errEmptyToken = errors.New("policy: empty share token")

var transitions = map[edge]allowFunc{
	{domain.ArticleStateDraft, domain.ArticleStateUnderReview}:          authorOrStaff,
	{domain.ArticleStateUnderReview, domain.ArticleStateDraft}:          staffOnly,
	{domain.ArticleStateReadyToPublish, domain.ArticleStateDraft}:       staffOnly,
	{domain.ArticleStateUnderReview, domain.ArticleStateReadyToPublish}: staffOnly,
	{domain.ArticleStateReadyToPublish, domain.ArticleStateUnderReview}: staffOnly,
	{domain.ArticleStateUnderReview, domain.ArticleStatePublished}:      adminOnly,
	{domain.ArticleStateReadyToPublish, domain.ArticleStatePublished}:   adminOnly,
	{domain.ArticleStatePublished, domain.ArticleStateDraft}:            adminOnly,
}

// IsLegalTransition reports whether from -> to is an edge of the state machine.
func IsLegalTransition(from, to domain.ArticleState) bool {
	_, ok := transitions[edge{from, to}]
	return ok
}

// PlanTransition validates moving article to the target state on behalf of
// actor. now becomes the publish timestamp and newToken the rotated share
// token when the target is Published.
//
// Errors: ErrValidation for an unknown target, ErrPreconditionFailed for an
// illegal edge or a publish without category, ErrForbidden when actor may
// not take the edge. Requesting the current state returns an unchanged plan
// for authors and staff.
func PlanTransition(actor domain.Actor, article domain.Article, to domain.ArticleState, now time.Time, newToken string) (Plan, error) {
	if !to.IsValid() {
		return Plan{}, domain.NewValidationError("to", "unknown article state")
	}

	from := article.State()
	plan := Plan{From: from, To: to}
	if from == to {
		if !authorOrStaff(actor, article) {
			return Plan{}, domain.ErrForbidden
		}
		return plan, nil
	}

	allow, ok := transitions[edge{from, to}]
	if !ok {
		return Plan{}, domain.NewPreconditionError(fmt.Sprintf("cannot move article from %s to %s", from, to))
	}
	if to == domain.ArticleStatePublished && len(article.CategoryIDs) == 0 {
		return Plan{}, domain.NewPreconditionError("article must have at least one category to be published")
	}
	if !allow(actor, article) {
		return Plan{}, domain.ErrForbidden
	}

	plan.Changed = true
	switch to {
	case domain.ArticleStateDraft:
		plan.Patch = domain.ArticlePatch{
			Published:      ptr(false),
			UnderReview:    ptr(false),
			ReadyToPublish: ptr(false),
		}
	case domain.ArticleStateUnderReview:
		plan.Patch = domain.ArticlePatch{
			UnderReview:    ptr(true),
			ReadyToPublish: ptr(false),
		}
	case domain.ArticleStateReadyToPublish:
		plan.Patch = domain.ArticlePatch{
			ReadyToPublish: ptr(true),
		}
	case domain.ArticleStatePublished:
		if newToken == "" {
			return Plan{}, errEmptyToken
		}
		plan.Patch = domain.ArticlePatch{
			Published:      ptr(true),
			UnderReview:    ptr(false),
			ReadyToPublish: ptr(false),
			Shared:         ptr(false),
			SharedToTeam:   ptr(false),
			SharedID:       ptr(newToken),
			CreatedAt:      ptr(now),
		}
		plan.Effects = []Effect{EffectShareRevoked, EffectShareTokenRotated, EffectPublishedAtReset}
	}

	return plan, nil
}

// CheckDelete validates deleting article. A protected article (under review
// or published) cannot be deleted by anyone, Admin included. Otherwise the
// owner or an Admin may delete it.
func CheckDelete(actor domain.Actor, article domain.Article) (Plan, error) {
	if article.IsProtected() {
		return Plan{}, domain.NewPreconditionError("article is under review or published")
	}
	if !actor.IsAdmin() && !article.IsOwner(actor.ID) {
		return Plan{}, domain.ErrForbidden
	}
	return Plan{
		From:    article.State(),
		To:      article.State(),
		Effects: []Effect{EffectMediaPurge},
		Changed: true,
	}, nil
}

func ptr[T any](v T) *T { return &v }
