package article

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
)

// Edit changes the content of an article. Depending on who edits and the
// current state, the edit may send the article back into review.
func (s *Service) Edit(ctx context.Context, input EditInput) (domain.Article, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Article{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Article{}, err
	}

	content := input.patch()
	updated, plan, err := s.mutate(ctx, input.ArticleID, domain.AuditActionUpdate, func(_ context.Context, current domain.Article) (policy.Plan, error) {
		plan, err := policy.PlanEdit(a, current, content, s.cfg.Edit)
		if err != nil {
			return policy.Plan{}, err
		}
		if err := checkLimits(plan.Patch.Apply(current)); err != nil {
			return policy.Plan{}, err
		}
		return plan, nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	if plan.Changed {
		s.log.InfoContext(ctx, "article edited",
			slog.String("user_id", a.ID),
			slog.String("article_id", updated.ID),
			slog.String("from", plan.From.String()),
			slog.String("to", plan.To.String()),
			effectAttr(plan),
		)
	}
	return updated, nil
}

// checkLimits re-validates classification limits on the merged article.
func checkLimits(a domain.Article) error {
	var errs []domain.FieldError
	if len(a.CategoryIDs) > domain.MaxCategories {
		errs = append(errs, domain.FieldError{Field: "category_ids", Message: "too many categories"})
	}
	if len(a.Tags) > domain.MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
