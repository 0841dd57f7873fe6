package article

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
)

// TransitionResult is the article after a transition plus what happened.
type TransitionResult struct {
	Article domain.Article
	From    domain.ArticleState
	To      domain.ArticleState
	Effects []policy.Effect
	Changed bool
}

// ApplyTransition moves an article to the target lifecycle state.
func (s *Service) ApplyTransition(ctx context.Context, articleID string, to domain.ArticleState) (TransitionResult, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return TransitionResult{}, domain.ErrUnauthorized
	}

	var token string
	if to == domain.ArticleStatePublished {
		var err error
		if token, err = s.newToken(); err != nil {
			return TransitionResult{}, err
		}
	}

	now := s.now()
	updated, plan, err := s.mutate(ctx, articleID, domain.AuditActionTransition, func(_ context.Context, current domain.Article) (policy.Plan, error) {
		return policy.PlanTransition(a, current, to, now, token)
	})
	if err != nil {
		return TransitionResult{}, err
	}

	if plan.Changed {
		s.log.InfoContext(ctx, "article transitioned",
			slog.String("user_id", a.ID),
			slog.String("article_id", articleID),
			slog.String("from", plan.From.String()),
			slog.String("to", plan.To.String()),
			effectAttr(plan),
		)
	}

	return TransitionResult{
		Article: updated,
		From:    plan.From,
		To:      plan.To,
		Effects: plan.Effects,
		Changed: plan.Changed,
	}, nil
}
