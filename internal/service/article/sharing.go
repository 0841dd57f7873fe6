package article

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
)

// SetSharing turns link sharing on or off. toTeam restricts a share to
// writers and reviewers holding the token.
func (s *Service) SetSharing(ctx context.Context, articleID string, shared, toTeam bool) (domain.Article, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Article{}, domain.ErrUnauthorized
	}

	token, err := s.newToken()
	if err != nil {
		return domain.Article{}, err
	}

	updated, plan, err := s.mutate(ctx, articleID, domain.AuditActionUpdate, func(_ context.Context, current domain.Article) (policy.Plan, error) {
		return policy.PlanSharing(a, current, shared, toTeam, token)
	})
	if err != nil {
		return domain.Article{}, err
	}

	if plan.Changed {
		s.log.InfoContext(ctx, "article sharing changed",
			slog.String("user_id", a.ID),
			slog.String("article_id", articleID),
			slog.Bool("shared", shared),
			slog.Bool("to_team", toTeam),
			effectAttr(plan),
		)
	}
	return updated, nil
}

// RotateShareToken invalidates the current share link by issuing a new token.
func (s *Service) RotateShareToken(ctx context.Context, articleID string) (domain.Article, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Article{}, domain.ErrUnauthorized
	}

	token, err := s.newToken()
	if err != nil {
		return domain.Article{}, err
	}

	updated, _, err := s.mutate(ctx, articleID, domain.AuditActionUpdate, func(_ context.Context, current domain.Article) (policy.Plan, error) {
		return policy.PlanRotateShare(a, current, token)
	})
	if err != nil {
		return domain.Article{}, err
	}

	s.log.InfoContext(ctx, "article share token rotated",
		slog.String("user_id", a.ID),
		slog.String("article_id", articleID),
	)
	return updated, nil
}
