package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

// Delete removes an article that is neither under review nor published.
// Attached media is purged after the row is gone; a failed purge is logged
// and does not undo the delete.
func (s *Service) Delete(ctx context.Context, articleID string) error {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	token := ctxutil.ShareTokenFromCtx(ctx)

	var plan policy.Plan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.articles.GetByID(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if !policy.CanRead(a, current, token) {
			return fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
		}

		plan, err = policy.CheckDelete(a, current)
		if err != nil {
			return err
		}

		if err := s.articles.Delete(txCtx, articleID, current.Version); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeArticle,
			EntityID:   articleID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": current.Title},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if plan.HasEffect(policy.EffectMediaPurge) {
		if err := s.media.Purge(ctx, articleID); err != nil {
			s.log.ErrorContext(ctx, "media purge failed",
				slog.String("article_id", articleID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "article deleted",
		slog.String("user_id", a.ID),
		slog.String("article_id", articleID),
	)
	return nil
}
