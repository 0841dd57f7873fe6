package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

// SetCommentReview flags a comment for review or clears the flag.
func (s *Service) SetCommentReview(ctx context.Context, commentID string, underReview bool) (domain.Comment, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Comment{}, domain.ErrUnauthorized
	}
	if !policy.CanModerateComment(a) {
		return domain.Comment{}, domain.ErrForbidden
	}

	var updated domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.comments.GetByID(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if current.UnderReview == underReview {
			updated = *current
			return nil
		}

		updated, err = s.comments.SetReview(txCtx, commentID, underReview)
		if err != nil {
			return fmt.Errorf("set comment review: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeComment,
			EntityID:   commentID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"under_review": map[string]any{"old": current.UnderReview, "new": underReview},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}

	s.log.InfoContext(ctx, "comment review set",
		slog.String("user_id", a.ID),
		slog.String("comment_id", commentID),
		slog.Bool("under_review", underReview),
	)
	return updated, nil
}

// DeleteComment removes a comment. Its author and Admins may delete it; a
// comment the caller cannot see is reported as not found.
func (s *Service) DeleteComment(ctx context.Context, commentID string) error {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	token := ctxutil.ShareTokenFromCtx(ctx)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByID(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		article, err := s.articles.GetByID(txCtx, c.ArticleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if !policy.CanRead(a, article, token) || len(policy.FilterComments(a, article, []domain.Comment{*c})) == 0 {
			return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
		}
		if !policy.CanDeleteComment(a, *c) {
			return domain.ErrForbidden
		}

		if err := s.comments.Delete(txCtx, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeComment,
			EntityID:   commentID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"article_id": c.ArticleID},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", a.ID),
		slog.String("comment_id", commentID),
	)
	return nil
}
