package comment

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

// AddComment posts a comment on an article the caller can read. Posting the
// same text twice on one article is rejected with ErrAlreadyExists.
func (s *Service) AddComment(ctx context.Context, articleID, body string) (domain.Comment, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Comment{}, domain.ErrUnauthorized
	}

	body = domain.NormalizeBody(body)
	switch n := utf8.RuneCountInString(body); {
	case n == 0:
		return domain.Comment{}, domain.NewValidationError("body", "required")
	case n > MaxBodyLength:
		return domain.Comment{}, domain.NewValidationError("body", fmt.Sprintf("max %d characters", MaxBodyLength))
	}
	token := ctxutil.ShareTokenFromCtx(ctx)

	var created domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		article, err := s.articles.GetByID(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if err := policy.CanComment(a, article, token); err != nil {
			return fmt.Errorf("article %s: %w", articleID, err)
		}

		dup, err := s.comments.ExistsDuplicate(txCtx, articleID, a.ID, body)
		if err != nil {
			return fmt.Errorf("check duplicate comment: %w", err)
		}
		if dup {
			return fmt.Errorf("comment: %w", domain.ErrAlreadyExists)
		}

		created, err = s.comments.Create(txCtx, domain.Comment{
			ID:          uuid.NewString(),
			ArticleID:   articleID,
			AuthorID:    a.ID,
			Body:        body,
			UnderReview: policy.InitialCommentReview(a, s.policy),
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeComment,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"article_id":   articleID,
				"under_review": created.UnderReview,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", a.ID),
		slog.String("article_id", articleID),
		slog.String("comment_id", created.ID),
		slog.Bool("under_review", created.UnderReview),
	)
	return created, nil
}
