package comment

import (
	"context"
	"fmt"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

// ListComments returns the comments on an article that the caller may see.
func (s *Service) ListComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	a := actor.FromCtx(ctx)

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if !policy.CanRead(a, article, ctxutil.ShareTokenFromCtx(ctx)) {
		return nil, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
	}

	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return policy.FilterComments(a, article, comments), nil
}
