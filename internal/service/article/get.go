package article

import (
	"context"
	"fmt"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

// Get returns an article the calling actor may read. An article the actor
// may not read is reported as not found.
func (s *Service) Get(ctx context.Context, articleID string) (domain.Article, error) {
	a := actor.FromCtx(ctx)

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("get article: %w", err)
	}
	if !policy.CanRead(a, article, ctxutil.ShareTokenFromCtx(ctx)) {
		return domain.Article{}, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
	}
	return article, nil
}

// List returns a page of articles the calling actor may read, newest first.
// The store pre-filters by the actor's scope and every row is re-checked.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Article, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	a := actor.FromCtx(ctx)

	filter := policy.ArticleScope(a)
	filter.Location = input.Location
	filter.Limit = s.pageSize(input.Limit)
	filter.Offset = input.Offset

	rows, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	visible := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		if policy.CanRead(a, row, "") {
			visible = append(visible, row)
		}
	}
	return visible, nil
}

func (s *Service) pageSize(requested int) int {
	switch {
	case requested <= 0:
		return s.cfg.DefaultPageSize
	case requested > s.cfg.MaxPageSize:
		return s.cfg.MaxPageSize
	default:
		return requested
	}
}
