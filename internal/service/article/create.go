package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
)

// Create creates a Draft article owned by the calling actor.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Article, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Article{}, domain.ErrUnauthorized
	}
	if !policy.CanCreate(a) {
		return domain.Article{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.Article{}, err
	}

	token, err := s.newToken()
	if err != nil {
		return domain.Article{}, err
	}

	now := s.now()
	draft := domain.Article{
		ID:          uuid.NewString(),
		OwnerID:     a.ID,
		CoWriterIDs: []string{},
		Title:       strings.TrimSpace(input.Title),
		Body:        strings.TrimSpace(input.Body),
		Location:    input.Location,
		CategoryIDs: cleanList(input.CategoryIDs),
		Tags:        cleanList(input.Tags),
		SharedID:    token,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}

	var created domain.Article
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.articles.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create article: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeArticle,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title": map[string]any{"new": created.Title},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	s.log.InfoContext(ctx, "article created",
		slog.String("user_id", a.ID),
		slog.String("article_id", created.ID),
	)

	return created, nil
}
