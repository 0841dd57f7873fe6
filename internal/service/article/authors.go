package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
)

// SetCoWriters replaces the co-writer set of an article. Every id must name
// a user who may author articles; all offending ids are reported together.
// Users are looked up inside the write transaction.
func (s *Service) SetCoWriters(ctx context.Context, articleID string, ids []string) (domain.Article, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Article{}, domain.ErrUnauthorized
	}

	lookup := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			lookup = append(lookup, id)
		}
	}
	updated, plan, err := s.mutate(ctx, articleID, domain.AuditActionUpdate, func(txCtx context.Context, current domain.Article) (policy.Plan, error) {
		users, err := s.users.LookupUsers(txCtx, lookup)
		if err != nil {
			return policy.Plan{}, fmt.Errorf("resolve co-writers: %w", err)
		}
		return policy.PlanCoWriters(a, current, ids, users)
	})
	if err != nil {
		return domain.Article{}, err
	}

	if plan.Changed {
		s.log.InfoContext(ctx, "article co-writers replaced",
			slog.String("user_id", a.ID),
			slog.String("article_id", articleID),
			slog.Int("co_writers", len(updated.CoWriterIDs)),
		)
	}
	return updated, nil
}

// TransferOwnership hands an article to another author. The previous owner
// stays on as a co-writer.
func (s *Service) TransferOwnership(ctx context.Context, articleID, newOwnerID string) (domain.Article, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return domain.Article{}, domain.ErrUnauthorized
	}
	newOwnerID = strings.TrimSpace(newOwnerID)
	if newOwnerID == "" {
		return domain.Article{}, domain.NewValidationError("new_owner_id", "required")
	}

	updated, plan, err := s.mutate(ctx, articleID, domain.AuditActionUpdate, func(txCtx context.Context, current domain.Article) (policy.Plan, error) {
		users, err := s.users.LookupUsers(txCtx, []string{newOwnerID})
		if err != nil {
			return policy.Plan{}, fmt.Errorf("resolve new owner: %w", err)
		}
		return policy.PlanTransfer(a, current, users[newOwnerID])
	})
	if err != nil {
		return domain.Article{}, err
	}

	if plan.Changed {
		s.log.InfoContext(ctx, "article ownership transferred",
			slog.String("user_id", a.ID),
			slog.String("article_id", articleID),
			slog.String("new_owner_id", newOwnerID),
		)
	}
	return updated, nil
}
