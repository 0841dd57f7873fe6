// Package actor turns an authenticated session into the Actor every other
// service authorizes against.
package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
)

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Service resolves actors against the stored user record.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new Actor service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "actor"),
	}
}

// Resolve returns the actor for session. Roles and departments come from the
// store, not from the token, so a revoked role applies on the next request.
// A session for a user that no longer exists is ErrUnauthorized.
func (s *Service) Resolve(ctx context.Context, session *domain.Session) (domain.Actor, error) {
	claimed := policy.ResolveActor(session)
	if claimed.IsAnonymous() {
		return claimed, nil
	}

	u, err := s.users.GetByID(ctx, claimed.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "session for unknown user", slog.String("user_id", claimed.ID))
			return domain.Anonymous(), domain.ErrUnauthorized
		}
		return domain.Anonymous(), fmt.Errorf("get user: %w", err)
	}

	return u.Actor(), nil
}
