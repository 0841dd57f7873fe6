package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
)

// GetUser returns a stored user. Admins may read any user, everyone else
// only themselves.
func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	if !a.IsAdmin() && a.ID != userID {
		return nil, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return u, nil
}

// SetRoles replaces the role flags and departments of a user (admin only).
// Granting Editorial implies Writer, Reviewer and every department; revoking
// it clears them.
func (s *Service) SetRoles(ctx context.Context, input SetRolesInput) (*domain.User, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	if !a.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	next, departments := input.sets()
	if input.UserID == a.ID && !next.Has(domain.RoleAdmin) {
		return nil, domain.NewValidationError("roles", "cannot remove your own admin role")
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		roles, deps := domain.ApplyRoleChange(current.Roles, next, departments)

		updated, err = s.users.UpdateRoles(txCtx, input.UserID, roles, deps)
		if err != nil {
			return fmt.Errorf("update roles: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   input.UserID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"roles":       map[string]any{"old": current.Roles.Strings(), "new": roles.Strings()},
				"departments": map[string]any{"old": current.Departments.Strings(), "new": deps.Strings()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetRoles: %w", err)
	}

	s.log.InfoContext(ctx, "user roles updated",
		slog.String("admin_id", a.ID),
		slog.String("target_user_id", input.UserID),
		slog.String("roles", updated.Roles.String()),
	)
	return updated, nil
}
