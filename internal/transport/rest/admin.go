package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/service/user"
)

type userService interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	SetRoles(ctx context.Context, input user.SetRolesInput) (*domain.User, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	users userService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users: users,
		log:   logger.With("handler", "admin"),
	}
}

// GetUser handles GET /admin/users/{id}.
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.log, scopeAdmin, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetRoles handles PUT /admin/users/{id}/roles.
func (h *AdminHandler) SetRoles(w http.ResponseWriter, r *http.Request) {
	var req setRolesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.users.SetRoles(r.Context(), user.SetRolesInput{
		UserID:      r.PathValue("id"),
		Roles:       req.Roles,
		Departments: req.Departments,
	})
	if err != nil {
		writeServiceError(w, r, h.log, scopeAdmin, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
