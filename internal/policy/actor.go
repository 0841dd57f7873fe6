package policy

import (
	"strings"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// ResolveActor maps a raw session into a normalized Actor. A nil session or
// one without a user id yields the anonymous actor. Unknown role and
// department names are dropped.
func ResolveActor(s *domain.Session) domain.Actor {
	if s == nil || strings.TrimSpace(s.UserID) == "" {
		return domain.Anonymous()
	}

	var roles domain.RoleSet
	for _, raw := range s.Roles {
		roles = roles.With(domain.Role(strings.ToUpper(strings.TrimSpace(raw))))
	}

	var deps domain.LocationSet
	for _, raw := range s.Departments {
		deps |= domain.NewLocationSet(domain.Location(strings.ToLower(strings.TrimSpace(raw))))
	}

	roles, deps = domain.NormalizeRoles(roles, deps)

	return domain.Actor{
		ID:          strings.TrimSpace(s.UserID),
		Roles:       roles,
		Departments: deps,
	}
}
