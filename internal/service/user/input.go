package user

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// SetRolesInput holds parameters for a role replacement. Roles and
// Departments replace the stored values entirely.
type SetRolesInput struct {
	UserID      string
	Roles       []string
	Departments []string
}

// Validate validates the set roles input.
func (i SetRolesInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	for n, r := range i.Roles {
		if !domain.Role(strings.ToUpper(strings.TrimSpace(r))).IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("roles[%d]", n),
				Message: fmt.Sprintf("unknown role %q", r),
			})
		}
	}

	for n, d := range i.Departments {
		if !domain.Location(strings.ToLower(strings.TrimSpace(d))).IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("departments[%d]", n),
				Message: fmt.Sprintf("unknown location %q", d),
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// sets converts validated input into role and department sets.
func (i SetRolesInput) sets() (domain.RoleSet, domain.LocationSet) {
	var roles domain.RoleSet
	for _, r := range i.Roles {
		roles = roles.With(domain.Role(strings.ToUpper(strings.TrimSpace(r))))
	}
	locs := make([]domain.Location, 0, len(i.Departments))
	for _, d := range i.Departments {
		locs = append(locs, domain.Location(strings.ToLower(strings.TrimSpace(d))))
	}
	return roles, domain.NewLocationSet(locs...)
}
