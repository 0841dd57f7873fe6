package domain

import "time"

// User represents a registered principal with its stored role flags.
type User struct {
	ID          string
	Email       string
	Name        string
	Roles       RoleSet
	Departments LocationSet
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Actor returns the normalized Actor for this user.
func (u *User) Actor() Actor {
	roles, deps := NormalizeRoles(u.Roles, u.Departments)
	return Actor{ID: u.ID, Roles: roles, Departments: deps}
}

// CanAuthor reports whether the user may own or co-write articles.
func (u *User) CanAuthor() bool {
	return u.Actor().CanAuthor()
}
