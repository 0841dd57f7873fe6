package domain

import (
	"slices"
	"strings"
)

// RoleSet is a bitmask of independent Role flags. It is a value type so an
// Actor can be copied freely without sharing state.
type RoleSet uint8

func roleBit(r Role) RoleSet {
	switch r {
	case RoleAdmin:
		return 1 << 0
	case RoleEditorial:
		return 1 << 1
	case RoleReviewer:
		return 1 << 2
	case RoleWriter:
		return 1 << 3
	}
	return 0
}

// NewRoleSet builds a RoleSet from roles. Invalid roles are ignored.
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s |= roleBit(r)
	}
	return s
}

// Has reports whether r is in the set.
func (s RoleSet) Has(r Role) bool {
	bit := roleBit(r)
	return bit != 0 && s&bit != 0
}

// With returns a copy of s that includes r.
func (s RoleSet) With(r Role) RoleSet { return s | roleBit(r) }

// Without returns a copy of s that excludes r.
func (s RoleSet) Without(r Role) RoleSet { return s &^ roleBit(r) }

// IsEmpty reports whether no role is set.
func (s RoleSet) IsEmpty() bool { return s == 0 }

// Roles returns the roles in s in AllRoles order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(AllRoles))
	for _, r := range AllRoles {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Strings returns the role names in s.
func (s RoleSet) Strings() []string {
	roles := s.Roles()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}

func (s RoleSet) String() string { return strings.Join(s.Strings(), ",") }

// LocationSet is a bitmask over AllLocations.
type LocationSet uint16

func locationBit(l Location) LocationSet {
	i := slices.Index(AllLocations, l)
	if i < 0 {
		return 0
	}
	return 1 << uint(i)
}

// NewLocationSet builds a LocationSet. Locations outside the enumeration are ignored.
func NewLocationSet(locs ...Location) LocationSet {
	var s LocationSet
	for _, l := range locs {
		s |= locationBit(l)
	}
	return s
}

// AllLocationSet returns the set containing every location.
func AllLocationSet() LocationSet {
	return NewLocationSet(AllLocations...)
}

// Contains reports whether l is in the set. An unset location is never contained.
func (s LocationSet) Contains(l Location) bool {
	bit := locationBit(l)
	return bit != 0 && s&bit != 0
}

// IsEmpty reports whether the set has no locations.
func (s LocationSet) IsEmpty() bool { return s == 0 }

// Locations returns the members of s in AllLocations order.
func (s LocationSet) Locations() []Location {
	out := make([]Location, 0, len(AllLocations))
	for _, l := range AllLocations {
		if s.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// Strings returns the location names in s.
func (s LocationSet) Strings() []string {
	locs := s.Locations()
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.String()
	}
	return out
}

// Actor is a resolved principal: an authenticated user with role flags and
// department scope, or the anonymous reader (empty ID, no roles).
type Actor struct {
	ID          string
	Roles       RoleSet
	Departments LocationSet
}

// Anonymous returns the actor for a request without a session.
func Anonymous() Actor { return Actor{} }

// IsAnonymous reports whether the actor has no identity.
func (a Actor) IsAnonymous() bool { return a.ID == "" }

func (a Actor) IsAdmin() bool     { return a.Roles.Has(RoleAdmin) }
func (a Actor) IsEditorial() bool { return a.Roles.Has(RoleEditorial) }
func (a Actor) IsReviewer() bool  { return a.Roles.Has(RoleReviewer) }
func (a Actor) IsWriter() bool    { return a.Roles.Has(RoleWriter) }

// IsStaff reports whether the actor is Admin or Editorial.
func (a Actor) IsStaff() bool { return a.IsAdmin() || a.IsEditorial() }

// CanAuthor reports whether the actor may own or co-write articles.
func (a Actor) CanAuthor() bool { return a.IsWriter() || a.IsAdmin() }

// Session is the raw identity carried by a request before it is resolved
// into an Actor. Role and department names are untrusted strings.
type Session struct {
	UserID      string
	Roles       []string
	Departments []string
}

// NormalizeRoles enforces the Editorial invariant on a freshly granted role
// set: Editorial always carries Writer, Reviewer, and every department.
func NormalizeRoles(roles RoleSet, departments LocationSet) (RoleSet, LocationSet) {
	if roles.Has(RoleEditorial) {
		return roles.With(RoleWriter).With(RoleReviewer), AllLocationSet()
	}
	return roles, departments
}

// ApplyRoleChange computes the stored roles after replacing prev with next.
// Revoking Editorial also revokes Writer and Reviewer and empties departments,
// even if next still lists them.
func ApplyRoleChange(prev, next RoleSet, departments LocationSet) (RoleSet, LocationSet) {
	if prev.Has(RoleEditorial) && !next.Has(RoleEditorial) {
		return next.Without(RoleWriter).Without(RoleReviewer), 0
	}
	return NormalizeRoles(next, departments)
}
