package entity

import "fmt"

// Role represents an authorization role.
// The set is closed: every user carries exactly one of the constants below.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTraveler Role = "traveler"
	RoleHost     Role = "host"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleTraveler, RoleHost}
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTraveler, RoleHost:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// ParseRole converts s into a Role. An empty string yields the default
// traveler role.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleTraveler, nil
	}
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
