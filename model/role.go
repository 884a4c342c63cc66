package model

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDentist Role = "dentist"
	RolePatient Role = "patient"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleDentist, RolePatient}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDentist, RolePatient:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts s into a Role, ignoring case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// RoleSet is the set of roles allowed to call an operation.
// An empty set means any authenticated caller.
type RoleSet []Role

// AnyRole accepts every authenticated caller.
var AnyRole = RoleSet{}

// NewRoleSet builds a RoleSet from roles.
func NewRoleSet(roles ...Role) RoleSet {
	return RoleSet(roles)
}

// Contains reports whether r is a member of s.
func (s RoleSet) Contains(r Role) bool {
	for _, v := range s {
		if v == r {
			return true
		}
	}
	return false
}

// Empty reports whether s places no restriction on the role.
func (s RoleSet) Empty() bool {
	return len(s) == 0
}

func (s RoleSet) String() string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = string(r)
	}
	return strings.Join(names, ",")
}
