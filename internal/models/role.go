package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleFarmer Role = "farmer"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleFarmer}

// ParseRole converts s into a Role. Surrounding whitespace is ignored; the
// comparison itself is exact.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of Roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
