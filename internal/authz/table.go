// Package authz holds the role precedence table used for permission checks.
//
// A held role satisfies a required role when the held role is a superuser or
// when the required role is listed among the held role's grants.
package authz

import "github.com/dmitrijs2005/farmkeeper/internal/models"

// Table is an immutable role precedence table.
type Table struct {
	superusers map[models.Role]struct{}
	grants     map[models.Role]map[models.Role]struct{}
}

// Default returns the table used by the dashboard: admin is a superuser,
// farmer only satisfies farmer.
func Default() *Table {
	return NewTable(
		[]models.Role{models.RoleAdmin},
		map[models.Role][]models.Role{
			models.RoleAdmin:  {models.RoleAdmin, models.RoleFarmer},
			models.RoleFarmer: {models.RoleFarmer},
		},
	)
}

// NewTable builds a Table from a superuser list and per-role grants.
func NewTable(superusers []models.Role, grants map[models.Role][]models.Role) *Table {
	t := &Table{
		superusers: make(map[models.Role]struct{}, len(superusers)),
		grants:     make(map[models.Role]map[models.Role]struct{}, len(grants)),
	}
	for _, r := range superusers {
		t.superusers[r] = struct{}{}
	}
	for held, satisfied := range grants {
		set := make(map[models.Role]struct{}, len(satisfied))
		for _, r := range satisfied {
			set[r] = struct{}{}
		}
		t.grants[held] = set
	}
	return t
}

// Satisfies reports whether an account holding held passes a check for required.
func (t *Table) Satisfies(held, required models.Role) bool {
	if _, ok := t.superusers[held]; ok {
		return true
	}
	_, ok := t.grants[held][required]
	return ok
}

// IsSuperuser reports whether r bypasses every check.
func (t *Table) IsSuperuser(r models.Role) bool {
	_, ok := t.superusers[r]
	return ok
}
