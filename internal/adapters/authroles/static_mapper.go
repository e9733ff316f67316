// Package authroles maps identity-provider groups to application roles.
package authroles

import (
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
)

// StaticRoleMapper grants roles by exact group membership. Admin wins over
// encadrant when a user belongs to both groups; everyone else is a player.
type StaticRoleMapper struct {
	AdminGroup     string
	EncadrantGroup string
}

// Map returns the application role for the given provider groups.
func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.EncadrantGroup != "" && g == m.EncadrantGroup {
			return domainauth.RoleEncadrant
		}
	}
	return domainauth.RolePlayer
}
