package authroles

import (
	"testing"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	t.Parallel()

	m := StaticRoleMapper{AdminGroup: "quiz-admins", EncadrantGroup: "quiz-encadrants"}

	cases := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{"admin group", []string{"quiz-admins"}, domainauth.RoleAdmin},
		{"encadrant group", []string{"quiz-encadrants"}, domainauth.RoleEncadrant},
		{"admin wins over encadrant", []string{"quiz-encadrants", "quiz-admins"}, domainauth.RoleAdmin},
		{"unknown groups", []string{"misc"}, domainauth.RolePlayer},
		{"no groups", nil, domainauth.RolePlayer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := m.Map(tc.groups); got != tc.want {
				t.Errorf("Map(%v) = %v, want %v", tc.groups, got, tc.want)
			}
		})
	}
}

func TestStaticRoleMapperEmptyConfig(t *testing.T) {
	t.Parallel()

	m := StaticRoleMapper{}
	if got := m.Map([]string{""}); got != domainauth.RolePlayer {
		t.Errorf("Map with empty config = %v, want player", got)
	}
}
