package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casernelab/firequiz/internal/adapters/authroles"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	mockauth "github.com/casernelab/firequiz/internal/mocks/auth"
	"github.com/casernelab/firequiz/internal/ports"
)

func newSSOFixture(t *testing.T) (*mockauth.MockSSOProvider, *mockauth.MemoryCredentialStore, *SSOService) {
	t.Helper()
	users := mockauth.NewMemoryCredentialStore()
	provider := mockauth.NewMockSSOProvider()
	auth := NewAuthService(AuthServiceOptions{
		Users:    users,
		Remember: mockauth.NewMemoryRememberStore(),
		Sessions: mockauth.NewMemorySessionStore(),
	})
	svc := NewSSOService(SSOServiceOptions{
		Provider: provider,
		Roles:    authroles.StaticRoleMapper{AdminGroup: "quiz-admins", EncadrantGroup: "quiz-encadrants"},
		Auth:     auth,
	})
	return provider, users, svc
}

func TestSSOService_BeginLogin(t *testing.T) {
	t.Parallel()
	_, _, svc := newSSOFixture(t)

	res, err := svc.BeginLogin(context.Background(), "https://quiz.example.com/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", res.AuthURL)
	assert.NotEmpty(t, res.State)
	assert.NotEmpty(t, res.Nonce)

	_, err = svc.BeginLogin(context.Background(), "")
	assert.Error(t, err)
}

func TestSSOService_CompleteLogin_ProvisionsOnFirstLogin(t *testing.T) {
	t.Parallel()
	provider, users, svc := newSSOFixture(t)
	provider.Identity.Groups = []string{"quiz-encadrants"}

	res, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleEncadrant, res.Session.Role)

	stored, err := users.FindByUsernameOrEmail(context.Background(), "mock.user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "mock-user", stored.Username)

	// second login reuses the account instead of provisioning again
	res2, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-2", Nonce: "nonce-2",
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, res2.Session.UserID)
}

func TestSSOService_CompleteLogin_DefaultRoleIsPlayer(t *testing.T) {
	t.Parallel()
	provider, _, svc := newSSOFixture(t)
	provider.Identity = ports.SSOIdentity{
		Subject: "somebody",
		Email:   "somebody@example.com",
		Groups:  []string{"unrelated"},
	}

	res, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "s", Nonce: "n",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RolePlayer, res.Session.Role)
}
