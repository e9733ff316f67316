package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProviderValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  ProviderConfig
	}{
		{"missing client id", ProviderConfig{ClientSecret: "s", RedirectURL: "r", IssuerURL: "i"}},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", IssuerURL: "i"}},
		{"missing redirect url", ProviderConfig{ClientID: "c", ClientSecret: "s", IssuerURL: "i"}},
		{"missing issuer url", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewProvider(tc.cfg)
			assert.Error(t, err)
		})
	}
}

func TestIDTokenClaimsIdentity(t *testing.T) {
	t.Parallel()

	c := idTokenClaims{
		Subject:    "sub-123",
		Email:      "marc@example.com",
		GivenName:  "Marc",
		FamilyName: "Dubois",
		Groups:     []string{"quiz-encadrants"},
	}
	ident := c.identity()
	assert.Equal(t, "sub-123", ident.Subject)
	assert.Equal(t, "marc@example.com", ident.Email)
	assert.Equal(t, []string{"quiz-encadrants"}, ident.Groups)

	c.PreferredUsername = "marc"
	assert.Equal(t, "marc", c.identity().Subject, "preferred_username wins over sub")
}

func TestRandomToken(t *testing.T) {
	t.Parallel()

	a, err := randomToken(32)
	assert.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := randomToken(32)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)

	empty, err := randomToken(0)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
