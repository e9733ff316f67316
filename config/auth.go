package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModePassword uses local username/password accounts.
	AuthModePassword AuthMode = "password"
	// AuthModeOIDC adds single sign-on through an OIDC provider on top of
	// the local accounts.
	AuthModeOIDC AuthMode = "oidc"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "password", "oidc":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: password, oidc)", v)
	}
}

// OIDCConfig contains OIDC provider configuration (used when Mode=oidc).
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/sso/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	IssuerURL    string `env:"ISSUER_URL"`

	// AdminGroup and EncadrantGroup map provider group claims onto roles.
	// Members of neither group become players.
	AdminGroup     string `env:"ADMIN_GROUP"`
	EncadrantGroup string `env:"ENCADRANT_GROUP"`
}

// Validate checks the fields required to run the OIDC flow.
func (o *OIDCConfig) Validate() error {
	if o.ClientID == "" {
		return fmt.Errorf("OIDC_CLIENT_ID is required when AUTH_MODE=oidc")
	}
	if o.ClientSecret == "" {
		return fmt.Errorf("OIDC_CLIENT_SECRET is required when AUTH_MODE=oidc")
	}
	if o.IssuerURL == "" {
		return fmt.Errorf("OIDC_ISSUER_URL is required when AUTH_MODE=oidc")
	}
	return nil
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines whether SSO login is offered next to password login.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// SessionTTL is the fixed lifetime of a server-side session.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"168h"`

	// RememberTTL is the lifetime of the persistent login token.
	RememberTTL time.Duration `env:"AUTH_REMEMBER_TTL" envDefault:"168h"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 168 * time.Hour
	}
	if a.RememberTTL <= 0 {
		a.RememberTTL = 168 * time.Hour
	}
}
