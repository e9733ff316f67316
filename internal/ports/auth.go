package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/data and internal/adapters; orchestration
// lives in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
)

// CredentialStore persists user records on behalf of the auth service. It is
// the durable half of the Login/Registration flow; uniqueness of username and
// email is guaranteed by the store itself, not by callers.
type CredentialStore interface {
	// FindByUsernameOrEmail resolves a login identifier that may be either
	// a username or an email address.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
}

// RememberTokenStore persists the server-side half of remember-me tokens.
// At most one token exists per user; issuing a new one replaces the old.
type RememberTokenStore interface {
	// Upsert stores the digest of a freshly issued token with its expiry.
	Upsert(ctx context.Context, userID, token string, expiresAt time.Time) error
	// Verify checks the token against the stored digest for userID. Expired
	// or missing records fail identically to a digest mismatch.
	Verify(ctx context.Context, userID, token string) error
	// Revoke removes the stored token for userID, if any.
	Revoke(ctx context.Context, userID string) error
}

// SessionStore persists and retrieves user sessions. Get reports a missing
// session with core.ErrSessionNotFound; any other error means the store
// itself failed.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// SSOInput carries inputs for initiating an SSO auth flow.
type SSOInput struct {
	RedirectURL string
}

// SSOExchangeInput groups parameters for the code/token exchange.
type SSOExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SSOIdentity is the principal returned by an identity provider in SSO mode.
type SSOIdentity struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
	Groups    []string
	ExpiresAt time.Time
}

// SSOProvider initiates and completes an authentication flow against an IdP.
// It is only consulted when the deployment runs with AUTH_MODE=oidc.
type SSOProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in SSOInput) (authURL, state, nonce string, err error)
	// Exchange completes the login flow, verifying state and nonce.
	Exchange(ctx context.Context, in SSOExchangeInput) (SSOIdentity, error)
}

// RoleMapper maps provider groups to application roles in SSO mode.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}
