package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/ports"
)

// Default lifetimes for sessions and remember-me tokens.
const (
	DefaultSessionTTL  = 7 * 24 * time.Hour
	DefaultRememberTTL = 7 * 24 * time.Hour
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    ports.CredentialStore
	Remember ports.RememberTokenStore
	Sessions ports.SessionStore

	// Zero values fall back to the 7-day defaults.
	SessionTTL  time.Duration
	RememberTTL time.Duration

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// AuthService orchestrates password login, registration, session resolution
// and logout. Sessions carry a snapshot of the user's identity; the remember
// token is the only credential that survives session expiry.
type AuthService struct {
	users       ports.CredentialStore
	remember    ports.RememberTokenStore
	sessions    ports.SessionStore
	sessionTTL  time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.RememberTTL <= 0 {
		opts.RememberTTL = DefaultRememberTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuthService{
		users:       opts.Users,
		remember:    opts.Remember,
		sessions:    opts.Sessions,
		sessionTTL:  opts.SessionTTL,
		rememberTTL: opts.RememberTTL,
		now:         opts.Now,
	}
}

// LoginInput groups parameters for a password login.
type LoginInput struct {
	Identifier string // username or email
	Password   string
	RememberMe bool
}

// AuthResult is returned by Login and Register. Remember is nil unless the
// caller asked for a persistent login.
type AuthResult struct {
	Session  domainauth.Session
	Remember *domainauth.RememberCredential
}

// Login verifies credentials and mints a session. Unknown identifiers and
// wrong passwords both return core.ErrInvalidCredentials so responses do not
// reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, core.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.PasswordHash == "" {
		// SSO-provisioned account with no local password.
		return nil, core.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, core.ErrInvalidCredentials
	}

	return s.establish(ctx, user, in.RememberMe)
}

// RegisterInput groups parameters for self-service registration.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	RememberMe bool
}

// Register creates a player account and logs it in immediately. Elevated
// roles are never granted here; they are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if len(in.Password) < model.MinPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters", model.MinPasswordLen)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &model.CreateUserRequest{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         domainauth.RolePlayer,
	})
	if err != nil {
		return nil, err
	}

	return s.establish(ctx, user, in.RememberMe)
}

// ResolveInput carries the credentials presented by the browser: the session
// cookie and, optionally, the remember-me cookie pair.
type ResolveInput struct {
	SessionID      string
	RememberUserID string
	RememberToken  string
}

// ResolveResult reports the resolved session. Renewed is true when the
// session was minted from a remember token, in which case the caller must
// set a fresh session cookie.
type ResolveResult struct {
	Session domainauth.Session
	Renewed bool
}

// ResolveSession turns browser credentials into a session. A live session
// wins; otherwise a valid remember token silently re-authenticates against
// the current user record, so role changes and deletions take effect at the
// next renewal. Both paths failing yields core.ErrSessionNotFound; store
// failures are returned as errors in their own right.
func (s *AuthService) ResolveSession(ctx context.Context, in ResolveInput) (*ResolveResult, error) {
	if in.SessionID != "" {
		sess, err := s.sessions.Get(ctx, in.SessionID)
		switch {
		case err == nil:
			if s.now().Before(sess.ExpiresAt) {
				return &ResolveResult{Session: sess}, nil
			}
			if delErr := s.sessions.Delete(ctx, in.SessionID); delErr != nil {
				return nil, fmt.Errorf("delete expired session: %w", delErr)
			}
		case !errors.Is(err, core.ErrSessionNotFound):
			// A store outage is not a missing session; the caller must not
			// treat the browser as anonymous.
			return nil, fmt.Errorf("get session: %w", err)
		}
	}

	if in.RememberUserID == "" || in.RememberToken == "" {
		return nil, core.ErrSessionNotFound
	}
	if err := s.remember.Verify(ctx, in.RememberUserID, in.RememberToken); err != nil {
		if errors.Is(err, core.ErrRememberTokenInvalid) {
			return nil, core.ErrSessionNotFound
		}
		return nil, fmt.Errorf("verify remember token: %w", err)
	}

	user, err := s.users.FindByID(ctx, in.RememberUserID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find user for remember token: %w", err)
	}

	sess, err := s.mintSession(ctx, user)
	if err != nil {
		return nil, err
	}
	return &ResolveResult{Session: sess, Renewed: true}, nil
}

// Logout deletes the session and revokes the user's remember token so the
// browser cannot silently re-authenticate.
func (s *AuthService) Logout(ctx context.Context, sessionID, userID string) error {
	if sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	if userID != "" {
		if err := s.remember.Revoke(ctx, userID); err != nil {
			return fmt.Errorf("revoke remember token: %w", err)
		}
	}
	return nil
}

func (s *AuthService) establish(ctx context.Context, user *model.User, rememberMe bool) (*AuthResult, error) {
	sess, err := s.mintSession(ctx, user)
	if err != nil {
		return nil, err
	}

	res := &AuthResult{Session: sess}
	if rememberMe {
		token, err := newRememberToken()
		if err != nil {
			return nil, fmt.Errorf("generate remember token: %w", err)
		}
		expiresAt := s.now().Add(s.rememberTTL)
		if err := s.remember.Upsert(ctx, user.ID, token, expiresAt); err != nil {
			return nil, fmt.Errorf("store remember token: %w", err)
		}
		res.Remember = &domainauth.RememberCredential{
			UserID:    user.ID,
			Token:     token,
			ExpiresAt: expiresAt,
		}
	}
	return res, nil
}

func (s *AuthService) mintSession(ctx context.Context, user *model.User) (domainauth.Session, error) {
	sess := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// HashPassword returns the bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// newRememberToken returns a URL-safe random token for the remember cookie.
func newRememberToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
