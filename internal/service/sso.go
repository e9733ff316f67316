package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/ports"
)

// SSOServiceOptions groups dependencies for SSOService.
type SSOServiceOptions struct {
	Provider ports.SSOProvider
	Roles    ports.RoleMapper
	Auth     *AuthService
}

// SSOService runs the browser OIDC flow when AUTH_MODE=oidc. Accounts are
// provisioned on first login with a role mapped from the IdP's group claims;
// later logins reuse the stored account and its role.
type SSOService struct {
	provider ports.SSOProvider
	roles    ports.RoleMapper
	auth     *AuthService
}

// NewSSOService constructs a new SSOService.
func NewSSOService(opts SSOServiceOptions) *SSOService {
	return &SSOService{
		provider: opts.Provider,
		roles:    opts.Roles,
		auth:     opts.Auth,
	}
}

// BeginLoginResult holds the redirect target plus the state and nonce to
// stash in short-lived cookies for the callback.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin starts the IdP flow.
func (s *SSOService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}
	authURL, state, nonce, err := s.provider.Begin(ctx, ports.SSOInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin sso flow: %w", err)
	}
	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups callback parameters.
type CompleteLoginInput struct {
	Code       string
	State      string
	Nonce      string
	RememberMe bool
}

// CompleteLogin exchanges the code, provisions the account if needed, and
// establishes a session like a password login would.
func (s *SSOService) CompleteLogin(ctx context.Context, in CompleteLoginInput) (*AuthResult, error) {
	ident, err := s.provider.Exchange(ctx, ports.SSOExchangeInput{
		Code:  in.Code,
		State: in.State,
		Nonce: in.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange sso code: %w", err)
	}

	user, err := s.provisionUser(ctx, ident)
	if err != nil {
		return nil, err
	}
	return s.auth.establish(ctx, user, in.RememberMe)
}

func (s *SSOService) provisionUser(ctx context.Context, ident ports.SSOIdentity) (*model.User, error) {
	role := domainauth.RolePlayer
	if s.roles != nil {
		role = s.roles.Map(ident.Groups)
	}

	identifier := ident.Email
	if identifier == "" {
		identifier = ident.Subject
	}
	user, err := s.auth.users.FindByUsernameOrEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("find sso user: %w", err)
	}

	username := ident.Subject
	if username == "" && ident.Email != "" {
		username = strings.SplitN(ident.Email, "@", 2)[0]
	}
	created, err := s.auth.users.Create(ctx, &model.CreateUserRequest{
		Username:  username,
		Email:     ident.Email,
		FirstName: ident.FirstName,
		LastName:  ident.LastName,
		Role:      role,
	})
	if err != nil {
		return nil, fmt.Errorf("provision sso user: %w", err)
	}
	return created, nil
}
