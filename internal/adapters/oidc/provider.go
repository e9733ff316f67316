// Package oidc implements the SSO provider port against an OpenID Connect
// identity provider. It is only wired when the deployment runs with
// AUTH_MODE=oidc.
package oidc

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/casernelab/firequiz/internal/ports"
)

// ProviderConfig holds settings for the OIDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string
	IssuerURL    string
	HTTPClient   *http.Client // optional; defaults to a 30s-timeout client
}

// Provider implements ports.SSOProvider using go-oidc and oauth2.
type Provider struct {
	config   *oauth2.Config
	provider *gooidc.Provider
	verifier *gooidc.IDTokenVerifier
}

// NewProvider discovers the issuer's endpoints and builds a Provider.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	switch {
	case cfg.ClientID == "":
		return nil, errors.New("client ID is required")
	case cfg.ClientSecret == "":
		return nil, errors.New("client secret is required")
	case cfg.RedirectURL == "":
		return nil, errors.New("redirect URL is required")
	case cfg.IssuerURL == "":
		return nil, errors.New("issuer URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(cfg.IssuerURL, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, "/")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	scopes := strings.Fields(cfg.Scope)
	if len(scopes) == 0 {
		scopes = []string{gooidc.ScopeOpenID, "profile", "email"}
	}

	return &Provider{
		provider: op,
		verifier: op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     op.Endpoint(),
		},
	}, nil
}

// Begin starts the login flow, returning the provider auth URL together with
// the state and nonce the caller must stash for the callback.
func (p *Provider) Begin(_ context.Context, in ports.SSOInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}

	state, err := randomToken(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomToken(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}

	authURL := p.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	return authURL, state, nonce, nil
}

// Exchange completes the login flow: swaps the code for tokens, verifies the
// ID token and nonce, and maps the claims to an SSO identity.
func (p *Provider) Exchange(ctx context.Context, in ports.SSOExchangeInput) (ports.SSOIdentity, error) {
	switch {
	case in.Code == "":
		return ports.SSOIdentity{}, errors.New("authorization code is required")
	case in.State == "":
		return ports.SSOIdentity{}, errors.New("state is required")
	case in.Nonce == "":
		return ports.SSOIdentity{}, errors.New("nonce is required")
	}

	token, err := p.config.Exchange(ctx, in.Code)
	if err != nil {
		return ports.SSOIdentity{}, fmt.Errorf("exchange code: %w", err)
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return ports.SSOIdentity{}, errors.New("missing id_token in token response")
	}
	idToken, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return ports.SSOIdentity{}, fmt.Errorf("verify id_token: %w", err)
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return ports.SSOIdentity{}, fmt.Errorf("parse id_token claims: %w", err)
	}
	if claims.Nonce != in.Nonce {
		return ports.SSOIdentity{}, errors.New("invalid nonce")
	}

	ident := claims.identity()
	if ident.Email == "" || ident.Subject == "" {
		if err := p.fillFromUserInfo(ctx, token.AccessToken, &ident); err != nil {
			return ports.SSOIdentity{}, fmt.Errorf("fetch user info: %w", err)
		}
	}

	ident.ExpiresAt = time.Now().Add(time.Hour)
	if !token.Expiry.IsZero() {
		ident.ExpiresAt = token.Expiry
	}
	return ident, nil
}

type idTokenClaims struct {
	Subject           string   `json:"sub"`
	Email             string   `json:"email"`
	GivenName         string   `json:"given_name"`
	FamilyName        string   `json:"family_name"`
	PreferredUsername string   `json:"preferred_username"`
	Groups            []string `json:"groups"`
	Nonce             string   `json:"nonce"`
}

func (c idTokenClaims) identity() ports.SSOIdentity {
	subject := c.PreferredUsername
	if subject == "" {
		subject = c.Subject
	}
	return ports.SSOIdentity{
		Subject:   subject,
		Email:     c.Email,
		FirstName: c.GivenName,
		LastName:  c.FamilyName,
		Groups:    c.Groups,
	}
}

func (p *Provider) fillFromUserInfo(ctx context.Context, accessToken string, ident *ports.SSOIdentity) error {
	ui, err := p.provider.UserInfo(ctx,
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if err != nil {
		return err
	}
	var claims idTokenClaims
	if err := ui.Claims(&claims); err != nil {
		return fmt.Errorf("decode user info: %w", err)
	}
	fromUI := claims.identity()
	if ident.Subject == "" {
		ident.Subject = fromUI.Subject
	}
	if ident.Email == "" {
		ident.Email = fromUI.Email
	}
	if ident.FirstName == "" {
		ident.FirstName = fromUI.FirstName
	}
	if ident.LastName == "" {
		ident.LastName = fromUI.LastName
	}
	if len(ident.Groups) == 0 {
		ident.Groups = fromUI.Groups
	}
	return nil
}

// randomToken returns a URL-safe random string of exactly n characters.
func randomToken(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	buf := make([]byte, (n*3+3)/4+1)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf)[:n], nil
}
