// Package auth contains hand-written test doubles for the auth ports. They
// are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/ports"
)

// Compile-time conformance to the ports.
var (
	_ ports.SessionStore       = (*MemorySessionStore)(nil)
	_ ports.CredentialStore    = (*MemoryCredentialStore)(nil)
	_ ports.RememberTokenStore = (*MemoryRememberStore)(nil)
	_ ports.SSOProvider        = (*MockSSOProvider)(nil)
)

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, core.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// MemoryCredentialStore is an in-memory user store for unit tests. Password
// hashes are stored as provided.
type MemoryCredentialStore struct {
	mu     sync.Mutex
	users  map[string]*model.User // by ID
	nextID int
}

// NewMemoryCredentialStore creates an empty in-memory user store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{users: make(map[string]*model.User)}
}

func (m *MemoryCredentialStore) Create(_ context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, req.Username) {
			return nil, core.ErrUsernameTaken
		}
		if strings.EqualFold(u.Email, req.Email) {
			return nil, core.ErrEmailTaken
		}
	}
	m.nextID++
	now := time.Now()
	u := &model.User{
		ID:           fmt.Sprintf("user-%d", m.nextID),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *MemoryCredentialStore) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, core.ErrUserNotFound
}

func (m *MemoryCredentialStore) FindByUsernameOrEmail(_ context.Context, identifier string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, identifier) || strings.EqualFold(u.Email, identifier) {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

// SetRole rewrites a stored user's role, simulating out-of-band provisioning.
func (m *MemoryCredentialStore) SetRole(id string, role domainauth.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.Role = role
	}
}

// Remove deletes a stored user.
func (m *MemoryCredentialStore) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

type rememberRecord struct {
	token     string
	expiresAt time.Time
}

// MemoryRememberStore is an in-memory remember-token store for unit tests.
// Unlike the real store it keeps raw tokens; tests only care about matching.
type MemoryRememberStore struct {
	mu      sync.Mutex
	records map[string]rememberRecord
	now     func() time.Time
}

// NewMemoryRememberStore creates an empty remember-token store.
func NewMemoryRememberStore() *MemoryRememberStore {
	return &MemoryRememberStore{
		records: make(map[string]rememberRecord),
		now:     time.Now,
	}
}

// SetNow overrides the clock, for expiry tests.
func (m *MemoryRememberStore) SetNow(now func() time.Time) { m.now = now }

func (m *MemoryRememberStore) Upsert(_ context.Context, userID, token string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userID] = rememberRecord{token: token, expiresAt: expiresAt}
	return nil
}

func (m *MemoryRememberStore) Verify(_ context.Context, userID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[userID]
	if !ok || rec.token != token || m.now().After(rec.expiresAt) {
		return core.ErrRememberTokenInvalid
	}
	return nil
}

func (m *MemoryRememberStore) Revoke(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, userID)
	return nil
}

// MockSSOProvider simulates an IdP with deterministic state/nonce values.
type MockSSOProvider struct {
	BeginFunc    func(ctx context.Context, in ports.SSOInput) (string, string, string, error)
	ExchangeFunc func(ctx context.Context, in ports.SSOExchangeInput) (ports.SSOIdentity, error)

	AuthURL  string
	Identity ports.SSOIdentity

	callCount int
}

// NewMockSSOProvider creates a MockSSOProvider with sensible defaults.
func NewMockSSOProvider() *MockSSOProvider {
	return &MockSSOProvider{
		AuthURL: "https://mock-idp/auth",
		Identity: ports.SSOIdentity{
			Subject:   "mock-user",
			Email:     "mock.user@example.com",
			FirstName: "Mock",
			LastName:  "User",
			Groups:    []string{"players"},
		},
	}
}

func (m *MockSSOProvider) Begin(ctx context.Context, in ports.SSOInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}
	m.callCount++
	return m.AuthURL,
		fmt.Sprintf("state-%d", m.callCount),
		fmt.Sprintf("nonce-%d", m.callCount),
		nil
}

func (m *MockSSOProvider) Exchange(ctx context.Context, in ports.SSOExchangeInput) (ports.SSOIdentity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	ident := m.Identity
	ident.ExpiresAt = time.Now().Add(time.Hour)
	return ident, nil
}
