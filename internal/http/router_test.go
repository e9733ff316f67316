package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	mocksauth "github.com/casernelab/firequiz/internal/mocks/auth"
	"github.com/casernelab/firequiz/internal/service"
)

// routerFixture wires a full router over in-memory stores so tests can walk
// real request/response cycles, cookies included.
type routerFixture struct {
	handler  http.Handler
	users    *mocksauth.MemoryCredentialStore
	sessions *mocksauth.MemorySessionStore
	remember *mocksauth.MemoryRememberStore
	auth     *service.AuthService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	f := &routerFixture{
		users:    mocksauth.NewMemoryCredentialStore(),
		sessions: mocksauth.NewMemorySessionStore(),
		remember: mocksauth.NewMemoryRememberStore(),
	}
	f.auth = service.NewAuthService(service.AuthServiceOptions{
		Users:    f.users,
		Remember: f.remember,
		Sessions: f.sessions,
	})
	f.handler = NewRouter(RouterServices{Auth: f.auth})
	return f
}

// seedUser creates an account with the given role and password "password".
func (f *routerFixture) seedUser(t *testing.T, username string, role domainauth.Role) *model.User {
	t.Helper()
	hash, err := service.HashPassword("password")
	require.NoError(t, err)
	user, err := f.users.Create(context.Background(), &model.CreateUserRequest{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
	})
	require.NoError(t, err)
	return user
}

// seedSession stores a live session for the user and returns its cookie.
func (f *routerFixture) seedSession(t *testing.T, user *model.User) *http.Cookie {
	t.Helper()
	res, err := f.auth.Login(context.Background(), service.LoginInput{
		Identifier: user.Username,
		Password:   "password",
	})
	require.NoError(t, err)
	return &http.Cookie{Name: CookieSession, Value: res.Session.ID}
}

// loginInputRemembered builds a remember-me login for a seeded user.
func loginInputRemembered(username string) service.LoginInput {
	return service.LoginInput{Identifier: username, Password: "password", RememberMe: true}
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

// responseCookie returns the named cookie from the recorded response, or nil.
func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
