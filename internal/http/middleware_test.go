package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/service"
)

func TestGuard_AnonymousBrowserRedirectsToLogin(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, PathAdminDashboard, nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, PathLogin, loc.Path)
	assert.Empty(t, loc.RawQuery, "no query parameters without a pending deep link")
}

func TestGuard_AnonymousPreservesDeepLink(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, PathPlayerJoinQuiz+"?quiz=q-42", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, PathLogin, loc.Path)
	assert.Equal(t, "q-42", loc.Query().Get(ParamQuiz), "pending quiz id survives the auth round trip")
}

func TestGuard_AnonymousAPIGets401(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
}

func TestGuard_RoleRedirects(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	admin := f.seedUser(t, "admin", domainauth.RoleAdmin)
	encadrant := f.seedUser(t, "chief", domainauth.RoleEncadrant)
	player := f.seedUser(t, "rookie", domainauth.RolePlayer)

	adminCookie := f.seedSession(t, admin)
	encadrantCookie := f.seedSession(t, encadrant)
	playerCookie := f.seedSession(t, player)

	cases := []struct {
		name     string
		path     string
		cookie   *http.Cookie
		wantCode int
		wantLoc  string
	}{
		{"player on admin route", PathAdminDashboard, playerCookie, http.StatusSeeOther, PathPlayerDashboard},
		{"encadrant on admin route", PathAdminDashboard, encadrantCookie, http.StatusSeeOther, PathEncadrantDashboard},
		{"admin on admin route", PathAdminDashboard, adminCookie, http.StatusOK, ""},
		{"admin on player page", PathPlayerJoinSession, adminCookie, http.StatusSeeOther, PathAdminDashboard},
		{"encadrant on player page", PathPlayerJoinSession, encadrantCookie, http.StatusOK, ""},
		{"player on encadrant dashboard", PathEncadrantDashboard, playerCookie, http.StatusSeeOther, PathPlayerDashboard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.AddCookie(tc.cookie)
			rec := f.do(req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantLoc != "" {
				assert.Equal(t, tc.wantLoc, rec.Header().Get("Location"))
			}
		})
	}
}

func TestGuard_APIForbiddenIsJSON(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	player := f.seedUser(t, "rookie", domainauth.RolePlayer)
	cookie := f.seedSession(t, player)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(cookie)
	rec := f.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient_permissions")
}

func TestResolveSession_RememberRenewalSetsFreshCookie(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	player := f.seedUser(t, "rookie", domainauth.RolePlayer)

	// Establish a remembered login, then throw the session away to simulate
	// an expired session cookie.
	res, err := f.auth.Login(t.Context(), loginInputRemembered(player.Username))
	require.NoError(t, err)
	require.NotNil(t, res.Remember)
	require.NoError(t, f.sessions.Delete(t.Context(), res.Session.ID))

	req := httptest.NewRequest(http.MethodGet, PathPlayerDashboard, nil)
	req.AddCookie(&http.Cookie{Name: CookieRememberUser, Value: res.Remember.UserID})
	req.AddCookie(&http.Cookie{Name: CookieRememberToken, Value: res.Remember.Token})
	rec := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	fresh := responseCookie(rec, CookieSession)
	require.NotNil(t, fresh, "renewal must set a fresh session cookie")
	assert.NotEmpty(t, fresh.Value)
	assert.NotEqual(t, res.Session.ID, fresh.Value)
}

func TestResolveSession_ForgedRememberTokenStaysAnonymous(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	player := f.seedUser(t, "rookie", domainauth.RolePlayer)

	req := httptest.NewRequest(http.MethodGet, PathPlayerDashboard, nil)
	req.AddCookie(&http.Cookie{Name: CookieRememberUser, Value: player.ID})
	req.AddCookie(&http.Cookie{Name: CookieRememberToken, Value: "forged"})
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, PathLogin, loc.Path)
}

type erroringResolver struct {
	err error
}

func (r erroringResolver) ResolveSession(_ context.Context, _ service.ResolveInput) (*service.ResolveResult, error) {
	return nil, r.err
}

func TestResolveSession_StoreOutageAbortsRequest(t *testing.T) {
	t.Parallel()

	resolver := erroringResolver{err: errors.New("get session: redis: connection refused")}
	handler := ResolveSession(resolver, "")(RequireAdmin(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
	)))

	req := httptest.NewRequest(http.MethodGet, PathAdminDashboard, nil)
	req.AddCookie(&http.Cookie{Name: CookieSession, Value: "sess-live"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// A store outage must not downgrade the browser to anonymous and bounce
	// it to the login page.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_unavailable")
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestSafeRedirectPath(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/player/dashboard", "/player/dashboard"},
		{"/player/join-quiz?id=q-1", "/player/join-quiz?id=q-1"},
		{"/admin/dashboard?x=1&y=2", "/admin/dashboard?x=1&y=2"},
		{"https://evil.example/", "/"},
		{"//evil.example/path", "/"},
		{"relative/no-slash", "/"},
		{"http://localhost/admin", "/"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, safeRedirectPath(tc.in), "input %q", tc.in)
	}
}
