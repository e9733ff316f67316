package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
)

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAuthHandlers_Login_AdminLandsOnAdminDashboard(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	f.seedUser(t, "admin", domainauth.RoleAdmin)

	rec := f.do(postForm("/auth/login", url.Values{
		"identifier": {"admin"},
		"password":   {"password"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathAdminDashboard, rec.Header().Get("Location"))

	session := responseCookie(rec, CookieSession)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
	assert.Nil(t, responseCookie(rec, CookieRememberToken), "no remember cookie without opt-in")
}

func TestAuthHandlers_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	f.seedUser(t, "admin", domainauth.RoleAdmin)

	rec := f.do(postForm("/auth/login", url.Values{
		"identifier": {"admin"},
		"password":   {"nope"},
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
	assert.Nil(t, responseCookie(rec, CookieSession))
}

func TestAuthHandlers_Login_RememberMeSetsCookiePair(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	user := f.seedUser(t, "rookie", domainauth.RolePlayer)

	rec := f.do(postForm("/auth/login", url.Values{
		"identifier":  {"rookie"},
		"password":    {"password"},
		"remember_me": {"on"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	userCookie := responseCookie(rec, CookieRememberUser)
	tokenCookie := responseCookie(rec, CookieRememberToken)
	require.NotNil(t, userCookie)
	require.NotNil(t, tokenCookie)
	assert.Equal(t, user.ID, userCookie.Value)
	assert.NotEmpty(t, tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)
}

func TestAuthHandlers_Login_PendingQuizDestination(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	f.seedUser(t, "rookie", domainauth.RolePlayer)
	f.seedUser(t, "admin", domainauth.RoleAdmin)

	// A player with a pending quiz id is routed into the join flow.
	rec := f.do(postForm("/auth/login", url.Values{
		"identifier": {"rookie"},
		"password":   {"password"},
		ParamQuiz:    {"q-7"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/player/join-quiz?id=q-7", rec.Header().Get("Location"))

	// Quiz managers ignore the pending id and land on their dashboard.
	rec = f.do(postForm("/auth/login", url.Values{
		"identifier": {"admin"},
		"password":   {"password"},
		ParamQuiz:    {"q-7"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathAdminDashboard, rec.Header().Get("Location"))
}

func TestAuthHandlers_Login_PendingSessionDestination(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	f.seedUser(t, "rookie", domainauth.RolePlayer)

	rec := f.do(postForm("/auth/login", url.Values{
		"identifier": {"rookie"},
		"password":   {"password"},
		ParamSession: {"AB34CD"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/player/join-session?code=AB34CD", rec.Header().Get("Location"))
}

func TestAuthHandlers_Register_RoundTrip(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	rec := f.do(postForm("/auth/register", url.Values{
		"username":         {"newbie"},
		"email":            {"newbie@example.com"},
		"password":         {"secret1"},
		"password_confirm": {"secret1"},
		"first_name":       {"New"},
		"last_name":        {"Bie"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathPlayerDashboard, rec.Header().Get("Location"), "fresh registrations are players")
	session := responseCookie(rec, CookieSession)
	require.NotNil(t, session)

	// The new session authenticates a status probe.
	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: CookieSession, Value: session.Value})
	statusRec := f.do(req)

	require.Equal(t, http.StatusOK, statusRec.Code)
	body := statusRec.Body.String()
	assert.Contains(t, body, `"authenticated":true`)
	assert.Contains(t, body, `"role":"player"`)
	assert.Contains(t, body, `"username":"newbie"`)
}

func TestAuthHandlers_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	f.seedUser(t, "taken", domainauth.RolePlayer)

	rec := f.do(postForm("/auth/register", url.Values{
		"username":         {"taken"},
		"email":            {"other@example.com"},
		"password":         {"secret1"},
		"password_confirm": {"secret1"},
	}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username_taken")
	assert.Nil(t, responseCookie(rec, CookieSession), "no session on failed registration")
}

func TestAuthHandlers_Register_Validation(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)

	t.Run("password mismatch", func(t *testing.T) {
		rec := f.do(postForm("/auth/register", url.Values{
			"username":         {"newbie"},
			"email":            {"newbie@example.com"},
			"password":         {"secret1"},
			"password_confirm": {"secret2"},
		}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "password_mismatch")
	})

	t.Run("short password", func(t *testing.T) {
		rec := f.do(postForm("/auth/register", url.Values{
			"username":         {"newbie"},
			"email":            {"newbie@example.com"},
			"password":         {"abc"},
			"password_confirm": {"abc"},
		}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandlers_Logout(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(t)
	user := f.seedUser(t, "rookie", domainauth.RolePlayer)

	loginRec := f.do(postForm("/auth/login", url.Values{
		"identifier":  {"rookie"},
		"password":    {"password"},
		"remember_me": {"on"},
	}))
	require.Equal(t, http.StatusSeeOther, loginRec.Code)
	sessionCookie := responseCookie(loginRec, CookieSession)
	tokenCookie := responseCookie(loginRec, CookieRememberToken)
	require.NotNil(t, sessionCookie)
	require.NotNil(t, tokenCookie)

	req := postForm("/auth/logout", url.Values{})
	req.AddCookie(&http.Cookie{Name: CookieSession, Value: sessionCookie.Value})
	req.AddCookie(&http.Cookie{Name: CookieRememberUser, Value: user.ID})
	req.AddCookie(&http.Cookie{Name: CookieRememberToken, Value: tokenCookie.Value})
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, PathLogin, rec.Header().Get("Location"))

	cleared := responseCookie(rec, CookieSession)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)

	// Server-side state is gone: the old credentials no longer resolve.
	assert.Equal(t, 0, f.sessions.Len())
	probe := httptest.NewRequest(http.MethodGet, PathPlayerDashboard, nil)
	probe.AddCookie(&http.Cookie{Name: CookieRememberUser, Value: user.ID})
	probe.AddCookie(&http.Cookie{Name: CookieRememberToken, Value: tokenCookie.Value})
	probeRec := f.do(probe)
	assert.Equal(t, http.StatusSeeOther, probeRec.Code, "revoked remember token cannot renew")
}
