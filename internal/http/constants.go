package httpx

import (
	"net/url"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
)

// Cookie names shared between middleware and the auth handlers.
const (
	// CookieSession carries the server-side session identifier.
	CookieSession = "session_id"
	// CookieRememberUser and CookieRememberToken form the persistent login
	// pair; both must be present for a remember-me renewal.
	CookieRememberUser  = "remember_user_id"
	CookieRememberToken = "remember_token"
)

// Query parameters that carry deep-link intent through the login redirect.
const (
	// ParamQuiz holds a pending quiz id a player wants to join.
	ParamQuiz = "quiz"
	// ParamSession holds a pending game-session join code.
	ParamSession = "session"
	// ParamRedirect holds the safe relative path to return to after login.
	ParamRedirect = "redirect_uri"
)

// Canonical page paths. Guards redirect through this table only; redirect
// destinations are never computed by rewriting the request path.
const (
	PathLogin              = "/auth/login"
	PathAdminDashboard     = "/admin/dashboard"
	PathEncadrantDashboard = "/encadrant/dashboard"
	PathPlayerDashboard    = "/player/dashboard"
	PathPlayerJoinQuiz     = "/player/join-quiz"
	PathPlayerJoinSession  = "/player/join-session"
)

// DashboardFor maps a role to its landing page.
func DashboardFor(role domainauth.Role) string {
	switch {
	case role.IsAdmin():
		return PathAdminDashboard
	case role.IsEncadrant():
		return PathEncadrantDashboard
	default:
		return PathPlayerDashboard
	}
}

// JoinQuizPath builds the player quiz-join deep link for a quiz id.
func JoinQuizPath(quizID string) string {
	return PathPlayerJoinQuiz + "?id=" + url.QueryEscape(quizID)
}

// JoinSessionPath builds the player session-join deep link for a join code.
func JoinSessionPath(code string) string {
	return PathPlayerJoinSession + "?code=" + url.QueryEscape(code)
}
