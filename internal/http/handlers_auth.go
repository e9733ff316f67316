package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/service"
)

// AuthServiceInterface defines the auth operations the handlers depend on.
type AuthServiceInterface interface {
	Login(ctx context.Context, in service.LoginInput) (*service.AuthResult, error)
	Register(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error)
	Logout(ctx context.Context, sessionID, userID string) error
}

// AuthHandlers provides HTTP handlers for password authentication.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles a credential submission.
// POST /auth/login (form fields: identifier, password, remember_me,
// quiz, session).
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return
	}

	result, err := h.Svc.Login(r.Context(), service.LoginInput{
		Identifier: strings.TrimSpace(r.PostFormValue("identifier")),
		Password:   r.PostFormValue("password"),
		RememberMe: formBool(r, "remember_me"),
	})
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credentials",
				Err:     errors.New("invalid username or password"),
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_failed", Err: errors.New("login failed")})
		return
	}

	h.establishAndRedirect(w, r, result)
}

// Register handles self-service account creation.
// POST /auth/register (form fields: username, email, password,
// password_confirm, first_name, last_name, remember_me, quiz, session).
// New accounts are always players and are logged in immediately.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return
	}

	password := r.PostFormValue("password")
	if password != r.PostFormValue("password_confirm") {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "password_mismatch",
			Err:     errors.New("passwords do not match"),
		})
		return
	}

	result, err := h.Svc.Register(r.Context(), service.RegisterInput{
		Username:   strings.TrimSpace(r.PostFormValue("username")),
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   password,
		FirstName:  strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:   strings.TrimSpace(r.PostFormValue("last_name")),
		RememberMe: formBool(r, "remember_me"),
	})
	if err != nil {
		writeRegisterError(w, r, h.logger(), err)
		return
	}

	h.establishAndRedirect(w, r, result)
}

func writeRegisterError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrUsernameTaken):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "username_taken", Err: errors.New("username is already taken")})
	case errors.Is(err, core.ErrEmailTaken):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_taken", Err: errors.New("email is already registered")})
	case isValidationError(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_registration", Err: err})
	default:
		logger.ErrorContext(r.Context(), "registration failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "registration_failed", Err: errors.New("registration failed")})
	}
}

// establishAndRedirect writes the session (and optional remember) cookies and
// sends the browser to its post-auth destination.
func (h *AuthHandlers) establishAndRedirect(w http.ResponseWriter, r *http.Request, result *service.AuthResult) {
	setSessionCookie(w, r, h.CookieDomain, result.Session)
	if result.Remember != nil {
		setRememberCookies(w, r, h.CookieDomain, *result.Remember)
	}

	if isAPIRequest(r) {
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": true,
			"redirect_to":   h.destination(r, result.Session),
		})
		return
	}
	http.Redirect(w, r, h.destination(r, result.Session), http.StatusSeeOther)
}

// destination computes the post-auth landing page. Pending deep links win for
// players; quiz managers always land on their dashboard, ignoring pending
// join intents.
func (h *AuthHandlers) destination(r *http.Request, session domainauth.Session) string {
	pendingQuiz := firstFormOrQuery(r, ParamQuiz)
	pendingSession := firstFormOrQuery(r, ParamSession)

	if !session.CanManageQuizzes() {
		if pendingQuiz != "" {
			return JoinQuizPath(pendingQuiz)
		}
		if pendingSession != "" {
			return JoinSessionPath(pendingSession)
		}
	}
	return DashboardFor(session.Role)
}

// Logout tears down the server-side session, revokes the remember token and
// clears all auth cookies.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := cookieValue(r, CookieSession)
	userID := cookieValue(r, CookieRememberUser)
	if session, ok := SessionFrom(r.Context()); ok {
		userID = session.UserID
	}

	if sessionID != "" || userID != "" {
		if err := h.Svc.Logout(r.Context(), sessionID, userID); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}

	clearCookie(w, r, h.CookieDomain, CookieSession)
	clearCookie(w, r, h.CookieDomain, CookieRememberUser)
	clearCookie(w, r, h.CookieDomain, CookieRememberToken)

	if isAPIRequest(r) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
		return
	}
	http.Redirect(w, r, PathLogin, http.StatusSeeOther)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFrom(r.Context())
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":         session.UserID,
			"username":   session.Username,
			"first_name": session.FirstName,
			"last_name":  session.LastName,
			"email":      session.Email,
			"role":       session.Role,
		},
		"expires_at": session.ExpiresAt,
	})
}

// formBool interprets checkbox-style form values.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.PostFormValue(key)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// firstFormOrQuery prefers a posted value over a query parameter.
func firstFormOrQuery(r *http.Request, key string) string {
	if v := r.PostFormValue(key); v != "" {
		return v
	}
	return r.URL.Query().Get(key)
}
