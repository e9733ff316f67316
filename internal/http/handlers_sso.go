package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/casernelab/firequiz/internal/service"
)

// SSOServiceInterface defines the single-sign-on operations the handlers use.
type SSOServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, in service.CompleteLoginInput) (*service.AuthResult, error)
}

// SSOHandlers provides HTTP handlers for the OIDC login flow. They are only
// registered when the server runs in SSO mode.
type SSOHandlers struct {
	Svc          SSOServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

func (h *SSOHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

const oauthCookieTTL = 600 // seconds

// Begin starts the authorization-code flow and sends the browser to the
// identity provider.
// GET /auth/sso/login?redirect_uri=<optional>&quiz=<optional>&session=<optional>.
func (h *SSOHandlers) Begin(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get(ParamRedirect))

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "begin sso login", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_failed", Err: errors.New("login failed")})
		return
	}

	h.setFlowCookie(w, r, "oauth_state", result.State)
	h.setFlowCookie(w, r, "oauth_nonce", result.Nonce)
	h.setFlowCookie(w, r, "post_login_redirect", redirectURI)
	// Deep-link intent has to survive the provider round trip too.
	if quiz := r.URL.Query().Get(ParamQuiz); quiz != "" {
		h.setFlowCookie(w, r, "pending_quiz", quiz)
	}
	if code := r.URL.Query().Get(ParamSession); code != "" {
		h.setFlowCookie(w, r, "pending_session", code)
	}

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback completes the authorization-code flow.
// GET /auth/sso/callback?code=<code>&state=<state>.
func (h *SSOHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_parameters",
			Err:     errors.New("code and state parameters are required"),
		})
		return
	}

	if cookieValue(r, "oauth_state") != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: cookieValue(r, "oauth_nonce"),
	})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "complete sso login", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_failed", Err: errors.New("login failed")})
		return
	}

	setSessionCookie(w, r, h.CookieDomain, result.Session)
	for _, name := range []string{"oauth_state", "oauth_nonce", "post_login_redirect", "pending_quiz", "pending_session"} {
		clearCookie(w, r, h.CookieDomain, name)
	}

	http.Redirect(w, r, h.callbackDestination(r, result), http.StatusFound)
}

// callbackDestination applies the same post-auth rules as the password flow,
// reading the pending intent back out of the flow cookies.
func (h *SSOHandlers) callbackDestination(r *http.Request, result *service.AuthResult) string {
	if !result.Session.CanManageQuizzes() {
		if quiz := cookieValue(r, "pending_quiz"); quiz != "" {
			return JoinQuizPath(quiz)
		}
		if code := cookieValue(r, "pending_session"); code != "" {
			return JoinSessionPath(code)
		}
	}
	if redirect := safeRedirectPath(cookieValue(r, "post_login_redirect")); redirect != "/" {
		return redirect
	}
	return DashboardFor(result.Session.Role)
}

func (h *SSOHandlers) setFlowCookie(w http.ResponseWriter, r *http.Request, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   oauthCookieTTL,
	})
}
