package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionResolver is the slice of the auth service the middleware needs.
type SessionResolver interface {
	ResolveSession(ctx context.Context, in service.ResolveInput) (*service.ResolveResult, error)
}

// ResolveSession returns a middleware that turns browser credentials into a
// session on the request context. A valid session cookie wins; otherwise the
// remember-me cookie pair silently re-authenticates, and the renewed session
// gets a fresh cookie. Requests with no resolvable credentials pass through
// unauthenticated so the guards decide what to do; a failing session store
// aborts the request instead of downgrading it to anonymous.
func ResolveSession(auth SessionResolver, cookieDomain string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in := service.ResolveInput{
				SessionID:      cookieValue(r, CookieSession),
				RememberUserID: cookieValue(r, CookieRememberUser),
				RememberToken:  cookieValue(r, CookieRememberToken),
			}
			if in.SessionID == "" && in.RememberToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := auth.ResolveSession(r.Context(), in)
			if err != nil {
				if errors.Is(err, core.ErrSessionNotFound) {
					next.ServeHTTP(w, r)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusInternalServerError,
					ErrCode: "session_unavailable",
					Err:     err,
				})
				return
			}
			if res.Renewed {
				setSessionCookie(w, r, cookieDomain, res.Session)
			}

			ctx := WithSession(r.Context(), &res.Session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated terminates unauthenticated requests. Browser requests
// are redirected to the login page with any quiz/session deep-link parameters
// preserved; API requests get a 401.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFrom(r.Context()); !ok {
			denyUnauthenticated(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin admits admins only. Other authenticated users are bounced to
// their own dashboard.
func RequireAdmin(next http.Handler) http.Handler {
	return requireCapability(next, func(s *domainauth.Session) bool { return s.IsAdmin() })
}

// RequireUserManager admits users who may administer accounts.
func RequireUserManager(next http.Handler) http.Handler {
	return requireCapability(next, func(s *domainauth.Session) bool { return s.CanManageUsers() })
}

// RequireQuizManager admits admins and encadrants.
func RequireQuizManager(next http.Handler) http.Handler {
	return requireCapability(next, func(s *domainauth.Session) bool { return s.CanManageQuizzes() })
}

// RequirePlayer keeps admins out of player-only views. Encadrants are allowed
// through so they can preview the player experience.
func RequirePlayer(next http.Handler) http.Handler {
	return requireCapability(next, func(s *domainauth.Session) bool { return !s.IsAdmin() })
}

// requireCapability runs the base auth check first, then the role check.
// Every failure terminates the request; the handler body never runs.
func requireCapability(next http.Handler, allowed func(*domainauth.Session) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFrom(r.Context())
		if !ok {
			denyUnauthenticated(w, r)
			return
		}
		if !allowed(session) {
			denyForbidden(w, r, session)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isAPIRequest reports whether the request expects a JSON error instead of a
// browser redirect.
func isAPIRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return accept != "" && !strings.Contains(accept, "text/html") && strings.Contains(accept, "application/json")
}

func denyUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	http.Redirect(w, r, loginRedirectURL(r), http.StatusSeeOther)
}

func denyForbidden(w http.ResponseWriter, r *http.Request, session *domainauth.Session) {
	if isAPIRequest(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("insufficient permissions"),
		})
		return
	}
	http.Redirect(w, r, DashboardFor(session.Role), http.StatusSeeOther)
}

// loginRedirectURL builds the login URL for an unauthenticated browser
// request. Pending quiz/session deep-link parameters survive the auth round
// trip; without a deep link the redirect carries no query parameters.
func loginRedirectURL(r *http.Request) string {
	q := url.Values{}
	if quiz := r.URL.Query().Get(ParamQuiz); quiz != "" {
		q.Set(ParamQuiz, quiz)
	}
	if code := r.URL.Query().Get(ParamSession); code != "" {
		q.Set(ParamSession, code)
	}

	u := url.URL{Path: PathLogin, RawQuery: q.Encode()}
	return u.String()
}

// safeRedirectPath ensures the provided redirect is a same-origin relative
// path starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
