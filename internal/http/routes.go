package httpx

import (
	"log/slog"
	"net/http"

	"github.com/casernelab/firequiz/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	SSO          *service.SSOService // nil unless running in SSO mode
	Users        *service.UserService
	Quizzes      *service.QuizService
	GameSessions *service.GameSessionService
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. Every route below the
// auth endpoints sits behind the session resolver; the per-area guards run
// the auth check first and then the role check.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	registerAuthRoutes(mux, authHandlers)
	if services.SSO != nil {
		registerSSORoutes(mux, &SSOHandlers{
			Svc:          services.SSO,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		})
	}

	registerPageRoutes(mux, &PageHandlers{})
	registerQuizRoutes(mux, &QuizHandlers{Svc: services.Quizzes})
	registerUserRoutes(mux, &UserHandlers{Svc: services.Users})
	registerGameSessionRoutes(mux, &GameSessionHandlers{Svc: services.GameSessions})

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = ResolveSession(services.Auth, services.CookieDomain)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

func registerSSORoutes(mux *http.ServeMux, h *SSOHandlers) {
	mux.HandleFunc("GET /auth/sso/login", h.Begin)
	mux.HandleFunc("GET /auth/sso/callback", h.Callback)
}

func registerPageRoutes(mux *http.ServeMux, h *PageHandlers) {
	mux.Handle("GET "+PathAdminDashboard, RequireAdmin(http.HandlerFunc(h.AdminDashboard)))
	mux.Handle("GET "+PathEncadrantDashboard, RequireQuizManager(http.HandlerFunc(h.EncadrantDashboard)))
	mux.Handle("GET "+PathPlayerDashboard, RequireAuthenticated(http.HandlerFunc(h.PlayerDashboard)))
	mux.Handle("GET "+PathPlayerJoinQuiz, RequirePlayer(http.HandlerFunc(h.JoinQuiz)))
	mux.Handle("GET "+PathPlayerJoinSession, RequirePlayer(http.HandlerFunc(h.JoinSession)))
}

func registerQuizRoutes(mux *http.ServeMux, h *QuizHandlers) {
	// Reading quizzes only needs a signed-in user; drafts are filtered in the
	// service. Writes require the quiz-manager capability.
	mux.Handle("GET /api/quizzes", RequireAuthenticated(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/quizzes/{id}", RequireAuthenticated(http.HandlerFunc(h.GetByID)))
	mux.Handle("GET /api/quizzes/{id}/questions", RequireAuthenticated(http.HandlerFunc(h.Questions)))

	mux.Handle("POST /api/quizzes", RequireQuizManager(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/quizzes/{id}", RequireQuizManager(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/quizzes/{id}", RequireQuizManager(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /api/quizzes/{id}/questions", RequireQuizManager(http.HandlerFunc(h.AddQuestion)))
	mux.Handle("PUT /api/questions/{id}", RequireQuizManager(http.HandlerFunc(h.UpdateQuestion)))
	mux.Handle("DELETE /api/questions/{id}", RequireQuizManager(http.HandlerFunc(h.DeleteQuestion)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers) {
	mux.Handle("POST /api/users", RequireUserManager(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/users", RequireUserManager(http.HandlerFunc(h.List)))
	// GetByID stays behind the base auth check so users can read themselves;
	// the service enforces the admin-or-self rule.
	mux.Handle("GET /api/users/{id}", RequireAuthenticated(http.HandlerFunc(h.GetByID)))
	mux.Handle("PUT /api/users/{id}", RequireUserManager(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/users/{id}", RequireUserManager(http.HandlerFunc(h.Delete)))
}

func registerGameSessionRoutes(mux *http.ServeMux, h *GameSessionHandlers) {
	mux.Handle("POST /api/game-sessions", RequireQuizManager(http.HandlerFunc(h.Open)))
	mux.Handle("GET /api/game-sessions", RequireQuizManager(http.HandlerFunc(h.ListHosted)))
	mux.Handle("POST /api/game-sessions/{id}/start", RequireQuizManager(http.HandlerFunc(h.Start)))
	mux.Handle("POST /api/game-sessions/{id}/finish", RequireQuizManager(http.HandlerFunc(h.Finish)))
	mux.Handle("POST /api/game-sessions/join", RequireAuthenticated(http.HandlerFunc(h.Join)))
}
