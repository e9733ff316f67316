package httpx

import (
	"net/http"
)

// PageHandlers serves the per-area landing pages and the player join pages.
// They return JSON payloads the frontend renders; their main job is giving
// the access guards real endpoints to protect.
type PageHandlers struct{}

// AdminDashboard serves the admin landing page.
// GET /admin/dashboard.
func (h *PageHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, "admin")
}

// EncadrantDashboard serves the encadrant landing page.
// GET /encadrant/dashboard.
func (h *PageHandlers) EncadrantDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, "encadrant")
}

// PlayerDashboard serves the player landing page.
// GET /player/dashboard.
func (h *PageHandlers) PlayerDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, "player")
}

func (h *PageHandlers) dashboard(w http.ResponseWriter, r *http.Request, area string) {
	session := MustSession(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"area": area,
		"user": map[string]any{
			"id":       session.UserID,
			"username": session.Username,
			"role":     session.Role,
		},
	})
}

// JoinQuiz serves the player quiz-join page reached through the login
// deep link.
// GET /player/join-quiz?id=<quiz_id>.
func (h *PageHandlers) JoinQuiz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"page":    "join-quiz",
		"quiz_id": r.URL.Query().Get("id"),
	})
}

// JoinSession serves the player session-join page.
// GET /player/join-session?code=<join_code>.
func (h *PageHandlers) JoinSession(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"page": "join-session",
		"code": r.URL.Query().Get("code"),
	})
}
