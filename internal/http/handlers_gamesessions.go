package httpx

import (
	"context"
	"errors"
	"net/http"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/service"
)

// GameSessionHandlers provides HTTP handlers for hosting and joining live
// game sessions.
type GameSessionHandlers struct {
	Svc *service.GameSessionService
}

// Open handles HTTP requests to open a lobby for a published quiz.
// POST /api/game-sessions.
func (h *GameSessionHandlers) Open(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuizID string `json:"quiz_id"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.QuizID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: errors.New("quiz_id is required")})
		return
	}

	gs, err := h.Svc.Open(r.Context(), MustSession(r.Context()), req.QuizID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, gs)
}

// ListHosted handles HTTP requests to list the caller's sessions.
// GET /api/game-sessions.
func (h *GameSessionHandlers) ListHosted(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListHosted(r.Context(), MustSession(r.Context()))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"game_sessions": list})
}

// Start handles HTTP requests to move a lobby into the running state.
// POST /api/game-sessions/{id}/start.
func (h *GameSessionHandlers) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Svc.Start)
}

// Finish handles HTTP requests to close a session and free its join code.
// POST /api/game-sessions/{id}/finish.
func (h *GameSessionHandlers) Finish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Svc.Finish)
}

func (h *GameSessionHandlers) transition(w http.ResponseWriter, r *http.Request, op gameSessionTransition) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("game session id is required")})
		return
	}

	gs, err := op(r.Context(), MustSession(r.Context()), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, gs)
}

type gameSessionTransition = func(ctx context.Context, actor domainauth.Session, id string) (*model.GameSession, error)

// Join handles HTTP requests to resolve a join code to an open lobby.
// POST /api/game-sessions/join.
func (h *GameSessionHandlers) Join(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Code == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: errors.New("code is required")})
		return
	}

	gs, err := h.Svc.JoinByCode(r.Context(), req.Code)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, gs)
}
