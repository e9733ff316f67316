// Package httpx provides the HTTP surface for the quiz platform: auth
// endpoints, role-guarded resource handlers, and the access-guard middleware.
package httpx

import (
	"errors"
	"net/http"

	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/service"
)

// QuizHandlers provides HTTP handlers for quiz and question management.
type QuizHandlers struct {
	Svc *service.QuizService
}

const (
	maxQuizListLimit = 100 // Maximum number of quizzes that can be requested in one call
)

// Create handles HTTP requests to create a new quiz.
// POST /api/quizzes.
func (h *QuizHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateQuizRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	quiz, err := h.Svc.Create(r.Context(), MustSession(r.Context()), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, quiz)
}

// List handles HTTP requests to list quizzes with pagination and filters.
// GET /api/quizzes?limit=&offset=&q=&published=&sort=&dir=.
func (h *QuizHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxQuizListLimit)
	opts := model.QuizzesListOptions{
		Limit:  limit,
		Offset: offset,
		Sort:   r.URL.Query().Get("sort"),
		Dir:    r.URL.Query().Get("dir"),
	}
	if q := r.URL.Query().Get("q"); q != "" {
		opts.Q = &q
	}
	if pub := r.URL.Query().Get("published"); pub != "" {
		v := pub == "true" || pub == "1"
		opts.Published = &v
	}

	quizzes, err := h.Svc.List(r.Context(), MustSession(r.Context()), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"quizzes": quizzes,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetByID handles HTTP requests to get a quiz by ID.
// GET /api/quizzes/{id}.
func (h *QuizHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("quiz id is required")})
		return
	}

	quiz, err := h.Svc.GetByID(r.Context(), MustSession(r.Context()), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, quiz)
}

// Update handles HTTP requests to update a quiz.
// PUT /api/quizzes/{id}.
func (h *QuizHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("quiz id is required")})
		return
	}

	var req model.UpdateQuizRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	quiz, err := h.Svc.Update(r.Context(), MustSession(r.Context()), id, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, quiz)
}

// Delete handles HTTP requests to delete a quiz, cascading to its questions.
// DELETE /api/quizzes/{id}.
func (h *QuizHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("quiz id is required")})
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), MustSession(r.Context()), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("quiz not found")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddQuestion handles HTTP requests to append a question to a quiz.
// POST /api/quizzes/{id}/questions.
func (h *QuizHandlers) AddQuestion(w http.ResponseWriter, r *http.Request) {
	quizID := r.PathValue("id")
	if quizID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("quiz id is required")})
		return
	}

	var req model.CreateQuestionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.QuizID = quizID

	question, err := h.Svc.AddQuestion(r.Context(), MustSession(r.Context()), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, question)
}

// Questions handles HTTP requests to list a quiz's questions in play order.
// GET /api/quizzes/{id}/questions.
func (h *QuizHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	quizID := r.PathValue("id")
	if quizID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("quiz id is required")})
		return
	}

	questions, err := h.Svc.Questions(r.Context(), MustSession(r.Context()), quizID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

// UpdateQuestion handles HTTP requests to update a question.
// PUT /api/questions/{id}.
func (h *QuizHandlers) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("question id is required")})
		return
	}

	var req model.UpdateQuestionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	question, err := h.Svc.UpdateQuestion(r.Context(), MustSession(r.Context()), id, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, question)
}

// DeleteQuestion handles HTTP requests to delete a question.
// DELETE /api/questions/{id}.
func (h *QuizHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("question id is required")})
		return
	}

	deleted, err := h.Svc.DeleteQuestion(r.Context(), MustSession(r.Context()), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("question not found")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
