package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/service"
)

// UserHandlers provides HTTP handlers for account administration.
type UserHandlers struct {
	Svc *service.UserService
}

const (
	maxUserListLimit = 100 // Maximum number of users that can be requested in one call
)

// createUserPayload is the admin account-creation body: the stored fields
// plus the initial plaintext password, which only the service ever hashes.
type createUserPayload struct {
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      domainauth.Role `json:"role"`
}

// Create handles HTTP requests to provision an account with an explicit role.
// POST /api/users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload createUserPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	req := &model.CreateUserRequest{
		Username:  payload.Username,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Role:      payload.Role,
	}
	user, err := h.Svc.Create(r.Context(), MustSession(r.Context()), req, payload.Password)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// List handles HTTP requests to list accounts with pagination and filters.
// GET /api/users?limit=&offset=&q=&role=&sort=&dir=.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxUserListLimit)
	opts := model.UsersListOptions{
		Limit:  limit,
		Offset: offset,
		Sort:   r.URL.Query().Get("sort"),
		Dir:    r.URL.Query().Get("dir"),
	}
	if q := r.URL.Query().Get("q"); q != "" {
		opts.Q = &q
	}
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		role := domainauth.Role(roleStr)
		if !role.Valid() {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_role", Err: errors.New("invalid role filter")})
			return
		}
		opts.Role = &role
	}

	users, err := h.Svc.List(r.Context(), MustSession(r.Context()), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"users":  users,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to fetch a single account.
// GET /api/users/{id}.
func (h *UserHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("user id is required")})
		return
	}

	user, err := h.Svc.GetByID(r.Context(), MustSession(r.Context()), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Update handles HTTP requests to update an account, including role changes.
// PUT /api/users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("user id is required")})
		return
	}

	var req model.UpdateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Update(r.Context(), MustSession(r.Context()), id, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Delete handles HTTP requests to remove an account.
// DELETE /api/users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("user id is required")})
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), MustSession(r.Context()), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("user not found")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
