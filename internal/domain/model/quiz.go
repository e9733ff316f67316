//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxQuizTitleLen = 255

// Quiz represents an editable question set owned by a quiz manager.
// Unpublished quizzes are invisible to players and cannot host game sessions.
type Quiz struct {
	ID          string    `json:"id"          db:"id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`
	Published   bool      `json:"published"   db:"published"`
	CreatedBy   string    `json:"created_by"  db:"created_by"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// CreateQuizRequest represents parameters to create a Quiz.
type CreateQuizRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   *bool  `json:"published,omitempty"`
	CreatedBy   string `json:"-"`
}

// Validate validates CreateQuizRequest.
func (r *CreateQuizRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxQuizTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.CreatedBy) == "" {
		return errors.New("created_by is required")
	}
	return nil
}

// UpdateQuizRequest represents parameters to update a Quiz.
type UpdateQuizRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Published   *bool   `json:"published,omitempty"`
}

// HasUpdates reports whether any field is set in UpdateQuizRequest.
func (r *UpdateQuizRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.Published != nil
}

// Validate validates UpdateQuizRequest, ensuring at least one field is set and values are sane.
func (r *UpdateQuizRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(title) > maxQuizTitleLen {
			return errors.New("title cannot exceed 255 characters")
		}
	}
	return nil
}

// QuizzesListOptions controls paging and filtering for listing quizzes.
// Notes:
// - Sort supports: "created_at", "title" (case-insensitive).
// - Dir supports: "asc", "desc" (case-insensitive); values are normalized internally.
// - Q matches title via ILIKE substring.
// - Published and CreatedBy match exactly.
type QuizzesListOptions struct {
	Limit     int
	Offset    int
	Q         *string
	Published *bool
	CreatedBy *string
	Sort      string
	Dir       string
}
