//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

const (
	minChoices = 2
	maxChoices = 8
)

// Question is a single multiple-choice question inside a quiz. Choices is
// stored as a jsonb array; AnswerIndex points into it.
type Question struct {
	ID          string    `json:"id"           db:"id"`
	QuizID      string    `json:"quiz_id"      db:"quiz_id"`
	Position    int       `json:"position"     db:"position"`
	Prompt      string    `json:"prompt"       db:"prompt"`
	Choices     []string  `json:"choices"      db:"choices"`
	AnswerIndex int       `json:"answer_index" db:"answer_index"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"   db:"updated_at"`
}

// CreateQuestionRequest represents parameters to create a Question.
type CreateQuestionRequest struct {
	QuizID      string   `json:"-"`
	Position    int      `json:"position"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
}

// Validate validates CreateQuestionRequest.
func (r *CreateQuestionRequest) Validate() error {
	if strings.TrimSpace(r.QuizID) == "" {
		return errors.New("quiz_id is required")
	}
	if strings.TrimSpace(r.Prompt) == "" {
		return errors.New("prompt is required and cannot be empty")
	}
	if len(r.Choices) < minChoices || len(r.Choices) > maxChoices {
		return errors.New("choices must contain between 2 and 8 entries")
	}
	for _, c := range r.Choices {
		if strings.TrimSpace(c) == "" {
			return errors.New("choices cannot contain empty entries")
		}
	}
	if r.AnswerIndex < 0 || r.AnswerIndex >= len(r.Choices) {
		return errors.New("answer_index must point into choices")
	}
	if r.Position < 0 {
		return errors.New("position cannot be negative")
	}
	return nil
}

// UpdateQuestionRequest represents parameters to update a Question.
type UpdateQuestionRequest struct {
	Position    *int      `json:"position,omitempty"`
	Prompt      *string   `json:"prompt,omitempty"`
	Choices     *[]string `json:"choices,omitempty"`
	AnswerIndex *int      `json:"answer_index,omitempty"`
}

// HasUpdates reports whether any field is set.
func (r *UpdateQuestionRequest) HasUpdates() bool {
	return r.Position != nil || r.Prompt != nil || r.Choices != nil || r.AnswerIndex != nil
}

// Validate validates UpdateQuestionRequest. Choices and AnswerIndex must be
// updated together so the index can be checked against the new set.
func (r *UpdateQuestionRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Prompt != nil && strings.TrimSpace(*r.Prompt) == "" {
		return errors.New("prompt cannot be empty")
	}
	if r.Position != nil && *r.Position < 0 {
		return errors.New("position cannot be negative")
	}
	if r.Choices != nil {
		if r.AnswerIndex == nil {
			return errors.New("answer_index must accompany choices")
		}
		if len(*r.Choices) < minChoices || len(*r.Choices) > maxChoices {
			return errors.New("choices must contain between 2 and 8 entries")
		}
		if *r.AnswerIndex < 0 || *r.AnswerIndex >= len(*r.Choices) {
			return errors.New("answer_index must point into choices")
		}
	} else if r.AnswerIndex != nil {
		return errors.New("choices must accompany answer_index")
	}
	return nil
}
