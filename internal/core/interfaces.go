// Package core defines repository interfaces for the quiz platform following
// the hexagonal architecture pattern: the core declares what it needs and the
// data layer provides implementations.
package core

import (
	"context"
	"time"

	"github.com/casernelab/firequiz/internal/domain/model"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error)
	List(ctx context.Context, opts model.UsersListOptions) ([]*model.User, error)
	Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RememberTokenRepository persists remember-me token digests, one per user.
type RememberTokenRepository interface {
	Upsert(ctx context.Context, userID, token string, expiresAt time.Time) error
	Verify(ctx context.Context, userID, token string) error
	Revoke(ctx context.Context, userID string) error
	// DeleteExpired removes rows past their expiry and returns the count.
	// Used by the reaper; correctness never depends on it running.
	DeleteExpired(ctx context.Context) (int64, error)
}

// QuizRepository provides persistence for quizzes.
type QuizRepository interface {
	Create(ctx context.Context, req *model.CreateQuizRequest) (*model.Quiz, error)
	GetByID(ctx context.Context, id string) (*model.Quiz, error)
	List(ctx context.Context, opts model.QuizzesListOptions) ([]*model.Quiz, error)
	Update(ctx context.Context, id string, req model.UpdateQuizRequest) (*model.Quiz, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// QuestionRepository provides persistence for quiz questions.
type QuestionRepository interface {
	Create(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error)
	GetByID(ctx context.Context, id string) (*model.Question, error)
	ListByQuiz(ctx context.Context, quizID string) ([]*model.Question, error)
	Update(ctx context.Context, id string, req model.UpdateQuestionRequest) (*model.Question, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// GameSessionRepository provides persistence for hosted game sessions.
type GameSessionRepository interface {
	Create(ctx context.Context, req *model.CreateGameSessionRequest) (*model.GameSession, error)
	GetByID(ctx context.Context, id string) (*model.GameSession, error)
	GetByCode(ctx context.Context, code string) (*model.GameSession, error)
	ListByHost(ctx context.Context, hostID string) ([]*model.GameSession, error)
	// SetStatus transitions the session lifecycle and stamps the matching
	// started/finished timestamp.
	SetStatus(ctx context.Context, id string, status model.GameSessionStatus) (*model.GameSession, error)
}
