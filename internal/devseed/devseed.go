// Package devseed populates a development database with demo accounts and a
// sample quiz. It only runs when the application starts in dev mode.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/casernelab/firequiz/internal/core"
	"github.com/casernelab/firequiz/internal/data"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/service"
)

// DemoPassword is shared by every seeded account. It is only ever written to
// a development database.
const DemoPassword = "password"

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB        *sql.DB
	users     *data.UserRepo
	quizzes   *data.QuizRepo
	questions *data.QuestionRepo
}

// NewServices constructs the repositories used for seeding against the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:        db,
		users:     data.NewUserRepo(db),
		quizzes:   data.NewQuizRepo(db),
		questions: data.NewQuestionRepo(db),
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	admin, err := ensureUser(ctx, svcs.users, logger, seedUser{
		Username:  "admin",
		Email:     "admin@firequiz.local",
		FirstName: "Demo",
		LastName:  "Admin",
		Role:      domainauth.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	failures := 0
	for _, u := range demoUsers() {
		if _, userErr := ensureUser(ctx, svcs.users, logger, u); userErr != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to seed user", "username", u.Username, "error", userErr)
			}
			failures++
		}
	}

	if quizErr := seedDemoQuiz(ctx, svcs, admin.ID, logger); quizErr != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to seed demo quiz", "error", quizErr)
		}
		failures++
	}

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

type seedUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      domainauth.Role
}

func demoUsers() []seedUser {
	return []seedUser{
		{
			Username:  "encadrant",
			Email:     "encadrant@firequiz.local",
			FirstName: "Demo",
			LastName:  "Encadrant",
			Role:      domainauth.RoleEncadrant,
		},
		{
			Username:  "player",
			Email:     "player@firequiz.local",
			FirstName: "Demo",
			LastName:  "Player",
			Role:      domainauth.RolePlayer,
		},
	}
}

// ensureUser creates the account if it does not exist yet. Existing accounts
// are left untouched so local password changes survive restarts.
func ensureUser(ctx context.Context, users *data.UserRepo, logger *slog.Logger, u seedUser) (*model.User, error) {
	existing, err := users.GetByUsernameOrEmail(ctx, u.Username)
	if err == nil {
		if logger != nil {
			logger.InfoContext(ctx, "user already exists", "username", u.Username)
		}
		return existing, nil
	}
	if !errors.Is(err, core.ErrUserNotFound) {
		return nil, err
	}

	hash, err := service.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	created, err := users.Create(ctx, &model.CreateUserRequest{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: hash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
	})
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.InfoContext(ctx, "created user", "username", u.Username, "role", u.Role)
	}
	return created, nil
}

const demoQuizTitle = "Fire Safety Basics"

func seedDemoQuiz(ctx context.Context, svcs Services, adminID string, logger *slog.Logger) error {
	title := demoQuizTitle
	existing, err := svcs.quizzes.List(ctx, model.QuizzesListOptions{Q: &title, Limit: 10})
	if err != nil {
		return err
	}
	for _, q := range existing {
		if q.Title == demoQuizTitle {
			if logger != nil {
				logger.InfoContext(ctx, "demo quiz already exists", "quiz_id", q.ID)
			}
			return nil
		}
	}

	published := true
	quiz, err := svcs.quizzes.Create(ctx, &model.CreateQuizRequest{
		Title:       demoQuizTitle,
		Description: "A short starter quiz covering fire safety fundamentals.",
		Published:   &published,
		CreatedBy:   adminID,
	})
	if err != nil {
		return err
	}

	for _, q := range demoQuestions(quiz.ID) {
		if _, qErr := svcs.questions.Create(ctx, q); qErr != nil {
			return fmt.Errorf("seed question %q: %w", q.Prompt, qErr)
		}
	}

	if logger != nil {
		logger.InfoContext(ctx, "created demo quiz", "quiz_id", quiz.ID, "title", quiz.Title)
	}
	return nil
}

func demoQuestions(quizID string) []*model.CreateQuestionRequest {
	return []*model.CreateQuestionRequest{
		{
			QuizID:      quizID,
			Position:    1,
			Prompt:      "What does the acronym PASS stand for when using an extinguisher?",
			Choices:     []string{"Pull, Aim, Squeeze, Sweep", "Push, Alert, Spray, Stop", "Point, Activate, Spray, Secure", "Pull, Alert, Squeeze, Stop"},
			AnswerIndex: 0,
		},
		{
			QuizID:      quizID,
			Position:    2,
			Prompt:      "Which extinguisher class is suitable for electrical fires?",
			Choices:     []string{"Class A", "Class B", "Class C", "Class D"},
			AnswerIndex: 2,
		},
		{
			QuizID:      quizID,
			Position:    3,
			Prompt:      "How often should smoke detector batteries be replaced?",
			Choices:     []string{"Every month", "Twice a year", "Every five years", "Only when they beep"},
			AnswerIndex: 1,
		},
	}
}
