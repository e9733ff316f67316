package service

import (
	"context"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
)

// QuizServiceOptions groups dependencies for QuizService.
type QuizServiceOptions struct {
	Quizzes   core.QuizRepository
	Questions core.QuestionRepository
}

// QuizService handles quiz and question CRUD. Write access requires the
// quiz-manager capability; players only ever see published quizzes.
type QuizService struct {
	quizzes   core.QuizRepository
	questions core.QuestionRepository
}

// NewQuizService constructs a new QuizService.
func NewQuizService(opts QuizServiceOptions) *QuizService {
	return &QuizService{quizzes: opts.Quizzes, questions: opts.Questions}
}

// Create creates a quiz owned by the actor.
func (s *QuizService) Create(ctx context.Context, actor domainauth.Session, req *model.CreateQuizRequest) (*model.Quiz, error) {
	if !actor.CanManageQuizzes() {
		return nil, core.ErrForbidden
	}
	req.CreatedBy = actor.UserID
	return s.quizzes.Create(ctx, req)
}

// GetByID retrieves a quiz. Players can only fetch published quizzes.
func (s *QuizService) GetByID(ctx context.Context, actor domainauth.Session, id string) (*model.Quiz, error) {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quiz.Published && !actor.CanManageQuizzes() {
		return nil, core.ErrQuizNotFound
	}
	return quiz, nil
}

// List returns quizzes. For players the published filter is forced on.
func (s *QuizService) List(ctx context.Context, actor domainauth.Session, opts model.QuizzesListOptions) ([]*model.Quiz, error) {
	if !actor.CanManageQuizzes() {
		published := true
		opts.Published = &published
	}
	return s.quizzes.List(ctx, opts)
}

// Update modifies a quiz.
func (s *QuizService) Update(ctx context.Context, actor domainauth.Session, id string, req model.UpdateQuizRequest) (*model.Quiz, error) {
	if !actor.CanManageQuizzes() {
		return nil, core.ErrForbidden
	}
	return s.quizzes.Update(ctx, id, req)
}

// Delete removes a quiz with its questions and sessions.
func (s *QuizService) Delete(ctx context.Context, actor domainauth.Session, id string) (bool, error) {
	if !actor.CanManageQuizzes() {
		return false, core.ErrForbidden
	}
	return s.quizzes.Delete(ctx, id)
}

// AddQuestion appends a question to a quiz the actor may manage.
func (s *QuizService) AddQuestion(ctx context.Context, actor domainauth.Session, req *model.CreateQuestionRequest) (*model.Question, error) {
	if !actor.CanManageQuizzes() {
		return nil, core.ErrForbidden
	}
	// The quiz must exist; a dangling quiz ID would only surface as an FK
	// violation otherwise.
	if _, err := s.quizzes.GetByID(ctx, req.QuizID); err != nil {
		return nil, err
	}
	return s.questions.Create(ctx, req)
}

// Questions lists a quiz's questions in position order. Players may read
// questions of published quizzes only.
func (s *QuizService) Questions(ctx context.Context, actor domainauth.Session, quizID string) ([]*model.Question, error) {
	if _, err := s.GetByID(ctx, actor, quizID); err != nil {
		return nil, err
	}
	return s.questions.ListByQuiz(ctx, quizID)
}

// UpdateQuestion modifies a question.
func (s *QuizService) UpdateQuestion(ctx context.Context, actor domainauth.Session, id string, req model.UpdateQuestionRequest) (*model.Question, error) {
	if !actor.CanManageQuizzes() {
		return nil, core.ErrForbidden
	}
	return s.questions.Update(ctx, id, req)
}

// DeleteQuestion removes a question.
func (s *QuizService) DeleteQuestion(ctx context.Context, actor domainauth.Session, id string) (bool, error) {
	if !actor.CanManageQuizzes() {
		return false, core.ErrForbidden
	}
	return s.questions.Delete(ctx, id)
}
