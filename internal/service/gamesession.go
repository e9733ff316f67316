package service

import (
	"context"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
)

// GameSessionServiceOptions groups dependencies for GameSessionService.
type GameSessionServiceOptions struct {
	Sessions core.GameSessionRepository
	Quizzes  core.QuizRepository
}

// GameSessionService handles hosting and joining live game sessions. Hosting
// requires the quiz-manager capability; joining is open to any signed-in
// player while the session sits in the lobby.
type GameSessionService struct {
	sessions core.GameSessionRepository
	quizzes  core.QuizRepository
}

// NewGameSessionService constructs a new GameSessionService.
func NewGameSessionService(opts GameSessionServiceOptions) *GameSessionService {
	return &GameSessionService{sessions: opts.Sessions, quizzes: opts.Quizzes}
}

// Open creates a lobby for a published quiz hosted by the actor.
func (s *GameSessionService) Open(ctx context.Context, actor domainauth.Session, quizID string) (*model.GameSession, error) {
	if !actor.CanManageQuizzes() {
		return nil, core.ErrForbidden
	}
	quiz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.Published {
		return nil, core.ErrSessionNotJoinable
	}
	return s.sessions.Create(ctx, &model.CreateGameSessionRequest{
		QuizID: quiz.ID,
		HostID: actor.UserID,
	})
}

// GetByID retrieves a session by ID.
func (s *GameSessionService) GetByID(ctx context.Context, id string) (*model.GameSession, error) {
	return s.sessions.GetByID(ctx, id)
}

// JoinByCode resolves a join code to an open session. Codes of finished
// sessions and sessions already running resolve to ErrSessionNotJoinable.
func (s *GameSessionService) JoinByCode(ctx context.Context, code string) (*model.GameSession, error) {
	gs, err := s.sessions.GetByCode(ctx, model.NormalizeJoinCode(code))
	if err != nil {
		return nil, err
	}
	if !gs.Joinable() {
		return nil, core.ErrSessionNotJoinable
	}
	return gs, nil
}

// ListHosted returns the actor's sessions, newest first.
func (s *GameSessionService) ListHosted(ctx context.Context, actor domainauth.Session) ([]*model.GameSession, error) {
	if !actor.CanManageQuizzes() {
		return nil, core.ErrForbidden
	}
	return s.sessions.ListByHost(ctx, actor.UserID)
}

// Start moves a lobby to running. Only the host or an admin may drive the
// lifecycle.
func (s *GameSessionService) Start(ctx context.Context, actor domainauth.Session, id string) (*model.GameSession, error) {
	if err := s.authorizeLifecycle(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.sessions.SetStatus(ctx, id, model.GameSessionRunning)
}

// Finish closes a session, freeing its join code.
func (s *GameSessionService) Finish(ctx context.Context, actor domainauth.Session, id string) (*model.GameSession, error) {
	if err := s.authorizeLifecycle(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.sessions.SetStatus(ctx, id, model.GameSessionFinished)
}

func (s *GameSessionService) authorizeLifecycle(ctx context.Context, actor domainauth.Session, id string) error {
	gs, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if gs.HostID != actor.UserID && !actor.IsAdmin() {
		return core.ErrForbidden
	}
	return nil
}
