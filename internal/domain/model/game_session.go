//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// GameSessionStatus tracks the lifecycle of a hosted game session.
type GameSessionStatus string

const (
	GameSessionLobby    GameSessionStatus = "lobby"
	GameSessionRunning  GameSessionStatus = "running"
	GameSessionFinished GameSessionStatus = "finished"
)

// Valid reports whether the status is supported.
func (s GameSessionStatus) Valid() bool {
	switch s {
	case GameSessionLobby, GameSessionRunning, GameSessionFinished:
		return true
	default:
		return false
	}
}

// JoinCodeLen is the length of generated join codes.
const JoinCodeLen = 6

// GameSession is a live instance of a quiz hosted by a quiz manager. Players
// join via the short Code while the session is in the lobby state.
type GameSession struct {
	ID         string            `json:"id"          db:"id"`
	QuizID     string            `json:"quiz_id"     db:"quiz_id"`
	HostID     string            `json:"host_id"     db:"host_id"`
	Code       string            `json:"code"        db:"code"`
	Status     GameSessionStatus `json:"status"      db:"status"`
	CreatedAt  time.Time         `json:"created_at"  db:"created_at"`
	StartedAt  *time.Time        `json:"started_at,omitempty"  db:"started_at"`
	FinishedAt *time.Time        `json:"finished_at,omitempty" db:"finished_at"`
}

// Joinable reports whether players may still enter the session.
func (g *GameSession) Joinable() bool { return g.Status == GameSessionLobby }

// CreateGameSessionRequest represents parameters to open a GameSession.
// Code is generated by the repository, not supplied by the caller.
type CreateGameSessionRequest struct {
	QuizID string `json:"quiz_id"`
	HostID string `json:"-"`
}

// Validate validates CreateGameSessionRequest.
func (r *CreateGameSessionRequest) Validate() error {
	if strings.TrimSpace(r.QuizID) == "" {
		return errors.New("quiz_id is required")
	}
	if strings.TrimSpace(r.HostID) == "" {
		return errors.New("host_id is required")
	}
	return nil
}

// NormalizeJoinCode uppercases and trims a player-supplied join code.
func NormalizeJoinCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
