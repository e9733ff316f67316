package data

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/casernelab/firequiz/internal/core"
	"github.com/casernelab/firequiz/internal/data/pgxutil"
	"github.com/casernelab/firequiz/internal/domain/model"
)

// joinCodeAlphabet excludes 0/O and 1/I to keep codes readable when shared
// verbally or written on a board.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// joinCodeAttempts bounds retries when a generated code collides with a
// live session.
const joinCodeAttempts = 5

// GameSessionRepo provides database operations for hosted game sessions.
type GameSessionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewGameSessionRepo creates a GameSessionRepo backed by the system clock.
func NewGameSessionRepo(db *sql.DB) *GameSessionRepo {
	return &GameSessionRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewGameSessionRepoWithTimeProvider creates a GameSessionRepo with a custom
// clock for tests.
func NewGameSessionRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *GameSessionRepo {
	return &GameSessionRepo{DB: db, timeProvider: tp}
}

// The column list aliases join_code to match the model field.
const gameSessionColumns = `id, quiz_id, host_id, join_code AS code, status, created_at, started_at, finished_at`

// NewJoinCode generates a random join code from the unambiguous alphabet.
func NewJoinCode() (string, error) {
	buf := make([]byte, model.JoinCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate join code: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

// Create opens a new session in the lobby state with a generated join code.
// Codes are unique among sessions that have not finished; collisions retry
// with a fresh code.
func (r *GameSessionRepo) Create(ctx context.Context, req *model.CreateGameSessionRequest) (*model.GameSession, error) {
	if req == nil {
		return nil, errors.New("create game session request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var lastErr error
	for range joinCodeAttempts {
		code, err := NewJoinCode()
		if err != nil {
			return nil, err
		}

		var out model.GameSession
		err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
			rows, err := conn.Query(ctx, `
				INSERT INTO game_sessions (quiz_id, host_id, join_code, status, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $5)
				RETURNING `+gameSessionColumns,
				req.QuizID, req.HostID, code, model.GameSessionLobby, now)
			if err != nil {
				return err
			}
			defer rows.Close()
			out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.GameSession])
			return err
		})
		if err == nil {
			return &out, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			lastErr = core.ErrJoinCodeTaken
			continue
		}
		return nil, fmt.Errorf("failed to create game session: %w", err)
	}
	return nil, lastErr
}

// GetByID retrieves a session by ID.
func (r *GameSessionRepo) GetByID(ctx context.Context, id string) (*model.GameSession, error) {
	return r.getByQuery(ctx,
		`SELECT `+gameSessionColumns+` FROM game_sessions WHERE id = $1`,
		"failed to get game session by ID", id)
}

// GetByCode retrieves the most recent unfinished session with the given join
// code. Callers normalize the code first.
func (r *GameSessionRepo) GetByCode(ctx context.Context, code string) (*model.GameSession, error) {
	return r.getByQuery(ctx, `
		SELECT `+gameSessionColumns+`
		FROM game_sessions
		WHERE join_code = $1 AND status <> 'finished'
		ORDER BY created_at DESC
		LIMIT 1`,
		"failed to get game session by code", model.NormalizeJoinCode(code))
}

// ListByHost retrieves every session hosted by hostID, newest first.
func (r *GameSessionRepo) ListByHost(ctx context.Context, hostID string) ([]*model.GameSession, error) {
	var rowsOut []model.GameSession
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+gameSessionColumns+`
			FROM game_sessions
			WHERE host_id = $1
			ORDER BY created_at DESC`, hostID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.GameSession])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list game sessions: %w", err)
	}

	res := make([]*model.GameSession, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetStatus transitions a session and stamps started_at or finished_at to
// match the new state.
func (r *GameSessionRepo) SetStatus(ctx context.Context, id string, status model.GameSessionStatus) (*model.GameSession, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid game session status %q", status)
	}

	now := r.timeProvider.Now().UTC()
	query := `
		UPDATE game_sessions
		SET status = $1,
		    updated_at = $2,
		    started_at = CASE WHEN $1 = 'running' THEN $2 ELSE started_at END,
		    finished_at = CASE WHEN $1 = 'finished' THEN $2 ELSE finished_at END
		WHERE id = $3
		RETURNING ` + gameSessionColumns

	var out model.GameSession
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, status, now, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.GameSession])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrGameSessionNotFound
		}
		return nil, fmt.Errorf("failed to set game session status: %w", err)
	}
	return &out, nil
}

func (r *GameSessionRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.GameSession, error) {
	var gs model.GameSession
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		gs, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.GameSession])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrGameSessionNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &gs, nil
}
