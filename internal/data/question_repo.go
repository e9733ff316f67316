package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/casernelab/firequiz/internal/core"
	"github.com/casernelab/firequiz/internal/data/pgxutil"
	"github.com/casernelab/firequiz/internal/domain/model"
)

// QuestionRepo provides database operations for quiz questions.
type QuestionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewQuestionRepo creates a QuestionRepo backed by the system clock.
func NewQuestionRepo(db *sql.DB) *QuestionRepo {
	return &QuestionRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewQuestionRepoWithTimeProvider creates a QuestionRepo with a custom clock for tests.
func NewQuestionRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *QuestionRepo {
	return &QuestionRepo{DB: db, timeProvider: tp}
}

const questionColumns = `id, quiz_id, position, prompt, choices, answer_index, created_at, updated_at`

// Create inserts a new question. Choices round-trip through jsonb.
func (r *QuestionRepo) Create(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	if req == nil {
		return nil, errors.New("create question request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Question
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO questions (quiz_id, position, prompt, choices, answer_index, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+questionColumns,
			req.QuizID, req.Position, strings.TrimSpace(req.Prompt), req.Choices, req.AnswerIndex, now)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Question])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a question by ID.
func (r *QuestionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	var q model.Question
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		q, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Question])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question by ID: %w", err)
	}
	return &q, nil
}

// ListByQuiz retrieves every question of a quiz ordered by position.
func (r *QuestionRepo) ListByQuiz(ctx context.Context, quizID string) ([]*model.Question, error) {
	var rowsOut []model.Question
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+questionColumns+`
			FROM questions
			WHERE quiz_id = $1
			ORDER BY position, created_at`, quizID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Question])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	res := make([]*model.Question, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies the non-nil fields of req to the question.
func (r *QuestionRepo) Update(ctx context.Context, id string, req model.UpdateQuestionRequest) (*model.Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Position != nil {
		setParts = append(setParts, fmt.Sprintf("position = $%d", nextIdx()))
		args = append(args, *req.Position)
	}
	if req.Prompt != nil {
		setParts = append(setParts, fmt.Sprintf("prompt = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Prompt))
	}
	if req.Choices != nil {
		setParts = append(setParts, fmt.Sprintf("choices = $%d", nextIdx()))
		args = append(args, *req.Choices)
		setParts = append(setParts, fmt.Sprintf("answer_index = $%d", nextIdx()))
		args = append(args, *req.AnswerIndex)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE questions SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + questionColumns

	var out model.Question
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Question])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return &out, nil
}

// Delete removes a question by ID, reporting whether a row was deleted.
func (r *QuestionRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete question: %w", err)
	}
	return affected > 0, nil
}
