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
	"github.com/casernelab/firequiz/internal/data/database"
	"github.com/casernelab/firequiz/internal/data/pgxutil"
	"github.com/casernelab/firequiz/internal/domain/model"
)

// QuizRepo provides database operations for quizzes.
type QuizRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewQuizRepo creates a QuizRepo backed by the system clock.
func NewQuizRepo(db *sql.DB) *QuizRepo {
	return &QuizRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewQuizRepoWithTimeProvider creates a QuizRepo with a custom clock for tests.
func NewQuizRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *QuizRepo {
	return &QuizRepo{DB: db, timeProvider: tp}
}

const quizColumns = `id, title, description, published, created_by, created_at, updated_at`

// Create inserts a new quiz.
func (r *QuizRepo) Create(ctx context.Context, req *model.CreateQuizRequest) (*model.Quiz, error) {
	if req == nil {
		return nil, errors.New("create quiz request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	published := false
	if req.Published != nil {
		published = *req.Published
	}

	now := r.timeProvider.Now().UTC()
	var out model.Quiz
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO quizzes (title, description, published, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING `+quizColumns,
			strings.TrimSpace(req.Title), req.Description, published, req.CreatedBy, now)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Quiz])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a quiz by ID.
func (r *QuizRepo) GetByID(ctx context.Context, id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+quizColumns+` FROM quizzes WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		quiz, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Quiz])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz by ID: %w", err)
	}
	return &quiz, nil
}

// List retrieves quizzes with filters, sorting and pagination.
func (r *QuizRepo) List(ctx context.Context, opts model.QuizzesListOptions) ([]*model.Quiz, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	q := database.NewListQuery("quizzes",
		"id", "title", "description", "published", "created_by", "created_at", "updated_at")
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		q.WhereILike("title", strings.TrimSpace(*opts.Q))
	}
	if opts.Published != nil {
		q.Where("published", *opts.Published)
	}
	if opts.CreatedBy != nil && strings.TrimSpace(*opts.CreatedBy) != "" {
		q.Where("created_by", strings.TrimSpace(*opts.CreatedBy))
	}
	sortCol := database.AllowedSortColumn(strings.ToLower(strings.TrimSpace(opts.Sort)),
		"created_at", map[string]bool{"created_at": true, "title": true})
	q.OrderBy(sortCol, database.NormalizeSortDir(opts.Dir)).Paginate(limit, offset)

	query, args := q.SQL()
	var rowsOut []model.Quiz
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Quiz])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	res := make([]*model.Quiz, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies the non-nil fields of req to the quiz.
func (r *QuizRepo) Update(ctx context.Context, id string, req model.UpdateQuizRequest) (*model.Quiz, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Published != nil {
		setParts = append(setParts, fmt.Sprintf("published = $%d", nextIdx()))
		args = append(args, *req.Published)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE quizzes SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + quizColumns

	var out model.Quiz
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Quiz])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return &out, nil
}

// Delete removes a quiz by ID, reporting whether a row was deleted. Questions
// and game sessions cascade at the schema level.
func (r *QuizRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz: %w", err)
	}
	return affected > 0, nil
}
