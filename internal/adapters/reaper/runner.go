// Package reaper wires the remember-token purge loop against the database.
package reaper

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/casernelab/firequiz/internal/core"
	"github.com/casernelab/firequiz/internal/data"
	"github.com/casernelab/firequiz/internal/service"
)

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	DB       *sql.DB
	Interval time.Duration
	Logger   *slog.Logger

	// Repo overrides the default repository, for tests.
	Repo core.RememberTokenRepository
}

// Runner constructs the token reaper service and runs its loop.
type Runner struct {
	reaper *service.TokenReaperService
	logger *slog.Logger
}

// NewRunner creates a reaper runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.DB == nil && opts.Repo == nil {
		return nil, errors.New("database connection is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	repo := opts.Repo
	if repo == nil {
		repo = data.NewRememberTokenRepo(opts.DB)
	}

	reaper, err := service.NewTokenReaperService(service.TokenReaperOptions{
		Repo:     repo,
		Interval: opts.Interval,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("wire token reaper: %w", err)
	}
	return &Runner{reaper: reaper, logger: opts.Logger}, nil
}

// Run starts the purge loop and blocks until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting reaper runner")
	return r.reaper.Run(ctx)
}
