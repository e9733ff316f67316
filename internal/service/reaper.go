package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/casernelab/firequiz/internal/core"
)

// TokenReaperOptions groups dependencies for TokenReaperService.
type TokenReaperOptions struct {
	Repo     core.RememberTokenRepository
	Interval time.Duration // defaults to 1h
	Logger   *slog.Logger
}

// TokenReaperService periodically purges expired remember tokens. The purge
// is housekeeping only: Verify already rejects expired rows, so correctness
// never depends on this loop running.
type TokenReaperService struct {
	repo     core.RememberTokenRepository
	interval time.Duration
	logger   *slog.Logger
}

// NewTokenReaperService constructs a new TokenReaperService.
func NewTokenReaperService(opts TokenReaperOptions) (*TokenReaperService, error) {
	if opts.Repo == nil {
		return nil, errors.New("RememberTokenRepository is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &TokenReaperService{
		repo:     opts.Repo,
		interval: opts.Interval,
		logger:   opts.Logger.With("component", "token_reaper"),
	}, nil
}

// Run purges immediately and then on every tick until the context is
// cancelled. Cancellation is a graceful shutdown and returns nil.
func (s *TokenReaperService) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting token reaper", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.purge(ctx)
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			s.purge(ctx)
		}
	}
}

func (s *TokenReaperService) purge(ctx context.Context) {
	purged, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "purge expired remember tokens", "err", err)
		return
	}
	if purged > 0 {
		s.logger.InfoContext(ctx, "purged expired remember tokens", "count", purged)
	}
}
