package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casernelab/firequiz/internal/mocks"
)

func TestNewTokenReaperService_RequiresRepo(t *testing.T) {
	t.Parallel()
	_, err := NewTokenReaperService(TokenReaperOptions{})
	assert.Error(t, err)
}

func TestTokenReaperService_Run(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRememberTokenRepository(ctrl)
	svc, err := NewTokenReaperService(TokenReaperOptions{
		Repo:     repo,
		Interval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	purged := make(chan struct{})
	// first purge runs before the ticker fires; later ticks may or may not
	// land before cancellation
	repo.EXPECT().DeleteExpired(gomock.Any()).DoAndReturn(
		func(context.Context) (int64, error) {
			select {
			case purged <- struct{}{}:
			default:
			}
			return 1, nil
		}).MinTimes(1)

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	select {
	case <-purged:
	case <-time.After(2 * time.Second):
		t.Fatal("reaper never purged")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation is a graceful shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("reaper did not stop after cancel")
	}
}
