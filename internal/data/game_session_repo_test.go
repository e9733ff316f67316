package data

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/testutil"
)

func TestNewJoinCode(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for range 50 {
		code, err := NewJoinCode()
		require.NoError(t, err)
		assert.Len(t, code, model.JoinCodeLen)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(joinCodeAlphabet, c), "unexpected rune %q", c)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes should vary")
}

func TestGameSessionRepo_Lifecycle(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewGameSessionRepo(db)
		host := createTestUser(t, db, domainauth.RoleEncadrant)
		quiz := createTestQuiz(t, db, host.ID, "Evening drill")

		gs, err := repo.Create(ctx, &model.CreateGameSessionRequest{
			QuizID: quiz.ID,
			HostID: host.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, model.GameSessionLobby, gs.Status)
		assert.Len(t, gs.Code, model.JoinCodeLen)
		assert.True(t, gs.Joinable())
		assert.Nil(t, gs.StartedAt)

		byCode, err := repo.GetByCode(ctx, strings.ToLower(gs.Code))
		require.NoError(t, err)
		assert.Equal(t, gs.ID, byCode.ID, "lookup normalizes case")

		running, err := repo.SetStatus(ctx, gs.ID, model.GameSessionRunning)
		require.NoError(t, err)
		assert.Equal(t, model.GameSessionRunning, running.Status)
		require.NotNil(t, running.StartedAt)
		assert.False(t, running.Joinable())

		finished, err := repo.SetStatus(ctx, gs.ID, model.GameSessionFinished)
		require.NoError(t, err)
		require.NotNil(t, finished.FinishedAt)

		// finished sessions no longer resolve by code
		_, err = repo.GetByCode(ctx, gs.Code)
		assert.ErrorIs(t, err, core.ErrGameSessionNotFound)

		list, err := repo.ListByHost(ctx, host.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestGameSessionRepo_SetStatus_Unknown(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewGameSessionRepo(db)
		_, err := repo.SetStatus(context.Background(),
			"00000000-0000-0000-0000-000000000000", model.GameSessionRunning)
		assert.ErrorIs(t, err, core.ErrGameSessionNotFound)
	})
}
