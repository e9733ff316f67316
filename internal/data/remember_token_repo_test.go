package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/testutil"
)

func TestRememberTokenRepo_Lifecycle(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewRememberTokenRepo(db)
		user := createTestUser(t, db, domainauth.RolePlayer)

		expires := time.Now().Add(7 * 24 * time.Hour)
		require.NoError(t, repo.Upsert(ctx, user.ID, "token-one", expires))

		assert.NoError(t, repo.Verify(ctx, user.ID, "token-one"))
		assert.ErrorIs(t, repo.Verify(ctx, user.ID, "wrong-token"), core.ErrRememberTokenInvalid)

		// re-issuing replaces the stored digest
		require.NoError(t, repo.Upsert(ctx, user.ID, "token-two", expires))
		assert.ErrorIs(t, repo.Verify(ctx, user.ID, "token-one"), core.ErrRememberTokenInvalid)
		assert.NoError(t, repo.Verify(ctx, user.ID, "token-two"))

		require.NoError(t, repo.Revoke(ctx, user.ID))
		assert.ErrorIs(t, repo.Verify(ctx, user.ID, "token-two"), core.ErrRememberTokenInvalid)
	})
}

func TestRememberTokenRepo_Expiry(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		clock := NewFixedTimeProvider(testutil.TestTime())
		repo := NewRememberTokenRepoWithTimeProvider(db, clock)
		user := createTestUser(t, db, domainauth.RolePlayer)

		require.NoError(t, repo.Upsert(ctx, user.ID, "short-lived", clock.Now().Add(time.Hour)))
		assert.NoError(t, repo.Verify(ctx, user.ID, "short-lived"))

		clock.Advance(2 * time.Hour)
		assert.ErrorIs(t, repo.Verify(ctx, user.ID, "short-lived"), core.ErrRememberTokenInvalid)

		purged, err := repo.DeleteExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), purged)
	})
}

func TestRememberTokenRepo_UnknownUser(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRememberTokenRepo(db)
		err := repo.Verify(context.Background(), "00000000-0000-0000-0000-000000000000", "anything")
		assert.ErrorIs(t, err, core.ErrRememberTokenInvalid)
	})
}
