package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/testutil"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	ctx := context.Background()
	store := NewSessionStore(client)

	sess := domainauth.Session{
		ID:        "sess-abc",
		UserID:    "user-1",
		Username:  "marc",
		Role:      domainauth.RoleEncadrant,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-abc")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, domainauth.RoleEncadrant, got.Role)
	assert.True(t, got.CanManageQuizzes())

	require.NoError(t, store.Delete(ctx, "sess-abc"))
	_, err = store.Get(ctx, "sess-abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_RejectsExpired(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	err := store.Save(context.Background(), domainauth.Session{
		ID:        "sess-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestSessionStore_MissingID(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	_, err := store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(context.Background(), ""))
}
