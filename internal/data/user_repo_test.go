package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/testutil"
)

func createTestUser(t *testing.T, db *sql.DB, role domainauth.Role) *model.User {
	t.Helper()
	ur := NewUserRepo(db)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	u, err := ur.Create(context.Background(), &model.CreateUserRequest{
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$10$fakehashfortests",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func TestUserRepo_Create_Get_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		u, err := repo.Create(ctx, &model.CreateUserRequest{
			Username:     "marc",
			Email:        "Marc@Example.com",
			PasswordHash: "$2a$10$fakehashfortests",
			FirstName:    "Marc",
			LastName:     "Dubois",
			Role:         domainauth.RoleEncadrant,
		})
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		assert.Equal(t, "marc@example.com", u.Email, "email is lowercased")
		assert.Equal(t, domainauth.RoleEncadrant, u.Role)
		assert.NotZero(t, u.CreatedAt)

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Username, got.Username)

		// either identifier resolves, case-insensitively
		byName, err := repo.GetByUsernameOrEmail(ctx, "MARC")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byName.ID)
		byEmail, err := repo.GetByUsernameOrEmail(ctx, "marc@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		role := domainauth.RoleAdmin
		updated, err := repo.Update(ctx, u.ID, model.UpdateUserRequest{
			FirstName: testutil.StringPtr("Marcel"),
			Role:      &role,
		})
		require.NoError(t, err)
		assert.Equal(t, "Marcel", updated.FirstName)
		assert.Equal(t, domainauth.RoleAdmin, updated.Role)

		deleted, err := repo.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, u.ID)
		assert.ErrorIs(t, err, core.ErrUserNotFound)
	})
}

func TestUserRepo_Create_DuplicateIdentifiers(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		base := &model.CreateUserRequest{
			Username:     "dupe",
			Email:        "dupe@example.com",
			PasswordHash: "$2a$10$fakehashfortests",
			Role:         domainauth.RolePlayer,
		}
		_, err := repo.Create(ctx, base)
		require.NoError(t, err)

		_, err = repo.Create(ctx, &model.CreateUserRequest{
			Username:     "DUPE",
			Email:        "other@example.com",
			PasswordHash: "$2a$10$fakehashfortests",
			Role:         domainauth.RolePlayer,
		})
		assert.ErrorIs(t, err, core.ErrUsernameTaken)

		_, err = repo.Create(ctx, &model.CreateUserRequest{
			Username:     "someoneelse",
			Email:        "DUPE@example.com",
			PasswordHash: "$2a$10$fakehashfortests",
			Role:         domainauth.RolePlayer,
		})
		assert.ErrorIs(t, err, core.ErrEmailTaken)
	})
}

func TestUserRepo_List_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		createTestUser(t, db, domainauth.RoleAdmin)
		createTestUser(t, db, domainauth.RolePlayer)
		createTestUser(t, db, domainauth.RolePlayer)

		all, err := repo.List(ctx, model.UsersListOptions{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		role := domainauth.RolePlayer
		players, err := repo.List(ctx, model.UsersListOptions{Role: &role})
		require.NoError(t, err)
		assert.Len(t, players, 2)

		matched, err := repo.List(ctx, model.UsersListOptions{Q: testutil.StringPtr("user-")})
		require.NoError(t, err)
		assert.Len(t, matched, 3)

		none, err := repo.List(ctx, model.UsersListOptions{Q: testutil.StringPtr("nomatch")})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
