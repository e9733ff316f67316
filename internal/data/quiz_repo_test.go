package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/testutil"
)

func createTestQuiz(t *testing.T, db *sql.DB, ownerID, title string) *model.Quiz {
	t.Helper()
	qr := NewQuizRepo(db)
	q, err := qr.Create(context.Background(), &model.CreateQuizRequest{
		Title:     title,
		CreatedBy: ownerID,
	})
	require.NoError(t, err)
	return q
}

func TestQuizRepo_Create_Get_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewQuizRepo(db)
		owner := createTestUser(t, db, domainauth.RoleEncadrant)

		q, err := repo.Create(ctx, &model.CreateQuizRequest{
			Title:       "  Fire safety basics  ",
			Description: "Extinguisher types and when to use them",
			CreatedBy:   owner.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Fire safety basics", q.Title, "title is trimmed")
		assert.False(t, q.Published, "quizzes start unpublished")

		got, err := repo.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, q.Title, got.Title)

		updated, err := repo.Update(ctx, q.ID, model.UpdateQuizRequest{
			Published: testutil.BoolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, updated.Published)
		assert.True(t, updated.UpdatedAt.After(q.UpdatedAt) || updated.UpdatedAt.Equal(q.UpdatedAt))

		deleted, err := repo.Delete(ctx, q.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, q.ID)
		assert.ErrorIs(t, err, core.ErrQuizNotFound)
	})
}

func TestQuizRepo_List_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewQuizRepo(db)
		alice := createTestUser(t, db, domainauth.RoleEncadrant)
		bob := createTestUser(t, db, domainauth.RoleAdmin)

		q1 := createTestQuiz(t, db, alice.ID, "First aid")
		createTestQuiz(t, db, alice.ID, "Hose handling")
		createTestQuiz(t, db, bob.ID, "Radio protocol")

		_, err := repo.Update(ctx, q1.ID, model.UpdateQuizRequest{Published: testutil.BoolPtr(true)})
		require.NoError(t, err)

		all, err := repo.List(ctx, model.QuizzesListOptions{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		published, err := repo.List(ctx, model.QuizzesListOptions{Published: testutil.BoolPtr(true)})
		require.NoError(t, err)
		require.Len(t, published, 1)
		assert.Equal(t, q1.ID, published[0].ID)

		mine, err := repo.List(ctx, model.QuizzesListOptions{CreatedBy: &alice.ID})
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		matched, err := repo.List(ctx, model.QuizzesListOptions{Q: testutil.StringPtr("hose")})
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "Hose handling", matched[0].Title)

		byTitle, err := repo.List(ctx, model.QuizzesListOptions{Sort: "title", Dir: "asc"})
		require.NoError(t, err)
		require.Len(t, byTitle, 3)
		assert.Equal(t, "First aid", byTitle[0].Title)
	})
}
