package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuerySQL(t *testing.T) {
	t.Parallel()

	q := NewListQuery("quizzes", "id", "title").
		Where("published", true).
		WhereILike("title", "50%_off").
		OrderBy("created_at", SortDesc).
		Paginate(20, 40)

	sql, args := q.SQL()
	assert.Equal(t,
		"SELECT id, title FROM quizzes WHERE published = $1 AND title ILIKE $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4",
		sql)
	assert.Equal(t, []any{true, `%50\%\_off%`, 20, 40}, args)
}

func TestListQueryCountSQL(t *testing.T) {
	t.Parallel()

	q := NewListQuery("users", "id").Where("role", "player").Paginate(10, 0)
	sql, args := q.CountSQL()
	assert.Equal(t, "SELECT COUNT(*) FROM users WHERE role = $1", sql)
	assert.Equal(t, []any{"player"}, args)
}

func TestNormalizeSortDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SortDesc, NormalizeSortDir(" DESC "))
	assert.Equal(t, SortAsc, NormalizeSortDir("desc junk"))
	assert.Equal(t, SortAsc, NormalizeSortDir(""))
}

func TestAllowedSortColumn(t *testing.T) {
	t.Parallel()

	allowed := map[string]bool{"title": true, "created_at": true}
	assert.Equal(t, "title", AllowedSortColumn("title", "created_at", allowed))
	assert.Equal(t, "created_at", AllowedSortColumn("id; DROP TABLE", "created_at", allowed))
}
