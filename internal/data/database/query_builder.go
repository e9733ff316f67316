// Package database holds small SQL-construction helpers shared by the
// repositories. Identifiers are never taken from request input directly;
// callers validate sort columns against an allowlist before building.
package database

import (
	"fmt"
	"strings"
)

// SortDir is a normalized sort direction.
type SortDir string

const (
	SortAsc  SortDir = "ASC"
	SortDesc SortDir = "DESC"
)

// NormalizeSortDir maps arbitrary user input onto a safe direction,
// defaulting to ascending.
func NormalizeSortDir(dir string) SortDir {
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return SortDesc
	}
	return SortAsc
}

// ListQuery accumulates SELECT clauses with positional placeholders. It is
// deliberately small: equality and ILIKE filters, one ORDER BY, and
// LIMIT/OFFSET cover every list endpoint we expose.
type ListQuery struct {
	table   string
	columns []string
	wheres  []string
	args    []any
	orderBy string
	limit   int
	offset  int
}

// NewListQuery starts a query over table selecting columns.
func NewListQuery(table string, columns ...string) *ListQuery {
	return &ListQuery{table: table, columns: columns, limit: -1, offset: -1}
}

// Where adds an equality condition on column.
func (q *ListQuery) Where(column string, value any) *ListQuery {
	q.args = append(q.args, value)
	q.wheres = append(q.wheres, fmt.Sprintf("%s = $%d", column, len(q.args)))
	return q
}

// WhereILike adds a case-insensitive substring match on column. The value
// is wrapped in wildcards; LIKE metacharacters in the input are escaped.
func (q *ListQuery) WhereILike(column, value string) *ListQuery {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	q.args = append(q.args, "%"+escaped+"%")
	q.wheres = append(q.wheres, fmt.Sprintf("%s ILIKE $%d", column, len(q.args)))
	return q
}

// WhereRaw adds a pre-built condition with its arguments. The fragment must
// use %d-style placeholder offsets via fmt-style $N numbering relative to
// the current argument count, so prefer Where/WhereILike where possible.
func (q *ListQuery) WhereRaw(fragment string, args ...any) *ListQuery {
	base := len(q.args)
	for i := range args {
		fragment = strings.Replace(fragment, "?", fmt.Sprintf("$%d", base+i+1), 1)
	}
	q.args = append(q.args, args...)
	q.wheres = append(q.wheres, fragment)
	return q
}

// OrderBy sets the ORDER BY clause. Callers must pass an allowlisted column.
func (q *ListQuery) OrderBy(column string, dir SortDir) *ListQuery {
	q.orderBy = fmt.Sprintf("%s %s", column, dir)
	return q
}

// Paginate applies LIMIT/OFFSET. Non-positive limits are ignored.
func (q *ListQuery) Paginate(limit, offset int) *ListQuery {
	q.limit = limit
	q.offset = offset
	return q
}

// SQL renders the SELECT statement and returns it with the bound arguments.
func (q *ListQuery) SQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.table)
	q.writeWhere(&sb)
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	args := q.args
	if q.limit > 0 {
		args = append(args, q.limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if q.offset > 0 {
		args = append(args, q.offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args
}

// CountSQL renders a COUNT(*) over the same table and conditions, ignoring
// ordering and pagination.
func (q *ListQuery) CountSQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM ")
	sb.WriteString(q.table)
	q.writeWhere(&sb)
	return sb.String(), q.args
}

func (q *ListQuery) writeWhere(sb *strings.Builder) {
	if len(q.wheres) == 0 {
		return
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(q.wheres, " AND "))
}

// AllowedSortColumn returns column if it is in allowed, else fallback.
func AllowedSortColumn(column, fallback string, allowed map[string]bool) string {
	if allowed[column] {
		return column
	}
	return fallback
}
