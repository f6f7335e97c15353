package pg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/teamspace/internal/query"
)

var testAllowed = map[string]bool{
	"title":      true,
	"plan_type":  true,
	"created_at": true,
}

func TestBuildWhereEmpty(t *testing.T) {
	where, args := buildWhere(nil, testAllowed)
	require.Empty(t, where)
	require.Nil(t, args)
}

func TestBuildWhereOperators(t *testing.T) {
	var f query.Filter
	f = f.ILike("title", "demo").Eq("plan_type", "pro")

	where, args := buildWhere(f, testAllowed)
	require.Equal(t, " WHERE title ILIKE $1 AND plan_type = $2", where)
	require.Equal(t, []any{"%demo%", "pro"}, args)
}

func TestBuildWhereSkipsUnknownColumns(t *testing.T) {
	var f query.Filter
	f = f.Eq("evil; DROP TABLE workspaces", "x").Eq("plan_type", "free")

	where, args := buildWhere(f, testAllowed)
	require.Equal(t, " WHERE plan_type = $1", where)
	require.Equal(t, []any{"free"}, args)
}

func TestBuildWhereAllUnknown(t *testing.T) {
	var f query.Filter
	f = f.Eq("nope", 1)

	where, args := buildWhere(f, testAllowed)
	require.Empty(t, where)
	require.Nil(t, args)
}

func TestOrderClauseValid(t *testing.T) {
	p := query.Params{OrderBy: "title", OrderDirection: "asc"}.Normalize()
	require.Equal(t, " ORDER BY title ASC", orderClause(p, testAllowed))

	p = query.Params{OrderBy: "created_at"}.Normalize()
	require.Equal(t, " ORDER BY created_at DESC", orderClause(p, testAllowed))
}

func TestOrderClauseFallsBackOnUnknownField(t *testing.T) {
	p := query.Params{OrderBy: "password_hash; --"}.Normalize()
	require.Equal(t, " ORDER BY created_at DESC", orderClause(p, testAllowed))
}

func TestBuildPage(t *testing.T) {
	var f query.Filter
	f = f.ILike("title", "demo")
	p := query.Params{Page: 3, PerPage: 10}.Normalize()

	countSQL, pageSQL, countArgs, pageArgs := buildPage("workspaces", "id, title", f, p, testAllowed)

	require.Equal(t, "SELECT COUNT(*) FROM workspaces WHERE title ILIKE $1", countSQL)
	require.Equal(t, "SELECT id, title FROM workspaces WHERE title ILIKE $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3", pageSQL)
	require.Equal(t, []any{"%demo%"}, countArgs)
	require.Equal(t, []any{"%demo%", 10, 20}, pageArgs)
}

func TestBuildPageNoFilter(t *testing.T) {
	p := query.Params{}.Normalize()

	countSQL, pageSQL, countArgs, pageArgs := buildPage("users", "id", nil, p, testAllowed)

	require.Equal(t, "SELECT COUNT(*) FROM users", countSQL)
	require.Equal(t, "SELECT id FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2", pageSQL)
	require.Empty(t, countArgs)
	require.Equal(t, []any{20, 0}, pageArgs)
}
