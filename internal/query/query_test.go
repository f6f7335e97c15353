package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	p := Params{}.Normalize()
	require.Equal(t, DefaultPage, p.Page)
	require.Equal(t, DefaultPerPage, p.PerPage)
	require.Equal(t, DefaultOrderBy, p.OrderBy)
	require.Equal(t, DirectionDesc, p.OrderDirection)
}

func TestNormalizeClamps(t *testing.T) {
	p := Params{Page: -3, PerPage: 1000, OrderBy: "title", OrderDirection: "sideways"}.Normalize()
	require.Equal(t, 1, p.Page)
	require.Equal(t, MaxPerPage, p.PerPage)
	require.Equal(t, "title", p.OrderBy)
	require.Equal(t, DirectionDesc, p.OrderDirection)

	p = Params{Page: 2, PerPage: 5, OrderDirection: "asc"}.Normalize()
	require.Equal(t, "asc", p.OrderDirection)
}

func TestOffset(t *testing.T) {
	p := Params{Page: 1, PerPage: 20}.Normalize()
	require.Equal(t, 0, p.Offset())

	p = Params{Page: 3, PerPage: 10}.Normalize()
	require.Equal(t, 20, p.Offset())
}

func TestNewResultPageMath(t *testing.T) {
	cases := []struct {
		name       string
		total      int
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"five of two", 5, 1, 2, 3, true, false},
		{"middle page", 5, 2, 2, 3, true, true},
		{"last page", 5, 3, 2, 3, false, true},
		{"exact fit", 10, 2, 5, 2, false, true},
		{"empty", 0, 1, 20, 0, false, false},
		{"single", 1, 1, 20, 1, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Params{Page: tc.page, PerPage: tc.perPage}.Normalize()
			r := NewResult([]int{}, tc.total, p)
			require.Equal(t, tc.totalPages, r.TotalPages)
			require.Equal(t, tc.hasNext, r.HasNext)
			require.Equal(t, tc.hasPrev, r.HasPrev)
			require.Equal(t, tc.total, r.Total)
		})
	}
}

func TestMapPreservesEnvelope(t *testing.T) {
	p := Params{Page: 2, PerPage: 2}.Normalize()
	r := NewResult([]int{3, 4}, 5, p)

	out := Map(r, func(v int) string {
		if v == 3 {
			return "three"
		}
		return "four"
	})
	require.Equal(t, []string{"three", "four"}, out.Items)
	require.Equal(t, r.Total, out.Total)
	require.Equal(t, r.TotalPages, out.TotalPages)
	require.Equal(t, r.HasNext, out.HasNext)
	require.Equal(t, r.HasPrev, out.HasPrev)
}

func TestFilterBuilders(t *testing.T) {
	var f Filter
	f = f.Eq("plan_type", "pro").ILike("title", "demo").Gte("created_at", 1).Lte("created_at", 2)
	require.Len(t, f, 4)
	require.Equal(t, OpEq, f[0].Op)
	require.Equal(t, OpILike, f[1].Op)
	require.Equal(t, OpGte, f[2].Op)
	require.Equal(t, OpLte, f[3].Op)
}
