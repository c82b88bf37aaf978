package gotable

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) RecordSet {
	return lo.Map(lo.Range(n), func(i int, _ int) Record {
		return Record{"id": Int(i), "name": String("item")}
	})
}

func ids(rs RecordSet) []int {
	return lo.Map(rs, func(r Record, _ int) int { return int(r.Get("id").Number()) })
}

func newTestView(t *testing.T, records RecordSet, params *Parameters) *View {
	t.Helper()

	v, err := NewView(records, params)
	require.NoError(t, err)

	return v
}

func Test_NewView(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := newTestView(t, numbered(25), nil)
		assert.Equal(t, 3, v.TotalPages())
		assert.Equal(t, *DefaultParameters(), v.Parameters())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		_, err := NewView(numbered(1), DefaultParameters().WithResultSet(0))
		assert.ErrorIs(t, err, ErrInvalidResultSet)
	})

	t.Run("initial search sets the page count", func(t *testing.T) {
		records := lo.Map(lo.Range(20), func(i int, _ int) Record {
			return Record{"id": Int(i), "name": String(lo.Ternary(i%2 == 0, "even", "odd"))}
		})
		v := newTestView(t, records, DefaultParameters().
			WithSearch("even").
			WithSearchKeys("name").
			WithResultSet(2).
			WithCurrentPage(3))
		assert.Equal(t, 5, v.TotalPages())

		snap := v.Snapshot()
		assert.Equal(t, 3, snap.CurrentPage)
		assert.Equal(t, 5, snap.TotalPages)
		assert.Equal(t, 10, snap.TotalItems)
		assert.Equal(t, []int{8, 10}, ids(snap.VisibleData))
	})

	t.Run("parameters are copied", func(t *testing.T) {
		p := DefaultParameters().WithSearchKeys("name")
		v := newTestView(t, numbered(1), p)
		p.SearchKeys[0] = "id"
		assert.Equal(t, []string{"name"}, v.Parameters().SearchKeys)
	})
}

func Test_View_Snapshot_Pages(t *testing.T) {
	v := newTestView(t, numbered(25), DefaultParameters().WithResultSet(10))

	snap := v.Snapshot()
	assert.Equal(t, 3, snap.TotalPages)
	assert.Equal(t, 25, snap.TotalItems)
	assert.Equal(t, lo.Range(10), ids(snap.VisibleData))
	assert.Equal(t, []int{1, 2, 3}, snap.PaginationButtons)
	assert.True(t, snap.PrevDisabled)
	assert.False(t, snap.NextDisabled)
	assert.Same(t, v, snap.Controls)

	v.SetCurrentPage(3)
	snap = v.Snapshot()
	assert.Equal(t, []int{20, 21, 22, 23, 24}, ids(snap.VisibleData))
	assert.False(t, snap.PrevDisabled)
	assert.True(t, snap.NextDisabled)

	v.SetCurrentPage(9)
	snap = v.Snapshot()
	assert.Equal(t, 9, snap.CurrentPage, "page is not clamped")
	assert.Empty(t, snap.VisibleData)
}

func Test_View_Snapshot_Search(t *testing.T) {
	records := RecordSet{{"name": String("Foo")}, {"name": String("bar")}}
	v := newTestView(t, records, DefaultParameters().WithSearchKeys("name").WithResultSet(1).WithCurrentPage(2))
	require.Equal(t, 2, v.TotalPages())

	v.SetSearchTerm("foo")
	assert.Equal(t, 2, v.TotalPages(), "search term alone defers recomputation")

	snap := v.Snapshot()
	require.Len(t, snap.VisibleData, 1)
	assert.Equal(t, "Foo", snap.VisibleData[0].Get("name").Text())
	assert.Equal(t, 1, snap.TotalPages)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 1, snap.TotalItems)
	assert.True(t, snap.NextDisabled)
	assert.True(t, snap.PrevDisabled)

	t.Run("page kept while the count stays the same", func(t *testing.T) {
		v.SetSearchTerm("FO")
		v.SetCurrentPage(1)
		snap := v.Snapshot()
		assert.Equal(t, 1, snap.CurrentPage)
		assert.Equal(t, 1, snap.TotalPages)
	})

	t.Run("clearing search restores the raw count and resets the page", func(t *testing.T) {
		v.SetSearchTerm("")
		snap := v.Snapshot()
		assert.Equal(t, 2, snap.TotalPages)
		assert.Equal(t, 1, snap.CurrentPage)
		assert.Len(t, snap.VisibleData, 1)
	})

	t.Run("no matches", func(t *testing.T) {
		v.SetSearchTerm("zzz")
		snap := v.Snapshot()
		assert.Equal(t, 0, snap.TotalPages)
		assert.Empty(t, snap.VisibleData)
		assert.Empty(t, snap.PaginationButtons)
	})
}

func Test_View_Snapshot_ResetOnDrift(t *testing.T) {
	v := newTestView(t, numbered(30), DefaultParameters().WithResultSet(10).WithCurrentPage(3))

	v.SetRecords(numbered(30)[:15])
	assert.Equal(t, 2, v.TotalPages())
	assert.Equal(t, 3, v.Parameters().CurrentPage, "swap itself does not move the page")

	snap := v.Snapshot()
	assert.Equal(t, 3, snap.CurrentPage, "count already reconciled by the swap")
	assert.Empty(t, snap.VisibleData)

	v.SetSearchTerm("item")
	v.SetSearchKeys("name")
	snap = v.Snapshot()
	assert.Equal(t, 3, snap.CurrentPage, "filtered count equals the stored count")
}

func Test_View_Snapshot_Sort(t *testing.T) {
	records := RecordSet{
		{"id": Int(1), "name": String("charlie")},
		{"id": Int(2), "name": String("Alice")},
		{"id": Int(3), "name": String("bob")},
	}
	v := newTestView(t, records, nil)

	v.ToggleSort("name")
	snap := v.Snapshot()
	assert.Equal(t, "name", snap.SortColumn)
	assert.Equal(t, DirectionASC, snap.SortOrder)
	assert.Equal(t, []int{2, 3, 1}, ids(snap.VisibleData))

	v.ToggleSort("name")
	snap = v.Snapshot()
	assert.Equal(t, DirectionDESC, snap.SortOrder)
	assert.Equal(t, []int{1, 3, 2}, ids(snap.VisibleData))

	v.ToggleSort("id")
	snap = v.Snapshot()
	assert.Equal(t, "id", snap.SortColumn)
	assert.Equal(t, DirectionASC, snap.SortOrder)
	assert.Equal(t, []int{1, 2, 3}, ids(snap.VisibleData))

	assert.Equal(t, []int{1, 2, 3}, ids(records), "records are never reordered")

	require.NoError(t, v.SetSort("", DirectionASC))
	assert.ErrorIs(t, v.SetSort("id", "sideways"), ErrInvalidDirection)
	assert.Equal(t, "", v.Parameters().SortColumn)
}

func Test_View_SetResultSet(t *testing.T) {
	v := newTestView(t, numbered(12), DefaultParameters().WithCurrentPage(3))

	require.NoError(t, v.SetResultSet(5))
	assert.Equal(t, 3, v.TotalPages())
	assert.Equal(t, 3, v.Parameters().CurrentPage)

	require.NoError(t, v.SetResultSet(20))
	assert.Equal(t, 1, v.TotalPages())
	assert.Equal(t, 1, v.Parameters().CurrentPage)

	t.Run("non-positive sizes are rejected", func(t *testing.T) {
		assert.ErrorIs(t, v.SetResultSet(0), ErrInvalidResultSet)
		assert.ErrorIs(t, v.SetResultSet(-3), ErrInvalidResultSet)
		assert.Equal(t, 20, v.Parameters().ResultSet)
	})

	t.Run("string input", func(t *testing.T) {
		require.NoError(t, v.SetResultSetString(" 4 "))
		assert.Equal(t, 4, v.Parameters().ResultSet)
		assert.Equal(t, 3, v.TotalPages())

		assert.ErrorIs(t, v.SetResultSetString("abc"), ErrInvalidResultSet)
		assert.ErrorIs(t, v.SetResultSetString("12abc"), ErrInvalidResultSet)
		assert.Equal(t, 4, v.Parameters().ResultSet)
		assert.Equal(t, 3, v.TotalPages())
	})
}

func Test_View_SetPageNeighbors(t *testing.T) {
	v := newTestView(t, numbered(100), DefaultParameters().WithCurrentPage(5))

	require.NoError(t, v.SetPageNeighbors(1))
	assert.Equal(t, []int{4, 5, 6}, v.Snapshot().PaginationButtons)

	assert.ErrorIs(t, v.SetPageNeighbors(-1), ErrInvalidPageNeighbors)
	assert.Equal(t, 1, v.Parameters().PageNeighbors)
}

func Test_View_EmptyRecords(t *testing.T) {
	v := newTestView(t, RecordSet{}, nil)

	snap := v.Snapshot()
	assert.Equal(t, 0, snap.TotalPages)
	assert.Empty(t, snap.VisibleData)
	assert.Empty(t, snap.PaginationButtons)
	assert.True(t, snap.PrevDisabled)

	v.SetSearchTerm("x")
	snap = v.Snapshot()
	assert.Empty(t, snap.VisibleData)
}
