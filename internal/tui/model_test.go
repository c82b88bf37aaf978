package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/gotable"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, n int, params *gotable.Parameters) *Model {
	t.Helper()

	records := make(gotable.RecordSet, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, gotable.Record{
			"id":   gotable.Int(i),
			"name": gotable.String(fmt.Sprintf("user-%02d", i)),
		})
	}

	view, err := gotable.NewView(records, params)
	require.NoError(t, err)

	return New(view, zerolog.Nop())
}

func send(m *Model, msgs ...tea.Msg) *Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(*Model)
	}
	return m
}

func TestNew(t *testing.T) {
	m := newTestModel(t, 25, nil)

	snap := m.Snapshot()
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 3, snap.TotalPages)
	assert.Equal(t, []string{"id", "name"}, m.columns)
	assert.Equal(t, "id", m.SelectedColumn())
	assert.Len(t, m.table.Rows(), 10)
	assert.Equal(t, "1", m.table.Rows()[0][0])
}

func TestModel_Paging(t *testing.T) {
	m := newTestModel(t, 25, nil)

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Snapshot().CurrentPage, "prev is disabled on the first page")

	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
	assert.Equal(t, 3, m.Snapshot().CurrentPage)
	assert.Len(t, m.table.Rows(), 5)
	assert.Equal(t, "21", m.table.Rows()[0][0])

	m = send(m, runes("l"))
	assert.Equal(t, 3, m.Snapshot().CurrentPage, "next is disabled on the last page")

	m = send(m, runes("h"))
	assert.Equal(t, 2, m.Snapshot().CurrentPage)
}

func TestModel_NextStopsAtLastPage(t *testing.T) {
	tests := []struct {
		name   string
		params *gotable.Parameters
		want   int
	}{
		{"no matches", gotable.DefaultParameters().WithSearch("zzz"), 1},
		{"past the last page", gotable.DefaultParameters().WithCurrentPage(5), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 25, tt.params)
			m = send(m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
			assert.Equal(t, tt.want, m.Snapshot().CurrentPage)
		})
	}
}

func TestModel_Sort(t *testing.T) {
	m := newTestModel(t, 12, nil)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "name", m.SelectedColumn())

	m = send(m, runes("s"), runes("s"))
	snap := m.Snapshot()
	assert.Equal(t, "name", snap.SortColumn)
	assert.Equal(t, gotable.DirectionDESC, snap.SortOrder)
	assert.Equal(t, "user-12", m.table.Rows()[0][1])

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "id", m.SelectedColumn(), "column selection wraps")
}

func TestModel_ResultSet(t *testing.T) {
	m := newTestModel(t, 12, gotable.DefaultParameters().WithResultSet(2).WithCurrentPage(6))

	m = send(m, runes("+"))
	snap := m.Snapshot()
	assert.Equal(t, 3, snap.ResultSet)
	assert.Equal(t, 1, snap.CurrentPage, "page reset once it no longer exists")

	m = send(m, runes("-"), runes("-"), runes("-"))
	snap = m.Snapshot()
	assert.Equal(t, 1, snap.ResultSet, "page size never drops below one")
	assert.Len(t, m.table.Rows(), 1)

	m = newTestModel(t, 12, gotable.DefaultParameters().WithResultSet(gotable.MaxResultSet))
	m = send(m, runes("+"))
	assert.Equal(t, gotable.MaxResultSet, m.Snapshot().ResultSet, "grow stops at MaxResultSet")
}

func TestModel_Search(t *testing.T) {
	m := newTestModel(t, 25, gotable.DefaultParameters().WithSearchKeys("name"))

	m = send(m, runes("/"))
	require.True(t, m.searching)

	m = send(m, runes("q"))
	assert.True(t, m.searching, "q is typed while searching")
	assert.Equal(t, "q", m.Snapshot().Search)

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("-1"))
	snap := m.Snapshot()
	assert.Equal(t, "-1", snap.Search)
	assert.Equal(t, 10, snap.TotalItems)
	assert.Equal(t, 1, snap.TotalPages)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)
	assert.Equal(t, "-1", m.Snapshot().Search)
	assert.Contains(t, m.View(), "search: -1")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, 3, nil)

	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, 25, nil)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 20})

	view := m.View()
	assert.Contains(t, view, "gotable")
	assert.Contains(t, view, "25 records, 2 columns")
	assert.Contains(t, view, "[1] 2 3 »")
	assert.Contains(t, view, "page 1 of 3, 25 items")
	assert.Contains(t, view, "user-01")
}

func TestModel_EmptyRecords(t *testing.T) {
	m := newTestModel(t, 0, nil)

	assert.Equal(t, "", m.SelectedColumn())
	m = send(m, tea.KeyMsg{Type: tea.KeyTab}, runes("s"))
	assert.Equal(t, "", m.Snapshot().SortColumn)
	assert.Contains(t, m.View(), "page 1 of 0, 0 items")
}
