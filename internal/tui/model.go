// Package tui is an interactive terminal browser over a gotable View.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Alp4ka/gotable"
	"github.com/Alp4ka/gotable/internal/render"
)

const (
	defaultWidth  = 120
	defaultHeight = 30

	// chromeHeight is the number of lines around the table: title, search,
	// status, footer, help and their spacing.
	chromeHeight = 8
	minHeight    = 3

	minColumnWidth = 4
	maxColumnWidth = 40

	searchCharLimit = 128
	searchWidth     = 40
)

// page is the rendered form of one snapshot.
type page struct {
	snap gotable.Snapshot
	rows []table.Row
}

// Model is the Bubble Tea model of the browser. All view state lives in the
// wrapped Component; the model only tracks presentation concerns.
type Model struct {
	component *gotable.Component[page]
	columns   []string
	selected  int

	table     table.Model
	search    textinput.Model
	searching bool
	keys      keyMap
	help      help.Model

	width    int
	height   int
	quitting bool
	logger   zerolog.Logger
}

// New creates a browser over view. Columns are the union of the record
// fields at creation time.
func New(view *gotable.View, logger zerolog.Logger) *Model {
	m := &Model{
		columns: view.Records().Columns(),
		search:  newSearchInput(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
		logger:  logger,
	}

	m.component = gotable.NewComponent(view,
		gotable.WithRender[page](m.renderPage),
		gotable.WithLogger[page](logger),
	)

	m.table = table.New(
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	m.table.SetStyles(s)

	m.component.Render()
	m.refresh()

	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = searchCharLimit
	ti.Width = searchWidth
	return ti
}

// Run starts an interactive program over view and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, view *gotable.View, logger zerolog.Logger, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(view, logger),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}

	return nil
}

// Snapshot returns the snapshot currently on screen.
func (m *Model) Snapshot() gotable.Snapshot {
	out, _ := m.component.Output()
	return out.snap
}

// SelectedColumn returns the column the sort key acts on, or "" when there
// are no columns.
func (m *Model) SelectedColumn() string {
	if len(m.columns) == 0 {
		return ""
	}

	return m.columns[m.selected]
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.table.SetHeight(m.tableHeight())
		m.table.SetWidth(m.width)
		m.help.Width = m.width
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	snap := m.Snapshot()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Search):
		m.searching = true
		m.search.SetValue(snap.Search)
		return m, m.search.Focus()
	case key.Matches(keyMsg, m.keys.Prev):
		if !snap.PrevDisabled {
			snap.Controls.SetCurrentPage(snap.CurrentPage - 1)
		}
	case key.Matches(keyMsg, m.keys.Next):
		// NextDisabled stays false with zero pages or past the last one.
		if !snap.NextDisabled && snap.CurrentPage < snap.TotalPages {
			snap.Controls.SetCurrentPage(snap.CurrentPage + 1)
		}
	case key.Matches(keyMsg, m.keys.NextColumn):
		if len(m.columns) > 0 {
			m.selected = (m.selected + 1) % len(m.columns)
			m.component.Render()
		}
	case key.Matches(keyMsg, m.keys.Sort):
		if column := m.SelectedColumn(); column != "" {
			snap.Controls.ToggleSort(column)
		}
	case key.Matches(keyMsg, m.keys.Grow):
		m.setResultSet(snap, gotable.NormalizeResultSet(snap.ResultSet+1))
	case key.Matches(keyMsg, m.keys.Shrink):
		m.setResultSet(snap, snap.ResultSet-1)
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.refresh()

	return m, nil
}

func (m *Model) setResultSet(snap gotable.Snapshot, resultSet int) {
	if err := snap.Controls.SetResultSet(resultSet); err != nil {
		m.logger.Debug().Err(err).Int("resultSet", resultSet).Msg("page size unchanged")
	}
}

func (m *Model) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Leave) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if snap := m.Snapshot(); m.search.Value() != snap.Search {
		snap.Controls.SetSearchTerm(m.search.Value())
		m.refresh()
	}

	return m, cmd
}

func (m *Model) renderPage(snap gotable.Snapshot) page {
	return page{
		snap: snap,
		rows: lo.Map(snap.VisibleData, func(r gotable.Record, _ int) table.Row {
			return render.Row(r, m.columns)
		}),
	}
}

// refresh copies the latest component output into the table widget.
func (m *Model) refresh() {
	out, ok := m.component.Output()
	if !ok {
		return
	}

	m.table.SetRows(nil)
	m.table.SetColumns(m.tableColumns(out))
	m.table.SetRows(out.rows)
	if m.table.Cursor() >= len(out.rows) {
		m.table.SetCursor(0)
	}
}

func (m *Model) tableColumns(out page) []table.Column {
	return lo.Map(m.columns, func(c string, i int) table.Column {
		title := render.Header(c, out.snap)
		if i == m.selected {
			title = "›" + title
		}

		width := lipgloss.Width(title)
		for _, row := range out.rows {
			width = max(width, lipgloss.Width(row[i]))
		}

		return table.Column{Title: title, Width: min(max(width, minColumnWidth), maxColumnWidth)}
	})
}

func (m *Model) tableHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.Snapshot()

	title := TitleStyle.Render("gotable") +
		MutedStyle.Render(fmt.Sprintf("  %d records, %d columns", len(m.component.View().Records()), len(m.columns)))

	var searchLine string
	switch {
	case m.searching:
		searchLine = m.search.View()
	case snap.Search != "":
		searchLine = "search: " + snap.Search
	default:
		searchLine = MutedStyle.Render("press / to search")
	}

	status := MutedStyle.Render(fmt.Sprintf("column: %s  sort: %s  page size: %d",
		lo.Ternary(m.SelectedColumn() == "", "-", m.SelectedColumn()),
		lo.Ternary(snap.SortColumn == "", "none", snap.SortColumn+" "+string(snap.SortOrder)),
		snap.ResultSet,
	))

	footer := FooterStyle.Render(render.Footer(snap)) + "  " + MutedStyle.Render(render.Summary(snap))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		searchLine,
		"",
		m.table.View(),
		"",
		footer,
		status,
		m.help.ShortHelpView(m.keys.help(m.searching)),
	)
}

var _ tea.Model = (*Model)(nil)
