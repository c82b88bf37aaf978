package gotable

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// View owns the view parameters for one RecordSet and derives snapshots from
// them. A View is not safe for concurrent use: mutators and Snapshot must be
// called sequentially.
type View struct {
	records    RecordSet
	params     Parameters
	totalPages int
}

// NewView creates a View over records. A nil params means DefaultParameters.
// The page count starts from the records matching the initial search, so a
// starting page past the first survives the first Snapshot.
func NewView(records RecordSet, params *Parameters) (*View, error) {
	if params == nil {
		params = DefaultParameters()
	}

	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("cannot create view: %w", err)
	}

	v := &View{
		records: records,
		params:  *params.Clone(),
	}
	v.totalPages = TotalPages(len(v.filtered()), v.params.ResultSet)

	return v, nil
}

// Parameters returns a copy of the current parameters.
func (v *View) Parameters() Parameters {
	return *v.params.Clone()
}

// TotalPages returns the stored page count.
func (v *View) TotalPages() int {
	return v.totalPages
}

// Records returns the RecordSet the view currently reads from.
func (v *View) Records() RecordSet {
	return v.records
}

// SetRecords swaps the underlying RecordSet and recomputes the page count from
// its raw length. The current page is left for the next Snapshot to reconcile.
func (v *View) SetRecords(records RecordSet) {
	v.records = records
	v.totalPages = TotalPages(len(records), v.params.ResultSet)
}

// SetSearchTerm - implements Controls. The page count is reconciled by the
// next Snapshot.
func (v *View) SetSearchTerm(term string) {
	v.params.Search = term
}

// SetSearchKeys replaces the searchable fields. No keys means the fields of
// the first record.
func (v *View) SetSearchKeys(keys ...string) {
	v.params.SearchKeys = slices.Clone(keys)
}

// ToggleSort - implements Controls.
func (v *View) ToggleSort(column string) {
	if column == v.params.SortColumn {
		v.params.SortOrder = v.params.SortOrder.Toggle()
		return
	}

	v.params.SortColumn = column
	v.params.SortOrder = DirectionASC
}

// SetSort sets the sort column and direction explicitly. An empty column
// disables sorting.
func (v *View) SetSort(column string, dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("cannot set sort: %w: got %q", ErrInvalidDirection, dir)
	}

	v.params.SortColumn = column
	v.params.SortOrder = dir

	return nil
}

// SetCurrentPage - implements Controls.
//
// IMPORTANT:
// The page is stored verbatim and never clamped to [1, TotalPages]. A page
// outside the dataset produces an empty VisibleData.
func (v *View) SetCurrentPage(page int) {
	v.params.CurrentPage = page
}

// SetResultSet - implements Controls. Recomputes the page count from the raw
// RecordSet length and keeps the current page only while it still exists.
func (v *View) SetResultSet(resultSet int) error {
	if resultSet <= 0 {
		return fmt.Errorf("cannot set result set: %w: got %d", ErrInvalidResultSet, resultSet)
	}

	totalPages := TotalPages(len(v.records), resultSet)
	if totalPages < v.params.CurrentPage {
		v.params.CurrentPage = DefaultCurrentPage
	}
	v.params.ResultSet = resultSet
	v.totalPages = totalPages

	return nil
}

// SetResultSetString parses s as a decimal integer and calls SetResultSet.
// Non-numeric input fails without touching the state.
func (v *View) SetResultSetString(s string) error {
	resultSet, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("cannot set result set: %w: got %q", ErrInvalidResultSet, s)
	}

	return v.SetResultSet(resultSet)
}

// SetPageNeighbors sets the half-width of the pagination window.
func (v *View) SetPageNeighbors(pageNeighbors int) error {
	if pageNeighbors < 0 {
		return fmt.Errorf("cannot set page neighbors: %w: got %d", ErrInvalidPageNeighbors, pageNeighbors)
	}

	v.params.PageNeighbors = pageNeighbors

	return nil
}

// Snapshot derives the visible page: search filter, then sort, then slice.
//
// When the filtered (or, with an empty search, the raw) record count no longer
// matches the stored page count, the count is updated and the view returns to
// the first page before slicing.
func (v *View) Snapshot() Snapshot {
	visible := v.filtered()
	v.reconcile(len(visible))

	if v.params.SortColumn != "" {
		visible = SortBy(visible, v.params.SortColumn, v.params.SortOrder)
	}

	return Snapshot{
		Search:            v.params.Search,
		SearchKeys:        slices.Clone(v.params.SearchKeys),
		CurrentPage:       v.params.CurrentPage,
		ResultSet:         v.params.ResultSet,
		SortColumn:        v.params.SortColumn,
		SortOrder:         v.params.SortOrder,
		TotalPages:        v.totalPages,
		TotalItems:        len(visible),
		VisibleData:       Page(visible, v.params.CurrentPage, v.params.ResultSet),
		PaginationButtons: NeighborWindow(v.params.CurrentPage, v.totalPages, v.params.PageNeighbors),
		NextDisabled:      v.totalPages == v.params.CurrentPage,
		PrevDisabled:      v.params.CurrentPage == DefaultCurrentPage,
		Controls:          v,
	}
}

// filtered returns the records matching the search term, or all of them when
// the term is empty.
func (v *View) filtered() RecordSet {
	if v.params.Search == "" {
		return v.records
	}

	return Filter(v.records, v.params.Search, v.params.SearchKeys)
}

func (v *View) reconcile(count int) {
	totalPages := TotalPages(count, v.params.ResultSet)
	if totalPages != v.totalPages {
		v.totalPages = totalPages
		v.params.CurrentPage = DefaultCurrentPage
	}
}

var _ Controls = (*View)(nil)
