package gotable

// Controls are the mutators a presentation layer wires to its inputs. View
// implements them directly; Component and Hook wrap them so every mutation is
// followed by a fresh snapshot.
type Controls interface {
	// SetSearchTerm replaces the search query.
	SetSearchTerm(term string)
	// ToggleSort flips the order of the current sort column, or switches to
	// column in ascending order.
	ToggleSort(column string)
	// SetCurrentPage moves to the given page as-is.
	SetCurrentPage(page int)
	// SetResultSet changes the page size.
	SetResultSet(resultSet int) error
}

// Snapshot is one derived view of the RecordSet: the visible page plus the
// metadata needed to render pagination controls.
type Snapshot struct {
	Search      string    `json:"search"      yaml:"search"`
	SearchKeys  []string  `json:"searchKeys"  yaml:"searchKeys"`
	CurrentPage int       `json:"currentPage" yaml:"currentPage"`
	ResultSet   int       `json:"resultSet"   yaml:"resultSet"`
	SortColumn  string    `json:"sortColumn"  yaml:"sortColumn"`
	SortOrder   Direction `json:"sortOrder"   yaml:"sortOrder"`
	TotalPages  int       `json:"totalPages"  yaml:"totalPages"`
	// TotalItems is the record count after search filtering.
	TotalItems        int       `json:"totalItems"        yaml:"totalItems"`
	VisibleData       RecordSet `json:"visibleData"       yaml:"visibleData"`
	PaginationButtons []int     `json:"paginationButtons" yaml:"paginationButtons"`
	// NextDisabled is true when the current page is the last one.
	NextDisabled bool `json:"nextDisabled" yaml:"nextDisabled"`
	// PrevDisabled is true on the first page.
	PrevDisabled bool `json:"prevDisabled" yaml:"prevDisabled"`

	// Controls mutate the view this snapshot was taken from.
	Controls Controls `json:"-" yaml:"-"`
}
