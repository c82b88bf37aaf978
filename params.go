package gotable

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidResultSet     = errors.New("result set must be a positive integer")
	ErrInvalidPageNeighbors = errors.New("page neighbors must be a non-negative integer")
)

// RawParameters is intended for API payloads and config files. For proper code
// generation, inline it:
//
//	type MyRequest struct {
//	    View RawParameters `json:",inline"`
//	}
type RawParameters struct {
	// Search - substring query over SearchKeys.
	Search string `json:"search" yaml:"search"`
	// SearchKeys - fields eligible for search. Empty means the fields of the
	// first record.
	SearchKeys []string `json:"searchKeys" yaml:"searchKeys"`
	// SortColumn - column to sort by. Empty means no sorting.
	SortColumn string `json:"sortColumn" yaml:"sortColumn"`
	// SortOrder - "asc" or "desc", case-insensitive. Empty means "asc".
	SortOrder string `json:"sortOrder" yaml:"sortOrder"`
	// CurrentPage - 1-based page number. Zero means the first page.
	CurrentPage int `json:"currentPage" yaml:"currentPage"`
	// ResultSet - page size. Zero means DefaultResultSet.
	ResultSet int `json:"resultSet" yaml:"resultSet"`
	// PageNeighbors - pagination buttons on each side of the current page.
	// Nil means DefaultPageNeighbors, since zero is a meaningful value.
	PageNeighbors *int `json:"pageNeighbors,omitempty" yaml:"pageNeighbors,omitempty"`
}

// Decode converts RawParameters into *Parameters, normalizing ResultSet and
// CurrentPage and validating SortOrder and PageNeighbors.
func (p RawParameters) Decode() (*Parameters, error) {
	dir, err := ParseDirection(p.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("cannot decode parameters: %w", err)
	}

	ret := DefaultParameters().
		WithSearch(p.Search).
		WithSearchKeys(p.SearchKeys...).
		WithSort(p.SortColumn, dir).
		WithResultSet(NormalizeResultSet(p.ResultSet))

	if p.CurrentPage > 0 {
		ret = ret.WithCurrentPage(p.CurrentPage)
	}
	if p.PageNeighbors != nil {
		ret = ret.WithPageNeighbors(*p.PageNeighbors)
	}

	if err = ret.validate(); err != nil {
		return nil, fmt.Errorf("cannot decode parameters: %w", err)
	}

	return ret, nil
}

// Parameters holds the mutable view parameters owned by a View.
type Parameters struct {
	Search        string
	SearchKeys    []string
	SortColumn    string
	SortOrder     Direction
	CurrentPage   int
	ResultSet     int
	PageNeighbors int
}

// DefaultParameters returns the documented defaults: empty search over the
// first record's keys, no sorting, page 1 of 10 rows and 2 page neighbors.
func DefaultParameters() *Parameters {
	return &Parameters{
		SortOrder:     DirectionASC,
		CurrentPage:   DefaultCurrentPage,
		ResultSet:     DefaultResultSet,
		PageNeighbors: DefaultPageNeighbors,
	}
}

// WithSearch sets the search term.
func (p *Parameters) WithSearch(search string) *Parameters {
	if p == nil {
		p = DefaultParameters()
	}

	p.Search = search

	return p
}

// WithSearchKeys replaces the set of searchable fields.
func (p *Parameters) WithSearchKeys(keys ...string) *Parameters {
	if p == nil {
		p = DefaultParameters()
	}

	p.SearchKeys = slices.Clone(keys)

	return p
}

// WithSort sets the sort column and direction.
func (p *Parameters) WithSort(column string, dir Direction) *Parameters {
	if p == nil {
		p = DefaultParameters()
	}

	p.SortColumn = column
	p.SortOrder = dir

	return p
}

// WithCurrentPage sets the starting page.
func (p *Parameters) WithCurrentPage(page int) *Parameters {
	if p == nil {
		p = DefaultParameters()
	}

	p.CurrentPage = page

	return p
}

// WithResultSet sets the page size.
//
// IMPORTANT:
// The value is not normalized here; NewView rejects non-positive sizes.
func (p *Parameters) WithResultSet(resultSet int) *Parameters {
	if p == nil {
		p = DefaultParameters()
	}

	p.ResultSet = resultSet

	return p
}

// WithPageNeighbors sets the half-width of the pagination window.
func (p *Parameters) WithPageNeighbors(pageNeighbors int) *Parameters {
	if p == nil {
		p = DefaultParameters()
	}

	p.PageNeighbors = pageNeighbors

	return p
}

// Clone returns a deep copy of the parameters.
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return DefaultParameters()
	}

	ret := *p
	ret.SearchKeys = slices.Clone(p.SearchKeys)

	return &ret
}

func (p *Parameters) validate() error {
	if p == nil {
		return fmt.Errorf("parameters are nil")
	}

	if p.ResultSet <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidResultSet, p.ResultSet)
	}

	if p.PageNeighbors < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageNeighbors, p.PageNeighbors)
	}

	if !p.SortOrder.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidDirection, p.SortOrder)
	}

	return nil
}
