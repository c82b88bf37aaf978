package gotable

import "github.com/samber/lo"

// TotalPages returns ceil(count / resultSet). A non-positive resultSet yields 0.
func TotalPages(count, resultSet int) int {
	if resultSet <= 0 || count <= 0 {
		return 0
	}

	return (count + resultSet - 1) / resultSet
}

// Offset returns the index of the first item on currentPage.
func Offset(currentPage, resultSet int) int {
	return (currentPage - 1) * resultSet
}

// Page returns the window [offset, offset+resultSet) of items for the given
// 1-based page. The window is truncated at both ends, so a page outside the
// dataset yields an empty slice instead of an error.
func Page[T any](items []T, currentPage, resultSet int) []T {
	start := Offset(currentPage, resultSet)
	end := start + resultSet

	start = max(start, 0)
	end = min(end, len(items))
	if resultSet <= 0 || start >= end {
		return []T{}
	}

	return items[start:end]
}

// NeighborWindow returns the page numbers shown as pagination buttons.
//
// At most pageNeighbors*2+1 buttons are produced. When totalPages fits into
// that span every page is listed. Otherwise the window is centered on
// currentPage and pinned to the first or last span at the boundaries:
//
//	NeighborWindow(5, 10, 2)  -> [3 4 5 6 7]
//	NeighborWindow(1, 10, 2)  -> [1 2 3 4 5]
//	NeighborWindow(10, 10, 2) -> [6 7 8 9 10]
//
// A negative pageNeighbors behaves as 0.
func NeighborWindow(currentPage, totalPages, pageNeighbors int) []int {
	pageNeighbors = max(pageNeighbors, 0)
	span := pageNeighbors*2 + 1

	if totalPages <= span {
		return pageRange(1, totalPages)
	}

	switch {
	case currentPage <= pageNeighbors+1:
		return pageRange(1, span)
	case currentPage > totalPages-pageNeighbors:
		return pageRange(totalPages-pageNeighbors*2, totalPages)
	default:
		return pageRange(currentPage-pageNeighbors, currentPage+pageNeighbors)
	}
}

// pageRange returns every integer in [start, end]; empty when end < start.
func pageRange(start, end int) []int {
	if end < start {
		return []int{}
	}

	return lo.RangeFrom(start, end-start+1)
}
