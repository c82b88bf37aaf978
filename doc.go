// Package gotable provides a tabular view engine over in-memory records.
//
// Overview
//
// Given a RecordSet, a View derives the visible page of a table: records are
// filtered by a case-insensitive substring search, stably sorted by one
// column and sliced into pages. Every call to View.Snapshot returns the page
// together with the pagination metadata needed to draw controls (total pages,
// the neighbor window of page buttons, previous/next disabled flags).
//
// Key concepts
//   - Value: a closed variant over null, bool, number and string.
//   - Compare: case-insensitive, type-aware ordering used by SortBy.
//   - Filter: substring search over explicit keys, or the first record's keys.
//   - Page and NeighborWindow: page slicing and pagination button windows.
//   - View: owns Parameters and keeps TotalPages and CurrentPage consistent
//     as the search term, the page size or the RecordSet change.
//   - Component and Hook: thin adapters that hold a View for a presentation
//     layer. Component re-renders through a RenderFunc, Hook pushes snapshots
//     to subscribers.
package gotable
