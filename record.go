package gotable

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

type (
	// Record maps field names to values. A missing field reads as null.
	Record map[string]Value

	// RecordSet is an ordered collection of records. It is owned by the caller;
	// the engine only reads it and never keeps it across calls.
	RecordSet []Record
)

// Get returns the value stored under field, or null when absent.
func (r Record) Get(field string) Value {
	return r[field]
}

// Keys returns the field names of the record in sorted order.
func (r Record) Keys() []string {
	keys := lo.Keys(r)
	slices.Sort(keys)

	return keys
}

// Equal reports whether both records hold the same fields with equal values.
func (r Record) Equal(other Record) bool {
	return maps.EqualFunc(r, other, Value.Equal)
}

// Columns returns the sorted union of field names across all records.
func (rs RecordSet) Columns() []string {
	columns := lo.Uniq(lo.FlatMap(rs, func(r Record, _ int) []string {
		return lo.Keys(r)
	}))
	slices.Sort(columns)

	return columns
}

// Equal reports whether both sets contain equal records in the same order.
func (rs RecordSet) Equal(other RecordSet) bool {
	return slices.EqualFunc(rs, other, Record.Equal)
}

// sameIdentity reports whether both sets share their backing array and length,
// which is how a swapped-in collection is told apart from the one in use.
func (rs RecordSet) sameIdentity(other RecordSet) bool {
	if len(rs) != len(other) {
		return false
	}
	if len(rs) == 0 {
		return true
	}

	return &rs[0] == &other[0]
}

// RecordsFromMaps converts loosely typed rows (decoded JSON, YAML, SQL rows)
// into a RecordSet using ValueOf for every field.
func RecordsFromMaps(rows []map[string]any) RecordSet {
	return lo.Map(rows, func(row map[string]any, _ int) Record {
		return lo.MapValues(row, func(v any, _ string) Value {
			return ValueOf(v)
		})
	})
}

// Getters maps column names to field getters of T. Example:
//
//	gotable.Getters[User]{
//		"id":   func(u User) any { return u.ID },
//		"name": func(u User) any { return u.Name },
//	}
type Getters[T any] map[string]func(T) any

// FromItems builds a RecordSet from typed items, one column per getter.
func FromItems[T any](items []T, getters Getters[T]) RecordSet {
	return lo.Map(items, func(item T, _ int) Record {
		return lo.MapValues(getters, func(getter func(T) any, _ string) Value {
			return ValueOf(getter(item))
		})
	})
}
