package gotable

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Direction defines the sort direction for the visible dataset.
type Direction string

const (
	DirectionASC  Direction = "asc"
	DirectionDESC Direction = "desc"
)

var (
	ErrInvalidDirection = errors.New("sort order must be 'asc' or 'desc'")
	ErrUnknownColumn    = errors.New("unknown column")
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// Toggle returns the opposite direction. Anything that is not desc toggles to desc.
func (o Direction) Toggle() Direction {
	return lo.Ternary(o == DirectionDESC, DirectionASC, DirectionDESC)
}

// ParseDirection parses "asc" or "desc" in any letter case. An empty string
// yields DirectionASC.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DirectionASC, nil
	}

	dir := Direction(strings.ToLower(s))
	if !dir.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
	}

	return dir, nil
}

// Compare orders two field values: -1 when x sorts before y, 1 when after and
// 0 when they are equivalent. Strings compare case-insensitively. Values of
// different kinds follow bool < number < string < null. DirectionDESC flips
// the sign of the ascending result.
func Compare(x, y Value, dir Direction) int {
	c := compareAsc(x, y)
	if dir == DirectionDESC {
		return -c
	}

	return c
}

// SortBy returns a copy of records stably sorted by column. The input set is
// left untouched.
func SortBy(records RecordSet, column string, dir Direction) RecordSet {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return Compare(a.Get(column), b.Get(column), dir)
	})

	return sorted
}

// ParseSort parses a sort expression of the form "column", "column desc" or
// "column:desc" and checks the column against the known ones. When columns is
// empty any column is accepted. An unknown column fails with the closest known
// column suggested.
func ParseSort(expr string, columns []string) (string, Direction, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", DirectionASC, nil
	}

	parts := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ':' || r == ' '
	})
	if len(parts) > 2 {
		return "", "", fmt.Errorf("invalid sort expression format '%s'", expr)
	}

	column := parts[0]
	dir := DirectionASC
	if len(parts) == 2 {
		var err error
		if dir, err = ParseDirection(parts[1]); err != nil {
			return "", "", err
		}
	}

	if len(columns) > 0 && !slices.Contains(columns, column) {
		return "", "", fmt.Errorf("%w '%s'. closest: '%s'", ErrUnknownColumn, column, closestColumn(column, columns))
	}

	return column, dir, nil
}

func closestColumn(input string, dataSet []string) string {
	minDist := math.MaxInt
	closest := ""

	for _, column := range dataSet {
		dist := levenshtein([]rune(column), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = column
		}
	}

	return closest
}
