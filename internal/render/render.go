// Package render turns snapshots into plain text, JSON or YAML output.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/Alp4ka/gotable"
)

// Format is an output format for a snapshot.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat accepts "text", "json", "yaml" or "yml" in any case. Empty
// means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w '%s'. supported: %v", ErrUnsupportedFormat, s, Formats())
	}
}

// Write renders snap to w. Text output is a table of columns followed by the
// pagination footer; JSON and YAML output the whole snapshot.
func Write(w io.Writer, format Format, snap gotable.Snapshot, columns []string) error {
	switch format {
	case FormatText:
		return writeText(w, snap, columns)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w '%s'", ErrUnsupportedFormat, format)
	}
}

func writeText(w io.Writer, snap gotable.Snapshot, columns []string) error {
	if len(snap.VisibleData) == 0 {
		if _, err := fmt.Fprintln(w, "No records."); err != nil {
			return err
		}
	} else {
		const tabPadding = 2
		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

		fmt.Fprintln(tw, strings.Join(lo.Map(columns, func(c string, _ int) string {
			return Header(c, snap)
		}), "\t"))
		fmt.Fprintln(tw, strings.Join(lo.Map(columns, func(c string, _ int) string {
			return strings.Repeat("-", utf8.RuneCountInString(Header(c, snap)))
		}), "\t"))
		for _, r := range snap.VisibleData {
			fmt.Fprintln(tw, strings.Join(Row(r, columns), "\t"))
		}

		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s  %s\n", Footer(snap), Summary(snap))

	return err
}

// Header returns the column title, marked with the sort direction when the
// snapshot is sorted by it.
func Header(column string, snap gotable.Snapshot) string {
	if column != snap.SortColumn {
		return column
	}

	return column + lo.Ternary(snap.SortOrder == gotable.DirectionDESC, " ▼", " ▲")
}

// Row returns the cells of r for columns. Null and absent fields are blank.
func Row(r gotable.Record, columns []string) []string {
	return lo.Map(columns, func(c string, _ int) string {
		return r.Get(c).String()
	})
}

// Footer renders the pagination buttons, the current page in brackets, e.g.
// "« 1 2 [3] 4 5 »". Disabled arrows are left out.
func Footer(snap gotable.Snapshot) string {
	parts := make([]string, 0, len(snap.PaginationButtons)+2)
	if !snap.PrevDisabled {
		parts = append(parts, "«")
	}
	for _, p := range snap.PaginationButtons {
		label := strconv.Itoa(p)
		if p == snap.CurrentPage {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	if !snap.NextDisabled && snap.TotalPages > 0 {
		parts = append(parts, "»")
	}

	return strings.Join(parts, " ")
}

// Summary describes the position in the result set, e.g. "page 3 of 5, 42 items".
func Summary(snap gotable.Snapshot) string {
	return fmt.Sprintf("page %d of %d, %d %s",
		snap.CurrentPage, snap.TotalPages, snap.TotalItems, lo.Ternary(snap.TotalItems == 1, "item", "items"))
}
