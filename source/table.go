package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/Alp4ka/gotable"
)

type (
	// Orderings fixes the order rows are loaded in. The view sorts in memory;
	// this only makes the unsorted order deterministic.
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction gotable.Direction
	}
)

var _availableNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func validName(name string) bool {
	return name != "" && lo.Every(_availableNameSymbols, []rune(name))
}

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Guard against SQL injection by restricting allowed characters in column names.
	if !validName(o.Column) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQL converts Orderings to a single string
// "<order_column_1> <order_direction_1>, <order_column_2> <order_direction_2>".
//
// Example: for [{"a", "asc"}, {"b", "desc"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, strings.ToUpper(string(ordering.Direction)))
	}), ", ")
}

// Apply applies the ordering to a gorm query. Empty Orderings leave the
// query untouched.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseOrderings builds Orderings from expressions accepted by
// gotable.ParseSort ("column", "column desc", "column:desc").
func ParseOrderings(exprs []string) (Orderings, error) {
	ret := make(Orderings, 0, len(exprs))
	for _, expr := range exprs {
		column, dir, err := gotable.ParseSort(expr, nil)
		if err != nil {
			return nil, fmt.Errorf("cannot parse ordering: %w", err)
		}
		if column == "" {
			continue
		}

		ret = append(ret, OrderBy{Column: column, Direction: dir})
	}

	return ret, nil
}

// LoadTable reads every row of table into memory. No filtering or paging is
// pushed into the query.
func LoadTable(ctx context.Context, db *gorm.DB, table string, orderBy ...OrderBy) (gotable.RecordSet, error) {
	if !validName(table) {
		return nil, fmt.Errorf("cannot load table: table name contains forbidden symbols '%s'", table)
	}

	orderings := Orderings(orderBy)
	if err := orderings.validate(); err != nil {
		return nil, fmt.Errorf("cannot load table '%s': %w", table, err)
	}

	var rows []map[string]any
	err := orderings.Apply(db.WithContext(ctx).Table(table)).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("cannot load table '%s': %w", table, err)
	}

	return gotable.RecordsFromMaps(rows), nil
}
