package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/gotable"
	"github.com/Alp4ka/gotable/source"
)

var (
	ErrNoSource       = errors.New("no record source: use --file or --driver/--dsn/--table")
	ErrAmbiguousInput = errors.New("--file cannot be combined with --driver/--dsn/--table")
)

// sourceFlags select where records come from.
type sourceFlags struct {
	file    string
	driver  string
	dsn     string
	table   string
	orderBy []string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.file, "file", "f", "", "JSON or YAML file holding an array of records")
	flags.StringVar(&f.driver, "driver", "", "SQL driver (sqlite, postgres, mysql)")
	flags.StringVar(&f.dsn, "dsn", "", "SQL data source name")
	flags.StringVar(&f.table, "table", "", "SQL table to load")
	flags.StringSliceVar(&f.orderBy, "order-by", nil, "load order of SQL rows, e.g. \"id asc\"")
}

func (f *sourceFlags) load(ctx context.Context, logger zerolog.Logger) (gotable.RecordSet, error) {
	sql := f.driver != "" || f.dsn != "" || f.table != ""

	switch {
	case f.file != "" && sql:
		return nil, ErrAmbiguousInput
	case f.file != "":
		records, err := source.LoadFile(f.file)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("file", f.file).Int("records", len(records)).Msg("records loaded")
		return records, nil
	case sql:
		if f.driver == "" || f.dsn == "" || f.table == "" {
			return nil, fmt.Errorf("%w: --driver, --dsn and --table are all required", ErrNoSource)
		}
		return f.loadTable(ctx, logger)
	default:
		return nil, ErrNoSource
	}
}

func (f *sourceFlags) loadTable(ctx context.Context, logger zerolog.Logger) (gotable.RecordSet, error) {
	orderings, err := source.ParseOrderings(f.orderBy)
	if err != nil {
		return nil, err
	}

	db, err := source.Open(f.driver, f.dsn, logger)
	if err != nil {
		return nil, err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	records, err := source.LoadTable(ctx, db, f.table, orderings...)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("driver", f.driver).Str("table", f.table).Int("records", len(records)).Msg("records loaded")

	return records, nil
}

// viewFlags override the view section of the config file.
type viewFlags struct {
	search    string
	keys      []string
	sort      string
	page      int
	pageSize  int
	neighbors int
}

func (f *viewFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.search, "search", "s", "", "search term")
	flags.StringSliceVarP(&f.keys, "keys", "k", nil, "fields to search (default: fields of the first record)")
	flags.StringVar(&f.sort, "sort", "", "sort column and direction, e.g. \"name desc\" or name:desc")
	flags.IntVarP(&f.page, "page", "p", gotable.DefaultCurrentPage, "page to show")
	flags.IntVarP(&f.pageSize, "page-size", "n", gotable.DefaultResultSet, "rows per page")
	flags.IntVar(&f.neighbors, "neighbors", gotable.DefaultPageNeighbors, "pagination buttons on each side of the current page")
}

// params merges the configured view parameters with the flags the user set
// explicitly. The sort column is checked against columns.
func (f *viewFlags) params(cmd *cobra.Command, raw gotable.RawParameters, columns []string) (*gotable.Parameters, error) {
	flags := cmd.Flags()

	if flags.Changed("search") {
		raw.Search = f.search
	}
	if flags.Changed("keys") {
		raw.SearchKeys = f.keys
	}
	if flags.Changed("page") {
		raw.CurrentPage = f.page
	}
	if flags.Changed("page-size") {
		if f.pageSize <= 0 {
			return nil, fmt.Errorf("invalid --page-size: %w: got %d", gotable.ErrInvalidResultSet, f.pageSize)
		}
		raw.ResultSet = f.pageSize
	}
	if flags.Changed("neighbors") {
		raw.PageNeighbors = &f.neighbors
	}
	if flags.Changed("sort") {
		column, dir, err := gotable.ParseSort(f.sort, columns)
		if err != nil {
			return nil, fmt.Errorf("invalid --sort: %w", err)
		}
		raw.SortColumn, raw.SortOrder = column, string(dir)
	}

	return raw.Decode()
}

// newView loads the records and builds a View from config and flags.
func (a *app) newView(cmd *cobra.Command) (*gotable.View, error) {
	records, err := a.source.load(cmd.Context(), a.logger)
	if err != nil {
		return nil, err
	}

	params, err := a.view.params(cmd, a.cfg.View, records.Columns())
	if err != nil {
		return nil, err
	}

	return gotable.NewView(records, params)
}
