package source

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/gotable"
)

func Test_OrderBy_validate(t *testing.T) {
	tests := []struct {
		name string
		o    OrderBy
		ok   bool
	}{
		{"ok", OrderBy{Column: "users.created_at", Direction: gotable.DirectionASC}, true},
		{"quoted", OrderBy{Column: "`id`", Direction: gotable.DirectionDESC}, true},
		{"bad direction", OrderBy{Column: "id", Direction: "up"}, false},
		{"injection", OrderBy{Column: "id; DROP TABLE users", Direction: gotable.DirectionASC}, false},
		{"empty column", OrderBy{Column: "", Direction: gotable.DirectionASC}, false},
	}
	for _, tt := range tests {
		if err := tt.o.validate(); (err == nil) != tt.ok {
			t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
		}
	}
}

func Test_Orderings_ToSQL(t *testing.T) {
	o := Orderings{{"a", gotable.DirectionASC}, {"b", gotable.DirectionDESC}}
	assert.Equal(t, "a ASC, b DESC", o.ToSQL())
	assert.Equal(t, "", Orderings(nil).ToSQL())
}

func Test_ParseOrderings(t *testing.T) {
	got, err := ParseOrderings([]string{"id", "name desc", "age:ASC", " "})
	require.NoError(t, err)
	assert.Equal(t, Orderings{
		{"id", gotable.DirectionASC},
		{"name", gotable.DirectionDESC},
		{"age", gotable.DirectionASC},
	}, got)

	_, err = ParseOrderings([]string{"id sideways"})
	assert.ErrorIs(t, err, gotable.ErrInvalidDirection)
}

func Test_LoadTable(t *testing.T) {
	mocks := []mockFn{newGORMMySQLMock, newGORMPostgresMock}

	tests := []struct {
		name          string
		orderBy       Orderings
		expectedQuery string
	}{
		{
			name:          "unordered",
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"]$",
		},
		{
			name:          "ordered",
			orderBy:       Orderings{{"id", gotable.DirectionASC}, {"name", gotable.DirectionDESC}},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] ORDER BY id ASC, name DESC$",
		},
	}

	for _, newMock := range mocks {
		for _, tt := range tests {
			dialect, db, dbMock, err := newMock()
			t.Run(fmt.Sprintf("%s %s", dialect, tt.name), func(t *testing.T) {
				require.NoError(t, err)

				dbMock.ExpectQuery(tt.expectedQuery).WillReturnRows(
					sqlmock.NewRows([]string{"id", "name"}).
						AddRow(1, "John Doe").
						AddRow(2, "Jane Doe"),
				)

				records, err := LoadTable(context.Background(), db, "users", tt.orderBy...)
				require.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, "1", records[0].Get("id").String())
				assert.Equal(t, "John Doe", records[0].Get("name").String())
				assert.Equal(t, "Jane Doe", records[1].Get("name").String())

				assert.NoError(t, dbMock.ExpectationsWereMet())
			})
		}
	}
}

func Test_LoadTable_Errors(t *testing.T) {
	_, db, dbMock, err := newGORMPostgresMock()
	require.NoError(t, err)

	t.Run("table name", func(t *testing.T) {
		_, err := LoadTable(context.Background(), db, "users; DROP TABLE users")
		assert.Error(t, err)
	})

	t.Run("ordering", func(t *testing.T) {
		_, err := LoadTable(context.Background(), db, "users", OrderBy{Column: "id)", Direction: gotable.DirectionASC})
		assert.Error(t, err)
	})

	t.Run("query", func(t *testing.T) {
		boom := errors.New("boom")
		dbMock.ExpectQuery("^SELECT").WillReturnError(boom)

		_, err := LoadTable(context.Background(), db, "users")
		assert.ErrorIs(t, err, boom)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
