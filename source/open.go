package source

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Driver names a supported SQL dialect.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverMySQL    Driver = "mysql"
)

var ErrUnknownDriver = errors.New("unknown driver")

// Drivers lists the supported dialects.
func Drivers() []Driver {
	return []Driver{DriverSQLite, DriverPostgres, DriverMySQL}
}

func (d Driver) Valid() bool {
	switch d {
	case DriverSQLite, DriverPostgres, DriverMySQL:
		return true
	default:
		return false
	}
}

func (d Driver) dialector(dsn string) gorm.Dialector {
	switch d {
	case DriverSQLite:
		return sqlite.Open(dsn)
	case DriverPostgres:
		return postgres.Open(dsn)
	case DriverMySQL:
		return mysql.Open(dsn)
	default:
		panic(fmt.Errorf("cannot map driver '%s' to dialector", d))
	}
}

// Open connects to dsn with the given driver. SQL statements slower than
// 200ms and driver errors are reported through logger.
func Open(driver, dsn string, logger zerolog.Logger) (*gorm.DB, error) {
	d := Driver(strings.ToLower(strings.TrimSpace(driver)))
	if !d.Valid() {
		return nil, fmt.Errorf("cannot open database: %w '%s'. supported: %v", ErrUnknownDriver, driver, Drivers())
	}

	db, err := gorm.Open(d.dialector(dsn), &gorm.Config{Logger: newGORMLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("cannot open %s database: %w", d, err)
	}

	return db, nil
}

func newGORMLogger(logger zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(&logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
