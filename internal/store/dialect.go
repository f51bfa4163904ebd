package store

import (
	"fmt"
	"strings"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
)

// dialect holds what differs between backends: the database/sql driver name, the
// sql-migrate dialect and the SQL that renders a UTC timestamp column as a period key.
// The key SQL shifts the column by the :shift seconds parameter and hour keys append
// the :zone offset, so keys match series.HourKeyLayout in the report timezone.
// Apart from those parameters the key SQL holds no ':' for named parameter parsing to trip on.
type dialect struct {
	name           string
	sqlDriver      string
	migrateDialect string
	dayKey         func(col string) string
	hourKey        func(col string) string
}

func (d dialect) periodKey(col string, g entity.MetricsGranularity) string {
	if g == entity.MetricsGranularityHour {
		return d.hourKey(col)
	}
	return d.dayKey(col)
}

func sqliteDialect(name string) dialect {
	return dialect{
		name:           name,
		sqlDriver:      name,
		migrateDialect: "sqlite3",
		dayKey: func(col string) string {
			return fmt.Sprintf("strftime('%%Y-%%m-%%d', %s, CAST(:shift AS TEXT) || ' seconds')", col)
		},
		hourKey: func(col string) string {
			return fmt.Sprintf("strftime('%%Y-%%m-%%d %%H', %s, CAST(:shift AS TEXT) || ' seconds') || :zone", col)
		},
	}
}

func dialectFor(driver string) (dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverMySQL:
		return dialect{
			name:           DriverMySQL,
			sqlDriver:      "mysql",
			migrateDialect: "mysql",
			dayKey: func(col string) string {
				return fmt.Sprintf("DATE_FORMAT(DATE_ADD(%s, INTERVAL :shift SECOND), '%%Y-%%m-%%d')", col)
			},
			hourKey: func(col string) string {
				return fmt.Sprintf("CONCAT(DATE_FORMAT(DATE_ADD(%s, INTERVAL :shift SECOND), '%%Y-%%m-%%d %%H'), :zone)", col)
			},
		}, nil
	case DriverPostgres, "postgresql", "pgx":
		return dialect{
			name:           DriverPostgres,
			sqlDriver:      "postgres",
			migrateDialect: "postgres",
			dayKey: func(col string) string {
				return fmt.Sprintf("to_char(%s + CAST(:shift AS INTEGER) * INTERVAL '1 second', 'YYYY-MM-DD')", col)
			},
			hourKey: func(col string) string {
				return fmt.Sprintf("to_char(%s + CAST(:shift AS INTEGER) * INTERVAL '1 second', 'YYYY-MM-DD HH24') || CAST(:zone AS TEXT)", col)
			},
		}, nil
	case DriverSQLite, "sqlite3":
		return sqliteDialect(DriverSQLite), nil
	case DriverLibSQL, "turso":
		return sqliteDialect(DriverLibSQL), nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// withSQLiteTimeFormat makes modernc write time.Time in a layout strftime can parse.
func withSQLiteTimeFormat(dsn string) string {
	if strings.Contains(dsn, "_time_format=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_time_format=sqlite"
	}
	return dsn + "?_time_format=sqlite"
}
