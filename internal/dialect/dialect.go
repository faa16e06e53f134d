// Package dialect abstracts the database-specific pieces of the query
// command: driver selection from a DSN and row-limit syntax, which is
// the one place ANSI SQL does not help.
package dialect

import (
	"fmt"
	"strings"
)

// Dialect covers the per-database behavior the query command needs.
type Dialect interface {
	// Driver returns the database/sql driver name to open with.
	Driver() string

	// LimitRowQuery wraps query so at most limit rows come back.
	LimitRowQuery(query string, limit int) string
}

type MysqlDialect struct{}

func (d *MysqlDialect) Driver() string { return "mysql" }

func (d *MysqlDialect) LimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}

type PostgresDialect struct{}

func (d *PostgresDialect) Driver() string { return "postgres" }

func (d *PostgresDialect) LimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}

type MSSQLDialect struct{}

func (d *MSSQLDialect) Driver() string { return "sqlserver" }

func (d *MSSQLDialect) LimitRowQuery(query string, limit int) string {
	// T-SQL TOP injection; assumes the query starts with SELECT.
	trimmed := strings.TrimSpace(query)
	if strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return strings.Replace(query, "SELECT", fmt.Sprintf("SELECT TOP %d", limit), 1)
	}
	return query
}

type OracleDialect struct{}

func (d *OracleDialect) Driver() string { return "oracle" }

func (d *OracleDialect) LimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("SELECT * FROM (%s) WHERE ROWNUM <= %d", query, limit)
}

// Get returns the Dialect for a driver name.
func Get(driver string) Dialect {
	switch driver {
	case "postgres", "postgresql":
		return &PostgresDialect{}
	case "sqlserver", "mssql":
		return &MSSQLDialect{}
	case "oracle":
		return &OracleDialect{}
	default: // mysql
		return &MysqlDialect{}
	}
}

// DetectDriver guesses the driver from DSN shape when none was forced.
func DetectDriver(dsn string) string {
	low := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(low, "postgres://") || strings.Contains(low, "sslmode"):
		return "postgres"
	case strings.HasPrefix(low, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(low, "oracle://"):
		return "oracle"
	default:
		return "mysql"
	}
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
