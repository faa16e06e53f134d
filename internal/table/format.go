package table

import (
	"fmt"
	"strings"
)

// Format identifies a supported input table format. The set is closed:
// dispatch over it with a switch, not an interface.
type Format int

const (
	// Markdown pipe tables with a |---|---| separator row.
	Markdown Format = iota
	// MySQL CLI box output with +----+ border lines.
	MySQL
	// PostgreSQL psql output with a ----+---- separator line.
	PostgreSQL
	// CSV comma-separated values.
	CSV
	// TSV tab-separated values.
	TSV
)

// String returns the canonical lowercase name.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case MySQL:
		return "mysql"
	case PostgreSQL:
		return "postgresql"
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a user-supplied name (case-insensitive, aliases
// accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return Markdown, nil
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "psql":
		return PostgreSQL, nil
	case "csv":
		return CSV, nil
	case "tsv":
		return TSV, nil
	default:
		return 0, &InvalidFormatError{
			Msg: fmt.Sprintf("invalid format: %q (valid formats: markdown, mysql, postgres, csv, tsv)", s),
		}
	}
}
