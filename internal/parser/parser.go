// Package parser turns raw tabular text in a known format into a
// validated table. Each format gets its own parse function; dispatch is
// a closed switch over the format tag since the set is fixed.
package parser

import (
	"fmt"

	"tabx/internal/table"
)

// Parse routes input to the parser for the given format. delimiter only
// applies to the CSV/TSV formats and overrides their default separator
// when non-zero.
func Parse(format table.Format, input string, delimiter rune) (*table.Table, error) {
	switch format {
	case table.Markdown:
		return Markdown(input)
	case table.MySQL:
		return MySQL(input)
	case table.PostgreSQL:
		return Postgres(input)
	case table.CSV:
		if delimiter == 0 {
			delimiter = ','
		}
		return Delimited(input, delimiter)
	case table.TSV:
		if delimiter == 0 {
			delimiter = '\t'
		}
		return Delimited(input, delimiter)
	default:
		return nil, &table.InvalidFormatError{
			Msg: fmt.Sprintf("no parser for format %v", format),
		}
	}
}
