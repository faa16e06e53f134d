package parser

import (
	"strings"

	"tabx/internal/detect"
	"tabx/internal/table"
)

// Postgres parses psql output: a single strict ----+---- separator line
// divides the header from the data, and lines have no enclosing pipes.
// Cells are split on '|' and trimmed, but empty cells are kept — an
// empty cell is a SQL NULL, and dropping it would shift every column
// after it.
func Postgres(input string) (*table.Table, error) {
	var headers []string
	var rows [][]string
	foundSeparator := false

	for _, line := range splitLines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if detect.IsPostgresSeparator(line) {
			foundSeparator = true
			continue
		}

		cells := splitPlainRow(line)
		if !foundSeparator {
			if headers == nil {
				headers = cells
			}
		} else {
			rows = append(rows, cells)
		}
	}

	return table.NewValidated(headers, rows)
}

// splitPlainRow splits an unenclosed row on pipes, trimming each cell
// and preserving empties.
func splitPlainRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
