package parser

import (
	"strings"

	"tabx/internal/table"
)

// MySQL parses CLI box output. Border lines start with '+' and carry no
// data; content lines are enclosed in pipes, the first being the header.
// Border position makes a separator scan unnecessary.
func MySQL(input string) (*table.Table, error) {
	var headers []string
	var rows [][]string

	for _, line := range splitLines(input) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "+") {
			continue
		}
		if !strings.HasPrefix(trimmed, "|") || !strings.HasSuffix(trimmed, "|") {
			continue
		}

		cells := splitPipeRow(trimmed)
		if headers == nil {
			headers = cells
		} else {
			rows = append(rows, cells)
		}
	}

	return table.NewValidated(headers, rows)
}
