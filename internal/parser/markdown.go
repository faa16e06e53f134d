package parser

import (
	"strings"

	"tabx/internal/table"
)

// Markdown parses a pipe table. The separator row (|---|---|) is
// mandatory and divides the single header line from the data rows.
// Input with no header yields an empty table, not an error.
func Markdown(input string) (*table.Table, error) {
	var headers []string
	var rows [][]string
	foundSeparator := false

	for _, line := range splitLines(input) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isMarkdownSeparator(trimmed) {
			foundSeparator = true
			continue
		}

		cells := splitPipeRow(trimmed)
		if !foundSeparator {
			// Only the first pre-separator line is the header; extra
			// lines before the separator are ignored.
			if headers == nil {
				headers = cells
			}
		} else {
			rows = append(rows, cells)
		}
	}

	return table.NewValidated(headers, rows)
}

// isMarkdownSeparator reports whether a trimmed line is a header/data
// divider: only pipes, dashes, colons and spaces, with at least one
// dash and one pipe.
func isMarkdownSeparator(line string) bool {
	hasDash, hasPipe := false, false
	for _, c := range line {
		switch c {
		case '-':
			hasDash = true
		case '|':
			hasPipe = true
		case ':', ' ':
		default:
			return false
		}
	}
	return hasDash && hasPipe
}

// splitPipeRow strips one enclosing pipe from each end, splits on the
// remaining pipes and trims every cell. Shared by the Markdown and
// MySQL parsers, whose row syntax is identical.
func splitPipeRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// splitLines breaks input into lines, tolerating CRLF endings.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.TrimSuffix(input, "\n")
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
