// Package detect classifies raw tabular text into one of the supported
// input formats. Detection is heuristic and total: it never fails, and
// falls back to CSV when nothing more specific matches.
package detect

import (
	"regexp"
	"strings"

	"tabx/internal/table"
)

// detectLines bounds the scan. Large pasted tables must not slow
// detection down; the signature lines always appear near the top.
const detectLines = 10

// Compiled once, shared read-only across parses. Go's regexp is RE2
// (linear time), and the shapes are anchored so runs of ambiguous
// dash/colon/space noise cannot match.
var (
	// +----+----+ style MySQL border, matched against the trimmed line.
	mysqlBorder = regexp.MustCompile(`^\+[-+]+\+$`)

	// ----+-------+----- style psql separator: dashes, then one or more
	// +dashes groups, optionally padded with whitespace. Strict on
	// purpose: a loose [-+ ]+ class accepts junk like "+ - + -".
	postgresSep = regexp.MustCompile(`^\s*-+(\+-+)+\s*$`)

	// |---|:---:| style Markdown separator row.
	markdownSep = regexp.MustCompile(`^\s*\|(\s*:?-+:?\s*\|)+\s*$`)
)

// Format examines at most the first 10 lines of input and returns the
// most likely table format. Border and separator lines are checked
// first because they cannot occur by accident in delimiter-based data;
// tab presence is the weakest signal and is checked last.
func Format(input string) table.Format {
	lines := headLines(input, detectLines)
	if len(lines) == 0 {
		return table.CSV
	}

	for _, line := range lines {
		if mysqlBorder.MatchString(strings.TrimSpace(line)) {
			return table.MySQL
		}
	}
	for _, line := range lines {
		if postgresSep.MatchString(line) {
			return table.PostgreSQL
		}
	}
	for _, line := range lines {
		if markdownSep.MatchString(line) {
			return table.Markdown
		}
	}
	if isTabular(lines) {
		return table.TSV
	}
	return table.CSV
}

// IsPostgresSeparator reports whether line is a strict psql separator.
// Shared with the PostgreSQL parser so both sides agree on the shape.
func IsPostgresSeparator(line string) bool {
	return postgresSep.MatchString(line)
}

// isTabular reports whether the lines look tab-separated. A literal tab
// is necessary but not sufficient: pipe-structured lines (a trimmed line
// enclosed in pipes) mean the tab sits inside box-drawn cell content.
// A lone pipe character inside a cell does not disqualify TSV.
func isTabular(lines []string) bool {
	hasTab := false
	for _, line := range lines {
		if strings.ContainsRune(line, '\t') {
			hasTab = true
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
			return false
		}
	}
	return hasTab
}

// headLines splits out at most n leading lines without scanning the
// whole input.
func headLines(input string, n int) []string {
	var lines []string
	for len(input) > 0 && len(lines) < n {
		idx := strings.IndexByte(input, '\n')
		if idx < 0 {
			lines = append(lines, input)
			break
		}
		lines = append(lines, strings.TrimSuffix(input[:idx], "\r"))
		input = input[idx+1:]
	}
	return lines
}
