package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"tabx/internal/table"
)

// Delimited parses CSV/TSV-style input with the given field delimiter.
// Record splitting is left to encoding/csv so quoted fields may contain
// the delimiter, doubled quotes and embedded newlines; hand-rolled
// splitting gets all of those wrong. The first record is the header.
func Delimited(input string, delimiter rune) (*table.Table, error) {
	r := csv.NewReader(strings.NewReader(input))
	r.Comma = delimiter

	headers, err := r.Read()
	if err == io.EOF {
		return table.NewValidated(nil, nil)
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		rows = append(rows, record)
	}

	return table.NewValidated(headers, rows)
}

// wrapCSVError converts an encoding/csv failure into a ParseError
// carrying the 1-indexed physical row (the header is row 1).
func wrapCSVError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &table.ParseError{Row: csvErr.Line, Err: err}
	}
	return &table.ParseError{Err: err}
}
