package table

import "fmt"

// MaxColumns bounds the header width. Prevents out-of-memory from
// adversarially wide inputs.
const MaxColumns = 10000

// Table holds a parsed result set: ordered headers plus data rows.
// Every row must have exactly len(headers) cells.
type Table struct {
	headers []string
	rows    [][]string
}

// New builds a table without validation. Prefer NewValidated; parsers
// must not hand unchecked tables to writers.
func New(headers []string, rows [][]string) *Table {
	return &Table{headers: headers, rows: rows}
}

// NewValidated builds a table and enforces the column ceiling plus
// per-row width consistency. Every parser funnels through here so the
// invariant holds regardless of source format.
func NewValidated(headers []string, rows [][]string) (*Table, error) {
	if len(headers) > MaxColumns {
		return nil, &InvalidFormatError{
			Msg: fmt.Sprintf("too many columns: %d (maximum: %d)", len(headers), MaxColumns),
		}
	}

	t := &Table{headers: headers, rows: rows}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that every row has the same cell count as the header.
// Row numbers in the returned error are 1-indexed over data rows.
func (t *Table) Validate() error {
	expected := len(t.headers)
	for i, row := range t.rows {
		if len(row) != expected {
			return &InconsistentColumnsError{
				Row:      i + 1,
				Expected: expected,
				Found:    len(row),
			}
		}
	}
	return nil
}

// Headers returns the column headers in order.
func (t *Table) Headers() []string {
	return t.headers
}

// Rows returns the data rows in order.
func (t *Table) Rows() [][]string {
	return t.rows
}

// ColumnCount returns the header width.
func (t *Table) ColumnCount() int {
	return len(t.headers)
}

// IsEmpty reports whether the table has no data rows. A table with
// headers but no rows is empty.
func (t *Table) IsEmpty() bool {
	return len(t.rows) == 0
}
