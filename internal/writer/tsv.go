package writer

import (
	"fmt"
	"io"
	"strings"

	"tabx/internal/table"
)

// TSV writes the table as plain delimiter-joined lines with no quoting.
// Because nothing is escaped, a header or cell containing the delimiter
// would corrupt the output; such tables are rejected up front.
func TSV(t *table.Table, out io.Writer, delimiter rune) error {
	sep := string(delimiter)

	for _, h := range t.Headers() {
		if strings.Contains(h, sep) {
			return &table.InvalidFormatError{
				Msg: fmt.Sprintf("header %q contains delimiter %q; use -o csv for proper escaping", h, sep),
			}
		}
	}

	if _, err := fmt.Fprintln(out, strings.Join(t.Headers(), sep)); err != nil {
		return err
	}

	for i, row := range t.Rows() {
		for _, cell := range row {
			if strings.Contains(cell, sep) {
				return &table.InvalidFormatError{
					Msg: fmt.Sprintf("row %d contains delimiter %q in data; use -o csv for proper escaping", i+1, sep),
				}
			}
		}
		if _, err := fmt.Fprintln(out, strings.Join(row, sep)); err != nil {
			return err
		}
	}

	return nil
}
