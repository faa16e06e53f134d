// Package writer serializes a validated table as delimiter-separated
// text.
package writer

import (
	"encoding/csv"
	"io"

	"tabx/internal/table"
)

// CSV writes the table as RFC 4180 CSV. Quoting is left to
// encoding/csv, so cells may safely contain commas, quotes and
// newlines.
func CSV(t *table.Table, out io.Writer) error {
	w := csv.NewWriter(out)

	if err := w.Write(t.Headers()); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
