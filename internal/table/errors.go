package table

import "fmt"

// ParseError reports malformed low-level syntax, such as a broken quoted
// CSV field. Row is the 1-indexed physical row (header = row 1) when
// known, 0 otherwise. Err carries the underlying cause when available.
type ParseError struct {
	Row int
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	switch {
	case e.Row > 0 && e.Err != nil:
		return fmt.Sprintf("parse error at row %d: %v", e.Row, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("parse error: %v", e.Err)
	case e.Row > 0:
		return fmt.Sprintf("parse error at row %d: %s", e.Row, e.Msg)
	default:
		return fmt.Sprintf("parse error: %s", e.Msg)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidFormatError reports a structural or policy violation: an
// unknown format name, the column ceiling, a delimiter conflict.
type InvalidFormatError struct {
	Msg string
}

func (e *InvalidFormatError) Error() string {
	return "invalid format: " + e.Msg
}

// InconsistentColumnsError reports a row whose cell count disagrees with
// the header. Row is 1-indexed over data rows (header excluded).
type InconsistentColumnsError struct {
	Row      int
	Expected int
	Found    int
}

func (e *InconsistentColumnsError) Error() string {
	return fmt.Sprintf("inconsistent column count at row %d: expected %d, found %d",
		e.Row, e.Expected, e.Found)
}
