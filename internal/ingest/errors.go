package ingest

import (
	"errors"
	"fmt"
)

// ErrInvalidFileName is returned when a requested file name is malformed or
// resolves outside the data directory. It is a user input error and is never
// retried.
var ErrInvalidFileName = errors.New("invalid file name")

// RowWidthMismatchError reports a data row whose token count differs from
// the header (or from the first data row in headerless input). The CSV body
// is malformed; nothing is padded or truncated.
type RowWidthMismatchError struct {
	Line     int // 1-based line number in the input, counting skipped lines
	Expected int
	Actual   int
}

func (e *RowWidthMismatchError) Error() string {
	return fmt.Sprintf("line %d: row has %d columns, expected %d", e.Line, e.Actual, e.Expected)
}
