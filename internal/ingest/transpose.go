package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single CSV line. Lines beyond this abort the read.
const maxLineSize = 1024 * 1024

// column is one named token sequence extracted from the CSV body.
type column struct {
	name   string
	tokens []string
}

// transpose reads a whole CSV body and turns row-major text into one token
// sequence per column.
//
// With hasHeader, the first non-blank line names the columns; without it,
// columns get positional "Field N" names and the first data row fixes the
// expected width. Blank and whitespace-only lines are skipped entirely. A
// data row whose token count differs from the expected width fails with
// *RowWidthMismatchError.
func transpose(r io.Reader, hasHeader bool) ([]column, error) {
	sc := bufio.NewScanner(newBOMSkippingReader(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var cols []column
	line := 0

	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		tokens := splitLine(text)

		if cols == nil {
			cols = make([]column, len(tokens))
			if hasHeader {
				for i, tok := range tokens {
					cols[i].name = tok
				}
				continue
			}
			for i := range cols {
				cols[i].name = fmt.Sprintf("Field %d", i+1)
			}
		}

		if len(tokens) != len(cols) {
			return nil, &RowWidthMismatchError{
				Line:     line,
				Expected: len(cols),
				Actual:   len(tokens),
			}
		}

		for i, tok := range tokens {
			cols[i].tokens = append(cols[i].tokens, tok)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return cols, nil
}
