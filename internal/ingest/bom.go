package ingest

import (
	"bufio"
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// newBOMSkippingReader wraps r and strips a leading UTF-8 BOM, which Excel
// prepends to CSV exports on Windows. Without this the BOM glues itself to
// the first header name.
func newBOMSkippingReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		// Discard cannot fail after a successful Peek of the same length.
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
