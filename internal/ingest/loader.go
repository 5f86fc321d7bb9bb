// Package ingest converts raw, loosely-typed CSV text into typed, nullable
// frames.
//
// Ingestion is a strict two-pass process per column: a read-only
// classification pass decides the column's single semantic type from every
// token, then a build pass materializes values under the committed type.
// Mixed columns always degrade to string; null tokens (empty or the literal
// "null") become null under every type.
//
// Each call reads its entire input, works in memory, and returns a complete
// frame. Calls share no state, so concurrent ingestion needs no locking.
package ingest

import (
	"io"

	"csvframe/internal/frame"
)

// LoadContent ingests CSV text from an already-open stream. The first
// non-blank line is the header row naming the columns; name becomes the
// resulting frame's display name. The caller owns the stream and closes it.
func LoadContent(r io.Reader, name string) (*frame.Frame, error) {
	return parseFrame(r, name, true)
}

// LoadContentHeaderless ingests CSV text that has no header row. Columns are
// named "Field 1", "Field 2", ... and the first data row fixes the expected
// width.
func LoadContentHeaderless(r io.Reader, name string) (*frame.Frame, error) {
	return parseFrame(r, name, false)
}

// LineToField converts a single comma-separated line into one typed column:
// the line's tokens are the column's values. Convenience for ad hoc input
// where one line is one field.
func LineToField(line string) (*frame.Field, error) {
	tokens := splitLine(line)
	return buildField("", classifyColumn(tokens), tokens), nil
}

// parseFrame runs the full pipeline: transpose rows into per-column token
// sequences, classify and build each column, assemble the frame in source
// column order.
func parseFrame(r io.Reader, name string, hasHeader bool) (*frame.Frame, error) {
	cols, err := transpose(r, hasHeader)
	if err != nil {
		return nil, err
	}

	fields := make([]*frame.Field, 0, len(cols))
	for _, col := range cols {
		fields = append(fields, buildField(col.name, classifyColumn(col.tokens), col.tokens))
	}

	return frame.New(name, fields...), nil
}
