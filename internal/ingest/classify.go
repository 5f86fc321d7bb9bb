package ingest

import (
	"math"
	"strconv"

	"csvframe/internal/frame"
)

// classifyColumn decides the single semantic type for a column from all of
// its tokens. Candidate types are tried from most restrictive to least:
// bool, int64, float64, string. The first candidate under which every
// non-null token parses wins; a column with no non-null tokens is a string
// column.
//
// This is a whole-column decision made in one read-only pass. Value
// materialization happens separately in buildField, so a later token can
// never invalidate an already-committed type.
//
// Width policy: integers are held as int64. A column whose tokens are
// numeric but overflow int64 falls through to float64. Tokens that overflow
// float64 range, or parse to Inf/NaN (which have no JSON representation),
// degrade the column to string.
func classifyColumn(tokens []string) frame.FieldType {
	nonNull := 0
	isBool, isInt, isFloat := true, true, true

	for _, tok := range tokens {
		if isNullToken(tok) {
			continue
		}
		nonNull++

		if isBool {
			if _, ok := parseBool(tok); !ok {
				isBool = false
			}
		}
		if isInt {
			if _, err := strconv.ParseInt(tok, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
				isFloat = false
			}
		}
	}

	switch {
	case nonNull == 0:
		return frame.TypeString
	case isBool:
		return frame.TypeBool
	case isInt:
		return frame.TypeInt
	case isFloat:
		return frame.TypeFloat
	default:
		return frame.TypeString
	}
}
