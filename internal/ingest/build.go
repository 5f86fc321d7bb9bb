package ingest

import (
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"

	"csvframe/internal/frame"
)

// buildField materializes the typed, nullable column for an already
// classified token sequence. Null tokens become Valid=false entries; every
// other token is parsed under the committed type. Parsing cannot fail here
// because classifyColumn verified every non-null token against the type.
func buildField(name string, typ frame.FieldType, tokens []string) *frame.Field {
	switch typ {
	case frame.TypeBool:
		values := make([]pgtype.Bool, len(tokens))
		for i, tok := range tokens {
			if isNullToken(tok) {
				continue
			}
			b, _ := parseBool(tok)
			values[i] = pgtype.Bool{Bool: b, Valid: true}
		}
		return frame.NewBoolField(name, values)

	case frame.TypeInt:
		values := make([]pgtype.Int8, len(tokens))
		for i, tok := range tokens {
			if isNullToken(tok) {
				continue
			}
			n, _ := strconv.ParseInt(tok, 10, 64)
			values[i] = pgtype.Int8{Int64: n, Valid: true}
		}
		return frame.NewIntField(name, values)

	case frame.TypeFloat:
		values := make([]pgtype.Float8, len(tokens))
		for i, tok := range tokens {
			if isNullToken(tok) {
				continue
			}
			f, _ := strconv.ParseFloat(tok, 64)
			values[i] = pgtype.Float8{Float64: f, Valid: true}
		}
		return frame.NewFloatField(name, values)

	default:
		values := make([]pgtype.Text, len(tokens))
		for i, tok := range tokens {
			if isNullToken(tok) {
				continue
			}
			values[i] = pgtype.Text{String: tok, Valid: true}
		}
		return frame.NewStringField(name, values)
	}
}
