package ingest

import "strings"

// delimiter is fixed to comma. Quoting and alternate dialects are out of
// scope: a comma inside quotes is not protected.
const delimiter = ","

// splitLine splits one line of text into trimmed tokens. Empty trailing
// tokens are preserved (a trailing comma yields a final empty token, which
// later resolves to null).
func splitLine(line string) []string {
	parts := strings.Split(line, delimiter)
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// isNullToken reports whether a trimmed token represents null: the empty
// string or the case-sensitive literal "null". Null tokens never contribute
// to type inference and always become null in the output.
func isNullToken(tok string) bool {
	return tok == "" || tok == "null"
}

// parseBool interprets a token as a boolean literal. Accepted forms are
// t, f, true and false, case-insensitively.
func parseBool(tok string) (value, ok bool) {
	switch strings.ToLower(tok) {
	case "t", "true":
		return true, true
	case "f", "false":
		return false, true
	default:
		return false, false
	}
}
