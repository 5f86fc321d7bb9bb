package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "trims whitespace",
			line: "a, b ,  c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "preserves empty trailing token",
			line: "T, F,F,T  ,",
			want: []string{"T", "F", "F", "T", ""},
		},
		{
			name: "empty tokens in the middle",
			line: "a,,c",
			want: []string{"a", "", "c"},
		},
		{
			name: "single token",
			line: "solo",
			want: []string{"solo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, splitLine(tt.line))
		})
	}
}

func TestIsNullToken(t *testing.T) {
	require.True(t, isNullToken(""))
	require.True(t, isNullToken("null"))

	// The null literal is case-sensitive
	require.False(t, isNullToken("NULL"))
	require.False(t, isNullToken("Null"))
	require.False(t, isNullToken("nil"))
	require.False(t, isNullToken("0"))
}

func TestParseBool(t *testing.T) {
	for _, tok := range []string{"t", "T", "true", "True", "TRUE"} {
		v, ok := parseBool(tok)
		require.True(t, ok, tok)
		require.True(t, v, tok)
	}
	for _, tok := range []string{"f", "F", "false", "False", "FALSE"} {
		v, ok := parseBool(tok)
		require.True(t, ok, tok)
		require.False(t, v, tok)
	}
	for _, tok := range []string{"yes", "no", "1", "0", ""} {
		_, ok := parseBool(tok)
		require.False(t, ok, tok)
	}
}
