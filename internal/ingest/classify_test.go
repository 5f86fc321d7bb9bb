package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"csvframe/internal/frame"
)

func TestClassifyColumn(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   frame.FieldType
	}{
		{
			name:   "boolean literals all forms",
			tokens: []string{"T", "F", "true", "false", "t", "f"},
			want:   frame.TypeBool,
		},
		{
			name:   "boolean case insensitive",
			tokens: []string{"TRUE", "False", "t"},
			want:   frame.TypeBool,
		},
		{
			name:   "boolean with nulls",
			tokens: []string{"T", "", "null", "F"},
			want:   frame.TypeBool,
		},
		{
			name:   "integers",
			tokens: []string{"1", "-42", "0", "9000"},
			want:   frame.TypeInt,
		},
		{
			name:   "integers with nulls",
			tokens: []string{"1", "null", "", "4", "5"},
			want:   frame.TypeInt,
		},
		{
			name:   "one fractional token degrades to float",
			tokens: []string{"1", "2.5", "3"},
			want:   frame.TypeFloat,
		},
		{
			name:   "exponent form is float",
			tokens: []string{"1e3", "2", "3"},
			want:   frame.TypeFloat,
		},
		{
			name:   "int64 overflow falls through to float",
			tokens: []string{"9223372036854775808", "1"},
			want:   frame.TypeFloat,
		},
		{
			name:   "float overflow falls through to string",
			tokens: []string{"1e400", "2"},
			want:   frame.TypeString,
		},
		{
			name:   "mixed numeric and text is string",
			tokens: []string{"1", "two", "3"},
			want:   frame.TypeString,
		},
		{
			name:   "mixed boolean and numeric is string",
			tokens: []string{"T", "1"},
			want:   frame.TypeString,
		},
		{
			name:   "plain text",
			tokens: []string{"a", "b", "c"},
			want:   frame.TypeString,
		},
		{
			name:   "all nulls default to string",
			tokens: []string{"", "null", ""},
			want:   frame.TypeString,
		},
		{
			name:   "empty column defaults to string",
			tokens: nil,
			want:   frame.TypeString,
		},
		{
			name:   "uppercase NULL is not a null token",
			tokens: []string{"1", "NULL"},
			want:   frame.TypeString,
		},
		{
			name:   "Inf has no JSON representation",
			tokens: []string{"Inf", "1.5"},
			want:   frame.TypeString,
		},
		{
			name:   "NaN has no JSON representation",
			tokens: []string{"NaN", "1.5"},
			want:   frame.TypeString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifyColumn(tt.tokens))
		})
	}
}

func TestClassifyColumnIsDeterministic(t *testing.T) {
	tokens := []string{"1", "2.5", "null", "x", "T"}
	first := classifyColumn(tokens)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, classifyColumn(tokens))
	}
}
