package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransposeWithHeader(t *testing.T) {
	in := "a,b\n1,2\n3,4\n"

	cols, err := transpose(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Len(t, cols, 2)

	require.Equal(t, "a", cols[0].name)
	require.Equal(t, []string{"1", "3"}, cols[0].tokens)
	require.Equal(t, "b", cols[1].name)
	require.Equal(t, []string{"2", "4"}, cols[1].tokens)
}

func TestTransposeHeaderless(t *testing.T) {
	in := "1,2,3\n4,5,6\n"

	cols, err := transpose(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, cols, 3)

	require.Equal(t, "Field 1", cols[0].name)
	require.Equal(t, "Field 2", cols[1].name)
	require.Equal(t, "Field 3", cols[2].name)
	require.Equal(t, []string{"1", "4"}, cols[0].tokens)
}

func TestTransposeSkipsBlankLines(t *testing.T) {
	in := "a,b\n\n1,2\n   \n3,4\n"

	cols, err := transpose(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, cols[0].tokens)
	require.Equal(t, []string{"2", "4"}, cols[1].tokens)
}

func TestTransposeRowWidthMismatch(t *testing.T) {
	in := "a,b\n1,2\n1,2,3\n"

	_, err := transpose(strings.NewReader(in), true)
	require.Error(t, err)

	var widthErr *RowWidthMismatchError
	require.ErrorAs(t, err, &widthErr)
	require.Equal(t, 3, widthErr.Line)
	require.Equal(t, 2, widthErr.Expected)
	require.Equal(t, 3, widthErr.Actual)
	require.Equal(t, "line 3: row has 3 columns, expected 2", err.Error())
}

func TestTransposeRowWidthMismatchHeaderless(t *testing.T) {
	in := "1,2\n3\n"

	_, err := transpose(strings.NewReader(in), false)

	var widthErr *RowWidthMismatchError
	require.ErrorAs(t, err, &widthErr)
	require.Equal(t, 2, widthErr.Line)
	require.Equal(t, 2, widthErr.Expected)
	require.Equal(t, 1, widthErr.Actual)
}

func TestTransposeEmptyInput(t *testing.T) {
	cols, err := transpose(strings.NewReader(""), true)
	require.NoError(t, err)
	require.Empty(t, cols)
}

func TestTransposeSkipsBOM(t *testing.T) {
	in := "\xEF\xBB\xBFa,b\n1,2\n"

	cols, err := transpose(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Equal(t, "a", cols[0].name)
}
