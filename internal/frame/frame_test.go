package frame

import (
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestFieldAt(t *testing.T) {
	f := NewIntField("n", []pgtype.Int8{
		{Int64: 1, Valid: true},
		{},
		{Int64: -7, Valid: true},
	})

	require.Equal(t, 3, f.Len())
	require.Equal(t, int64(1), f.At(0))
	require.Nil(t, f.At(1))
	require.Equal(t, int64(-7), f.At(2))
}

func TestFieldTypeString(t *testing.T) {
	require.Equal(t, "bool", TypeBool.String())
	require.Equal(t, "int64", TypeInt.String())
	require.Equal(t, "float64", TypeFloat.String())
	require.Equal(t, "string", TypeString.String())
}

func TestFrameValidate(t *testing.T) {
	a := NewBoolField("a", []pgtype.Bool{{Bool: true, Valid: true}})
	b := NewStringField("b", []pgtype.Text{
		{String: "x", Valid: true},
		{String: "y", Valid: true},
	})

	require.NoError(t, New("ok", a).Validate())
	require.NoError(t, New("empty").Validate())

	err := New("broken", a, b).Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `field "b" has 2 rows, expected 1`)
}

func TestMarshalJSONShape(t *testing.T) {
	f := New("demo",
		NewBoolField("flag", []pgtype.Bool{
			{Bool: true, Valid: true},
			{},
		}),
		NewFloatField("ratio", []pgtype.Float8{
			{Float64: 1.5, Valid: true},
			{Float64: -0.25, Valid: true},
		}),
	)

	out, err := json.Marshal(f)
	require.NoError(t, err)

	require.JSONEq(t, `{
		"schema": {
			"name": "demo",
			"fields": [
				{"name": "flag", "type": "boolean", "typeInfo": {"frame": "bool", "nullable": true}},
				{"name": "ratio", "type": "number", "typeInfo": {"frame": "float64", "nullable": true}}
			]
		},
		"data": {"values": [[true, null], [1.5, -0.25]]}
	}`, string(out))
}

func TestMarshalJSONOmitsEmptyNames(t *testing.T) {
	f := New("", NewStringField("", []pgtype.Text{{String: "a", Valid: true}}))

	out, err := json.Marshal(f)
	require.NoError(t, err)

	require.NotContains(t, string(out), `"name"`)
}

func TestMarshalJSONEmptyFrame(t *testing.T) {
	out, err := json.Marshal(New("empty"))
	require.NoError(t, err)
	require.JSONEq(t, `{"schema":{"name":"empty","fields":[]},"data":{"values":[]}}`, string(out))
}
