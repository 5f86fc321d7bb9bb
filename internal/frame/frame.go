// Package frame defines the typed, columnar, nullable data structure produced
// by CSV ingestion and consumed by the query layer.
//
// A [Frame] is a named, ordered collection of equal-length [Field] columns.
// Each Field holds one column of nullable scalars of a single [FieldType].
// Null-ness is tracked separately from zero values using pgtype's Valid flag,
// so an empty cell and the string "0" never collapse into the same value.
//
// Frames are value objects: they are assembled once by the ingest package and
// never mutated afterwards. Serialization to the schema+data JSON shape lives
// in json.go.
package frame

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// FieldType identifies the semantic type of a column.
type FieldType int

const (
	TypeBool FieldType = iota
	TypeInt
	TypeFloat
	TypeString
)

// String returns the type name used in logs and error messages.
func (t FieldType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int64"
	case TypeFloat:
		return "float64"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Field is one typed, nullable, ordered column of a Frame.
//
// Exactly one of the value slices is populated, matching Type. Null entries
// carry Valid=false; the stored scalar is then meaningless.
type Field struct {
	Name string
	Type FieldType

	bools   []pgtype.Bool
	ints    []pgtype.Int8
	floats  []pgtype.Float8
	strings []pgtype.Text
}

// NewBoolField creates a boolean column.
func NewBoolField(name string, values []pgtype.Bool) *Field {
	return &Field{Name: name, Type: TypeBool, bools: values}
}

// NewIntField creates a 64-bit integer column.
func NewIntField(name string, values []pgtype.Int8) *Field {
	return &Field{Name: name, Type: TypeInt, ints: values}
}

// NewFloatField creates a 64-bit float column.
func NewFloatField(name string, values []pgtype.Float8) *Field {
	return &Field{Name: name, Type: TypeFloat, floats: values}
}

// NewStringField creates a string column.
func NewStringField(name string, values []pgtype.Text) *Field {
	return &Field{Name: name, Type: TypeString, strings: values}
}

// Len returns the number of rows in the column, nulls included.
func (f *Field) Len() int {
	switch f.Type {
	case TypeBool:
		return len(f.bools)
	case TypeInt:
		return len(f.ints)
	case TypeFloat:
		return len(f.floats)
	default:
		return len(f.strings)
	}
}

// At returns the value at row i as a native Go scalar, or nil for null.
// The concrete type is bool, int64, float64 or string depending on Type.
func (f *Field) At(i int) any {
	switch f.Type {
	case TypeBool:
		if v := f.bools[i]; v.Valid {
			return v.Bool
		}
	case TypeInt:
		if v := f.ints[i]; v.Valid {
			return v.Int64
		}
	case TypeFloat:
		if v := f.floats[i]; v.Valid {
			return v.Float64
		}
	default:
		if v := f.strings[i]; v.Valid {
			return v.String
		}
	}
	return nil
}

// Frame is a named, ordered sequence of Fields.
//
// The name is advisory (display and snapshot output only); column order is
// significant and preserved from the source.
type Frame struct {
	Name   string
	Fields []*Field
}

// New creates a Frame from the given fields, preserving their order.
func New(name string, fields ...*Field) *Frame {
	return &Frame{Name: name, Fields: fields}
}

// Rows returns the row count shared by all fields, or 0 for an empty frame.
func (f *Frame) Rows() int {
	if len(f.Fields) == 0 {
		return 0
	}
	return f.Fields[0].Len()
}

// Validate checks the equal-length invariant across all fields.
func (f *Frame) Validate() error {
	if len(f.Fields) == 0 {
		return nil
	}
	want := f.Fields[0].Len()
	for _, fld := range f.Fields[1:] {
		if fld.Len() != want {
			return fmt.Errorf("frame %q: field %q has %d rows, expected %d",
				f.Name, fld.Name, fld.Len(), want)
		}
	}
	return nil
}
