package frame

// json.go serializes a Frame into the schema+data JSON shape consumed by the
// query layer and verified byte-for-byte by snapshot tests:
//
//	{
//	  "schema": {"name": ..., "fields": [
//	    {"name": ..., "type": "boolean", "typeInfo": {"frame": "bool", "nullable": true}}
//	  ]},
//	  "data": {"values": [[true, null, false], ...]}
//	}
//
// The type tag is one of boolean|number|string; typeInfo.frame carries the
// storage type. Null entries are the JSON null literal. Conversion from
// pgtype storage to plain values happens here so the encoder output depends
// only on this file, keeping snapshots stable.

import "encoding/json"

type typeInfo struct {
	Frame    string `json:"frame"`
	Nullable bool   `json:"nullable"`
}

type schemaField struct {
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type"`
	TypeInfo typeInfo `json:"typeInfo"`
}

type frameSchema struct {
	Name   string        `json:"name,omitempty"`
	Fields []schemaField `json:"fields"`
}

type frameData struct {
	Values [][]any `json:"values"`
}

type frameJSON struct {
	Schema frameSchema `json:"schema"`
	Data   frameData   `json:"data"`
}

// typeTag returns the wire type tag for a field type.
func typeTag(t FieldType) string {
	switch t {
	case TypeBool:
		return "boolean"
	case TypeInt, TypeFloat:
		return "number"
	default:
		return "string"
	}
}

// MarshalJSON implements json.Marshaler, producing the schema+data shape.
func (f *Frame) MarshalJSON() ([]byte, error) {
	out := frameJSON{
		Schema: frameSchema{
			Name:   f.Name,
			Fields: make([]schemaField, 0, len(f.Fields)),
		},
		Data: frameData{
			Values: make([][]any, 0, len(f.Fields)),
		},
	}

	for _, fld := range f.Fields {
		out.Schema.Fields = append(out.Schema.Fields, schemaField{
			Name: fld.Name,
			Type: typeTag(fld.Type),
			TypeInfo: typeInfo{
				Frame:    fld.Type.String(),
				Nullable: true,
			},
		})

		column := make([]any, fld.Len())
		for i := range column {
			column[i] = fld.At(i)
		}
		out.Data.Values = append(out.Data.Values, column)
	}

	return json.Marshal(out)
}
