package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/kcoas/parser"
)

func TestTypeOpenAPI(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		want *parser.Schema
	}{
		{"string", String(), &parser.Schema{Type: "string"}},
		{"enum", String("A", "B"), &parser.Schema{Type: "string", Enum: []any{"A", "B"}}},
		{"int32", Integer(FormatInt32), &parser.Schema{Type: "integer", Format: "int32"}},
		{"int64", Integer(FormatInt64), &parser.Schema{Type: "integer", Format: "int64"}},
		{"float", Number(FormatFloat), &parser.Schema{Type: "number", Format: "float"}},
		{"boolean", Boolean(), &parser.Schema{Type: "boolean"}},
		{"array", ArrayOf(String()), &parser.Schema{Type: "array", Items: &parser.Schema{Type: "string"}}},
		{"object", Object(), &parser.Schema{Type: "object"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.OpenAPI())
		})
	}
}

func TestSchemaOpenAPI(t *testing.T) {
	s := NewSchema("MultivaluedHashMap")
	s.Set("empty", Boolean())
	s.Set("loadFactor", Number(FormatFloat))

	got := s.OpenAPI()
	assert.Equal(t, "object", got.Type)
	require.Len(t, got.Properties, 2)
	assert.Equal(t, &parser.Schema{Type: "number", Format: "float"}, got.Properties["loadFactor"])

	empty := NewSchema("Empty").OpenAPI()
	assert.Nil(t, empty.Properties)
}

func TestMapOpenAPI(t *testing.T) {
	m := NewMap()
	a := NewSchema("A")
	a.Set("id", String())
	m.Set(a)
	m.Set(NewSchema("B"))

	got := m.OpenAPI()
	require.Len(t, got, 2)
	assert.Contains(t, got, "A")
	assert.Contains(t, got, "B")
	assert.Equal(t, &parser.Schema{Type: "string"}, got["A"].Properties["id"])
}
