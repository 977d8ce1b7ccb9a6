package schemas

import "github.com/erraggy/kcoas/parser"

// OpenAPI returns t as an OpenAPI schema.
func (t Type) OpenAPI() *parser.Schema {
	s := &parser.Schema{Type: t.Kind.String(), Format: string(t.Format)}
	if len(t.Enum) > 0 {
		s.Enum = make([]any, len(t.Enum))
		for i, v := range t.Enum {
			s.Enum[i] = v
		}
	}
	if t.Kind == KindArray && t.Items != nil {
		s.Items = t.Items.OpenAPI()
	}
	return s
}

// OpenAPI returns s as an OpenAPI object schema. A schema without properties
// has no properties key.
func (s *Schema) OpenAPI() *parser.Schema {
	out := &parser.Schema{Type: KindObject.String()}
	if len(s.props) == 0 {
		return out
	}
	out.Properties = make(map[string]*parser.Schema, len(s.props))
	for _, p := range s.props {
		out.Properties[p.Name] = p.Type.OpenAPI()
	}
	return out
}

// OpenAPI returns the schemas keyed by name, ready for components/schemas.
func (m *Map) OpenAPI() map[string]*parser.Schema {
	out := make(map[string]*parser.Schema, len(m.names))
	for name, s := range m.All() {
		out[name] = s.OpenAPI()
	}
	return out
}
