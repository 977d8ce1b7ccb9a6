package schemas

import (
	"iter"
	"slices"
)

// Property is one named, resolved property of a schema.
type Property struct {
	Name string
	Type Type
}

// Schema is the resolved definition of one section: its properties in row order.
//
// Property names are unique. Setting an existing name replaces its type and
// keeps its original position.
type Schema struct {
	Name string

	props []Property
	index map[string]int
}

// NewSchema returns an empty schema with the given name.
func NewSchema(name string) *Schema {
	return &Schema{Name: name, index: make(map[string]int)}
}

// Set adds or replaces the property called name.
func (s *Schema) Set(name string, t Type) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.props[i].Type = t
		return
	}
	s.index[name] = len(s.props)
	s.props = append(s.props, Property{Name: name, Type: t})
}

// Get returns the type of the property called name.
func (s *Schema) Get(name string) (Type, bool) {
	i, ok := s.index[name]
	if !ok {
		return Type{}, false
	}
	return s.props[i].Type, true
}

// Properties returns the properties in row order. The slice is a copy.
func (s *Schema) Properties() []Property {
	return slices.Clone(s.props)
}

// Len returns the number of properties.
func (s *Schema) Len() int {
	return len(s.props)
}

// Map is the set of schemas of one document, keyed by name.
//
// Names iterate in the order their section first appeared. Setting a schema
// whose name is already present replaces it in place (last write wins).
type Map struct {
	names   []string
	schemas map[string]*Schema
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{schemas: make(map[string]*Schema)}
}

// Set stores s under s.Name.
func (m *Map) Set(s *Schema) {
	if m.schemas == nil {
		m.schemas = make(map[string]*Schema)
	}
	if _, ok := m.schemas[s.Name]; !ok {
		m.names = append(m.names, s.Name)
	}
	m.schemas[s.Name] = s
}

// Get returns the schema called name.
func (m *Map) Get(name string) (*Schema, bool) {
	s, ok := m.schemas[name]
	return s, ok
}

// Names returns schema names in document order. The slice is a copy.
func (m *Map) Names() []string {
	return slices.Clone(m.names)
}

// Len returns the number of schemas.
func (m *Map) Len() int {
	return len(m.names)
}

// All iterates over the schemas in document order.
func (m *Map) All() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		for _, name := range m.names {
			if !yield(name, m.schemas[name]) {
				return
			}
		}
	}
}
