package parser

// Schema represents a JSON Schema object as used by OpenAPI 3.0.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type any   `yaml:"type,omitempty" json:"type,omitempty"` // string or []string
	Enum []any `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Array validation
	Items       any  `yaml:"items,omitempty" json:"items,omitempty"` // *Schema when built, map when decoded
	MaxItems    *int `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`

	// OAS specific
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Format
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // e.g., "int32", "int64", "float"

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// TypeName returns the schema's type when it is a single string, or "".
func (s *Schema) TypeName() string {
	if s == nil {
		return ""
	}
	if t, ok := s.Type.(string); ok {
		return t
	}
	return ""
}
