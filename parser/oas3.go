package parser

// DefaultOpenAPIVersion is the OpenAPI version written by kcoas unless overridden.
const DefaultOpenAPIVersion = "3.0.3"

// OAS3Document represents an OpenAPI Specification 3.x document
// Reference: https://spec.openapis.org/oas/v3.0.3.html
type OAS3Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"` // Required: "3.0.x"
	Info       *Info       `yaml:"info" json:"info"`       // Required
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths" json:"paths"` // Required in 3.0
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS.
// Only schemas are modeled; other component kinds land in Extra when decoding.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`

	// Extra captures the remaining component maps and extensions
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path.
// Operations are kept undecoded in Extra.
type PathItem struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Extra captures operations and extensions
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaCount returns the number of component schemas in the document.
func (d *OAS3Document) SchemaCount() int {
	if d == nil || d.Components == nil {
		return 0
	}
	return len(d.Components.Schemas)
}

// Schema returns the named component schema, if present.
func (d *OAS3Document) Schema(name string) (*Schema, bool) {
	if d == nil || d.Components == nil {
		return nil, false
	}
	s, ok := d.Components.Schemas[name]
	return s, ok
}
