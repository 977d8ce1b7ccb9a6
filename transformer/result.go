package transformer

import (
	"encoding/json"
	"fmt"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/kcoas/parser"
	"github.com/erraggy/kcoas/schemas"
)

// Format is an output serialization format.
type Format string

const (
	// FormatJSON is indented JSON
	FormatJSON Format = "json"
	// FormatYAML is YAML
	FormatYAML Format = "yaml"
)

// Stats summarizes what was extracted.
type Stats struct {
	// SchemaCount is the number of distinct schema names
	SchemaCount int `json:"schema_count"`
	// PropertyCount is the number of distinct properties over all schemas
	PropertyCount int `json:"property_count"`
	// EnumCount is the number of rows resolved as enumerations
	EnumCount int `json:"enum_count"`
	// FallbackCount is the number of rows whose type text was not recognized
	// and became a plain string
	FallbackCount int `json:"fallback_count"`
}

// Result is the outcome of a transform. Treat it as read-only.
type Result struct {
	// Document is the assembled OpenAPI document
	Document *parser.OAS3Document
	// Schemas are the extracted schemas in document order
	Schemas *schemas.Map
	// SourcePath is the file path or URL read, or TransformReader/TransformBytes
	SourcePath string
	// SourceSize is the size of the raw input in bytes
	SourceSize int64
	// Encoding is the name of the character set the input was decoded from
	Encoding string
	// LoadTime is the time spent reading or fetching the input
	LoadTime time.Duration
	// Stats summarizes the extraction
	Stats Stats
}

// Marshal serializes the OpenAPI document.
func (r *Result) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(r.Document, "", "  ")
	case FormatYAML:
		return yaml.Marshal(r.Document)
	default:
		return nil, fmt.Errorf("transformer: unsupported format %q", format)
	}
}
