package parser

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/kcoas/oaserrors"
)

// Parser loads OpenAPI 3.x documents from JSON or YAML.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains a loaded OpenAPI document and metadata about its source.
// Callers should treat it as read-only.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// For readers and byte slices it is "ParseReader.<fmt>" or "ParseBytes.<fmt>".
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the "openapi" field of the document
	Version string
	// Document is the decoded document
	Document *OAS3Document
	// SourceSize is the size of the source in bytes
	SourceSize int64
	// LoadTime is the time spent reading the source
	LoadTime time.Duration
}

// Parse reads and parses an OpenAPI document file.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided input
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}

	res, err := p.parseBytes(data, path)
	if err != nil {
		return nil, err
	}
	res.SourcePath = path
	res.LoadTime = loadTime
	if format := detectFormatFromPath(path); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an OpenAPI document from an io.Reader.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "ParseReader", Message: "failed to read data", Cause: err}
	}
	res, err := p.parseBytes(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses an OpenAPI document from a byte slice.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, "ParseBytes")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

func (p *Parser) parseBytes(data []byte, source string) (*ParseResult, error) {
	format := detectFormatFromContent(data)
	if format == SourceFormatUnknown {
		return nil, &oaserrors.ParseError{Path: source, Message: "empty document"}
	}

	doc := &OAS3Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: fmt.Sprintf("failed to decode %s", format), Cause: err}
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: fmt.Sprintf("unsupported openapi version %q: only 3.x documents are supported", doc.OpenAPI),
		}
	}

	p.log().Debug("parsed OpenAPI document",
		"source", source,
		"format", string(format),
		"version", doc.OpenAPI,
		"schemas", doc.SchemaCount())

	return &ParseResult{
		SourceFormat: format,
		Version:      doc.OpenAPI,
		Document:     doc,
		SourceSize:   int64(len(data)),
	}, nil
}
