package transformer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html"

	"github.com/erraggy/kcoas/oaserrors"
	"github.com/erraggy/kcoas/parser"
	"github.com/erraggy/kcoas/schemas"
)

// Transformer converts Keycloak REST API reference pages into OpenAPI documents.
type Transformer struct {
	// Encoding forces a character set label (e.g. "utf-8", "iso-8859-1").
	// Empty means sniff it from the document.
	Encoding string
	// Title overrides the info.title read from the page header
	Title string
	// APIVersion overrides the info.version read from the overview section
	APIVersion string
	// OpenAPIVersion is the "openapi" field of the output.
	// Defaults to parser.DefaultOpenAPIVersion.
	OpenAPIVersion string
	// UserAgent is sent when fetching URLs. Defaults to kcoas.UserAgent().
	UserAgent string
	// HTTPClient is used for URL inputs. If nil, a client with a 30-second
	// timeout is created.
	HTTPClient *http.Client
	// InsecureSkipVerify disables TLS verification for URL inputs.
	// Ignored when HTTPClient is set.
	InsecureSkipVerify bool
	// MaxSize caps the size of fetched pages in bytes. 0 means 64 MiB.
	MaxSize int64
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Transformer with default settings.
func New() *Transformer {
	return &Transformer{OpenAPIVersion: parser.DefaultOpenAPIVersion}
}

func (t *Transformer) log() parser.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return parser.NopLogger{}
}

// Transform reads a file path or http(s) URL and converts it.
func (t *Transformer) Transform(path string) (*Result, error) {
	return t.TransformContext(context.Background(), path)
}

// TransformContext is like Transform; ctx bounds URL fetches.
func (t *Transformer) TransformContext(ctx context.Context, path string) (*Result, error) {
	loadStart := time.Now()
	src, err := t.readPath(ctx, path)
	if err != nil {
		return nil, err
	}
	return t.transform(src, time.Since(loadStart))
}

// TransformReader reads r to the end and converts it.
func (t *Transformer) TransformReader(r io.Reader) (*Result, error) {
	return t.transformSource(r, "")
}

func (t *Transformer) transformSource(r io.Reader, contentType string) (*Result, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "TransformReader", Message: "failed to read data", Cause: err}
	}
	return t.transform(&source{path: "TransformReader", data: data, contentType: contentType}, time.Since(loadStart))
}

// TransformBytes converts an in-memory page.
func (t *Transformer) TransformBytes(data []byte) (*Result, error) {
	return t.transform(&source{path: "TransformBytes", data: data}, 0)
}

func (t *Transformer) transform(src *source, loadTime time.Duration) (*Result, error) {
	if t.OpenAPIVersion != "" {
		if err := checkOpenAPIVersion(t.OpenAPIVersion); err != nil {
			return nil, err
		}
	}
	log := t.log().With("source", src.path)
	start := time.Now()

	utf8, encodingName, err := decode(src, t.Encoding)
	if err != nil {
		return nil, err
	}
	doc, err := parseHTML(src.path, utf8)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed reference page", "encoding", encodingName, "size", parser.FormatBytes(int64(len(src.data))))

	schemaMap, stats, err := extract(doc, log)
	if err != nil {
		log.Error("unsupported page layout", "error", err)
		return nil, fmt.Errorf("transformer: %w", err)
	}

	result := &Result{
		Document:   t.assemble(doc, schemaMap),
		Schemas:    schemaMap,
		SourcePath: src.path,
		SourceSize: int64(len(src.data)),
		Encoding:   encodingName,
		LoadTime:   loadTime,
		Stats:      stats,
	}
	log.Info("transform complete",
		"schemas", stats.SchemaCount,
		"properties", stats.PropertyCount,
		"fallbacks", stats.FallbackCount,
		"duration", time.Since(start))
	return result, nil
}

// extract runs the section extractor. A layout mismatch panics inside the
// schemas package; it is turned into an error here and nothing is returned.
func extract(doc *html.Node, log parser.Logger) (m *schemas.Map, stats Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			structErr, ok := r.(*oaserrors.StructureError)
			if !ok {
				panic(r)
			}
			m, stats, err = nil, Stats{}, structErr
		}
	}()

	m = schemas.NewMap()
	for _, section := range schemas.Sections(doc) {
		for _, row := range section.Rows {
			switch schemas.Classify(row.RawType) {
			case schemas.RuleEnum:
				stats.EnumCount++
			case schemas.RuleFallback:
				stats.FallbackCount++
			}
		}
		schema := section.Schema()
		log.Debug("extracted schema", "name", section.Name, "properties", schema.Len())
		m.Set(schema)
	}

	stats.SchemaCount = m.Len()
	for _, s := range m.All() {
		stats.PropertyCount += s.Len()
	}
	return m, stats, nil
}

// assemble wraps the schemas in an OpenAPI document.
func (t *Transformer) assemble(doc *html.Node, m *schemas.Map) *parser.OAS3Document {
	title, version := pageInfo(doc)
	if t.Title != "" {
		title = t.Title
	}
	if title == "" {
		title = DefaultTitle
	}
	if t.APIVersion != "" {
		version = t.APIVersion
	}
	if version == "" {
		version = DefaultAPIVersion
	}
	openAPI := t.OpenAPIVersion
	if openAPI == "" {
		openAPI = parser.DefaultOpenAPIVersion
	}

	return &parser.OAS3Document{
		OpenAPI: openAPI,
		Info: &parser.Info{
			Title:   title,
			Version: version,
		},
		Paths: parser.Paths{},
		Components: &parser.Components{
			Schemas: m.OpenAPI(),
		},
	}
}
