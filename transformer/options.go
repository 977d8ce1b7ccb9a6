package transformer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/erraggy/kcoas/internal/options"
	"github.com/erraggy/kcoas/oaserrors"
	"github.com/erraggy/kcoas/parser"
)

// Option is a function that configures a transform operation
type Option func(*transformConfig) error

// transformConfig holds configuration for a transform operation
type transformConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	ctx                context.Context
	contentType        string
	encoding           string
	title              string
	apiVersion         string
	openAPIVersion     string
	userAgent          string
	httpClient         *http.Client
	insecureSkipVerify bool
	maxSize            int64
	logger             parser.Logger

	// Override SourcePath in the result
	sourceName *string
}

// TransformWithOptions converts a reference page using functional options.
//
// Example:
//
//	result, err := transformer.TransformWithOptions(
//	    transformer.WithFilePath("rest-api.html"),
//	    transformer.WithAPIVersion("6.0"),
//	)
func TransformWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("transformer: invalid options: %w", err)
	}

	t := &Transformer{
		Encoding:           cfg.encoding,
		Title:              cfg.title,
		APIVersion:         cfg.apiVersion,
		OpenAPIVersion:     cfg.openAPIVersion,
		UserAgent:          cfg.userAgent,
		HTTPClient:         cfg.httpClient,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		MaxSize:            cfg.maxSize,
		Logger:             cfg.logger,
	}

	var result *Result
	switch {
	case cfg.filePath != nil:
		result, err = t.TransformContext(cfg.ctx, *cfg.filePath)
	case cfg.reader != nil:
		result, err = t.transformSource(cfg.reader, cfg.contentType)
	default:
		result, err = t.transform(&source{path: "TransformBytes", data: cfg.bytes, contentType: cfg.contentType}, 0)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*transformConfig, error) {
	cfg := &transformConfig{
		ctx:            context.Background(),
		openAPIVersion: parser.DefaultOpenAPIVersion,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireOne(
		options.Source{Name: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Name: "WithReader", Set: cfg.reader != nil},
		options.Source{Name: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}

	if cfg.encoding != "" {
		if _, err := lookupEncoding(cfg.encoding); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithFilePath specifies a file path or http(s) URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *transformConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *transformConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *transformConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithContext bounds URL fetches. Ignored for reader and byte inputs.
func WithContext(ctx context.Context) Option {
	return func(cfg *transformConfig) error {
		if ctx == nil {
			return &oaserrors.ConfigError{Option: "context", Message: "context cannot be nil"}
		}
		cfg.ctx = ctx
		return nil
	}
}

// WithContentType supplies the Content-Type header that came with reader or
// byte input, used as a charset hint.
func WithContentType(contentType string) Option {
	return func(cfg *transformConfig) error {
		cfg.contentType = contentType
		return nil
	}
}

// WithEncoding forces the character set, e.g. "iso-8859-1"
func WithEncoding(label string) Option {
	return func(cfg *transformConfig) error {
		cfg.encoding = label
		return nil
	}
}

// WithTitle overrides info.title
func WithTitle(title string) Option {
	return func(cfg *transformConfig) error {
		cfg.title = title
		return nil
	}
}

// WithAPIVersion overrides info.version
func WithAPIVersion(version string) Option {
	return func(cfg *transformConfig) error {
		cfg.apiVersion = version
		return nil
	}
}

// WithOpenAPIVersion sets the "openapi" field. Only 3.x versions are accepted.
func WithOpenAPIVersion(version string) Option {
	return func(cfg *transformConfig) error {
		if err := checkOpenAPIVersion(version); err != nil {
			return err
		}
		cfg.openAPIVersion = version
		return nil
	}
}

// WithUserAgent sets the User-Agent for URL inputs
func WithUserAgent(userAgent string) Option {
	return func(cfg *transformConfig) error {
		cfg.userAgent = userAgent
		return nil
	}
}

// WithHTTPClient sets the client used for URL inputs
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *transformConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithInsecureSkipVerify disables TLS verification for URL inputs
func WithInsecureSkipVerify(enabled bool) Option {
	return func(cfg *transformConfig) error {
		cfg.insecureSkipVerify = enabled
		return nil
	}
}

// WithMaxSize caps the size of fetched pages in bytes
func WithMaxSize(size int64) Option {
	return func(cfg *transformConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "max-size", Value: size, Message: "must be non-negative"}
		}
		cfg.maxSize = size
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(l parser.Logger) Option {
	return func(cfg *transformConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides SourcePath in the result
func WithSourceName(name string) Option {
	return func(cfg *transformConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// checkOpenAPIVersion accepts 3.x versions only; the document always carries
// OAS 3 components.
func checkOpenAPIVersion(version string) error {
	if !strings.HasPrefix(version, "3.") {
		return &oaserrors.ConfigError{Option: "openapi", Value: version, Message: "only OpenAPI 3.x output is supported"}
	}
	return nil
}
