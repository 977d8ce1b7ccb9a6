// Package commands provides CLI command handlers for kcoas.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/kcoas"
	"github.com/erraggy/kcoas/internal/cliutil"
	"github.com/erraggy/kcoas/parser"
	"github.com/erraggy/kcoas/transformer"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateDocumentFormat validates the format of a written OpenAPI document.
func ValidateDocumentFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// FormatSourcePath returns a display-friendly path for the reference page.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSourcePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// NewLogger returns a debug-level text logger on stderr when verbose is set,
// and a no-op logger otherwise.
func NewLogger(verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// loadPage runs t on a file path, URL, or stdin.
func loadPage(t *transformer.Transformer, path string) (*transformer.Result, error) {
	if path == StdinFilePath {
		result, err := t.TransformReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("transforming stdin: %w", err)
		}
		return result, nil
	}
	result, err := t.TransformContext(context.Background(), path)
	if err != nil {
		return nil, fmt.Errorf("transforming %s: %w", path, err)
	}
	return result, nil
}

// OutputSourceHeader outputs the common source header to stderr.
func OutputSourceHeader(path string, result *transformer.Result) {
	Writef(os.Stderr, "kcoas version: %s\n", kcoas.Version())
	Writef(os.Stderr, "Reference: %s\n", FormatSourcePath(path))
	Writef(os.Stderr, "Encoding: %s\n", result.Encoding)
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
}

// OutputStats outputs extraction statistics to stderr.
func OutputStats(stats transformer.Stats) {
	Writef(os.Stderr, "Schemas: %d\n", stats.SchemaCount)
	Writef(os.Stderr, "Properties: %d\n", stats.PropertyCount)
	Writef(os.Stderr, "Enumerations: %d\n", stats.EnumCount)
	Writef(os.Stderr, "Unrecognized types (as string): %d\n", stats.FallbackCount)
}
