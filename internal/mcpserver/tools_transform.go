package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/kcoas/transformer"
)

type transformInput struct {
	Page       pageInput `json:"page"                  jsonschema:"The reference page to transform"`
	Encoding   string    `json:"encoding,omitempty"    jsonschema:"Character set label of the page, e.g. iso-8859-1 (default: detect)"`
	Title      string    `json:"title,omitempty"       jsonschema:"Override info.title"`
	APIVersion string    `json:"api_version,omitempty" jsonschema:"Override info.version"`
	Full       bool      `json:"full,omitempty"        jsonschema:"Return the full OpenAPI document in addition to the summary"`
	Format     string    `json:"format,omitempty"      jsonschema:"Format of the full document: json or yaml (default from KCOAS_OUTPUT_FORMAT)"`
}

type schemaSummary struct {
	Name          string `json:"name"`
	PropertyCount int    `json:"property_count"`
}

type transformOutput struct {
	Title         string          `json:"title"`
	Version       string          `json:"version"`
	OpenAPI       string          `json:"openapi"`
	Encoding      string          `json:"encoding"`
	SchemaCount   int             `json:"schema_count"`
	PropertyCount int             `json:"property_count"`
	EnumCount     int             `json:"enum_count"`
	FallbackCount int             `json:"fallback_count"`
	Schemas       []schemaSummary `json:"schemas,omitempty"`
	FullDocument  string          `json:"full_document,omitempty"`
}

func handleTransform(ctx context.Context, _ *mcp.CallToolRequest, input transformInput) (*mcp.CallToolResult, transformOutput, error) {
	format := input.Format
	if format == "" {
		format = cfg.OutputFormat
	}
	if format != string(transformer.FormatJSON) && format != string(transformer.FormatYAML) {
		return errResult(fmt.Errorf("invalid format %q; valid formats: json, yaml", input.Format)), transformOutput{}, nil
	}

	result, err := input.Page.resolve(ctx, pageOptions{
		Encoding:   input.Encoding,
		Title:      input.Title,
		APIVersion: input.APIVersion,
	})
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}

	doc := result.Document
	output := transformOutput{
		Title:         doc.Info.Title,
		Version:       doc.Info.Version,
		OpenAPI:       doc.OpenAPI,
		Encoding:      result.Encoding,
		SchemaCount:   result.Stats.SchemaCount,
		PropertyCount: result.Stats.PropertyCount,
		EnumCount:     result.Stats.EnumCount,
		FallbackCount: result.Stats.FallbackCount,
		Schemas:       makeSlice[schemaSummary](result.Schemas.Len()),
	}
	for name, s := range result.Schemas.All() {
		output.Schemas = append(output.Schemas, schemaSummary{Name: name, PropertyCount: s.Len()})
	}

	if input.Full {
		data, err := result.Marshal(transformer.Format(format))
		if err != nil {
			return errResult(err), transformOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
