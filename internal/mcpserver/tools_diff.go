package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/kcoas/differ"
	"github.com/erraggy/kcoas/internal/options"
	"github.com/erraggy/kcoas/parser"
)

// referenceInput is an OpenAPI document given as a file or inline content.
type referenceInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document (JSON or YAML) on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

func (r referenceInput) load() (*parser.OAS3Document, error) {
	if err := options.RequireOne(
		options.Source{Name: "reference.file", Set: r.File != ""},
		options.Source{Name: "reference.content", Set: r.Content != ""},
	); err != nil {
		return nil, err
	}
	if r.Content != "" {
		if int64(len(r.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline reference size %d bytes exceeds maximum %d bytes", len(r.Content), cfg.MaxInlineSize)
		}
		result, err := parser.New().ParseReader(strings.NewReader(r.Content))
		if err != nil {
			return nil, err
		}
		return result.Document, nil
	}
	result, err := parser.New().Parse(r.File)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

type diffInput struct {
	Page        pageInput      `json:"page"                   jsonschema:"The reference page to extract schemas from"`
	Reference   referenceInput `json:"reference"              jsonschema:"The OpenAPI document to compare against"`
	Encoding    string         `json:"encoding,omitempty"     jsonschema:"Character set label of the page (default: detect)"`
	IgnoreAdded bool           `json:"ignore_added,omitempty" jsonschema:"Do not report schemas or properties missing from the reference"`
}

type diffChange struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type diffOutput struct {
	Identical     bool         `json:"identical"`
	PageSchemas   int          `json:"page_schemas"`
	RefSchemas    int          `json:"reference_schemas"`
	AddedCount    int          `json:"added"`
	RemovedCount  int          `json:"removed"`
	ModifiedCount int          `json:"modified"`
	Changes       []diffChange `json:"changes,omitempty"`
}

func handleDiff(ctx context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	reference, err := input.Reference.load()
	if err != nil {
		return errResult(fmt.Errorf("reference: %w", err)), diffOutput{}, nil
	}
	page, err := input.Page.resolve(ctx, pageOptions{Encoding: input.Encoding})
	if err != nil {
		return errResult(fmt.Errorf("page: %w", err)), diffOutput{}, nil
	}

	d := differ.New()
	d.IgnoreAdded = input.IgnoreAdded
	result, err := d.Diff(reference, page.Document)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	output := diffOutput{
		Identical:     !result.HasChanges(),
		PageSchemas:   result.TargetSchemaCount,
		RefSchemas:    result.SourceSchemaCount,
		AddedCount:    result.AddedCount,
		RemovedCount:  result.RemovedCount,
		ModifiedCount: result.ModifiedCount,
		Changes:       makeSlice[diffChange](len(result.Changes)),
	}
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, diffChange{Path: c.Path, Type: string(c.Type), Message: c.Message})
	}
	return nil, output, nil
}
