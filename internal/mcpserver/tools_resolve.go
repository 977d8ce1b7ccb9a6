package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/kcoas/schemas"
)

type resolveTypeInput struct {
	Types []string `json:"types" jsonschema:"Type column texts exactly as shown on the page, e.g. integer(int64) or enum (A, B)"`
}

type resolution struct {
	Raw    string         `json:"raw"`
	Rule   string         `json:"rule"`
	Type   string         `json:"type"`
	Schema map[string]any `json:"schema"`
}

type resolveTypeOutput struct {
	Results []resolution `json:"results"`
}

func handleResolveType(_ context.Context, _ *mcp.CallToolRequest, input resolveTypeInput) (*mcp.CallToolResult, resolveTypeOutput, error) {
	if len(input.Types) == 0 {
		return errResult(fmt.Errorf("types must contain at least one entry")), resolveTypeOutput{}, nil
	}
	if len(input.Types) > cfg.MaxResolve {
		return errResult(fmt.Errorf("too many types: %d (maximum %d; set KCOAS_MAX_RESOLVE to increase)",
			len(input.Types), cfg.MaxResolve)), resolveTypeOutput{}, nil
	}

	output := resolveTypeOutput{Results: make([]resolution, 0, len(input.Types))}
	for _, raw := range input.Types {
		t := schemas.Resolve(raw)
		fragment, err := toMap(t.OpenAPI())
		if err != nil {
			return errResult(err), resolveTypeOutput{}, nil
		}
		output.Results = append(output.Results, resolution{
			Raw:    raw,
			Rule:   string(schemas.Classify(raw)),
			Type:   t.String(),
			Schema: fragment,
		})
	}
	return nil, output, nil
}

// toMap converts v to its generic JSON object form.
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}
	return out, nil
}
