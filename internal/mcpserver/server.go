// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes kcoas capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/kcoas"
)

const serverInstructions = `kcoas MCP server: converts Keycloak REST API reference pages (the Asciidoctor-generated HTML) into OpenAPI component schemas.

Tools:
- transform: extract every definition of a reference page as an OpenAPI schema; returns a summary or the full document
- resolve_type: show how the type column text of a definition table resolves
- diff: compare the schemas of a reference page with an OpenAPI document

Configuration: All defaults are configurable via KCOAS_* environment variables set in your MCP client config.

Key settings:
- KCOAS_MAX_INLINE_SIZE (default: 10485760) - maximum inline content size in bytes
- KCOAS_ALLOW_URLS (default: true) - allow url inputs
- KCOAS_ALLOW_PRIVATE_IPS (default: false) - allow url inputs that resolve to private addresses
- KCOAS_OUTPUT_FORMAT (default: json) - format of full documents (json or yaml)
- KCOAS_CACHE_ENABLED (default: true) - disable result caching entirely
- KCOAS_CACHE_FILE_TTL (default: 15m), KCOAS_CACHE_URL_TTL (default: 5m) - cache TTLs

Caching: Transform results are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer(ctx).Run(ctx, &mcp.StdioTransport{})
}

func newServer(ctx context.Context) *mcp.Server {
	if cfg.CacheEnabled {
		pageCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "kcoas", Version: kcoas.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform",
		Description: "Convert a Keycloak REST API reference page (HTML) into OpenAPI component schemas. Provide the page as file, url, or inline content. Returns a summary: info title and version, schema names with property counts, and how many type texts were unrecognized and became plain strings. Use full=true to also return the whole OpenAPI document (format json or yaml). A page whose definition sections do not have the expected layout returns an error naming the failing selector.",
	}, handleTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_type",
		Description: "Resolve type column texts of a reference page definition table to OpenAPI schemas. Rules, first match wins: 'enum (A, B)' becomes a string enumeration; integer(int32), integer(int64), number(float), boolean, '< string > array', Map and Object map to fixed schemas; anything else becomes a plain string. Returns the rule that matched for each text.",
	}, handleResolveType)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare the schemas extracted from a reference page against the component schemas of an OpenAPI document (JSON or YAML), e.g. a reviewed golden file. Reports schemas and properties missing from the page (removed), not in the reference (added), or resolved differently (modified). Use ignore_added when the reference covers only part of the page.",
	}, handleDiff)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
