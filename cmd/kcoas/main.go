package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/kcoas"
	"github.com/erraggy/kcoas/cmd/kcoas/commands"
	"github.com/erraggy/kcoas/internal/mcpserver"
)

// commandNames lists the subcommands offered for typo suggestions.
var commandNames = []string{"transform", "schemas", "resolve", "diff", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("kcoas %s\n", kcoas.Version())
		fmt.Printf("commit: %s\n", kcoas.Commit())
		fmt.Printf("built: %s\n", kcoas.BuildTime())
		fmt.Printf("go: %s\n", kcoas.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "transform":
		err = commands.HandleTransform(args)
	case "schemas":
		err = commands.HandleSchemas(args)
	case "resolve":
		err = commands.HandleResolve(args)
	case "diff":
		err = commands.HandleDiff(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = mcpserver.Run(ctx)
		stop()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest command within edit distance 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`kcoas - Keycloak REST API reference to OpenAPI schemas

Usage:
  kcoas <command> [options]

Commands:
  transform   Convert a reference page into an OpenAPI document
  schemas     List the schemas defined by a reference page
  resolve     Show how type column texts resolve to schemas
  diff        Compare a reference page with an OpenAPI document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  kcoas transform rest-api.html
  kcoas transform --format yaml -o keycloak.yaml https://www.keycloak.org/docs-api/6.0/rest-api/index.html
  kcoas schemas --properties rest-api.html
  kcoas resolve 'enum (POSITIVE, NEGATIVE)'
  kcoas diff rest-api.html keycloak-6.0.json

Run 'kcoas <command> --help' for more information on a command.`)
}
