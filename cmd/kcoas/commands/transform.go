package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/kcoas/internal/cliutil"
	"github.com/erraggy/kcoas/parser"
	"github.com/erraggy/kcoas/transformer"
)

// TransformFlags contains flags for the transform command
type TransformFlags struct {
	Format         string
	Output         string
	Encoding       string
	Title          string
	APIVersion     string
	OpenAPIVersion string
	Insecure       bool
	Quiet          bool
	Verbose        bool
}

// SetupTransformFlags creates and configures a FlagSet for the transform command.
// Returns the FlagSet and a TransformFlags struct with bound flag variables.
func SetupTransformFlags() (*flag.FlagSet, *TransformFlags) {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	flags := &TransformFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Encoding, "encoding", "", "character set of the page (default: detect)")
	fs.StringVar(&flags.Title, "title", "", "override info.title")
	fs.StringVar(&flags.APIVersion, "api-version", "", "override info.version")
	fs.StringVar(&flags.OpenAPIVersion, "openapi", parser.DefaultOpenAPIVersion, "openapi version written to the document")
	fs.BoolVar(&flags.Insecure, "insecure", false, "disable TLS certificate verification for https URLs")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log extraction details to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log extraction details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: kcoas transform [flags] <file|url|->\n\n")
		Writef(output, "Convert a Keycloak REST API reference page into an OpenAPI document\n")
		Writef(output, "holding one component schema per definition.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  kcoas transform rest-api.html\n")
		Writef(output, "  kcoas transform --format yaml -o keycloak.yaml rest-api.html\n")
		Writef(output, "  kcoas transform https://www.keycloak.org/docs-api/6.0/rest-api/index.html\n")
		Writef(output, "  curl -s https://example.com/rest-api.html | kcoas transform -q -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Transform successful\n")
		Writef(output, "  1    The page could not be read or does not have the expected layout\n")
	}

	return fs, flags
}

// HandleTransform executes the transform command
func HandleTransform(args []string) error {
	fs, flags := SetupTransformFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("transform command requires exactly one file path, URL, or '-' for stdin")
	}
	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	path := fs.Arg(0)

	t := transformer.New()
	t.Encoding = flags.Encoding
	t.Title = flags.Title
	t.APIVersion = flags.APIVersion
	t.OpenAPIVersion = flags.OpenAPIVersion
	t.InsecureSkipVerify = flags.Insecure
	t.Logger = NewLogger(flags.Verbose)

	result, err := loadPage(t, path)
	if err != nil {
		return err
	}

	data, err := result.Marshal(transformer.Format(flags.Format))
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	// Diagnostics go to stderr so stdout stays a clean document.
	if !flags.Quiet {
		Writef(os.Stderr, "Keycloak REST API Transformer\n")
		Writef(os.Stderr, "=============================\n\n")
		OutputSourceHeader(path, result)
		OutputStats(result.Stats)
		Writef(os.Stderr, "Title: %s\n", result.Document.Info.Title)
		Writef(os.Stderr, "Version: %s\n\n", result.Document.Info.Version)
	}

	if err := cliutil.WriteOutput(flags.Output, data); err != nil {
		return err
	}

	if !flags.Quiet && flags.Output != "" {
		Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}
