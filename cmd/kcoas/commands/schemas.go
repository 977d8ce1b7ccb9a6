package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/erraggy/kcoas/schemas"
	"github.com/erraggy/kcoas/transformer"
)

// SchemasFlags contains flags for the schemas command
type SchemasFlags struct {
	Format     string
	Properties bool
	Encoding   string
	Insecure   bool
	Verbose    bool
}

// SchemaSummary describes one extracted schema for structured output.
type SchemaSummary struct {
	Name       string            `json:"name" yaml:"name"`
	Properties []PropertySummary `json:"properties" yaml:"properties"`
}

// PropertySummary describes one property for structured output.
type PropertySummary struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// SetupSchemasFlags creates and configures a FlagSet for the schemas command.
func SetupSchemasFlags() (*flag.FlagSet, *SchemasFlags) {
	fs := flag.NewFlagSet("schemas", flag.ContinueOnError)
	flags := &SchemasFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Properties, "properties", false, "list properties and their resolved types (text format)")
	fs.StringVar(&flags.Encoding, "encoding", "", "character set of the page (default: detect)")
	fs.BoolVar(&flags.Insecure, "insecure", false, "disable TLS certificate verification for https URLs")
	fs.BoolVar(&flags.Verbose, "v", false, "log extraction details to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log extraction details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: kcoas schemas [flags] <file|url|->\n\n")
		Writef(output, "List the schemas defined by a Keycloak REST API reference page,\n")
		Writef(output, "in document order.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  kcoas schemas rest-api.html\n")
		Writef(output, "  kcoas schemas --properties rest-api.html\n")
		Writef(output, "  kcoas schemas --format json rest-api.html\n")
	}

	return fs, flags
}

// HandleSchemas executes the schemas command
func HandleSchemas(args []string) error {
	fs, flags := SetupSchemasFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schemas command requires exactly one file path, URL, or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	t := transformer.New()
	t.Encoding = flags.Encoding
	t.InsecureSkipVerify = flags.Insecure
	t.Logger = NewLogger(flags.Verbose)

	result, err := loadPage(t, fs.Arg(0))
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(summarize(result.Schemas), flags.Format)
	}
	return writeSchemaTable(result.Schemas, flags.Properties)
}

func summarize(m *schemas.Map) []SchemaSummary {
	out := make([]SchemaSummary, 0, m.Len())
	for name, s := range m.All() {
		summary := SchemaSummary{Name: name, Properties: make([]PropertySummary, 0, s.Len())}
		for _, p := range s.Properties() {
			summary.Properties = append(summary.Properties, PropertySummary{Name: p.Name, Type: p.Type.String()})
		}
		out = append(out, summary)
	}
	return out
}

func writeSchemaTable(m *schemas.Map, withProperties bool) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	Writef(tw, "SCHEMA\tPROPERTIES\n")
	for name, s := range m.All() {
		Writef(tw, "%s\t%d\n", name, s.Len())
		if withProperties {
			for _, p := range s.Properties() {
				Writef(tw, "  %s\t%s\n", p.Name, p.Type)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing schema table: %w", err)
	}
	return nil
}
