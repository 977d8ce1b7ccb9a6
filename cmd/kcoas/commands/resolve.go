package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/kcoas/parser"
	"github.com/erraggy/kcoas/schemas"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Format string
}

// Resolution is the structured output of one resolved type text.
type Resolution struct {
	Raw    string         `json:"raw" yaml:"raw"`
	Rule   schemas.Rule   `json:"rule" yaml:"rule"`
	Schema *parser.Schema `json:"schema" yaml:"schema"`
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: kcoas resolve [flags] <type text>...\n\n")
		Writef(output, "Resolve the type column text of a reference page to a schema.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  kcoas resolve 'integer(int32)'\n")
		Writef(output, "  kcoas resolve 'enum (ENFORCING, PERMISSIVE, DISABLED)' '< string > array'\n")
		Writef(output, "  kcoas resolve --format json Map\n")
		Writef(output, "\nRules (first match wins):\n")
		Writef(output, "  enum     'enum (A, B)' becomes a string enumeration\n")
		Writef(output, "  known    integer(int32), integer(int64), number(float), boolean,\n")
		Writef(output, "           '< string > array', Map, Object\n")
		Writef(output, "  fallback anything else becomes a plain string\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("resolve command requires at least one type text")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	resolutions := make([]Resolution, 0, fs.NArg())
	for _, raw := range fs.Args() {
		resolutions = append(resolutions, Resolve(raw))
	}

	if flags.Format != FormatText {
		return OutputStructured(resolutions, flags.Format)
	}
	for _, r := range resolutions {
		Writef(os.Stdout, "%-40q %-8s %s\n", r.Raw, r.Rule, schemas.Resolve(r.Raw))
	}
	return nil
}

// Resolve resolves one type text.
func Resolve(raw string) Resolution {
	return Resolution{
		Raw:    raw,
		Rule:   schemas.Classify(raw),
		Schema: schemas.Resolve(raw).OpenAPI(),
	}
}
