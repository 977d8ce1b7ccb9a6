package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/kcoas/differ"
	"github.com/erraggy/kcoas/parser"
	"github.com/erraggy/kcoas/transformer"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	Format      string
	IgnoreAdded bool
	Encoding    string
	Quiet       bool
}

// ErrSchemasDiffer is returned by HandleDiff when differences were found.
var ErrSchemasDiffer = errors.New("extracted schemas differ from the reference document")

// SetupDiffFlags creates and configures a FlagSet for the diff command.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.IgnoreAdded, "ignore-added", false, "do not report schemas or properties missing from the reference")
	fs.StringVar(&flags.Encoding, "encoding", "", "character set of the page (default: detect)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report differences")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report differences")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: kcoas diff [flags] <page.html|url> <reference.json|yaml>\n\n")
		Writef(output, "Compare the schemas extracted from a reference page with the component\n")
		Writef(output, "schemas of an OpenAPI document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  kcoas diff rest-api.html keycloak-6.0.json\n")
		Writef(output, "  kcoas diff --ignore-added --format json rest-api.html partial.yaml\n")
		Writef(output, "\nExit Status:\n")
		Writef(output, "  0    No differences found\n")
		Writef(output, "  1    Differences found, or an input could not be loaded\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires a reference page and an OpenAPI document")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	pagePath, referencePath := fs.Arg(0), fs.Arg(1)

	t := transformer.New()
	t.Encoding = flags.Encoding
	extracted, err := loadPage(t, pagePath)
	if err != nil {
		return err
	}

	reference, err := parser.New().Parse(referencePath)
	if err != nil {
		return fmt.Errorf("loading reference document: %w", err)
	}

	d := differ.New()
	d.IgnoreAdded = flags.IgnoreAdded
	result, err := d.Diff(reference.Document, extracted.Document)
	if err != nil {
		return fmt.Errorf("comparing schemas: %w", err)
	}

	if flags.Format != FormatText {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
	} else {
		if !flags.Quiet {
			Writef(os.Stdout, "Schema Diff\n")
			Writef(os.Stdout, "===========\n\n")
			Writef(os.Stdout, "Page: %s (%d schemas)\n", FormatSourcePath(pagePath), result.TargetSchemaCount)
			Writef(os.Stdout, "Reference: %s (%d schemas)\n\n", referencePath, result.SourceSchemaCount)
		}
		if !result.HasChanges() {
			if !flags.Quiet {
				Writef(os.Stdout, "✓ No differences found\n")
			}
			return nil
		}
		Writef(os.Stdout, "Changes (%d):\n", len(result.Changes))
		for _, change := range result.Changes {
			Writef(os.Stdout, "  %s\n", change.String())
		}
	}

	if result.HasChanges() {
		return fmt.Errorf("%w: %d added, %d removed, %d modified",
			ErrSchemasDiffer, result.AddedCount, result.RemovedCount, result.ModifiedCount)
	}
	return nil
}
