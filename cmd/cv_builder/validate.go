package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/verveschool/cv-builder/internal/observability"
	"github.com/verveschool/cv-builder/internal/parsing"
	"github.com/verveschool/cv-builder/internal/rendering"
	"github.com/verveschool/cv-builder/internal/types"
	"github.com/verveschool/cv-builder/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate candidate JSON files or rendered CV PDFs",
	Long: `Checks each file and prints its violations.

Candidate JSON files are schema-checked, laid out, and checked for page count and
characters that cannot be encoded. PDF files are checked for readability and page count.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateFlags sharedFlags

func init() {
	validateFlags.register(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := validateFlags.resolve(cmd)
	if err != nil {
		return err
	}
	layout, err := cfg.LayoutConfig()
	if err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	opts := validation.Options{MaxPages: cfg.MaxPages}

	failed := 0
	for _, path := range args {
		violations, err := validateFile(path, layout, opts, cfg.Verbose, printer)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		_, _ = fmt.Fprintf(out, "%s\n", path)
		printer.PrintViolations(violations)
		if violations.HasErrors() {
			failed++
		}
	}

	if failed > 0 {
		return &validation.Error{Message: fmt.Sprintf("%d of %d file(s) failed validation", failed, len(args))}
	}
	return nil
}

// validateFile dispatches on extension: .pdf files are read as finished CVs,
// anything else as candidate JSON.
func validateFile(path string, layout rendering.Config, opts validation.Options, verbose bool, printer *observability.Printer) (*types.Violations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &validation.FileReadError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return validation.ValidatePDF(data, opts)
	}

	rec, err := parsing.ParseCandidate(data)
	if err != nil {
		return &types.Violations{Violations: []types.Violation{{
			Type:     types.ViolationInvalidInput,
			Severity: types.SeverityError,
			Details:  err.Error(),
		}}}, nil
	}

	doc, err := rendering.Layout(rec, layout)
	if err != nil {
		return nil, err
	}
	if verbose {
		printer.PrintCandidate(rec)
		printer.PrintLayout(doc)
	}

	opts.ExpectedText = append(opts.ExpectedText, strings.ToUpper(rec.Name))
	return validation.ValidateDocument(doc, opts)
}
