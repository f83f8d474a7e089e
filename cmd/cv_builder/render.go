package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/verveschool/cv-builder/internal/config"
	"github.com/verveschool/cv-builder/internal/db"
	"github.com/verveschool/cv-builder/internal/observability"
	"github.com/verveschool/cv-builder/internal/parsing"
	"github.com/verveschool/cv-builder/internal/rendering"
	"github.com/verveschool/cv-builder/internal/types"
	"github.com/verveschool/cv-builder/internal/validation"
	"golang.org/x/sync/errgroup"
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render candidate JSON files into CV PDFs",
	Long:  "Renders each candidate JSON file into <out-dir>/<file-basename>.pdf. Files are rendered concurrently, each with its own layout pass.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var renderFlags sharedFlags

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderFlags.outDir, "out-dir", "o", "", "Directory for rendered PDFs (default \"out\")")
	renderCmd.Flags().IntVarP(&renderFlags.workers, "workers", "w", 0, "Concurrent renders (default 4)")
	rootCmd.AddCommand(renderCmd)
}

// renderResult describes one rendered file
type renderResult struct {
	Input      string
	Output     string
	Pages      int
	Gaps       int
	DocumentID uuid.UUID
}

// documentSaver is the part of the store the render command needs
type documentSaver interface {
	SaveDocument(ctx context.Context, input *db.DocumentInput) (uuid.UUID, error)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := renderFlags.resolve(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var store documentSaver
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		store = database
	}

	results, err := renderFiles(ctx, args, cfg, store, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		_, _ = fmt.Fprintf(out, "Rendered %s -> %s (%d pages)\n", r.Input, r.Output, r.Pages)
		if r.Gaps > 0 {
			_, _ = fmt.Fprintf(out, "  %d character(s) could not be encoded and were replaced\n", r.Gaps)
		}
		if r.DocumentID != uuid.Nil {
			_, _ = fmt.Fprintf(out, "  stored as %s\n", r.DocumentID)
		}
	}
	return nil
}

// renderFiles renders every input concurrently, bounded by cfg.Workers.
// Results keep the order of inputs; the first failure cancels the rest.
func renderFiles(ctx context.Context, inputs []string, cfg config.Config, store documentSaver, verboseOut io.Writer) ([]renderResult, error) {
	layout, err := cfg.LayoutConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		name := outputName(input)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("inputs %s and %s would both write %s", prev, input, name)
		}
		seen[name] = input
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var printMu sync.Mutex
	printer := observability.NewPrinter(verboseOut)

	results := make([]renderResult, len(inputs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	for i, input := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			rec, doc, err := renderOne(input, layout)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			if cfg.Verbose {
				printMu.Lock()
				printer.PrintCandidate(rec)
				printer.PrintLayout(doc)
				printMu.Unlock()
			}

			data, err := doc.Bytes()
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			if cfg.MaxPages > 0 {
				violations, err := validation.ValidateDocument(doc, validation.Options{MaxPages: cfg.MaxPages})
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				for _, v := range violations.Violations {
					if v.Severity == types.SeverityError {
						return &validation.Error{Message: fmt.Sprintf("%s: %s", input, v.Details)}
					}
				}
			}

			output := filepath.Join(cfg.OutDir, outputName(input))
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			result := renderResult{Input: input, Output: output, Pages: doc.PageCount(), Gaps: len(doc.Gaps())}
			if store != nil {
				id, err := store.SaveDocument(gCtx, &db.DocumentInput{
					FileName:  rec.FileStem() + "_CV.pdf",
					Source:    db.SourceCLI,
					Candidate: rec,
					PDF:       data,
					PageCount: doc.PageCount(),
					GapCount:  len(doc.Gaps()),
				})
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				result.DocumentID = id
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// renderOne reads, parses and lays out a single candidate file
func renderOne(path string, layout rendering.Config) (*types.CandidateRecord, *rendering.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input: %w", err)
	}

	rec, err := parsing.ParseCandidate(raw)
	if err != nil {
		return nil, nil, err
	}

	doc, err := rendering.Layout(rec, layout)
	if err != nil {
		return nil, nil, err
	}
	return rec, doc, nil
}

// outputName maps an input path to "<basename>.pdf"
func outputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}
