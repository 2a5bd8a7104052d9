package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-extractor/internal/config"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/observability"
	"github.com/jonathan/cv-extractor/internal/pipeline"
	"github.com/jonathan/cv-extractor/internal/schemas"
	"github.com/jonathan/cv-extractor/internal/store"
	"github.com/jonathan/cv-extractor/internal/types"
)

// maxConcurrentParses bounds the worker pool when multiple inputs are given.
const maxConcurrentParses = 4

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse résumé text files into structured profile drafts",
	Long:  "Parse one or more plain-text résumé/CV files into ProfileDraft JSON. Output goes to a directory as <input>.json, or to stdout with --out -.",
	RunE:  runParse,
}

// outputStdout is the --out sentinel that sends drafts to stdout.
const outputStdout = "-"

var (
	parseInputFiles    []string
	parseOutputDir     string
	parseConfigFile    string
	parseDatabaseURL   string
	parseVerbose       bool
	parseValidate      bool
	parseMinConfidence float64
)

func init() {
	parseCmd.Flags().StringArrayVarP(&parseInputFiles, "in", "i", nil, "Path to a résumé text file (repeatable)")
	parseCmd.Flags().StringVarP(&parseOutputDir, "out", "o", outputStdout, "Output directory for JSON drafts, or - for stdout")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "PostgreSQL URL for persisting drafts (falls back to DATABASE_URL)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print extracted draft and diagnostics to stderr")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate each draft against the JSON schema")
	parseCmd.Flags().Float64Var(&parseMinConfidence, "min-confidence", 0, "Blank fields scored below this threshold (0..1)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	if len(parseInputFiles) == 0 {
		return fmt.Errorf("at least one --in file is required")
	}

	cfg := config.Config{
		OutputDir:      parseOutputDir,
		Verbose:        parseVerbose,
		ValidateOutput: parseValidate,
		MinConfidence:  parseMinConfidence,
		DatabaseURL:    parseDatabaseURL,
	}
	if parseConfigFile != "" {
		fileCfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		// Flags win; the config file fills what the flags left unset. The
		// --out default is the stdout sentinel, so an unchanged flag defers
		// to the config file's output_dir.
		if !cmd.Flags().Changed("out") {
			cfg.OutputDir = ""
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		if cfg.OutputDir == "" {
			cfg.OutputDir = outputStdout
		}
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
		cfg.ValidateOutput = cfg.ValidateOutput || fileCfg.ValidateOutput
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.OutputDir != outputStdout {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ctx := context.Background()

	// Persistence is best-effort: a failed connection downgrades to a
	// warning so extraction output is never lost to a database outage.
	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: database unavailable, drafts will not be persisted: %v\n", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	parser := pipeline.New(lexicon.New())

	var outMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentParses)

	for _, inputFile := range parseInputFiles {
		inputFile := inputFile
		g.Go(func() error {
			return parseOne(ctx, parser, db, &cfg, inputFile, &outMu)
		})
	}

	return g.Wait()
}

func parseOne(ctx context.Context, parser *pipeline.Parser, db *store.Store, cfg *config.Config, inputFile string, outMu *sync.Mutex) error {
	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	draft, diag, err := parser.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputFile, err)
	}

	if cfg.MinConfidence > 0 {
		applyMinConfidence(draft, cfg.MinConfidence)
	}

	if cfg.ValidateOutput {
		if err := schemas.ValidateDraft(draft); err != nil {
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &schemaLoadErr) {
				fmt.Fprintf(os.Stderr, "Warning: could not validate %s against schema: %v\n", inputFile, err)
			} else {
				return fmt.Errorf("draft for %s does not validate against schema: %w", inputFile, err)
			}
		}
	}

	jsonBytes, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	outMu.Lock()
	if cfg.OutputDir == outputStdout {
		fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}
	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfileDraft(draft)
		printer.PrintDiagnostics(diag)
	}
	outMu.Unlock()

	if cfg.OutputDir != outputStdout {
		outPath := filepath.Join(cfg.OutputDir, outputName(inputFile))
		if err := os.WriteFile(outPath, append(jsonBytes, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if db != nil {
		if err := db.SaveDraft(ctx, diag.RunID, inputFile, draft, diag); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist draft for %s: %v\n", inputFile, err)
		}
	}

	return nil
}

// applyMinConfidence blanks every field whose recorded confidence falls
// below the threshold. The confidence entry itself is kept so consumers can
// see why a field is empty.
func applyMinConfidence(draft *types.ProfileDraft, min float64) {
	for field, conf := range draft.Confidence {
		if conf >= min {
			continue
		}
		switch field {
		case "name":
			draft.Name = ""
		case "email":
			draft.Email = ""
		case "phone":
			draft.Phone = ""
		case "location":
			draft.Location = ""
		case "education":
			draft.Education = draft.Education[:0]
		case "experience":
			draft.Experience = draft.Experience[:0]
		case "skills":
			draft.Skills = draft.Skills[:0]
		case "publications":
			draft.Publications = draft.Publications[:0]
		case "presentations":
			draft.Presentations = draft.Presentations[:0]
		case "awards":
			draft.Awards = draft.Awards[:0]
		case "research_interests":
			draft.ResearchInterests = draft.ResearchInterests[:0]
		}
	}
}

// outputName maps an input path to its draft file name: resume.txt -> resume.json.
func outputName(inputFile string) string {
	base := filepath.Base(inputFile)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".json"
}
