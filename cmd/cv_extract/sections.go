package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/observability"
	"github.com/jonathan/cv-extractor/internal/segment"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Show the section spans detected in a résumé text file",
	Long:  "Segment a résumé/CV file without extracting anything, printing the spans each strategy detects. Useful for debugging why a section was missed.",
	RunE:  runSections,
}

var (
	sectionsInputFile string
	sectionsMode      string
)

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsInputFile, "in", "i", "", "Path to a résumé text file (required)")
	sectionsCmd.Flags().StringVar(&sectionsMode, "mode", "", "Segmentation strategy: header or pattern (default: both)")
	_ = sectionsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(sectionsInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	doc, err := ingestion.NormalizeDocument(string(raw))
	if err != nil {
		return fmt.Errorf("failed to normalize %s: %w", sectionsInputFile, err)
	}

	var modes []segment.Mode
	switch sectionsMode {
	case "":
		modes = []segment.Mode{segment.ModeHeader, segment.ModePattern}
	case string(segment.ModeHeader):
		modes = []segment.Mode{segment.ModeHeader}
	case string(segment.ModePattern):
		modes = []segment.Mode{segment.ModePattern}
	default:
		return fmt.Errorf("unknown mode %q (want header or pattern)", sectionsMode)
	}

	seg := segment.New(lexicon.New())
	printer := observability.NewPrinter(os.Stdout)
	for _, mode := range modes {
		spans := seg.Segment(doc, mode)
		if len(spans) == 0 {
			fmt.Fprintf(os.Stdout, "No sections detected with %s strategy.\n", mode)
			continue
		}
		printer.PrintSpans(spans)
	}

	return nil
}
