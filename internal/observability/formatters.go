// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileDraft outputs a human-readable summary of an extracted draft.
func (p *Printer) PrintProfileDraft(draft *types.ProfileDraft) {
	if draft == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(draft.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(draft.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(draft.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(draft.Location)))
	sb.WriteString("\n")

	if len(draft.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(draft.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := draft.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", e.Degree))
			if e.Field != "" {
				sb.WriteString(fmt.Sprintf(" in %s", e.Field))
			}
			if e.Institution != "" {
				sb.WriteString(fmt.Sprintf(", %s", e.Institution))
			}
			if e.Year != 0 {
				sb.WriteString(fmt.Sprintf(" (%d)", e.Year))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(draft.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(draft.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			x := draft.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", x.Title))
			if x.Company != "" {
				sb.WriteString(fmt.Sprintf(" — %s", x.Company))
			}
			sb.WriteString("\n")
		}
		if len(draft.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(draft.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Publications: %d   Skills: %d   Awards: %d",
		len(draft.Publications), len(draft.Skills), len(draft.Awards)))

	p.printBox("EXTRACTED PROFILE DRAFT", sb.String())
}

// PrintDiagnostics outputs which strategy satisfied each section and at what
// confidence.
func (p *Printer) PrintDiagnostics(diag *types.Diagnostics) {
	if diag == nil || len(diag.Entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", diag.RunID))

	for _, e := range diag.Entries {
		strategy := e.Strategy
		if strategy == "" {
			strategy = "-"
		}
		sb.WriteString(fmt.Sprintf("%-18s %-8s %.2f", e.Field, strategy, e.Confidence))
		if e.Note != "" {
			sb.WriteString(fmt.Sprintf("  %s", e.Note))
		}
		sb.WriteString("\n")
	}

	p.printBox("EXTRACTION DIAGNOSTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSpans outputs the detected section spans, the debugging view used by
// the sections subcommand.
func (p *Printer) PrintSpans(spans []types.SectionSpan) {
	if len(spans) == 0 {
		return
	}

	var sb strings.Builder
	for _, sp := range spans {
		sb.WriteString(fmt.Sprintf("%-20s lines %4d–%-4d  (%s)\n", sp.Type, sp.Start, sp.End, sp.Method))
	}

	p.printBox("DETECTED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
