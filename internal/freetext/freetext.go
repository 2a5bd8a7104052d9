// Package freetext extracts the list-shaped sections that need no record
// structure: presentations, awards and research interests.
package freetext

import (
	"strings"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

const (
	minPresentationLen = 30
	minAwardLen        = 15
	minInterestLen     = 3

	// Prose bounds for single-line research interests.
	minInterestLineLen = 10
	maxInterestLineLen = 100

	maxEntryLen  = 200
	maxInterests = 20
)

// Extractor collects free-text lines per section, gated by the lexicon's
// venue and award markers.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns a freetext Extractor.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Presentations returns the presentation lines inside span: long enough to
// be a citation and mentioning a venue keyword.
func (e *Extractor) Presentations(doc *ingestion.Document, span types.SectionSpan) ([]string, float64) {
	var out []string
	for _, line := range doc.Lines()[span.Start:span.End] {
		if len(line) > minPresentationLen && e.lex.HasVenueMarker(line) {
			out = append(out, clip(line))
		}
	}
	return out, listConfidence(out)
}

// Awards returns the award lines inside span, gated by award keywords.
func (e *Extractor) Awards(doc *ingestion.Document, span types.SectionSpan) ([]string, float64) {
	var out []string
	for _, line := range doc.Lines()[span.Start:span.End] {
		if len(line) > minAwardLen && e.lex.HasAwardMarker(line) {
			out = append(out, clip(line))
		}
	}
	return out, listConfidence(out)
}

// Interests returns the research interests inside span. Comma or semicolon
// separated lines are split into individual interests; other lines are kept
// whole when they are prose-sized.
func (e *Extractor) Interests(doc *ingestion.Document, span types.SectionSpan) ([]string, float64) {
	var out []string
	for _, line := range doc.Lines()[span.Start:span.End] {
		if strings.ContainsAny(line, ",;") {
			for _, part := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ';' }) {
				if part = strings.TrimSpace(part); len(part) > minInterestLen {
					out = append(out, part)
				}
			}
		} else if len(line) > minInterestLineLen && len(line) < maxInterestLineLen {
			out = append(out, line)
		}
		if len(out) >= maxInterests {
			out = out[:maxInterests]
			break
		}
	}
	return out, listConfidence(out)
}

func clip(s string) string {
	if len(s) > maxEntryLen {
		return s[:maxEntryLen]
	}
	return s
}

// listConfidence is fixed and modest: keyword gating tells us the lines
// belong here, nothing more.
func listConfidence(out []string) float64 {
	if len(out) == 0 {
		return 0
	}
	return 0.6
}
