// Package publications extracts citation records from a publications span.
package publications

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

const (
	// minEntryLen drops numbered fragments too short to be citations.
	minEntryLen = 30

	// The structured pass demands a longer title than the entry pass; a
	// one-shot match has less context to tell a title from a fragment.
	minTitleStructured = 15
	minTitleEntry      = 10

	maxTitle   = 500
	maxAuthors = 500
	maxJournal = 200
)

var (
	// structuredRe matches a whole "N. Authors (Year): Title. Journal. DOI"
	// citation in one shot.
	structuredRe = regexp.MustCompile(`(?i)(\d+)\.\s*([^:]+?)\s*\((\d{4})\):\s*([^.]+?\.)\s*([^.]+?\.)\s*(?:DOI[:\s]*([^\s,]+))?`)

	numberedRe = regexp.MustCompile(`^\d+\.`)
	leadNumRe  = regexp.MustCompile(`^\d+\.\s*`)
	yearRe     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	doiRe      = regexp.MustCompile(`(?i)doi[:\s]*([\d.]+/[^\s,]+)`)

	// genericJournalRe catches "Journal Name, 12" shapes when no curated
	// abbreviation matches.
	genericJournalRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s*[,.]\s*\d+`)

	// authorsYearRe captures the author list preceding "(Year)"; the no-year
	// fallback stops at the first colon, parenthesis or digit.
	authorsYearRe  = regexp.MustCompile(`^([^(]+?)\s*\((\d{4})\)`)
	authorsLooseRe = regexp.MustCompile(`^([^:]+?)(?::|\(|\d)`)
)

// Extractor runs a two-pass scan: a strict one-shot citation pattern first,
// then a per-entry field hunt over numbered blocks if the strict pass found
// nothing. Entries whose title comes out too short are noise and dropped.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns a publications Extractor.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the publication records found inside span.
func (e *Extractor) Extract(doc *ingestion.Document, span types.SectionSpan) ([]types.PublicationRecord, float64) {
	lines := doc.Lines()[span.Start:span.End]

	records := structuredPass(strings.Join(lines, "\n"))
	if len(records) == 0 {
		records = e.entryPass(lines)
	}
	return records, confidence(records)
}

func structuredPass(block string) []types.PublicationRecord {
	var records []types.PublicationRecord
	for _, m := range structuredRe.FindAllStringSubmatch(block, -1) {
		title := trimCite(m[4])
		if len(title) <= minTitleStructured {
			continue
		}
		year, _ := strconv.Atoi(m[3])
		records = append(records, types.PublicationRecord{
			Title:   clip(title, maxTitle),
			Authors: clip(trimCite(m[2]), maxAuthors),
			Journal: clip(trimCite(m[5]), maxJournal),
			Year:    year,
			DOI:     m[6],
		})
	}
	return records
}

// entryPass splits the span into numbered entries and hunts each entry's
// fields independently.
func (e *Extractor) entryPass(lines []string) []types.PublicationRecord {
	var records []types.PublicationRecord
	for _, entry := range splitEntries(lines) {
		if len(entry) < minEntryLen {
			continue
		}
		entry = leadNumRe.ReplaceAllString(entry, "")

		year := firstYear(entry)
		doi := ""
		if m := doiRe.FindStringSubmatch(entry); m != nil {
			doi = m[1]
		}
		journal := e.findJournal(entry)

		authors := ""
		if m := authorsYearRe.FindStringSubmatch(entry); m != nil {
			authors = strings.TrimSpace(m[1])
			if year == 0 {
				year, _ = strconv.Atoi(m[2])
			}
		} else if m := authorsLooseRe.FindStringSubmatch(entry); m != nil {
			authors = strings.TrimSpace(m[1])
		}

		title := findTitle(entry, journal)
		if len(title) <= minTitleEntry {
			continue
		}

		records = append(records, types.PublicationRecord{
			Title:   clip(title, maxTitle),
			Authors: clip(authors, maxAuthors),
			Journal: clip(journal, maxJournal),
			Year:    year,
			DOI:     doi,
		})
	}
	return records
}

// splitEntries groups lines into blocks, each opened by a numbered line.
// Preamble before the first number forms its own block.
func splitEntries(lines []string) []string {
	var entries []string
	var buf []string
	for _, line := range lines {
		if numberedRe.MatchString(line) && len(buf) > 0 {
			entries = append(entries, strings.Join(buf, "\n"))
			buf = buf[:0]
		}
		buf = append(buf, line)
	}
	if len(buf) > 0 {
		entries = append(entries, strings.Join(buf, "\n"))
	}
	return entries
}

func (e *Extractor) findJournal(entry string) string {
	if j := e.lex.MatchJournal(entry); j != "" {
		return j
	}
	if m := genericJournalRe.FindStringSubmatch(entry); m != nil {
		return trimCite(m[1])
	}
	return ""
}

// findTitle takes the text after the author colon, cut short at the journal
// name or the first period. Entries without a colon fall back to the first
// sentence.
func findTitle(entry, journal string) string {
	if idx := strings.IndexByte(entry, ':'); idx >= 0 {
		part := entry[idx+1:]
		if journal != "" {
			if j := strings.Index(part, journal); j >= 0 {
				part = part[:j]
			}
		} else {
			part, _, _ = strings.Cut(part, ".")
		}
		return trimCite(part)
	}
	if head, _, found := strings.Cut(entry, "."); found {
		return trimCite(head)
	}
	return trimCite(clip(entry, 200))
}

func trimCite(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ".,;"))
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func firstYear(s string) int {
	m := yearRe.FindString(s)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

// confidence averages per-record completeness. The title is guaranteed, so
// the score floor for any emitted record is 0.4.
func confidence(records []types.PublicationRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range records {
		score := 0.4
		if r.Journal != "" {
			score += 0.2
		}
		if r.Year != 0 {
			score += 0.2
		}
		if r.Authors != "" {
			score += 0.1
		}
		if r.DOI != "" {
			score += 0.1
		}
		total += score
	}
	return total / float64(len(records))
}
