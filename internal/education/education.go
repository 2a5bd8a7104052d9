// Package education extracts degree records from an education section span.
package education

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

// Look-ahead windows, counted in lines past the degree line. Both are fixed
// so a single record scan never walks the whole span.
const (
	institutionWindow = 6
	yearWindow        = 7
)

var (
	yearRe    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	awardedRe = regexp.MustCompile(`(?i)(?:awarded|defence|defense|viva)[^\d]{0,12}(\d{4})`)
)

// Extractor walks an education span with a two-state machine: a degree
// pattern opens a record, the look-ahead windows fill institution and year,
// and the next degree line (or span end) closes it.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns an education Extractor.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the education records found inside span, with a confidence
// reflecting how complete the records are. A record is kept only when degree
// or institution is non-empty.
func (e *Extractor) Extract(doc *ingestion.Document, span types.SectionSpan) ([]types.EducationRecord, float64) {
	lines := doc.Lines()[span.Start:span.End]

	var records []types.EducationRecord
	for i := 0; i < len(lines); i++ {
		level, field, ok := e.matchDegree(lines[i])
		if !ok {
			continue
		}

		rec := types.EducationRecord{Degree: level, Field: field}
		rec.Institution, rec.Year = e.lookAhead(lines, i)
		if rec.Year == 0 {
			rec.Year = firstYear(lines[i])
		}

		if rec.Degree != "" || rec.Institution != "" {
			records = append(records, rec)
		}
	}
	return records, confidence(records)
}

// matchDegree tries the ordered degree patterns and returns the degree level
// plus the trimmed field-of-study capture.
func (e *Extractor) matchDegree(line string) (level, field string, ok bool) {
	for _, p := range e.lex.DegreePatterns() {
		m := p.Re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return p.Level, trimField(m[2]), true
	}
	return "", "", false
}

// lookAhead scans past the degree line for the institution and year. The
// institution is the first line carrying an institution marker; the year
// prefers an explicit awarded/defence/viva phrase over a bare 4-digit year.
// Another degree line ends the institution scan early.
func (e *Extractor) lookAhead(lines []string, i int) (institution string, year int) {
	for j := i + 1; j < len(lines) && j <= i+institutionWindow; j++ {
		if _, _, isDegree := e.matchDegree(lines[j]); isDegree {
			break
		}
		if e.lex.HasInstitutionMarker(lines[j]) {
			institution = lines[j]
			year = firstYear(lines[j])
			if year == 0 && j+1 < len(lines) {
				year = firstYear(lines[j+1])
			}
			break
		}
	}

	for j := i + 1; j < len(lines) && j <= i+yearWindow; j++ {
		if m := awardedRe.FindStringSubmatch(lines[j]); m != nil {
			if y, err := strconv.Atoi(m[1]); err == nil {
				year = y
			}
			break
		}
	}
	return institution, year
}

// trimField cleans a field-of-study capture: surrounding whitespace, a
// trailing period, and anything after a parenthesis are dropped.
func trimField(s string) string {
	if idx := strings.IndexByte(s, '('); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ".")
}

func firstYear(line string) int {
	m := yearRe.FindString(line)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}

// confidence averages per-record completeness: degree and institution carry
// most of the weight, field and year the rest.
func confidence(records []types.EducationRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range records {
		score := 0.0
		if r.Degree != "" {
			score += 0.4
		}
		if r.Institution != "" {
			score += 0.3
		}
		if r.Field != "" {
			score += 0.2
		}
		if r.Year != 0 {
			score += 0.1
		}
		total += score
	}
	return total / float64(len(records))
}
