// Package experience extracts employment records from an experience span.
package experience

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

// minDescription drops bullet fragments too short to describe anything.
const minDescription = 10

var (
	bulletRe = regexp.MustCompile(`^[-•*]\s*(.+)$`)

	// dateRangeRe matches "01/09/2020 – Present" shapes, en dash or hyphen.
	dateRangeRe = regexp.MustCompile(`(?i)(\d{2}[/-]\d{2}[/-]\d{2,4})\s*[–-]\s*(present|current|\d{2}[/-]\d{2}[/-]\d{2,4})`)

	// mergedRe splits the transcription artifact where a title runs straight
	// into the company name with no separator, as in
	// "Postdoctoral Research FellowSingapore University of Technology".
	mergedRe = regexp.MustCompile(`^((?:[A-Z][a-z]+\s+)*(?:Researcher|Scientist|Fellow|Engineer|Mentor|Professor|Assistant|Director|Manager))([A-Z].+)$`)
)

// Extractor walks an experience span with a two-state machine: a bulleted
// role line (or a merged title+company line) opens a record, following lines
// fill company, dates and description, and the next opener or span end
// closes it.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns an experience Extractor.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the experience records found inside span. A record is kept
// only when title or company is non-empty.
func (e *Extractor) Extract(doc *ingestion.Document, span types.SectionSpan) ([]types.ExperienceRecord, float64) {
	lines := doc.Lines()[span.Start:span.End]

	var records []types.ExperienceRecord
	var current *types.ExperienceRecord

	flush := func() {
		if current != nil && (current.Title != "" || current.Company != "") {
			records = append(records, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			text := strings.TrimSpace(m[1])
			if e.lex.HasRoleMarker(text) {
				flush()
				current = newRecord(text, "")
				continue
			}
			if current != nil && len(text) > minDescription {
				current.Description = append(current.Description, text)
			}
			continue
		}

		if m := mergedRe.FindStringSubmatch(line); m != nil && e.lex.HasInstitutionMarker(m[2]) {
			company := m[2]
			if loc := dateRangeRe.FindStringIndex(company); loc != nil {
				company = company[:loc[0]]
			}
			flush()
			current = newRecord(strings.TrimSpace(m[1]), strings.TrimSpace(company))
			e.fillDates(current, line)
			current.Location = e.findLocation(line)
			continue
		}

		if current == nil {
			continue
		}

		if current.Company == "" && e.lex.HasInstitutionMarker(line) {
			current.Company = line
			current.Location = e.findLocation(line)
			continue
		}

		if dateRangeRe.MatchString(line) {
			e.fillDates(current, line)
			continue
		}

		if e.lex.HasDescriptionVerb(line) && len(line) > minDescription {
			current.Description = append(current.Description, line)
		}
	}
	flush()

	return records, confidence(records)
}

func newRecord(title, company string) *types.ExperienceRecord {
	return &types.ExperienceRecord{
		Title:       title,
		Company:     company,
		Description: []string{},
	}
}

// fillDates sets the record's date range from the first range on the line.
// An already-set start date is never overwritten.
func (e *Extractor) fillDates(rec *types.ExperienceRecord, line string) {
	if rec.StartDate != "" {
		return
	}
	m := dateRangeRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	rec.StartDate = m[1]
	if end := strings.ToLower(m[2]); end == "present" || end == "current" {
		rec.EndDate = "Present"
	} else {
		rec.EndDate = m[2]
	}
}

func (e *Extractor) findLocation(line string) string {
	lower := strings.ToLower(line)
	for _, loc := range e.lex.Locations() {
		if strings.Contains(lower, strings.ToLower(loc)) {
			return loc
		}
	}
	return ""
}

// confidence averages per-record completeness: title and company carry most
// of the weight, dates and description the rest.
func confidence(records []types.ExperienceRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range records {
		score := 0.0
		if r.Title != "" {
			score += 0.3
		}
		if r.Company != "" {
			score += 0.3
		}
		if r.StartDate != "" {
			score += 0.2
		}
		if len(r.Description) > 0 {
			score += 0.2
		}
		total += score
	}
	return total / float64(len(records))
}
