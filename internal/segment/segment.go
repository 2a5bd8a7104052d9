// Package segment partitions a normalized document into non-overlapping
// line spans, one per recognized section type. Detection runs in one of two
// modes: header matching, or a content-pattern fallback for documents whose
// section headers did not survive text extraction.
package segment

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

// Mode selects the span-detection strategy.
type Mode string

// Detection modes, in cascade priority order.
const (
	ModeHeader  Mode = "header"
	ModePattern Mode = "pattern"
)

const (
	// maxHeaderWords is the longest line still considered a section header.
	maxHeaderWords = 8
	// shortHeaderWords qualifies a keyword-bearing line as a header outright.
	shortHeaderWords = 5
	// patternSkipHead caps how many contact-looking lines the content-pattern
	// scan may skip at the top of the document.
	patternSkipHead = 5
)

// spanCaps bounds each section's length so a malformed document can never
// cause a runaway scan.
var spanCaps = map[types.SectionType]int{
	types.SectionEducation:         50,
	types.SectionExperience:        100,
	types.SectionPublications:      150,
	types.SectionSkills:            50,
	types.SectionPresentations:     50,
	types.SectionAwards:            30,
	types.SectionResearchInterests: 20,
}

var (
	anyDigit   = regexp.MustCompile(`\d`)
	numberedRe = regexp.MustCompile(`^\d+\.`)
)

// Segmenter locates section spans in a document.
type Segmenter struct {
	lex *lexicon.Lexicon
}

// New returns a Segmenter backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Segmenter {
	return &Segmenter{lex: lex}
}

// Segment returns the section spans detected in the given mode, ordered by
// start line. Spans never overlap: when a detected start would fall inside an
// earlier span, it is clamped forward, and dropped if nothing remains.
func (s *Segmenter) Segment(doc *ingestion.Document, mode Mode) []types.SectionSpan {
	starts := map[types.SectionType]int{}
	for _, section := range types.SectionTypes {
		var idx int
		var ok bool
		switch mode {
		case ModePattern:
			idx, ok = s.findByPattern(doc, section)
		default:
			idx, ok = s.findByHeader(doc, section)
		}
		if ok {
			starts[section] = idx
		}
	}
	return s.resolve(doc, starts, mode)
}

// Find returns the span for a section type, if present.
func Find(spans []types.SectionSpan, section types.SectionType) (types.SectionSpan, bool) {
	for _, sp := range spans {
		if sp.Type == section {
			return sp, true
		}
	}
	return types.SectionSpan{}, false
}

// findByHeader scans for the first line that qualifies as the section's
// header. The span content starts on the following line.
func (s *Segmenter) findByHeader(doc *ingestion.Document, section types.SectionType) (int, bool) {
	keywords := s.lex.SectionHeaders(section)
	for i, line := range doc.Lines() {
		if isHeaderLine(line, keywords) {
			return i + 1, true
		}
	}
	return 0, false
}

// isHeaderLine applies the header shape rules: short, no email, no digits,
// and a section keyword in a header-like position.
func isHeaderLine(line string, keywords []string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxHeaderWords {
		return false
	}
	if strings.Contains(line, "@") || anyDigit.MatchString(line) {
		return false
	}

	lower := strings.ToLower(strings.TrimSpace(line))
	bare := strings.TrimSpace(strings.TrimLeft(lower, "# "))
	for _, kw := range keywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		switch {
		case strings.HasPrefix(lower, "#"):
			return true
		case bare == kw:
			return true
		case len(words) <= shortHeaderWords:
			return true
		case strings.HasPrefix(bare, kw):
			return true
		}
	}
	return false
}

// findByPattern locates a section by its characteristic content when no
// header survived: two or more of the section's markers co-occurring on or
// near one line. Only sections with distinctive content shapes support this
// mode; the rest are header-only.
func (s *Segmenter) findByPattern(doc *ingestion.Document, section types.SectionType) (int, bool) {
	lines := doc.Lines()
	for i := s.contactHead(lines); i < len(lines); i++ {
		if s.patternMatch(lines, i, section) {
			return i, true
		}
	}
	return 0, false
}

// contactHead counts the leading lines that look like contact material, so
// the content-pattern scan never opens a section inside the contact block.
// A headerless document that starts straight with section content (bullets,
// prose, dates) gets a zero skip.
func (s *Segmenter) contactHead(lines []string) int {
	n := 0
	for n < len(lines) && n < patternSkipHead {
		if !contactLike(lines[n]) || s.sectionContent(lines, n) {
			break
		}
		n++
	}
	return n
}

// sectionContent reports whether a line already reads as section content,
// which always outranks its resemblance to a contact line.
func (s *Segmenter) sectionContent(lines []string, i int) bool {
	for _, t := range []types.SectionType{
		types.SectionEducation, types.SectionExperience,
		types.SectionPublications, types.SectionSkills,
	} {
		if s.patternMatch(lines, i, t) {
			return true
		}
	}
	return false
}

// contactLike matches the shapes of a contact block: an email, a phone-length
// digit run, or a short capitalized name/location line. Bulleted lines are
// content, never contact.
func contactLike(line string) bool {
	if strings.Contains(line, "@") {
		return true
	}
	if len(anyDigit.FindAllString(line, -1)) >= 7 {
		return true
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
		return false
	}
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxHeaderWords {
		return false
	}
	r, _ := utf8.DecodeRuneInString(words[0])
	return unicode.IsUpper(r)
}

func (s *Segmenter) patternMatch(lines []string, i int, section types.SectionType) bool {
	line := lines[i]
	switch section {
	case types.SectionEducation:
		return s.matchesDegree(line) && s.nearbyInstitution(lines, i)
	case types.SectionExperience:
		return s.lex.HasRoleMarker(line) && s.nearbyInstitution(lines, i)
	case types.SectionPublications:
		return numberedRe.MatchString(line) && s.hasCitationMarker(line)
	case types.SectionSkills:
		lower := strings.ToLower(line)
		return strings.Contains(line, "|") &&
			strings.Contains(lower, "category") && strings.Contains(lower, "skill")
	default:
		return false
	}
}

func (s *Segmenter) matchesDegree(line string) bool {
	for _, p := range s.lex.DegreePatterns() {
		if p.Re.MatchString(line) {
			return true
		}
	}
	return false
}

// nearbyInstitution checks the line itself and the two lines below it.
func (s *Segmenter) nearbyInstitution(lines []string, i int) bool {
	for j := i; j < len(lines) && j <= i+2; j++ {
		if s.lex.HasInstitutionMarker(lines[j]) {
			return true
		}
	}
	return false
}

func (s *Segmenter) hasCitationMarker(line string) bool {
	if strings.Contains(strings.ToLower(line), "doi") {
		return true
	}
	return s.lex.MatchJournal(line) != ""
}

// resolve turns detected start lines into ordered, clamped, non-overlapping
// spans. A span ends at the earliest of: the next detected start, its
// section's cap, or document end.
func (s *Segmenter) resolve(doc *ingestion.Document, starts map[types.SectionType]int, mode Mode) []types.SectionSpan {
	if len(starts) == 0 {
		return nil
	}

	ordered := make([]types.SectionSpan, 0, len(starts))
	for section, start := range starts {
		ordered = append(ordered, types.SectionSpan{Type: section, Start: start, Method: string(mode)})
	}
	// Deterministic order: by start line, then by canonical section order for
	// starts that tie.
	sort.SliceStable(ordered, func(a, b int) bool {
		if ordered[a].Start != ordered[b].Start {
			return ordered[a].Start < ordered[b].Start
		}
		return sectionRank(ordered[a].Type) < sectionRank(ordered[b].Type)
	})

	spans := make([]types.SectionSpan, 0, len(ordered))
	prevEnd := 0
	for i := range ordered {
		sp := ordered[i]
		if sp.Start < prevEnd {
			sp.Start = prevEnd
		}

		end := doc.Len()
		if i+1 < len(ordered) {
			next := ordered[i+1].Start
			if mode == ModeHeader {
				// The line before the next span's content is its header; keep
				// it out of this span.
				next--
			}
			if next < end {
				end = next
			}
		}
		if limit := spanCaps[sp.Type]; sp.Start+limit < end {
			end = sp.Start + limit
		}
		sp.End = end

		if sp.Len() == 0 {
			continue
		}
		spans = append(spans, sp)
		prevEnd = sp.End
	}
	return spans
}

func sectionRank(t types.SectionType) int {
	for i, s := range types.SectionTypes {
		if s == t {
			return i
		}
	}
	return len(types.SectionTypes)
}
