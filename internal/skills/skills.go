// Package skills extracts and canonicalizes skill entries from a skills span
// plus a known-term scan of the whole document.
package skills

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

const (
	// maxSkills bounds the final list on documents that are mostly keywords.
	maxSkills = 100

	// minLowercaseLen rejects short all-lowercase tokens that are almost
	// always prose fragments, unless the lexicon knows them as terms.
	minLowercaseLen = 6
)

// Confidence by candidate source: explicit skills-section rows beat terms
// recovered from prose.
const (
	confSection = 0.9
	confTerm    = 0.7
	confAcronym = 0.6
)

var (
	listSepRe = regexp.MustCompile(`[,;]`)
	parensRe  = regexp.MustCompile(`\([^)]*\)`)
	prefixRe  = regexp.MustCompile(`(?i)^(languages?|software|tools?|frameworks?|ml|machine learning|data|programming):\s*`)
	bulletRe  = regexp.MustCompile(`^[-•*]\s*`)
	acronymRe = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
	tokenTrim = "()[]{}.,;:|\"'"
)

type candidate struct {
	text       string
	category   string
	confidence float64
}

// Extractor gathers skill candidates from the skills span (table rows, colon
// lists, bullets) and from a secondary whole-document scan restricted to
// known technical terms and acronyms the lexicon recognizes. Generic
// capitalized-word harvesting is deliberately avoided; it turns sentence
// fragments and institution names into skills.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns a skills Extractor.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the deduplicated, filtered skill entries for the document.
func (e *Extractor) Extract(doc *ingestion.Document, span types.SectionSpan) ([]types.SkillEntry, float64) {
	var cands []candidate
	for _, line := range doc.Lines()[span.Start:span.End] {
		cands = append(cands, e.parseLine(line)...)
	}
	cands = append(cands, e.documentScan(doc.Text())...)

	seen := make(map[string]struct{})
	entries := []types.SkillEntry{}
	for _, c := range cands {
		text := clean(c.text)
		if !e.keep(text) {
			continue
		}
		if canon, ok := e.lex.Canonical(text); ok {
			text = canon
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		category := c.category
		if category == "" {
			category, _ = e.lex.TermCategory(text)
		}
		entries = append(entries, types.SkillEntry{
			Text:       text,
			Category:   category,
			Confidence: c.confidence,
		})
		if len(entries) == maxSkills {
			break
		}
	}
	return entries, overall(entries)
}

// parseLine recognizes the three skills-section layouts: table rows
// ("| Category | a, b |"), bulleted lists, and "Category: a, b" lines.
func (e *Extractor) parseLine(line string) []candidate {
	if strings.Contains(line, "|") {
		return e.parseTableRow(line)
	}
	if bulletRe.MatchString(line) {
		return toCandidates(bulletRe.ReplaceAllString(line, ""), "", confSection)
	}
	if parts := strings.SplitN(line, ":", 2); len(parts) == 2 && strings.Count(line, ":") == 1 {
		category := strings.TrimSpace(parts[0])
		if e.lex.IsDenylisted(category) {
			category = ""
		}
		return toCandidates(parts[1], category, confSection)
	}
	return nil
}

func (e *Extractor) parseTableRow(line string) []candidate {
	var cells []string
	for _, p := range strings.Split(line, "|") {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	if len(cells) < 2 {
		return nil
	}
	category := cells[0]
	if strings.EqualFold(category, "category") || strings.Trim(category, "-: ") == "" {
		return nil
	}
	return toCandidates(cells[1], category, confSection)
}

func toCandidates(list, category string, conf float64) []candidate {
	var cands []candidate
	for _, s := range listSepRe.Split(list, -1) {
		if s = strings.TrimSpace(s); s != "" {
			cands = append(cands, candidate{text: s, category: category, confidence: conf})
		}
	}
	return cands
}

// documentScan collects acronyms and known technical terms from the whole
// document. Both are accepted only when the lexicon knows them.
func (e *Extractor) documentScan(text string) []candidate {
	var cands []candidate
	for _, a := range acronymRe.FindAllString(text, -1) {
		if _, known := e.lex.TermCategory(a); known {
			cands = append(cands, candidate{text: a, confidence: confAcronym})
		}
	}

	tokens := strings.Fields(text)
	for i := range tokens {
		tokens[i] = strings.Trim(tokens[i], tokenTrim)
	}
	for i, tok := range tokens {
		if _, known := e.lex.TermCategory(tok); known {
			cands = append(cands, candidate{text: tok, confidence: confTerm})
		}
		if i+1 < len(tokens) {
			pair := tok + " " + tokens[i+1]
			if _, known := e.lex.TermCategory(pair); known {
				cands = append(cands, candidate{text: pair, confidence: confTerm})
			}
		}
	}
	return cands
}

// clean strips parenthesized qualifiers, category prefixes and bullet
// markers from a raw candidate.
func clean(s string) string {
	s = parensRe.ReplaceAllString(s, "")
	s = prefixRe.ReplaceAllString(strings.TrimSpace(s), "")
	s = bulletRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// keep applies the candidate filter: minimum length, denylist, gerund and
// adverb rejection for single unknown tokens.
func (e *Extractor) keep(s string) bool {
	if len(s) <= 2 || e.lex.IsDenylisted(s) {
		return false
	}
	if strings.Contains(s, " ") {
		return true
	}
	lower := strings.ToLower(s)
	if _, known := e.lex.TermCategory(lower); known {
		return true
	}
	if strings.HasSuffix(lower, "ing") && !e.lex.AllowedGerund(lower) {
		return false
	}
	if s == lower {
		if strings.HasSuffix(lower, "ly") {
			return false
		}
		if len(s) < minLowercaseLen {
			return false
		}
	}
	return true
}

func overall(entries []types.SkillEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0.0
	for _, e := range entries {
		total += e.Confidence
	}
	return total / float64(len(entries))
}
