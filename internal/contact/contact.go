// Package contact extracts identity fields (name, email, phone, location)
// from the head of a normalized document.
package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
)

// headLines bounds the contact scan to the top of the document, where
// identity information lives on any sanely formatted résumé.
const headLines = 25

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePatterns are tried in order: an explicit international prefix is
	// the strongest signal, the loose shape is a fallback.
	phonePatterns = []struct {
		re         *regexp.Regexp
		confidence float64
	}{
		{regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,9}`), 0.9},
		{regexp.MustCompile(`\+?\d{1,4}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`), 0.6},
	}

	anyDigit = regexp.MustCompile(`\d`)
	nonDigit = regexp.MustCompile(`\D`)
)

// commonDomains raise an email candidate's score; throwaway-looking
// candidates elsewhere in the document should not beat a contact-block hit.
var commonDomains = []string{".com", ".org", ".edu", ".ac.", ".gov", ".io", ".net"}

// Result holds the extracted identity fields. Absent fields are empty with
// confidence 0; none is mandatory.
type Result struct {
	Name     string
	Email    string
	Phone    string
	Location string

	Confidence map[string]float64
}

// Extractor extracts contact fields using the shared lexicon.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns a contact Extractor.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract pulls name, email, phone and location out of the document.
func (e *Extractor) Extract(doc *ingestion.Document) Result {
	res := Result{Confidence: map[string]float64{
		"name": 0, "email": 0, "phone": 0, "location": 0,
	}}

	head := doc.Lines()
	if len(head) > headLines {
		head = head[:headLines]
	}
	headText := strings.Join(head, "\n")

	res.Email, res.Confidence["email"] = bestEmail(headText, doc.Text())
	res.Phone, res.Confidence["phone"] = firstPhone(headText)
	res.Name, res.Confidence["name"] = e.findName(head)
	res.Location, res.Confidence["location"] = e.findLocation(doc.Text())
	return res
}

// bestEmail scores every address candidate and returns the winner. Head
// placement dominates; domain commonness and the absence of repeated-rune
// garbage break ties.
func bestEmail(headText, fullText string) (string, float64) {
	candidates := emailRe.FindAllString(fullText, -1)
	if len(candidates) == 0 {
		return "", 0
	}

	headSet := map[string]struct{}{}
	for _, c := range emailRe.FindAllString(headText, -1) {
		headSet[strings.ToLower(c)] = struct{}{}
	}

	best, bestScore := "", -1.0
	for _, c := range candidates {
		c = strings.ToLower(c)
		score := 0.5
		if _, inHead := headSet[c]; inHead {
			score += 0.3
		}
		for _, d := range commonDomains {
			if strings.Contains(c[strings.IndexByte(c, '@'):], d) {
				score += 0.1
				break
			}
		}
		if hasRepeatedRune(c) {
			score -= 0.2
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore > 1 {
		bestScore = 1
	}
	return best, bestScore
}

// hasRepeatedRune reports whether s contains four or more identical runes in
// a row, the tell of OCR garbage. RE2 has no backreferences, so this is a
// plain scan.
func hasRepeatedRune(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= 4 {
				return true
			}
		} else {
			prev, run = r, 1
		}
	}
	return false
}

// firstPhone tries the phone patterns in order against the document head.
// A qualifying match needs at least seven digits; anything shorter is a
// year or a postcode, not a phone number.
func firstPhone(headText string) (string, float64) {
	for _, p := range phonePatterns {
		for _, m := range p.re.FindAllString(headText, -1) {
			digits := nonDigit.ReplaceAllString(m, "")
			if len(digits) >= 7 {
				return strings.TrimSpace(m), p.confidence
			}
		}
	}
	return "", 0
}

// findName returns the first head line shaped like a person's name:
// two to six capitalized tokens, no digits, no address or header vocabulary.
// The very first line is the strongest candidate.
func (e *Extractor) findName(head []string) (string, float64) {
	for i, line := range head {
		if !e.isNameLine(line) {
			continue
		}
		if i == 0 {
			return line, 0.9
		}
		return line, 0.7
	}
	return "", 0
}

func (e *Extractor) isNameLine(line string) bool {
	if strings.Contains(line, "@") || strings.Contains(line, ":") || anyDigit.MatchString(line) {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 6 {
		return false
	}
	for _, w := range words[:2] {
		first, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(first) {
			return false
		}
	}
	for _, w := range words {
		if e.lex.IsHeaderWord(strings.Trim(w, ".,;")) {
			return false
		}
	}
	return true
}

// findLocation tests the gazetteer against the whole document; the first
// entry found wins.
func (e *Extractor) findLocation(text string) (string, float64) {
	lower := strings.ToLower(text)
	for _, loc := range e.lex.Locations() {
		if strings.Contains(lower, strings.ToLower(loc)) {
			return loc, 0.6
		}
	}
	return "", 0
}
