// Package ingestion normalizes raw résumé text into an ordered list of
// clean lines ready for segmentation. Binary-format decoding (PDF, DOCX)
// happens upstream; this package only sees the resulting text blob.
package ingestion

import (
	"regexp"
	"strings"
)

const (
	// minLines and minChars define the smallest document considered usable.
	minLines = 3
	minChars = 50
)

var innerSpace = regexp.MustCompile(`\s+`)

// ocrEmailFixes corrects known transcription errors, applied only inside
// email-shaped tokens where an OCR pass commonly merges "rn" into what
// should read "m". Applying these globally corrupts ordinary prose.
var ocrEmailFixes = []struct{ wrong, right string }{
	{"corn", "com"},
	{"rn", "m"},
}

// Document is the normalized form of one résumé: trimmed, non-empty lines in
// original order. A Document is immutable once constructed.
type Document struct {
	lines []string
	raw   string
}

// NormalizeDocument cleans a raw text blob into a Document. Line boundaries
// are preserved; whitespace inside each line is collapsed; blank lines are
// dropped; transcription fixes are applied to email tokens. Returns
// *EmptyDocumentError when the result is too small to be a résumé.
func NormalizeDocument(raw string) (*Document, error) {
	content := strings.ReplaceAll(raw, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var lines []string
	var chars int
	for _, line := range strings.Split(content, "\n") {
		line = innerSpace.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" {
			continue
		}
		line = fixEmailTokens(line)
		lines = append(lines, line)
		chars += len(line)
	}

	if len(lines) < minLines || chars < minChars {
		return nil, &EmptyDocumentError{Lines: len(lines), Chars: chars}
	}

	return &Document{lines: lines, raw: content}, nil
}

// Lines returns the normalized lines. The returned slice is shared; callers
// must treat it as read-only.
func (d *Document) Lines() []string {
	return d.lines
}

// Line returns the i-th normalized line, or empty string when out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Len returns the number of normalized lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Text returns the normalized lines re-joined with newlines.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// fixEmailTokens applies the OCR substitution table to tokens that look like
// email addresses, leaving the rest of the line untouched.
func fixEmailTokens(line string) string {
	if !strings.Contains(line, "@") {
		return line
	}

	fields := strings.Fields(line)
	for i, tok := range fields {
		if !strings.Contains(tok, "@") {
			continue
		}
		for _, fix := range ocrEmailFixes {
			tok = strings.ReplaceAll(tok, fix.wrong, fix.right)
		}
		fields[i] = tok
	}
	return strings.Join(fields, " ")
}
