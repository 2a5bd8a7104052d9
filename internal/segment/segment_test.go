package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

func mustDoc(t *testing.T, text string) *ingestion.Document {
	t.Helper()
	doc, err := ingestion.NormalizeDocument(text)
	require.NoError(t, err)
	return doc
}

const headeredResume = `Jane A. Smith
jane.smith@example.com
Education
PhD in Computer Science
Stanford University
Awarded: 2020
Experience
- Postdoctoral Research Fellow
Stanford University
Publications
1. Smith J (2022): Novel Method. Nature Chemistry. DOI:10.1000/xyz
Technical Skills
| Category | Skills |
| Programming | Python, C++ |`

func TestSegment_HeaderMode_FindsAllSections(t *testing.T) {
	seg := New(lexicon.New())
	doc := mustDoc(t, headeredResume)

	spans := seg.Segment(doc, ModeHeader)

	edu, ok := Find(spans, types.SectionEducation)
	require.True(t, ok)
	assert.Equal(t, 3, edu.Start) // line after "Education"
	assert.Equal(t, "header", edu.Method)

	exp, ok := Find(spans, types.SectionExperience)
	require.True(t, ok)
	assert.Equal(t, 7, exp.Start)

	pub, ok := Find(spans, types.SectionPublications)
	require.True(t, ok)

	skills, ok := Find(spans, types.SectionSkills)
	require.True(t, ok)

	// Header lines belong to no span.
	assert.Equal(t, 6, edu.End)   // excludes "Experience" header at line 6
	assert.Equal(t, 9, exp.End)   // excludes "Publications" header at line 9
	assert.Equal(t, 11, pub.End)  // excludes "Technical Skills" header
	assert.Equal(t, 14, skills.End)
}

func TestSegment_SpansNeverOverlapAndAreOrdered(t *testing.T) {
	seg := New(lexicon.New())
	doc := mustDoc(t, headeredResume)

	for _, mode := range []Mode{ModeHeader, ModePattern} {
		spans := seg.Segment(doc, mode)
		for i := 1; i < len(spans); i++ {
			assert.GreaterOrEqual(t, spans[i].Start, spans[i-1].End,
				"mode %s: span %d overlaps span %d", mode, i, i-1)
		}
		for _, sp := range spans {
			assert.LessOrEqual(t, sp.End, doc.Len())
			assert.Positive(t, sp.Len())
		}
	}
}

func TestSegment_PatternMode_NoHeaders(t *testing.T) {
	seg := New(lexicon.New())
	doc := mustDoc(t, `Jane A. Smith
jane.smith@example.com
+1 415 555 0100
Computational chemist with ten years of experience in photochemistry
Summary of work follows below
Something unrelated here
PhD in Computer Science
Stanford University
1. Smith J, Doe A (2022): Novel Method. Nature Chemistry. DOI:10.1000/xyz
2. Smith J (2021): Older Method. Nat. Commun.`)

	spans := seg.Segment(doc, ModePattern)

	edu, ok := Find(spans, types.SectionEducation)
	require.True(t, ok)
	assert.Equal(t, 6, edu.Start) // the "PhD in ..." line itself
	assert.Equal(t, "pattern", edu.Method)

	pub, ok := Find(spans, types.SectionPublications)
	require.True(t, ok)
	assert.Equal(t, 8, pub.Start)
	// Education must be clamped so it never reaches into publications.
	assert.LessOrEqual(t, edu.End, pub.Start)
}

func TestSegment_PatternMode_ContentInFirstLines(t *testing.T) {
	seg := New(lexicon.New())
	// Headerless document whose section content starts at line zero: the
	// contact-head skip must not swallow it.
	doc := mustDoc(t, `- Postdoctoral Research Fellow
Stanford University
01/01/2020 – Present
- Led a computational study`)

	spans := seg.Segment(doc, ModePattern)

	exp, ok := Find(spans, types.SectionExperience)
	require.True(t, ok)
	assert.Equal(t, 0, exp.Start)
	assert.Equal(t, "pattern", exp.Method)
}

func TestSegment_PatternMode_DegreeOnFirstLine(t *testing.T) {
	seg := New(lexicon.New())
	doc := mustDoc(t, `PhD in Computer Science
Stanford University
Awarded: 2018
closing line of filler text for the size gate`)

	spans := seg.Segment(doc, ModePattern)

	edu, ok := Find(spans, types.SectionEducation)
	require.True(t, ok)
	assert.Equal(t, 0, edu.Start)
}

func TestSegment_PatternMode_SkipsContactHead(t *testing.T) {
	seg := New(lexicon.New())
	// A degree-looking token inside the contact head must not open a span.
	doc := mustDoc(t, `Dr. Jane Smith, PhD, Stanford University
jane.smith@example.com
+1 415 555 0100
Singapore
line five of padding text
line six of padding text
line seven of padding text`)

	spans := seg.Segment(doc, ModePattern)
	_, ok := Find(spans, types.SectionEducation)
	assert.False(t, ok)
}

func TestSegment_HeaderRequiresShortLine(t *testing.T) {
	lex := lexicon.New()

	assert.True(t, isHeaderLine("Education", lex.SectionHeaders(types.SectionEducation)))
	assert.True(t, isHeaderLine("# Education", lex.SectionHeaders(types.SectionEducation)))
	assert.True(t, isHeaderLine("Experience (most recent first)", lex.SectionHeaders(types.SectionExperience)))
	assert.False(t, isHeaderLine(
		"I have extensive experience working across many academic education settings and institutions",
		lex.SectionHeaders(types.SectionExperience)))
	assert.False(t, isHeaderLine("education@example.com", lex.SectionHeaders(types.SectionEducation)))
	assert.False(t, isHeaderLine("Education 2015", lex.SectionHeaders(types.SectionEducation)))
}

func TestSegment_CapBoundsRunawaySpan(t *testing.T) {
	seg := New(lexicon.New())

	var sb strings.Builder
	sb.WriteString("Jane A. Smith\njane.smith@example.com\nEducation\n")
	for i := 0; i < 200; i++ {
		sb.WriteString(fmt.Sprintf("filler line number %d with content\n", i))
	}
	doc := mustDoc(t, sb.String())

	spans := seg.Segment(doc, ModeHeader)
	edu, ok := Find(spans, types.SectionEducation)
	require.True(t, ok)
	assert.LessOrEqual(t, edu.Len(), 50)
}

func TestSegment_Idempotent(t *testing.T) {
	seg := New(lexicon.New())
	doc := mustDoc(t, headeredResume)

	first := seg.Segment(doc, ModeHeader)
	second := seg.Segment(doc, ModeHeader)
	assert.Equal(t, first, second)
}
