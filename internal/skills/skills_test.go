package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

func extract(t *testing.T, text string) ([]types.SkillEntry, float64) {
	t.Helper()
	doc, err := ingestion.NormalizeDocument(text)
	require.NoError(t, err)
	span := types.SectionSpan{Type: types.SectionSkills, Start: 0, End: doc.Len()}
	return New(lexicon.New()).Extract(doc, span)
}

func names(entries []types.SkillEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

func TestExtract_TableRow(t *testing.T) {
	entries, _ := extract(t, `| Category | Skills |
| Programming | Python, C++, SQL |
| Quantum Software | Gaussian, ORCA |`)

	got := names(entries)
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "C++")
	assert.Contains(t, got, "SQL")

	byName := map[string]types.SkillEntry{}
	for _, e := range entries {
		byName[e.Text] = e
	}
	assert.Equal(t, "Programming", byName["Python"].Category)
	assert.Equal(t, "Programming", byName["C++"].Category)
	assert.Equal(t, "Quantum Software", byName["Gaussian"].Category)
}

func TestExtract_ColonAndBulletLines(t *testing.T) {
	entries, _ := extract(t, `Programming: Python, MATLAB
- Docker, Kubernetes
- LaTeX`)

	got := names(entries)
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "MATLAB")
	assert.Contains(t, got, "Docker")
	assert.Contains(t, got, "Kubernetes")
	assert.Contains(t, got, "LaTeX")
}

func TestExtract_CaseInsensitiveDedupKeepsFirstSeen(t *testing.T) {
	entries, _ := extract(t, `| Programming | Python, PYTHON, python |
- Python once more for good measure
filler line so the normalizer accepts this document`)

	count := 0
	for _, e := range entries {
		if strings.EqualFold(e.Text, "python") {
			count++
			assert.Equal(t, "Python", e.Text)
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_DenylistAndShortTokensRejected(t *testing.T) {
	entries, _ := extract(t, `Programming: and, the, using, leveraging, or
- experience, knowledge, ics
filler line so the normalizer accepts this document`)

	for _, e := range entries {
		assert.False(t, lexicon.New().IsDenylisted(e.Text), e.Text)
		assert.Greater(t, len(e.Text), 2)
	}
}

func TestExtract_GerundAndAdverbFiltering(t *testing.T) {
	entries, _ := extract(t, `- coordinating, actively, primarily
- programming, machine learning
filler line so the normalizer accepts this document`)

	got := names(entries)
	assert.NotContains(t, got, "coordinating")
	assert.NotContains(t, got, "actively")
	assert.Contains(t, got, "programming")
	assert.Contains(t, got, "machine learning")
}

func TestExtract_SecondaryScanKnownTermsOnly(t *testing.T) {
	text := `Experience
Conducted DFT calculations in Gaussian and wrote Python tooling.
Presented results to the NDApanel at UCL in March.`
	doc, err := ingestion.NormalizeDocument(text)
	require.NoError(t, err)

	// zero-length span: every entry must come from the document scan
	span := types.SectionSpan{Type: types.SectionSkills, Start: 0, End: 0}
	entries, _ := New(lexicon.New()).Extract(doc, span)

	got := names(entries)
	assert.Contains(t, got, "DFT")
	assert.Contains(t, got, "Gaussian")
	assert.Contains(t, got, "Python")
	assert.NotContains(t, got, "UCL")
	assert.NotContains(t, got, "March")
}

func TestExtract_CanonicalNames(t *testing.T) {
	entries, _ := extract(t, `Programming: golang, nodejs, postgres
second filler line keeping the document large enough
third filler line keeping the document large enough`)

	got := names(entries)
	assert.Contains(t, got, "Go")
	assert.Contains(t, got, "Node.js")
	assert.Contains(t, got, "PostgreSQL")
}

func TestExtract_ParenthesesAndPrefixesStripped(t *testing.T) {
	entries, _ := extract(t, `| Tools | Languages: Python (advanced), Docker (containers) |
second filler line keeping the document large enough
third filler line keeping the document large enough`)

	got := names(entries)
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "Docker")
}

func TestExtract_CapAndConfidenceBounds(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Skills\n")
	for i := 0; i < 120; i++ {
		sb.WriteString("- Skillname")
		sb.WriteString(strings.Repeat("x", i%7+1))
		sb.WriteString(string(rune('a' + i%26)))
		sb.WriteString("\n")
	}
	entries, conf := extract(t, sb.String())

	assert.LessOrEqual(t, len(entries), maxSkills)
	assert.GreaterOrEqual(t, conf, 0.0)
	assert.LessOrEqual(t, conf, 1.0)
	for _, e := range entries {
		assert.GreaterOrEqual(t, e.Confidence, 0.0)
		assert.LessOrEqual(t, e.Confidence, 1.0)
	}
}
