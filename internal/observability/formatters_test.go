package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-extractor/internal/types"
)

func TestPrintProfileDraft(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	draft := types.NewProfileDraft()
	draft.Name = "Jane A. Smith"
	draft.Email = "jane.smith@example.com"
	draft.Education = []types.EducationRecord{
		{Degree: "PhD", Field: "Chemistry", Institution: "Stanford University", Year: 2020},
	}
	draft.Experience = []types.ExperienceRecord{
		{Title: "Postdoctoral Research Fellow", Company: "Stanford University"},
	}

	p.PrintProfileDraft(draft)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PROFILE DRAFT")
	assert.Contains(t, output, "Jane A. Smith")
	assert.Contains(t, output, "jane.smith@example.com")
	assert.Contains(t, output, "PhD in Chemistry")
	assert.Contains(t, output, "Postdoctoral Research")
}

func TestPrintProfileDraft_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfileDraft(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	diag := &types.Diagnostics{RunID: uuid.New()}
	diag.Add("education", "header", 0.9, "1 records")
	diag.Add("experience", "", 0, "no qualifying records")

	p.PrintDiagnostics(diag)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTION DIAGNOSTICS")
	assert.Contains(t, output, "education")
	assert.Contains(t, output, "header")
	assert.Contains(t, output, "no qualifying records")
}

func TestPrintDiagnostics_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDiagnostics(&types.Diagnostics{})

	assert.Empty(t, buf.String())
}

func TestPrintSpans(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSpans([]types.SectionSpan{
		{Type: types.SectionEducation, Start: 4, End: 7, Method: "header"},
		{Type: types.SectionSkills, Start: 12, End: 15, Method: "pattern"},
	})
	output := buf.String()

	assert.Contains(t, output, "DETECTED SECTIONS")
	assert.Contains(t, output, "education")
	assert.Contains(t, output, "pattern")
}
