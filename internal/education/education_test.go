package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/types"
)

func extract(t *testing.T, text string) ([]types.EducationRecord, float64) {
	t.Helper()
	doc, err := ingestion.NormalizeDocument(text)
	require.NoError(t, err)
	span := types.SectionSpan{Type: types.SectionEducation, Start: 0, End: doc.Len()}
	return New(lexicon.New()).Extract(doc, span)
}

func TestExtract_DegreeInstitutionAndAwardedYear(t *testing.T) {
	records, conf := extract(t, `PhD in Computer Science
Stanford University
Awarded: 2020`)

	require.Len(t, records, 1)
	assert.Equal(t, types.EducationRecord{
		Degree:      "PhD",
		Field:       "Computer Science",
		Institution: "Stanford University",
		Year:        2020,
	}, records[0])
	assert.InDelta(t, 1.0, conf, 1e-9)
}

func TestExtract_BulletedDegrees(t *testing.T) {
	records, _ := extract(t, `- PhD in Science, Mathematics & Technology
Singapore University of Technology and Design
- MSc in Chemistry
Nanyang Technological University, 2016`)

	require.Len(t, records, 2)
	assert.Equal(t, "PhD", records[0].Degree)
	assert.Equal(t, "Science", records[0].Field)
	assert.Equal(t, "Singapore University of Technology and Design", records[0].Institution)

	assert.Equal(t, "MS", records[1].Degree)
	assert.Equal(t, "Chemistry", records[1].Field)
	assert.Equal(t, "Nanyang Technological University, 2016", records[1].Institution)
	assert.Equal(t, 2016, records[1].Year)
}

func TestExtract_DegreeOrderPrefersDoctoral(t *testing.T) {
	records, _ := extract(t, `Doctor of Philosophy
University of Cambridge
filler line to satisfy the normalizer minimum`)

	require.Len(t, records, 1)
	assert.Equal(t, "PhD", records[0].Degree)
}

func TestExtract_InstitutionScanStopsAtNextDegree(t *testing.T) {
	records, _ := extract(t, `PhD in Physics
Defence: 2021
BSc in Mathematics
University of Oxford`)

	require.Len(t, records, 2)
	assert.Empty(t, records[0].Institution)
	assert.Equal(t, 2021, records[0].Year)
	assert.Equal(t, "University of Oxford", records[1].Institution)
}

func TestExtract_VivaYearPhrase(t *testing.T) {
	records, _ := extract(t, `MBA
London Business School
Viva passed in 2019
no further entries appear in this document`)

	require.Len(t, records, 1)
	assert.Equal(t, "MBA", records[0].Degree)
	assert.Equal(t, 2019, records[0].Year)
}

func TestExtract_NoDegreesYieldsNothing(t *testing.T) {
	records, conf := extract(t, `worked on several research projects over the years
collaborating with teams across three departments
and presenting results at internal reviews`)

	assert.Empty(t, records)
	assert.Zero(t, conf)
}

func TestExtract_RecordsSatisfyInvariant(t *testing.T) {
	records, conf := extract(t, `PhD in Chemistry
Queen Mary University of London
MSc
no institution follows here for this one
BSc in Biology (Honours)
University of Toronto College of Arts`)

	for _, r := range records {
		assert.True(t, r.Degree != "" || r.Institution != "")
	}
	assert.GreaterOrEqual(t, conf, 0.0)
	assert.LessOrEqual(t, conf, 1.0)
}

func TestExtract_FieldTrimsParenthetical(t *testing.T) {
	records, _ := extract(t, `BSc in Biology (Honours)
University of Toronto
filler line to satisfy the normalizer minimum`)

	require.Len(t, records, 1)
	assert.Equal(t, "Biology", records[0].Field)
}
