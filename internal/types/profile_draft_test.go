package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileDraft_NoNullCollections(t *testing.T) {
	draft := NewProfileDraft()

	data, err := json.Marshal(draft)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"education":[]`)
	assert.Contains(t, string(data), `"skills":[]`)
	assert.Contains(t, string(data), `"confidence":{}`)
}

func TestProfileDraft_RoundTrip(t *testing.T) {
	draft := NewProfileDraft()
	draft.Name = "Jane A. Smith"
	draft.Email = "jane.smith@example.com"
	draft.Education = append(draft.Education, EducationRecord{
		Degree:      "PhD",
		Field:       "Computer Science",
		Institution: "Stanford University",
		Year:        2020,
	})
	draft.Confidence["email"] = 0.9

	data, err := json.Marshal(draft)
	require.NoError(t, err)

	var decoded ProfileDraft
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, draft.Name, decoded.Name)
	assert.Equal(t, draft.Education, decoded.Education)
	assert.InDelta(t, 0.9, decoded.Confidence["email"], 1e-9)
}

func TestSectionSpan_Len(t *testing.T) {
	assert.Equal(t, 5, SectionSpan{Start: 3, End: 8}.Len())
	assert.Equal(t, 0, SectionSpan{Start: 8, End: 3}.Len())
	assert.Equal(t, 0, SectionSpan{Start: 4, End: 4}.Len())
}

func TestDiagnostics_AddAndLookup(t *testing.T) {
	var diags Diagnostics
	diags.Add("education", "header", 0.85, "2 records")
	diags.Add("skills", "pattern", 0.6, "")

	entry, ok := diags.ForField("education")
	require.True(t, ok)
	assert.Equal(t, "header", entry.Strategy)
	assert.InDelta(t, 0.85, entry.Confidence, 1e-9)

	_, ok = diags.ForField("publications")
	assert.False(t, ok)
}
