package store

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-extractor/internal/types"
)

func TestDraftRoundTrip(t *testing.T) {
	// Unit test for the marshaling the store relies on.
	// Integration tests cover the actual database operations.
	draft := types.NewProfileDraft()
	draft.Name = "Jane A. Smith"
	draft.Email = "jane.smith@example.edu"
	draft.Education = append(draft.Education, types.EducationRecord{
		Degree:      "PhD",
		Institution: "National University of Singapore",
		Year:        2021,
	})
	draft.Confidence["education"] = 0.85

	jsonBytes, err := json.Marshal(draft)
	require.NoError(t, err)

	var got types.ProfileDraft
	require.NoError(t, json.Unmarshal(jsonBytes, &got))
	require.Equal(t, "Jane A. Smith", got.Name)
	require.Len(t, got.Education, 1)
	require.Equal(t, "PhD", got.Education[0].Degree)
	require.InDelta(t, 0.85, got.Confidence["education"], 1e-9)
}

func TestDiagnosticsRoundTrip(t *testing.T) {
	diag := &types.Diagnostics{RunID: uuid.New()}
	diag.Add("education", "header", 0.9, "2 records")

	jsonBytes, err := json.Marshal(diag)
	require.NoError(t, err)

	var got types.Diagnostics
	require.NoError(t, json.Unmarshal(jsonBytes, &got))
	require.Equal(t, diag.RunID, got.RunID)
	require.Len(t, got.Entries, 1)
	require.Equal(t, "header", got.Entries[0].Strategy)
}
