package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-extractor/internal/config"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/pipeline"
	"github.com/jonathan/cv-extractor/internal/types"
)

const sampleResume = `Jane A. Smith
jane.smith@example.edu
+1 415 555 0100

Education
PhD in Chemistry, National University of Singapore, 2021
BSc in Chemistry, University of Melbourne, 2015

Skills
Programming: Python, MATLAB
`

func TestParseOne_WritesDraftFile(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte(sampleResume), 0644))

	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0755))

	cfg := &config.Config{OutputDir: outDir}
	parser := pipeline.New(lexicon.New())
	var mu sync.Mutex

	err := parseOne(context.Background(), parser, nil, cfg, inputFile, &mu)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "resume.json"))
	require.NoError(t, err)

	var draft types.ProfileDraft
	require.NoError(t, json.Unmarshal(data, &draft))
	assert.Equal(t, "Jane A. Smith", draft.Name)
	assert.Equal(t, "jane.smith@example.edu", draft.Email)
	assert.NotEmpty(t, draft.Education)
}

func TestParseOne_MissingInputFile(t *testing.T) {
	cfg := &config.Config{OutputDir: outputStdout}
	parser := pipeline.New(lexicon.New())
	var mu sync.Mutex

	err := parseOne(context.Background(), parser, nil, cfg, "no_such_file.txt", &mu)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestParseOne_TinyDocumentFails(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "empty.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte("too short"), 0644))

	cfg := &config.Config{OutputDir: outputStdout}
	parser := pipeline.New(lexicon.New())
	var mu sync.Mutex

	err := parseOne(context.Background(), parser, nil, cfg, inputFile, &mu)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestApplyMinConfidence(t *testing.T) {
	draft := types.NewProfileDraft()
	draft.Name = "Jane A. Smith"
	draft.Email = "jane.smith@example.edu"
	draft.Education = append(draft.Education, types.EducationRecord{Degree: "PhD"})
	draft.Skills = append(draft.Skills, types.SkillEntry{Text: "Python", Confidence: 0.9})
	draft.Confidence["name"] = 0.9
	draft.Confidence["email"] = 0.4
	draft.Confidence["education"] = 0.3
	draft.Confidence["skills"] = 0.8

	applyMinConfidence(draft, 0.5)

	assert.Equal(t, "Jane A. Smith", draft.Name, "high-confidence field survives")
	assert.Empty(t, draft.Email, "low-confidence field is blanked")
	assert.Empty(t, draft.Education)
	assert.NotEmpty(t, draft.Skills)

	// Confidence entries stay so consumers can see why fields are empty.
	assert.InDelta(t, 0.4, draft.Confidence["email"], 1e-9)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "resume.json", outputName("resume.txt"))
	assert.Equal(t, "cv.json", outputName("/data/in/cv.txt"))
	assert.Equal(t, "notes.json", outputName("notes"))
	assert.Equal(t, "archive.tar.json", outputName("archive.tar.gz"))
}
