package pipeline

import (
	"github.com/jonathan/cv-extractor/internal/education"
	"github.com/jonathan/cv-extractor/internal/experience"
	"github.com/jonathan/cv-extractor/internal/freetext"
	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/publications"
	"github.com/jonathan/cv-extractor/internal/skills"
	"github.com/jonathan/cv-extractor/internal/types"
)

// The adapters below wrap each field extractor behind the SectionExtractor
// interface so the cascade can treat them uniformly.

type educationExtractor struct{ ex *education.Extractor }

func (educationExtractor) Section() types.SectionType { return types.SectionEducation }

func (e educationExtractor) Extract(doc *ingestion.Document, span types.SectionSpan) Result {
	records, conf := e.ex.Extract(doc, span)
	return listResult[types.EducationRecord]{records, conf, func(d *types.ProfileDraft, r []types.EducationRecord, c float64) {
		d.Education = r
		d.Confidence["education"] = c
	}}
}

type experienceExtractor struct{ ex *experience.Extractor }

func (experienceExtractor) Section() types.SectionType { return types.SectionExperience }

func (e experienceExtractor) Extract(doc *ingestion.Document, span types.SectionSpan) Result {
	records, conf := e.ex.Extract(doc, span)
	return listResult[types.ExperienceRecord]{records, conf, func(d *types.ProfileDraft, r []types.ExperienceRecord, c float64) {
		d.Experience = r
		d.Confidence["experience"] = c
	}}
}

type publicationsExtractor struct{ ex *publications.Extractor }

func (publicationsExtractor) Section() types.SectionType { return types.SectionPublications }

func (e publicationsExtractor) Extract(doc *ingestion.Document, span types.SectionSpan) Result {
	records, conf := e.ex.Extract(doc, span)
	return listResult[types.PublicationRecord]{records, conf, func(d *types.ProfileDraft, r []types.PublicationRecord, c float64) {
		d.Publications = r
		d.Confidence["publications"] = c
	}}
}

type skillsExtractor struct{ ex *skills.Extractor }

func (skillsExtractor) Section() types.SectionType { return types.SectionSkills }

func (e skillsExtractor) Extract(doc *ingestion.Document, span types.SectionSpan) Result {
	entries, conf := e.ex.Extract(doc, span)
	return listResult[types.SkillEntry]{entries, conf, func(d *types.ProfileDraft, r []types.SkillEntry, c float64) {
		d.Skills = r
		d.Confidence["skills"] = c
	}}
}

type presentationsExtractor struct{ ex *freetext.Extractor }

func (presentationsExtractor) Section() types.SectionType { return types.SectionPresentations }

func (e presentationsExtractor) Extract(doc *ingestion.Document, span types.SectionSpan) Result {
	lines, conf := e.ex.Presentations(doc, span)
	return listResult[string]{lines, conf, func(d *types.ProfileDraft, r []string, c float64) {
		d.Presentations = r
		d.Confidence["presentations"] = c
	}}
}

type awardsExtractor struct{ ex *freetext.Extractor }

func (awardsExtractor) Section() types.SectionType { return types.SectionAwards }

func (e awardsExtractor) Extract(doc *ingestion.Document, span types.SectionSpan) Result {
	lines, conf := e.ex.Awards(doc, span)
	return listResult[string]{lines, conf, func(d *types.ProfileDraft, r []string, c float64) {
		d.Awards = r
		d.Confidence["awards"] = c
	}}
}

type interestsExtractor struct{ ex *freetext.Extractor }

func (interestsExtractor) Section() types.SectionType { return types.SectionResearchInterests }

func (e interestsExtractor) Extract(doc *ingestion.Document, span types.SectionSpan) Result {
	lines, conf := e.ex.Interests(doc, span)
	return listResult[string]{lines, conf, func(d *types.ProfileDraft, r []string, c float64) {
		d.ResearchInterests = r
		d.Confidence["research_interests"] = c
	}}
}

// listResult is the shared Result shape: a record slice, its confidence, and
// the function that writes both into a draft.
type listResult[T any] struct {
	records []T
	conf    float64
	apply   func(*types.ProfileDraft, []T, float64)
}

func (r listResult[T]) Count() int          { return len(r.records) }
func (r listResult[T]) Confidence() float64 { return r.conf }
func (r listResult[T]) Apply(d *types.ProfileDraft) {
	r.apply(d, r.records, r.conf)
}
