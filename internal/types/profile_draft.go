// Package types provides type definitions for structured data used throughout the cv-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProfileDraft is the structured output of a single parse: every extracted
// field of a résumé/CV. Any field may be empty; consumers must check the
// confidence map before assuming a field is populated.
type ProfileDraft struct {
	Name              string              `json:"name"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone"`
	Location          string              `json:"location"`
	Education         []EducationRecord   `json:"education"`
	Experience        []ExperienceRecord  `json:"experience"`
	Skills            []SkillEntry        `json:"skills"`
	Publications      []PublicationRecord `json:"publications"`
	Presentations     []string            `json:"presentations"`
	Awards            []string            `json:"awards"`
	ResearchInterests []string            `json:"research_interests"`
	Confidence        map[string]float64  `json:"confidence"`
}

// NewProfileDraft returns an empty draft with all slices and the confidence
// map initialized, so the JSON serialization never contains null collections.
func NewProfileDraft() *ProfileDraft {
	return &ProfileDraft{
		Education:         []EducationRecord{},
		Experience:        []ExperienceRecord{},
		Skills:            []SkillEntry{},
		Publications:      []PublicationRecord{},
		Presentations:     []string{},
		Awards:            []string{},
		ResearchInterests: []string{},
		Confidence:        map[string]float64{},
	}
}

// EducationRecord represents one degree entry. A record is only valid when
// Degree or Institution is non-empty.
type EducationRecord struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        int    `json:"year,omitempty"`
}

// ExperienceRecord represents one position entry. A record is only valid when
// Title or Company is non-empty.
type ExperienceRecord struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description []string `json:"description"`
}

// PublicationRecord represents one bibliography entry.
type PublicationRecord struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Journal string `json:"journal"`
	Year    int    `json:"year,omitempty"`
	DOI     string `json:"doi,omitempty"`
}

// SkillEntry represents one deduplicated skill with an optional category bucket.
type SkillEntry struct {
	Text       string  `json:"text"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence"`
}
