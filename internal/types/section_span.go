package types

// SectionType identifies a résumé section recognized by the segmenter.
type SectionType string

// Recognized section types.
const (
	SectionEducation         SectionType = "education"
	SectionExperience        SectionType = "experience"
	SectionPublications      SectionType = "publications"
	SectionSkills            SectionType = "skills"
	SectionPresentations     SectionType = "presentations"
	SectionAwards            SectionType = "awards"
	SectionResearchInterests SectionType = "research_interests"
)

// SectionTypes lists all recognized section types in canonical document order.
var SectionTypes = []SectionType{
	SectionEducation,
	SectionExperience,
	SectionPublications,
	SectionSkills,
	SectionPresentations,
	SectionAwards,
	SectionResearchInterests,
}

// SectionSpan is a contiguous line range attributed to one section type.
// Start is inclusive and End exclusive; spans for a document never overlap.
type SectionSpan struct {
	Type   SectionType `json:"type"`
	Start  int         `json:"start_line"`
	End    int         `json:"end_line"`
	Method string      `json:"method"` // "header" or "pattern"
}

// Len returns the number of lines covered by the span.
func (s SectionSpan) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}
