// Package lexicon provides the immutable keyword and pattern tables that drive
// section segmentation and field extraction. A Lexicon is built once at
// startup and is safe for concurrent use by any number of parses.
package lexicon

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-extractor/internal/types"
)

// DegreePattern is one compiled degree matcher. Patterns are ordered by
// specificity: doctoral before master's before bachelor's before MBA, so the
// first match wins. Group 2 captures the field of study when present.
type DegreePattern struct {
	Level string
	Re    *regexp.Regexp
}

// Lexicon holds all keyword tables. All fields are private and never mutated
// after New returns.
type Lexicon struct {
	sectionHeaders map[types.SectionType][]string
	degreePatterns []DegreePattern
	institutions   []string
	roles          []string
	verbs          []string
	journals       []*regexp.Regexp
	locations      []string
	venueMarkers   []string
	awardMarkers   []string
	denylist       map[string]struct{}
	headerWords    map[string]struct{}
	knownTerms     map[string]string
	canonical      map[string]string
	ingAllow       map[string]struct{}
}

// New constructs the Lexicon. Call once per process and share the result.
func New() *Lexicon {
	l := &Lexicon{
		sectionHeaders: map[types.SectionType][]string{
			types.SectionEducation: {
				"education", "academic background", "qualifications", "qualification",
			},
			types.SectionExperience: {
				"experience", "work experience", "employment",
				"professional experience", "career", "positions",
			},
			types.SectionPublications: {
				"publications", "peer-reviewed", "journal articles", "papers",
				"research papers",
			},
			types.SectionSkills: {
				"technical skills", "skills", "expertise", "competencies",
				"proficiencies",
			},
			types.SectionPresentations: {
				"presentations", "conferences", "invited presentations", "talks",
				"posters",
			},
			types.SectionAwards: {
				"awards", "prizes", "funding", "honors", "honours",
			},
			types.SectionResearchInterests: {
				"research interests", "research focus",
			},
		},
		degreePatterns: []DegreePattern{
			{Level: "PhD", Re: regexp.MustCompile(`(?i)^[-•*]?\s*(PhD|Ph\.?\s?D|Doctorate|Doctor|D\.Phil)\b\.?\s*(?:(?:in|of)\s+)?([^,]*)`)},
			{Level: "MS", Re: regexp.MustCompile(`(?i)^[-•*]?\s*(MSc|M\.?\s?Sc|MS|M\.S|Masters?)\b\.?\s*(?:(?:in|of)\s+)?([^,]*)`)},
			{Level: "BSc", Re: regexp.MustCompile(`(?i)^[-•*]?\s*(BSc|B\.?\s?Sc|BS|B\.S|Bachelors?)\b\.?\s*(?:(?:in|of)\s+)?([^,]*)`)},
			{Level: "MBA", Re: regexp.MustCompile(`(?i)^[-•*]?\s*(MBA|M\.B\.A)\b\.?\s*(?:(?:in|of)\s+)?([^,]*)`)},
		},
		institutions: []string{
			"university", "institute", "college", "school", "laboratory", "lab",
			"center", "centre", "technologies", "ltd", "inc",
			"sutd", "ntu", "nus", "ucl", "lums", "uet", "nust", "mit", "nanyang",
			"queen mary",
		},
		roles: []string{
			"researcher", "scientist", "engineer", "fellow", "postdoc",
			"postdoctoral", "mentor", "assistant", "professor", "lecturer",
			"director", "manager", "visiting", "intern", "developer", "analyst",
			"consultant",
		},
		verbs: []string{
			"led", "conducted", "performed", "employed", "guided", "organized",
			"organised", "leveraged", "developed", "designed", "implemented",
			"actively", "strategic",
		},
		journals: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Angew\.\s*Chem\.\s*(?:Int\.\s*Ed\.)?`),
			regexp.MustCompile(`(?i)J\.\s*Am\.\s*Chem\.\s*Soc\.`),
			regexp.MustCompile(`(?i)Nature\s+[A-Z][a-z]+`),
			regexp.MustCompile(`(?i)Nat\.\s*Commun\.`),
			regexp.MustCompile(`(?i)CCS\s*Chemistry`),
			regexp.MustCompile(`(?i)Chem\.\s*Commun\.`),
			regexp.MustCompile(`(?i)Dyes\s*(?:and\s*)?Pigments`),
			regexp.MustCompile(`(?i)Adv\.\s*Sci\.`),
			regexp.MustCompile(`(?i)Adv\.\s*Funct\.\s*Mater\.`),
			regexp.MustCompile(`(?i)Chin\.\s*Chem\.\s*Lett\.`),
			regexp.MustCompile(`(?i)Mater\.\s*Chem\.\s*Front\.`),
			regexp.MustCompile(`(?i)J\.\s*Phys\.\s*Chem\.\s*[A-Z]`),
		},
		locations: []string{
			"Singapore", "United States", "USA", "United Kingdom", "UK", "London",
			"Australia", "Canada", "India", "Malaysia", "Thailand", "Hong Kong",
			"Germany", "France", "China", "Japan",
		},
		venueMarkers: []string{
			"conference", "symposium", "meeting", "presentation", "talk", "poster",
		},
		awardMarkers: []string{
			"award", "prize", "scholarship", "fellowship", "grant", "recognition",
		},
		ingAllow: map[string]struct{}{
			"programming": {}, "engineering": {}, "marketing": {},
			"machine learning": {}, "deep learning": {},
		},
	}

	l.denylist = toSet(
		// stray verbs and adverbs that leak out of experience prose
		"using", "utilising", "utilizing", "employing", "leveraging",
		"developing", "creating", "designing", "implementing", "conducting",
		"performing", "leading", "managing", "organizing", "coordinating",
		"actively", "guided", "performed", "conducted", "led", "organized",
		"primarily", "especially", "particularly", "specifically", "including",
		"also", "additionally", "furthermore", "moreover", "however",
		// prepositions, articles, conjunctions
		"the", "and", "or", "for", "with", "from", "that", "this", "these",
		"those", "into", "onto", "upon", "within", "without", "via", "to",
		"in", "on", "at", "by", "of", "a", "an", "as", "is", "are", "was",
		// generic résumé filler
		"experience", "knowledge", "familiarity", "understanding", "proficient",
		"skilled", "expert", "advanced", "intermediate", "beginner",
		"methodology", "technique", "approach", "method", "system",
		"application", "software", "technology", "data", "information",
		"research", "study", "analysis", "development", "project", "work",
		"position", "role", "density", "stability", "photostability",
		// institutions and degrees
		"university", "college", "institute", "department", "laboratory",
		"lab", "center", "centre",
		"ntu", "sutd", "nus", "ucl", "mit", "stanford", "harvard", "oxford",
		"cambridge", "usa", "uk", "sg",
		"phd", "ms", "bsc", "mba", "masters", "bachelor", "doctorate",
		// category headers
		"technical expertise", "technical skills", "technical", "expertise",
		"skills", "skill", "competencies", "proficiencies", "capabilities",
		"programming languages", "languages", "tools", "frameworks",
		"libraries", "platforms", "databases", "methodologies", "practices",
		"concepts", "domains", "category", "ics", "ing", "tion",
	)

	l.headerWords = toSet(
		"email", "phone", "date", "birth", "orcid", "website", "researcher",
		"id", "experience", "education", "publications", "skills", "awards",
		"curriculum", "vitae",
	)

	l.knownTerms = knownTechnicalTerms()
	l.canonical = canonicalSkillNames()
	return l
}

// SectionHeaders returns the header keywords for a section type, most
// specific first.
func (l *Lexicon) SectionHeaders(t types.SectionType) []string {
	return l.sectionHeaders[t]
}

// DegreePatterns returns the degree matchers ordered by specificity.
func (l *Lexicon) DegreePatterns() []DegreePattern {
	return l.degreePatterns
}

// HasInstitutionMarker reports whether the line mentions a known institution
// keyword or abbreviation.
func (l *Lexicon) HasInstitutionMarker(line string) bool {
	return containsAny(strings.ToLower(line), l.institutions)
}

// HasRoleMarker reports whether the text mentions a known job-role keyword.
func (l *Lexicon) HasRoleMarker(text string) bool {
	return containsAny(strings.ToLower(text), l.roles)
}

// HasDescriptionVerb reports whether the line begins with a recognized
// description verb, the shape of a responsibility bullet that lost its marker.
func (l *Lexicon) HasDescriptionVerb(line string) bool {
	first, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(line)), " ")
	for _, v := range l.verbs {
		if first == v {
			return true
		}
	}
	return false
}

// MatchJournal returns the first curated journal abbreviation found in the
// text, or empty string.
func (l *Lexicon) MatchJournal(text string) string {
	for _, re := range l.journals {
		if m := re.FindString(text); m != "" {
			return strings.Trim(m, ".,; ")
		}
	}
	return ""
}

// Locations returns the location gazetteer in preference order.
func (l *Lexicon) Locations() []string {
	return l.locations
}

// HasVenueMarker reports whether the line mentions a presentation venue keyword.
func (l *Lexicon) HasVenueMarker(line string) bool {
	return containsAny(strings.ToLower(line), l.venueMarkers)
}

// HasAwardMarker reports whether the line mentions an award keyword.
func (l *Lexicon) HasAwardMarker(line string) bool {
	return containsAny(strings.ToLower(line), l.awardMarkers)
}

// IsDenylisted reports whether a candidate token must never be emitted as a
// skill: category headers, stray verbs, institution abbreviations and similar.
func (l *Lexicon) IsDenylisted(token string) bool {
	_, ok := l.denylist[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// IsHeaderWord reports whether the word disqualifies a line from being a
// person's name (contact metadata and section header vocabulary).
func (l *Lexicon) IsHeaderWord(word string) bool {
	_, ok := l.headerWords[strings.ToLower(word)]
	return ok
}

// TermCategory returns the category bucket for a known technical term and
// whether the term is known at all. Lookup is case-insensitive.
func (l *Lexicon) TermCategory(term string) (string, bool) {
	cat, ok := l.knownTerms[strings.ToLower(strings.TrimSpace(term))]
	return cat, ok
}

// KnownTerms returns every known technical term mapped to its category.
// The returned map is a copy; callers may not mutate lexicon state.
func (l *Lexicon) KnownTerms() map[string]string {
	out := make(map[string]string, len(l.knownTerms))
	for k, v := range l.knownTerms {
		out[k] = v
	}
	return out
}

// Canonical returns the canonical spelling for a skill variant, if one exists.
func (l *Lexicon) Canonical(skill string) (string, bool) {
	c, ok := l.canonical[strings.ToLower(strings.TrimSpace(skill))]
	return c, ok
}

// AllowedGerund reports whether an "-ing" token is a legitimate skill name
// rather than a stray verb.
func (l *Lexicon) AllowedGerund(token string) bool {
	_, ok := l.ingAllow[strings.ToLower(token)]
	return ok
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
