// Package pipeline orchestrates the extraction cascade: normalize, segment,
// extract per section with strategy fallback, merge into a ProfileDraft.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/cv-extractor/internal/contact"
	"github.com/jonathan/cv-extractor/internal/education"
	"github.com/jonathan/cv-extractor/internal/experience"
	"github.com/jonathan/cv-extractor/internal/freetext"
	"github.com/jonathan/cv-extractor/internal/ingestion"
	"github.com/jonathan/cv-extractor/internal/lexicon"
	"github.com/jonathan/cv-extractor/internal/publications"
	"github.com/jonathan/cv-extractor/internal/segment"
	"github.com/jonathan/cv-extractor/internal/skills"
	"github.com/jonathan/cv-extractor/internal/types"
)

// strategies are the span-resolution modes tried per section, in priority
// order. Results are never mixed within a section: the first strategy that
// yields a qualifying record wins that section outright.
var strategies = []segment.Mode{segment.ModeHeader, segment.ModePattern}

// Result is one extractor's output for one section under one strategy.
type Result interface {
	// Count reports how many qualifying records were produced.
	Count() int
	// Confidence is the overall [0,1] score for the section.
	Confidence() float64
	// Apply writes the records and confidence into the draft.
	Apply(d *types.ProfileDraft)
}

// SectionExtractor extracts one section type from a span.
type SectionExtractor interface {
	Section() types.SectionType
	Extract(doc *ingestion.Document, span types.SectionSpan) Result
}

// Parser runs the full extraction cascade. It is safe for concurrent use;
// every Parse call works on its own document and draft.
type Parser struct {
	lex        *lexicon.Lexicon
	seg        *segment.Segmenter
	contact    *contact.Extractor
	extractors []SectionExtractor
}

// New builds a Parser around a shared Lexicon.
func New(lex *lexicon.Lexicon) *Parser {
	ft := freetext.New(lex)
	return &Parser{
		lex:     lex,
		seg:     segment.New(lex),
		contact: contact.New(lex),
		extractors: []SectionExtractor{
			educationExtractor{education.New(lex)},
			experienceExtractor{experience.New(lex)},
			publicationsExtractor{publications.New(lex)},
			skillsExtractor{skills.New(lex)},
			presentationsExtractor{ft},
			awardsExtractor{ft},
			interestsExtractor{ft},
		},
	}
}

// Parse extracts a ProfileDraft from raw text. The only fatal error is an
// unusably small document; everything else degrades to sparse fields with
// low confidence, recorded in the diagnostics.
func (p *Parser) Parse(raw string) (*types.ProfileDraft, *types.Diagnostics, error) {
	doc, err := ingestion.NormalizeDocument(raw)
	if err != nil {
		return nil, nil, err
	}

	draft := types.NewProfileDraft()
	diag := &types.Diagnostics{RunID: uuid.New()}

	p.applyContact(doc, draft, diag)

	spansByMode := make(map[segment.Mode][]types.SectionSpan, len(strategies))
	for _, mode := range strategies {
		spansByMode[mode] = p.seg.Segment(doc, mode)
	}

	for _, ext := range p.extractors {
		p.runCascade(doc, draft, diag, ext, spansByMode)
	}
	return draft, diag, nil
}

// runCascade tries each strategy for one section until a result qualifies.
// A later strategy is consulted only when the earlier one found nothing for
// this section; other sections are unaffected.
func (p *Parser) runCascade(doc *ingestion.Document, draft *types.ProfileDraft, diag *types.Diagnostics, ext SectionExtractor, spansByMode map[segment.Mode][]types.SectionSpan) {
	field := string(ext.Section())
	for _, mode := range strategies {
		span, ok := segment.Find(spansByMode[mode], ext.Section())
		if !ok {
			span = types.SectionSpan{Type: ext.Section()}
		}
		res := ext.Extract(doc, span)
		if res.Count() == 0 {
			continue
		}
		res.Apply(draft)
		diag.Add(field, string(mode), res.Confidence(), fmt.Sprintf("%d records", res.Count()))
		return
	}
	draft.Confidence[field] = 0
	diag.Add(field, "", 0, "no qualifying records")
}

func (p *Parser) applyContact(doc *ingestion.Document, draft *types.ProfileDraft, diag *types.Diagnostics) {
	res := p.contact.Extract(doc)
	draft.Name = res.Name
	draft.Email = res.Email
	draft.Phone = res.Phone
	draft.Location = res.Location
	for field, conf := range res.Confidence {
		draft.Confidence[field] = conf
		diag.Add(field, "contact", conf, "")
	}
}
