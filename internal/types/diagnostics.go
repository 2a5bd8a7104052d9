package types

import "github.com/google/uuid"

// Diagnostic records how a single field or section was extracted: which
// strategy satisfied it, at what confidence, and a short human-readable note.
type Diagnostic struct {
	Field      string  `json:"field"`
	Strategy   string  `json:"strategy"`
	Confidence float64 `json:"confidence"`
	Note       string  `json:"note,omitempty"`
}

// Diagnostics aggregates per-field extraction outcomes for one parse run.
// It is observability data, not part of the contractual output.
type Diagnostics struct {
	RunID   uuid.UUID    `json:"run_id"`
	Entries []Diagnostic `json:"entries"`
}

// Add appends one diagnostic entry.
func (d *Diagnostics) Add(field, strategy string, confidence float64, note string) {
	d.Entries = append(d.Entries, Diagnostic{
		Field:      field,
		Strategy:   strategy,
		Confidence: confidence,
		Note:       note,
	})
}

// ForField returns the first diagnostic recorded for a field, if any.
func (d *Diagnostics) ForField(field string) (Diagnostic, bool) {
	for _, e := range d.Entries {
		if e.Field == field {
			return e, true
		}
	}
	return Diagnostic{}, false
}
