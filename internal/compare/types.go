// Package compare performs the tolerant field-by-field diff between the
// parcel table extracted from the INCRA memorial and the one extracted from
// the plant/project.
package compare

import "github.com/lgasparetto/geoverify/constants"

// FieldDiff is one per-field match/mismatch record.
type FieldDiff struct {
	// Row is the 1-based position in the paired row listing.
	Row      int                `json:"row"`
	Section  constants.Section  `json:"section"`
	Field    string             `json:"field"`
	Memorial string             `json:"memorial"`
	Project  string             `json:"project"`
	Verdict  constants.Verdict  `json:"verdict"`
}

// SectionSummary counts outcomes for one block of the table.
type SectionSummary struct {
	Matches     int `json:"matches"`
	Divergences int `json:"divergences"`
}

// Result is the full comparison outcome.
type Result struct {
	Fields       []FieldDiff    `json:"fields"`
	Vertex       SectionSummary `json:"vertex"`
	Segment      SectionSummary `json:"segment"`
	MemorialRows int            `json:"memorial_rows"`
	ProjectRows  int            `json:"project_rows"`
	OK           bool           `json:"ok"`
}

// Divergences returns the total number of diverging records across sections.
func (r Result) Divergences() int {
	return r.Vertex.Divergences + r.Segment.Divergences
}
