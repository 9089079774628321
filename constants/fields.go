package constants

// Section names a block of the INCRA parcel table.
type Section string

const (
	// SectionVertex covers the VÉRTICE block: Código, Longitude, Latitude, Altitude.
	SectionVertex Section = "VERTICE"
	// SectionSegment covers the SEGMENTO VANTE block: Código, Azimute, Dist. (m).
	SectionSegment Section = "SEGMENTO_VANTE"
)

// Verdict is the outcome of comparing one field across the two documents.
type Verdict string

const (
	VerdictMatch    Verdict = "MATCH"
	VerdictMismatch Verdict = "MISMATCH"
	VerdictMissing  Verdict = "MISSING" // present in memorial, absent in project
	VerdictExtra    Verdict = "EXTRA"   // present only in project
)
