// Package geo normalizes the heterogeneous textual encodings of geographic
// values found in INCRA memorials and georeferencing plants: DMS coordinates
// with pt-BR decimal commas, UTM eastings/northings with thousands dots,
// azimuths, distances and areas.
package geo

import "strings"

// CleanString canonicalizes an arbitrary cell value for comparison:
// trims, collapses internal runs of whitespace to one space, and converts
// decimal points to commas (pt-BR numeric convention).
func CleanString(v string) string {
	s := strings.TrimSpace(v)
	// Tabs become spaces before the collapse, or a "\t " run would survive
	// one pass as a double space.
	s = strings.ReplaceAll(s, "\t", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.ReplaceAll(s, ".", ",")
	return s
}

// NormalizeCoordinate strips the encoding differences between the two
// documents so equivalent coordinates compare equal:
//
//	INCRA:   -48°34'14,782"  → 48°34'14,782"
//	Projeto: 48°34'14,782" W → 48°34'14,782"
func NormalizeCoordinate(coord string) string {
	s := strings.TrimSpace(coord)
	if s == "" {
		return ""
	}

	// Some plants typeset minutes/seconds with Unicode primes.
	s = strings.ReplaceAll(s, "′", "'")
	s = strings.ReplaceAll(s, "″", `"`)

	// Leading minus (INCRA writes southern/western values signed).
	s = strings.TrimSpace(strings.TrimPrefix(s, "-"))

	// Hemisphere markers (the plant writes them as " W" / " S", sometimes
	// before a closing quote).
	s = strings.ReplaceAll(s, " W", "")
	s = strings.ReplaceAll(s, " S", "")
	s = strings.TrimSpace(s)

	// Stray wrapping quotes left over from table cells. The seconds marker
	// inside a DMS value is not affected: only a fully wrapped value or a
	// dangling quote at the very end after the trims above is removed.
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// NormalizeVertexCode uppercases and tightens a vertex code (AKE-V-0166).
// Codes are never fuzzy-matched; this only removes spacing noise.
func NormalizeVertexCode(code string) string {
	s := strings.ToUpper(strings.TrimSpace(code))
	s = strings.ReplaceAll(s, " ", "")
	return s
}
