package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/llm"
)

func memorialRow(code string) llm.ParcelRow {
	return llm.ParcelRow{
		VertexCode:  code,
		Longitude:   `-48°34'14,782"`,
		Latitude:    `-20°50'45,291"`,
		Altitude:    "532,78",
		SegmentCode: "AKE-M-1028",
		Azimuth:     `140°40'`,
		DistanceM:   "43,85",
	}
}

func projectRow(code string) llm.ParcelRow {
	return llm.ParcelRow{
		VertexCode:  code,
		Longitude:   `48°34'14,782" W`,
		Latitude:    `20°50'45,291" S`,
		Altitude:    "532.78",
		SegmentCode: "AKE-M-1028",
		Azimuth:     `140°40'`,
		DistanceM:   "43,85",
	}
}

func table(rows ...llm.ParcelRow) llm.ParcelTable {
	return llm.ParcelTable{Rows: rows}
}

func TestIdenticalTablesMatch(t *testing.T) {
	mem := table(memorialRow("AKE-V-0166"), memorialRow("AKE-V-0167"))
	proj := table(projectRow("AKE-V-0166"), projectRow("AKE-V-0167"))

	res := Tables(mem, proj, DefaultOptions())

	assert.True(t, res.OK)
	assert.Zero(t, res.Divergences())
	assert.Equal(t, 2, res.MemorialRows)
	assert.Equal(t, 2, res.ProjectRows)
	for _, f := range res.Fields {
		assert.Equal(t, constants.VerdictMatch, f.Verdict, "field %s row %d", f.Field, f.Row)
	}
}

func TestEncodingDifferencesAreEquivalent(t *testing.T) {
	// Signed INCRA coordinates vs hemisphere-suffixed project coordinates,
	// and decimal point vs decimal comma, must not count as divergences.
	res := Tables(table(memorialRow("AKE-V-0166")), table(projectRow("AKE-V-0166")), DefaultOptions())
	assert.True(t, res.OK)
}

func TestVertexCodeSwapIsMismatch(t *testing.T) {
	// The classic OCR confusion: K read as M. Must surface, never be repaired.
	mem := table(memorialRow("AKE-V-0166"))
	proj := table(projectRow("AME-V-0166"))

	res := Tables(mem, proj, DefaultOptions())

	assert.False(t, res.OK)
	// Code-keyed pairing cannot pair them, so each side reports once per section.
	var missing, extra int
	for _, f := range res.Fields {
		switch f.Verdict {
		case constants.VerdictMissing:
			missing++
		case constants.VerdictExtra:
			extra++
		}
	}
	assert.Equal(t, 2, missing)
	assert.Equal(t, 2, extra)
}

func TestNumericToleranceOnAltitudeAndDistance(t *testing.T) {
	mem := memorialRow("AKE-V-0166")
	proj := projectRow("AKE-V-0166")
	proj.Altitude = "532,785" // within 0.01
	proj.DistanceM = "43,9"   // off by 0.05

	res := Tables(table(mem), table(proj), DefaultOptions())

	assert.False(t, res.OK)
	byField := map[string]constants.Verdict{}
	for _, f := range res.Fields {
		byField[string(f.Section)+"/"+f.Field] = f.Verdict
	}
	assert.Equal(t, constants.VerdictMatch, byField["VERTICE/Altitude"])
	assert.Equal(t, constants.VerdictMismatch, byField["SEGMENTO_VANTE/Dist. (m)"])
}

func TestInsertedRowDoesNotCascade(t *testing.T) {
	// Project has one extra row in the middle; code-keyed pairing keeps the
	// remaining rows aligned.
	mem := table(memorialRow("AKE-V-0166"), memorialRow("AKE-V-0168"))
	proj := table(projectRow("AKE-V-0166"), projectRow("AKE-V-0167"), projectRow("AKE-V-0168"))

	res := Tables(mem, proj, DefaultOptions())

	assert.False(t, res.OK)
	// Only the inserted row diverges (once per section).
	assert.Equal(t, 2, res.Divergences())

	var extras []FieldDiff
	for _, f := range res.Fields {
		if f.Verdict == constants.VerdictExtra {
			extras = append(extras, f)
		}
	}
	require.Len(t, extras, 2)
	assert.Equal(t, "AKE-V-0167", extras[0].Project)
}

func TestMissingTailRowsPositional(t *testing.T) {
	// Without vertex codes on one side, pairing falls back to positional and
	// the shorter table's tail is MISSING.
	mem := table(memorialRow("AKE-V-0166"), memorialRow("AKE-V-0167"))
	projRow := projectRow("")
	proj := table(projRow)

	res := Tables(mem, proj, DefaultOptions())

	assert.False(t, res.OK)
	var missing int
	for _, f := range res.Fields {
		if f.Verdict == constants.VerdictMissing {
			missing++
		}
	}
	assert.Equal(t, 2, missing) // row 2, once per section
}

func TestSectionSummaries(t *testing.T) {
	mem := memorialRow("AKE-V-0166")
	proj := projectRow("AKE-V-0166")
	proj.Azimuth = `141°00'`

	res := Tables(table(mem), table(proj), DefaultOptions())

	assert.Equal(t, 4, res.Vertex.Matches)
	assert.Equal(t, 0, res.Vertex.Divergences)
	assert.Equal(t, 2, res.Segment.Matches)
	assert.Equal(t, 1, res.Segment.Divergences)
	assert.False(t, res.OK)
}

func TestZeroToleranceFallsBackToDefault(t *testing.T) {
	res := Tables(table(memorialRow("A-V-1")), table(projectRow("A-V-1")), Options{})
	assert.True(t, res.OK)
}
