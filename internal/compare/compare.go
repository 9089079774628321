package compare

import (
	"math"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/geo"
	"github.com/lgasparetto/geoverify/internal/llm"
)

// Options tune the comparison.
type Options struct {
	// Tolerance is the absolute tolerance for numeric fields (altitude,
	// distance, UTM coordinates). Vertex codes are never fuzzy-matched.
	Tolerance float64
}

// DefaultOptions matches the registry-office checking routine.
func DefaultOptions() Options { return Options{Tolerance: 0.01} }

type fieldKind int

const (
	kindCode fieldKind = iota
	kindCoordinate
	kindNumeric
	kindText
)

type fieldSpec struct {
	name    string
	section constants.Section
	kind    fieldKind
	get     func(llm.ParcelRow) string
}

// Compared fields, in report order. Confrontations are carried in reports but
// not diffed: the two documents word them freely.
var fieldSpecs = []fieldSpec{
	{"Código", constants.SectionVertex, kindCode, func(r llm.ParcelRow) string { return r.VertexCode }},
	{"Longitude", constants.SectionVertex, kindCoordinate, func(r llm.ParcelRow) string { return r.Longitude }},
	{"Latitude", constants.SectionVertex, kindCoordinate, func(r llm.ParcelRow) string { return r.Latitude }},
	{"Altitude", constants.SectionVertex, kindNumeric, func(r llm.ParcelRow) string { return r.Altitude }},
	{"Código", constants.SectionSegment, kindCode, func(r llm.ParcelRow) string { return r.SegmentCode }},
	{"Azimute", constants.SectionSegment, kindText, func(r llm.ParcelRow) string { return r.Azimuth }},
	{"Dist. (m)", constants.SectionSegment, kindNumeric, func(r llm.ParcelRow) string { return r.DistanceM }},
}

// Tables diffs the memorial table against the project table.
//
// Rows are paired by normalized vertex code when both tables carry codes, so
// one inserted row does not cascade into mismatches for every row after it;
// tables without codes on either side fall back to positional pairing.
// Unpaired rows are reported once per section as MISSING (absent in project)
// or EXTRA (present only in project).
func Tables(memorial, project llm.ParcelTable, opts Options) Result {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultOptions().Tolerance
	}

	res := Result{
		MemorialRows: len(memorial.Rows),
		ProjectRows:  len(project.Rows),
	}

	pairs := pairRows(memorial.Rows, project.Rows)

	row := 0
	for _, p := range pairs {
		row++
		switch {
		case p.mem != nil && p.proj != nil:
			for _, spec := range fieldSpecs {
				d := diffField(row, spec, *p.mem, *p.proj, opts.Tolerance)
				res.Fields = append(res.Fields, d)
				bump(&res, spec.section, d.Verdict == constants.VerdictMatch)
			}
		case p.mem != nil:
			res.Fields = append(res.Fields,
				FieldDiff{Row: row, Section: constants.SectionVertex, Field: "Código", Memorial: p.mem.VertexCode, Verdict: constants.VerdictMissing},
				FieldDiff{Row: row, Section: constants.SectionSegment, Field: "Código", Memorial: p.mem.SegmentCode, Verdict: constants.VerdictMissing},
			)
			bump(&res, constants.SectionVertex, false)
			bump(&res, constants.SectionSegment, false)
		case p.proj != nil:
			res.Fields = append(res.Fields,
				FieldDiff{Row: row, Section: constants.SectionVertex, Field: "Código", Project: p.proj.VertexCode, Verdict: constants.VerdictExtra},
				FieldDiff{Row: row, Section: constants.SectionSegment, Field: "Código", Project: p.proj.SegmentCode, Verdict: constants.VerdictExtra},
			)
			bump(&res, constants.SectionVertex, false)
			bump(&res, constants.SectionSegment, false)
		}
	}

	res.OK = res.Divergences() == 0
	return res
}

type rowPair struct {
	mem  *llm.ParcelRow
	proj *llm.ParcelRow
}

func pairRows(mem, proj []llm.ParcelRow) []rowPair {
	if !allCoded(mem) || !allCoded(proj) {
		return pairPositional(mem, proj)
	}

	byCode := make(map[string]int, len(proj))
	for i, r := range proj {
		code := geo.NormalizeVertexCode(r.VertexCode)
		if _, dup := byCode[code]; !dup {
			byCode[code] = i
		}
	}

	used := make([]bool, len(proj))
	var pairs []rowPair
	for i := range mem {
		code := geo.NormalizeVertexCode(mem[i].VertexCode)
		if j, ok := byCode[code]; ok && !used[j] {
			used[j] = true
			pairs = append(pairs, rowPair{mem: &mem[i], proj: &proj[j]})
			continue
		}
		pairs = append(pairs, rowPair{mem: &mem[i]})
	}
	for j := range proj {
		if !used[j] {
			pairs = append(pairs, rowPair{proj: &proj[j]})
		}
	}
	return pairs
}

func pairPositional(mem, proj []llm.ParcelRow) []rowPair {
	n := len(mem)
	if len(proj) > n {
		n = len(proj)
	}
	pairs := make([]rowPair, 0, n)
	for i := 0; i < n; i++ {
		var p rowPair
		if i < len(mem) {
			p.mem = &mem[i]
		}
		if i < len(proj) {
			p.proj = &proj[i]
		}
		pairs = append(pairs, p)
	}
	return pairs
}

func allCoded(rows []llm.ParcelRow) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if geo.NormalizeVertexCode(r.VertexCode) == "" {
			return false
		}
	}
	return true
}

func diffField(row int, spec fieldSpec, mem, proj llm.ParcelRow, tol float64) FieldDiff {
	a, b := spec.get(mem), spec.get(proj)
	d := FieldDiff{
		Row:      row,
		Section:  spec.section,
		Field:    spec.name,
		Memorial: a,
		Project:  b,
		Verdict:  constants.VerdictMismatch,
	}
	if valuesEqual(a, b, spec.kind, tol) {
		d.Verdict = constants.VerdictMatch
	}
	return d
}

func valuesEqual(a, b string, kind fieldKind, tol float64) bool {
	switch kind {
	case kindCode:
		return geo.NormalizeVertexCode(a) == geo.NormalizeVertexCode(b)
	case kindCoordinate:
		na := geo.CleanString(geo.NormalizeCoordinate(a))
		nb := geo.CleanString(geo.NormalizeCoordinate(b))
		if na == nb {
			return true
		}
		// UTM tables carry plain numbers; those compare within tolerance.
		// Parsing sees the pre-clean values: CleanString folds thousands
		// dots into commas, which ParseNumber must still disambiguate.
		return numericallyEqual(geo.NormalizeCoordinate(a), geo.NormalizeCoordinate(b), tol)
	case kindNumeric:
		if geo.CleanString(a) == geo.CleanString(b) {
			return true
		}
		return numericallyEqual(a, b, tol)
	default:
		return geo.CleanString(a) == geo.CleanString(b)
	}
}

func numericallyEqual(a, b string, tol float64) bool {
	fa, errA := geo.ParseNumber(a)
	fb, errB := geo.ParseNumber(b)
	if errA != nil || errB != nil {
		return false
	}
	return math.Abs(fa-fb) <= tol
}

func bump(res *Result, section constants.Section, match bool) {
	var s *SectionSummary
	if section == constants.SectionVertex {
		s = &res.Vertex
	} else {
		s = &res.Segment
	}
	if match {
		s.Matches++
	} else {
		s.Divergences++
	}
}
