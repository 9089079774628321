package geo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// 48°34'14,782" — degrees required, minutes/seconds optional.
	reDMS = regexp.MustCompile(`^(-?)(\d{1,3})°\s*(?:(\d{1,2})')?\s*(?:(\d{1,2}(?:[.,]\d+)?)")?\s*([NSEW])?$`)

	reNumber = regexp.MustCompile(`^-?[\d.,]+$`)
)

// ParseNumber parses a numeric cell in either pt-BR ("1.234.567,89",
// "532,78") or plain ("1234567.89", "741319") notation.
func ParseNumber(v string) (float64, error) {
	s := strings.TrimSpace(v)
	s = strings.TrimSuffix(s, " m")
	s = strings.TrimSuffix(s, " ha")
	s = strings.TrimSpace(s)
	if s == "" || !reNumber.MatchString(s) {
		return 0, fmt.Errorf("not a number: %q", v)
	}

	switch {
	case strings.Contains(s, ","):
		// pt-BR: dots are thousands separators, comma is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		// 7.696.237 — dots as thousands separators, no decimals.
		s = strings.ReplaceAll(s, ".", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", v)
	}
	return f, nil
}

// ParseDMS parses a degrees-minutes-seconds coordinate such as
// -48°34'14,782" or 48°34'14,782" W into decimal degrees. West and south
// hemispheres yield negative values, matching the signed INCRA convention.
func ParseDMS(v string) (float64, error) {
	s := strings.TrimSpace(v)
	// The hemisphere letter may be separated by a space.
	s = strings.ReplaceAll(s, `" `, `"`)
	m := reDMS.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("not a DMS coordinate: %q", v)
	}

	deg, _ := strconv.ParseFloat(m[2], 64)
	var min, sec float64
	if m[3] != "" {
		min, _ = strconv.ParseFloat(m[3], 64)
	}
	if m[4] != "" {
		sec, _ = strconv.ParseFloat(strings.Replace(m[4], ",", ".", 1), 64)
	}
	if min >= 60 || sec >= 60 {
		return 0, fmt.Errorf("DMS out of range: %q", v)
	}

	dd := deg + min/60 + sec/3600
	if m[1] == "-" || m[5] == "W" || m[5] == "S" {
		dd = -dd
	}
	return dd, nil
}

// ParseAzimuth parses a forward-segment azimuth (140°40' or 140°40'30")
// into decimal degrees in [0, 360).
func ParseAzimuth(v string) (float64, error) {
	dd, err := ParseDMS(v)
	if err != nil {
		return 0, fmt.Errorf("not an azimuth: %q", v)
	}
	if dd < 0 || dd >= 360 {
		return 0, fmt.Errorf("azimuth out of range: %q", v)
	}
	return dd, nil
}

// IsNumeric reports whether the cell parses as a number in any of the
// accepted notations. Comparison uses it to decide between tolerant numeric
// matching and exact string matching.
func IsNumeric(v string) bool {
	_, err := ParseNumber(v)
	return err == nil
}
