package ingest

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgasparetto/geoverify/constants"
)

// AllowedExt checks if a file extension is in the allowed set (tif/tiff/pdf).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

var reProtocolName = regexp.MustCompile(`^0*(\d{1,8})$`)

// ProtocolFromFilename recovers the protocol number from the scanner's
// zero-padded filename ("00012345.tif" → 12345). Returns 0 when the name is
// not a protocol number.
func ProtocolFromFilename(path string) int {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	m := reProtocolName.FindStringSubmatch(stem)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
