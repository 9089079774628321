// Package document locates scanned filings, converts them to paged PDF form
// and rasterizes pages for the vision service. Conversion and rasterization
// are delegated to external binaries (ImageMagick, poppler) through Runner.
package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lgasparetto/geoverify/internal/common"
)

// TiffPathFor derives the scanner deposit path for a protocol number:
// the filename is the number zero-padded to 8 digits, and the bucket folder
// is the next upper multiple of 1000, also 8-digit padded.
//
//	protocol 12345 → <root>/00013000/00012345.tif
func TiffPathFor(scanRoot string, protocol int) (string, error) {
	if protocol <= 0 || protocol > 99999999 {
		return "", fmt.Errorf("protocol out of range: %d", protocol)
	}
	bucket := ((protocol + 999) / 1000) * 1000
	return filepath.Join(
		scanRoot,
		fmt.Sprintf("%08d", bucket),
		fmt.Sprintf("%08d.tif", protocol),
	), nil
}

// Locate resolves the scanned TIFF for a protocol number, verifying the file
// exists. Returns common.ErrDocumentNotFound when the scanner has not
// deposited it yet.
func Locate(scanRoot string, protocol int) (string, error) {
	path, err := TiffPathFor(scanRoot, protocol)
	if err != nil {
		return "", err
	}
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", common.ErrDocumentNotFound, path)
		}
		return "", err
	}
	if st.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", common.ErrDocumentNotFound, path)
	}
	return path, nil
}
