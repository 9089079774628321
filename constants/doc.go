package constants

import "strings"

// DocType identifies which of the two filing documents a page set belongs to.
type DocType string

const (
	// DocMemorial is the INCRA "Memorial Descritivo".
	DocMemorial DocType = "MEMORIAL_INCRA"
	// DocProject is the surveyor's "Planta/Projeto de Georreferenciamento".
	DocProject DocType = "PROJETO"
)

// DocTypes holds the allowed values for the doc_type field in verify_job.
var DocTypes = []string{string(DocMemorial), string(DocProject)}

// SourceFormats holds the allowed source formats for the format field in documents.
var SourceFormats = []string{"TIFF", "PDF"}

// AllowedExtensions holds the file extensions the ingest watcher reacts to.
var AllowedExtensions = map[string]struct{}{
	"tif":  {},
	"tiff": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a filename extension to a source format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "tif", "tiff":
		return "TIFF"
	case "pdf":
		return "PDF"
	default:
		return ""
	}
}
