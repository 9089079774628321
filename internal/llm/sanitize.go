package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
)

var metadataKeys = map[string]struct{}{
	"denomination": {}, "owner": {}, "registrations": {}, "municipality": {},
	"accreditation_code": {}, "incra_code": {}, "area_ha": {}, "perimeter_m": {},
	"coord_system": {}, "datum": {},
}

var rowKeys = map[string]struct{}{
	"vertex_code": {}, "longitude": {}, "latitude": {}, "altitude": {},
	"segment_code": {}, "azimuth": {}, "distance_m": {}, "confrontation": {},
}

// rowSynonyms maps column names Gemini tends to invent back to our schema.
var rowSynonyms = map[string]string{
	"code":      "vertex_code",
	"codigo":    "vertex_code",
	"vertice":   "vertex_code",
	"long":      "longitude",
	"lat":       "latitude",
	"east":      "longitude",
	"este":      "longitude",
	"north":     "latitude",
	"norte":     "latitude",
	"elevation": "altitude",
	"azimute":   "azimuth",
	"dist":      "distance_m",
	"dist_m":    "distance_m",
	"distance":  "distance_m",
}

// NormalizeAndSanitizeJSON
// - Renames known column synonyms to the schema names
// - Drops null/empty optionals
// - Coerces numeric values to strings (the schema stores cells verbatim)
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string

	if meta, ok := doc["metadata"].(map[string]any); ok {
		dropped = append(dropped, cleanObject(meta, metadataKeys, nil, "metadata.")...)
	}

	if rows, ok := doc["rows"].([]any); ok {
		kept := make([]any, 0, len(rows))
		for i, r := range rows {
			row, ok := r.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("rows[%d](type)", i))
				continue
			}
			dropped = append(dropped, cleanObject(row, rowKeys, rowSynonyms, fmt.Sprintf("rows[%d].", i))...)
			kept = append(kept, row)
		}
		doc["rows"] = kept
	}

	// Top level: keep only the schema's keys.
	for k := range maps.Clone(doc) {
		if k != "metadata" && k != "rows" && k != "confidence" {
			delete(doc, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// cleanObject renames synonyms, coerces scalars to trimmed strings, drops
// null/empty values and unknown keys. Returns a note per alteration.
func cleanObject(m map[string]any, allowed map[string]struct{}, synonyms map[string]string, prefix string) []string {
	var notes []string

	for from, to := range synonyms {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			notes = append(notes, prefix+from+"->"+to)
		}
	}

	for k, v := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			notes = append(notes, prefix+k+"(unknown)")
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			notes = append(notes, prefix+k+"(null)")
		case float64:
			m[k] = trimFloat(t)
		case bool:
			delete(m, k)
			notes = append(notes, prefix+k+"(type)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, k)
				notes = append(notes, prefix+k+"(empty)")
			} else {
				m[k] = s
			}
		default:
			delete(m, k)
			notes = append(notes, prefix+k+"(type)")
		}
	}
	return notes
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return strings.TrimRight(fmt.Sprintf("%f", f), "0")
}
