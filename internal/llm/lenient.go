package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SanitizeOptionalFields removes or normalizes fields that don't meet the
// stricter schema so the overall document can still validate. Required table
// content is never invented: a row without a vertex code is dropped and
// reported, never repaired.
func SanitizeOptionalFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	if meta, ok := m["metadata"].(map[string]any); ok {
		// accreditation_code: 2-4 letters or drop
		if v, ok := meta["accreditation_code"].(string); ok {
			s := strings.ToUpper(strings.TrimSpace(v))
			if len(s) < 2 || len(s) > 4 {
				delete(meta, "accreditation_code")
				dropped = append(dropped, "metadata.accreditation_code")
			} else {
				meta["accreditation_code"] = s
			}
		}
	} else if _, present := m["metadata"]; present {
		// wrong type → replace with empty object so "required" still holds
		m["metadata"] = map[string]any{}
		dropped = append(dropped, "metadata(type)")
	}

	if rows, ok := m["rows"].([]any); ok {
		kept := make([]any, 0, len(rows))
		for i, r := range rows {
			row, isMap := r.(map[string]any)
			if !isMap {
				dropped = append(dropped, fmt.Sprintf("rows[%d]", i))
				continue
			}
			code, _ := row["vertex_code"].(string)
			if strings.TrimSpace(code) == "" {
				dropped = append(dropped, fmt.Sprintf("rows[%d](no vertex_code)", i))
				continue
			}
			kept = append(kept, row)
		}
		m["rows"] = kept
	}

	// confidence: drop when out of range or non-numeric
	if v, ok := m["confidence"]; ok {
		f, isNum := v.(float64)
		if !isNum || f < 0 || f > 1 {
			delete(m, "confidence")
			dropped = append(dropped, "confidence")
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
