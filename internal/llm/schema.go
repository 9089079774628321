package llm

// BuildParcelTableJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass it to the vision model as a structured output
// constraint and also use it locally to validate the reply.
//
// accreditation, when known, pins the vertex/segment code prefix so OCR-style
// letter swaps (AKE → AME) fail validation instead of slipping through.
func BuildParcelTableJSONSchema(accreditation string) map[string]any {
	codeProp := map[string]any{"type": "string", "minLength": 1}
	if accreditation != "" {
		codeProp = map[string]any{
			"type":    "string",
			"pattern": "^" + accreditation + `-[A-Z]-\d{1,5}$`,
		}
	}

	rowProps := map[string]any{
		"vertex_code":   codeProp,
		"longitude":     map[string]any{"type": "string"},
		"latitude":      map[string]any{"type": "string"},
		"altitude":      map[string]any{"type": "string"},
		"segment_code":  codeProp,
		"azimuth":       map[string]any{"type": "string"},
		"distance_m":    map[string]any{"type": "string"},
		"confrontation": map[string]any{"type": "string"},
	}

	metaProps := map[string]any{
		"denomination":       map[string]any{"type": "string"},
		"owner":              map[string]any{"type": "string"},
		"registrations":      map[string]any{"type": "string"},
		"municipality":       map[string]any{"type": "string"},
		"accreditation_code": map[string]any{"type": "string", "minLength": 2, "maxLength": 4},
		"incra_code":         map[string]any{"type": "string"},
		"area_ha":            map[string]any{"type": "string"},
		"perimeter_m":        map[string]any{"type": "string"},
		"coord_system":       map[string]any{"type": "string"},
		"datum":              map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"metadata": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           metaProps,
			},
			"rows": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           rowProps,
					"required":             []string{"vertex_code"},
				},
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"metadata", "rows"},
	}
}

// BuildClassificationJSONSchema constrains the per-page classification reply.
func BuildClassificationJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"match": map[string]any{"type": "boolean"},
		},
		"required": []string{"match"},
	}
}
