package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenientUppercasesAccreditation(t *testing.T) {
	out, dropped, err := SanitizeOptionalFields([]byte(`{"metadata": {"accreditation_code": " ake "}, "rows": []}`))
	require.NoError(t, err)
	assert.Empty(t, dropped)

	m := decode(t, out)
	meta := m["metadata"].(map[string]any)
	assert.Equal(t, "AKE", meta["accreditation_code"])
}

func TestLenientDropsBadAccreditation(t *testing.T) {
	out, dropped, err := SanitizeOptionalFields([]byte(`{"metadata": {"accreditation_code": "A"}, "rows": []}`))
	require.NoError(t, err)
	assert.Contains(t, dropped, "metadata.accreditation_code")

	meta := decode(t, out)["metadata"].(map[string]any)
	assert.NotContains(t, meta, "accreditation_code")
}

func TestLenientDropsRowsWithoutVertexCode(t *testing.T) {
	// Never repaired, only dropped and reported.
	out, dropped, err := SanitizeOptionalFields([]byte(`{
		"metadata": {},
		"rows": [{"vertex_code": "A-V-1"}, {"longitude": "1"}, {"vertex_code": "  "}]
	}`))
	require.NoError(t, err)

	rows := decode(t, out)["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Contains(t, dropped, "rows[1](no vertex_code)")
	assert.Contains(t, dropped, "rows[2](no vertex_code)")
}

func TestLenientDropsOutOfRangeConfidence(t *testing.T) {
	out, dropped, err := SanitizeOptionalFields([]byte(`{"metadata": {}, "rows": [], "confidence": 1.4}`))
	require.NoError(t, err)
	assert.Contains(t, dropped, "confidence")
	assert.NotContains(t, decode(t, out), "confidence")
}

func TestLenientKeepsInRangeConfidence(t *testing.T) {
	out, dropped, err := SanitizeOptionalFields([]byte(`{"metadata": {}, "rows": [], "confidence": 0.8}`))
	require.NoError(t, err)
	assert.Empty(t, dropped)
	assert.Equal(t, 0.8, decode(t, out)["confidence"])
}

func TestLenientRepairsWrongTypedMetadata(t *testing.T) {
	out, dropped, err := SanitizeOptionalFields([]byte(`{"metadata": "none", "rows": []}`))
	require.NoError(t, err)
	assert.Contains(t, dropped, "metadata(type)")

	m := decode(t, out)
	_, isMap := m["metadata"].(map[string]any)
	assert.True(t, isMap)
}
