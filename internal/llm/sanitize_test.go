package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestSanitizeRenamesRowSynonyms(t *testing.T) {
	raw := []byte(`{"metadata": {}, "rows": [
		{"codigo": "AKE-V-0166", "este": "741319,05", "norte": "7696237,82", "dist_m": "43,85"}
	]}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	m := decode(t, out)
	row := m["rows"].([]any)[0].(map[string]any)
	assert.Equal(t, "AKE-V-0166", row["vertex_code"])
	assert.Equal(t, "741319,05", row["longitude"])
	assert.Equal(t, "7696237,82", row["latitude"])
	assert.Equal(t, "43,85", row["distance_m"])
	assert.NotContains(t, row, "codigo")
	assert.Contains(t, dropped, "rows[0].codigo->vertex_code")
}

func TestSanitizeCoercesNumbersToStrings(t *testing.T) {
	raw := []byte(`{"metadata": {"area_ha": 3.5}, "rows": [
		{"vertex_code": "A-V-1", "altitude": 532, "distance_m": 43.85}
	]}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	m := decode(t, out)
	row := m["rows"].([]any)[0].(map[string]any)
	assert.Equal(t, "532", row["altitude"])
	assert.Equal(t, "43.85", row["distance_m"])
	meta := m["metadata"].(map[string]any)
	assert.Equal(t, "3.5", meta["area_ha"])
}

func TestSanitizeDropsNullsEmptiesAndUnknowns(t *testing.T) {
	raw := []byte(`{
		"metadata": {"owner": null, "municipality": "  ", "surprise": "x"},
		"rows": [{"vertex_code": "A-V-1", "page": 3}],
		"reasoning": "because"
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	m := decode(t, out)
	meta := m["metadata"].(map[string]any)
	assert.Empty(t, meta)
	row := m["rows"].([]any)[0].(map[string]any)
	assert.NotContains(t, row, "page")
	assert.NotContains(t, m, "reasoning")
	assert.Contains(t, dropped, "metadata.owner(null)")
	assert.Contains(t, dropped, "reasoning(unknown)")
}

func TestSanitizeDropsNonObjectRows(t *testing.T) {
	raw := []byte(`{"metadata": {}, "rows": ["not a row", {"vertex_code": "A-V-1"}]}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	m := decode(t, out)
	assert.Len(t, m["rows"], 1)
	assert.Contains(t, dropped, "rows[0](type)")
}

func TestSanitizeNeverRenamesOverExistingKey(t *testing.T) {
	// A synonym must not clobber a value the model already placed correctly.
	raw := []byte(`{"metadata": {}, "rows": [{"vertex_code": "A-V-1", "codigo": "A-V-2"}]}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	row := decode(t, out)["rows"].([]any)[0].(map[string]any)
	assert.Equal(t, "A-V-1", row["vertex_code"])
}

func TestSanitizeRejectsNonObjectReply(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`[1, 2, 3]`), nil)
	assert.Error(t, err)
}
