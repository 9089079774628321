package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() []byte {
	return []byte(`{
		"metadata": {"accreditation_code": "AKE", "municipality": "Barretos-SP"},
		"rows": [
			{"vertex_code": "AKE-V-0166", "longitude": "-48°34'14,782\"", "segment_code": "AKE-M-1028"}
		],
		"confidence": 0.92
	}`)
}

func TestParcelTableSchemaAcceptsValidPayload(t *testing.T) {
	schema := BuildParcelTableJSONSchema("AKE")
	require.NoError(t, ValidateJSONAgainstSchema(schema, validPayload()))
}

func TestParcelTableSchemaRejectsWrongAccreditation(t *testing.T) {
	// OCR-style K/M swap must fail validation, not be silently accepted.
	schema := BuildParcelTableJSONSchema("AKE")
	bad := []byte(`{"metadata": {}, "rows": [{"vertex_code": "AME-V-0166"}]}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, bad))
}

func TestParcelTableSchemaWithoutHintAcceptsAnyCode(t *testing.T) {
	schema := BuildParcelTableJSONSchema("")
	ok := []byte(`{"metadata": {}, "rows": [{"vertex_code": "AME-V-0166"}]}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, ok))
}

func TestParcelTableSchemaRejectsEmptyRows(t *testing.T) {
	schema := BuildParcelTableJSONSchema("")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"metadata": {}, "rows": []}`)))
}

func TestParcelTableSchemaRejectsRowWithoutVertexCode(t *testing.T) {
	schema := BuildParcelTableJSONSchema("")
	bad := []byte(`{"metadata": {}, "rows": [{"longitude": "1"}]}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, bad))
}

func TestParcelTableSchemaRejectsUnknownTopLevelKey(t *testing.T) {
	schema := BuildParcelTableJSONSchema("")
	bad := []byte(`{"metadata": {}, "rows": [{"vertex_code": "A-V-1"}], "notes": "x"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, bad))
}

func TestClassificationSchema(t *testing.T) {
	schema := BuildClassificationJSONSchema()
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"match": true}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"match": "sim"}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{}`)))
}
