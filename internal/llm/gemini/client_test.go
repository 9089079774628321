package gemini

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgasparetto/geoverify/internal/llm"
)

func testClient(strict bool) *Client {
	return &Client{
		cfg:    Config{Model: "test-model", StrictSchema: strict},
		logger: slog.Default(),
	}
}

// The reply carries a key the sanitizer strips, so the verbatim bytes and the
// sanitized bytes differ; failures must surface the verbatim form for audit.
const badPrefixReply = `{"metadata": {"accreditation_code": "AKE"}, ` +
	`"rows": [{"vertex_code": "AME-V-0001"}], "nota": "fim da tabela"}`

func TestDecodeReplyValidationFailureKeepsVerbatimReply(t *testing.T) {
	schema := llm.BuildParcelTableJSONSchema("AKE")

	for _, strict := range []bool{true, false} {
		c := testClient(strict)
		_, got, err := c.decodeReply("rid", schema, []byte(badPrefixReply), time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
		assert.Equal(t, badPrefixReply, string(got))
	}
}

func TestDecodeReplyNonJSONKeepsVerbatimReply(t *testing.T) {
	c := testClient(false)
	reply := "Desculpe, não consegui ler a tabela."

	_, got, err := c.decodeReply("rid", llm.BuildParcelTableJSONSchema(""), []byte(reply), time.Now())
	require.Error(t, err)
	assert.Equal(t, reply, string(got))
}

func TestDecodeReplyOK(t *testing.T) {
	c := testClient(false)
	reply := `{"metadata": {"accreditation_code": "AKE"}, ` +
		`"rows": [{"vertex_code": "AKE-V-0166", "longitude": "-48°34'14,782\""}], "nota": "x"}`

	table, got, err := c.decodeReply("rid", llm.BuildParcelTableJSONSchema("AKE"), []byte(reply), time.Now())
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "AKE-V-0166", table.Rows[0].VertexCode)
	// The persisted content for a successful run is the sanitized form.
	assert.NotContains(t, string(got), "nota")
}
