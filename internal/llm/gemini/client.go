package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/llm"
)

// ExtractTable implements llm.TableExtractor: sends the page images plus the
// extraction instructions, asks for a JSON reply, validates it against the
// parcel-table schema and (optionally) applies the lenient sanitize pass
// before failing.
func (c *Client) ExtractTable(ctx context.Context, req llm.ExtractRequest) (llm.ParcelTable, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"doc_type", req.DocType,
		"pages", len(req.Pages),
		"accreditation_hint", req.AccreditationHint,
	)

	if len(req.Pages) == 0 {
		return llm.ParcelTable{}, nil, fmt.Errorf("no pages to extract")
	}

	schema := llm.BuildParcelTableJSONSchema(strings.ToUpper(strings.TrimSpace(req.AccreditationHint)))
	prompt := llm.BuildExtractionPrompt(req) + "\n\nJSON Schema:\n" + mustJSON(schema)

	parts := make([]*genai.Part, 0, len(req.Pages)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, p := range req.Pages {
		parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
	}

	raw, err := c.generateJSON(ctx, parts)
	if err != nil {
		c.logger.Error("llm.extract.call_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ParcelTable{}, nil, err
	}

	out, content, err := c.decodeReply(rid, schema, raw, start)
	if err != nil {
		return llm.ParcelTable{}, content, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"doc_type", req.DocType,
		"rows", len(out.Rows),
		"denomination", out.Metadata.Denomination,
		"accreditation", out.Metadata.AccreditationCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

// decodeReply sanitizes, validates and unmarshals one extraction reply. On any
// failure the returned bytes are the verbatim reply, so what gets persisted
// for audit is exactly what the model said, not the partially cleaned form.
func (c *Client) decodeReply(rid string, schema map[string]any, raw []byte, start time.Time) (llm.ParcelTable, []byte, error) {
	rawContent, dropped, sErr := llm.NormalizeAndSanitizeJSON(raw, c.logger)
	if sErr != nil {
		c.logger.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", sErr, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ParcelTable{}, raw, fmt.Errorf("sanitize reply: %w", sErr)
	}
	if len(dropped) > 0 {
		c.logger.Warn("llm.extract.sanitized", "req_id", rid, "dropped", dropped)
	}

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if c.cfg.StrictSchema {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.ParcelTable{}, raw, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, lenientDropped, lErr := llm.SanitizeOptionalFields(rawContent)
		if lErr != nil {
			return llm.ParcelTable{}, raw, fmt.Errorf("lenient sanitize: %w", lErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.ParcelTable{}, raw, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", lenientDropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out llm.ParcelTable
	if err := json.Unmarshal(rawContent, &out); err != nil {
		return llm.ParcelTable{}, raw, fmt.Errorf("unmarshal table: %w", err)
	}
	return out, rawContent, nil
}

// ClassifyPage implements llm.PageClassifier with a single-image yes/no call.
func (c *Client) ClassifyPage(ctx context.Context, docType constants.DocType, page llm.PageImage) (bool, error) {
	start := time.Now()

	parts := []*genai.Part{
		genai.NewPartFromText(llm.BuildClassificationPrompt(docType)),
		genai.NewPartFromBytes(page.Data, page.MIMEType),
	}

	raw, err := c.generateJSON(ctx, parts)
	if err != nil {
		return false, fmt.Errorf("classify page %d: %w", page.Index, err)
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildClassificationJSONSchema(), raw); err != nil {
		return false, fmt.Errorf("classify page %d: %w", page.Index, err)
	}

	var reply struct {
		Match bool `json:"match"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return false, fmt.Errorf("classify page %d: decode: %w", page.Index, err)
	}

	c.logger.Debug("llm.classify.page",
		"doc_type", docType,
		"page", page.Index,
		"match", reply.Match,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return reply.Match, nil
}

// generateJSON runs one GenerateContent call in JSON mode and returns the
// reply body with any markdown fencing stripped.
func (c *Client) generateJSON(ctx context.Context, parts []*genai.Part) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.cfg.Temperature),
		ResponseMIMEType: "application/json",
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.Model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini generate: empty reply")
	}
	return []byte(stripFences(text)), nil
}

// stripFences removes a ```json ... ``` wrapper some models still emit even
// in JSON mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
