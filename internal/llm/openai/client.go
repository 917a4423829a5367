package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"po-tracker/internal/llm"
)

// ExtractPages implements llm.PageVisionExtractor against an
// OpenAI-compatible chat/completions endpoint. Every rendered page image goes
// into one multimodal user message; the reply must be the page-keyed JSON
// document, which is sanitized and schema-validated before it is returned.
func (c *Client) ExtractPages(ctx context.Context, req llm.ExtractPagesRequest) ([]byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"po_doc_name", req.PODocName,
		"pages", len(req.ImagePaths),
	)

	if len(req.ImagePaths) == 0 {
		return nil, fmt.Errorf("no page images for %s", req.PODocName)
	}

	content := []map[string]any{
		{"type": "text", "text": req.Prompt},
	}
	for _, p := range req.ImagePaths {
		dataURL, err := llm.ReadImageAsDataURL(p)
		if err != nil {
			c.log.Error("llm.extract.image_error", "req_id", rid, "image", p, "error", err)
			return nil, fmt.Errorf("encode page image: %w", err)
		}
		content = append(content, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": dataURL},
		})
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": "You are a purchase-order parser. Return ONLY JSON matching the schema. Wrap every recognized field as {\"value\": ..., \"coordinates\": [...]}. Key pages as page_1, page_2, ... under a top-level \"data\" object."},
			{"role": "user", "content": content},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(llm.BuildPODocumentJSONSchema())},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	var raw []byte
	err := retry.Do(
		func() error {
			var httpErr error
			raw, httpErr = llm.PostJSON(ctx, c.httpClient, endpoint, c.cfg.APIKey, body, c.log)
			return httpErr
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetries),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no choices in openai response")
	}

	payload, err := llm.SanitizeReplyPayload([]byte(cc.Choices[0].Message.Content))
	if err != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("sanitize reply: %w", err)
	}

	if err := llm.ValidatePODocument(payload); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"po_doc_name", req.PODocName,
		"reply_bytes", len(payload),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return payload, nil
}

// ModelName reports the configured model for job bookkeeping.
func (c *Client) ModelName() string {
	return c.cfg.Model
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
