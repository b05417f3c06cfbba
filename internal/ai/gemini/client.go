// Package gemini implements structured extraction on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Client wraps a Gemini model handle with the call shape used by every
// extraction in this service: a system instruction, a user prompt, and a
// JSON response constrained by a schema.
type Client struct {
	genai  *genai.Client
	model  string
	logger *zap.Logger
}

func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{genai: c, model: model, logger: logger}, nil
}

// generateJSON runs one schema-constrained generation and returns the raw
// JSON text of the first candidate.
func (c *Client) generateJSON(ctx context.Context, system, prompt string, respSchema *genai.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   respSchema,
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	text := stripCodeFence(sb.String())
	if text == "" {
		return "", errors.New("gemini: empty model response")
	}

	c.logger.Debug("model response received",
		zap.String("model", c.model),
		zap.Int("response_bytes", len(text)),
	)
	return text, nil
}

// stripCodeFence removes a surrounding markdown code fence. The model
// sometimes wraps JSON output in one despite the response MIME type.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
