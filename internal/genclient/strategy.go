package genclient

import (
	"context"
	"encoding/json"
	"strings"

	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
)

// Suggestion is one creative proposal from the strategy model.
type Suggestion struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

var suggestionSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":  map[string]any{"type": "STRING"},
			"prompt": map[string]any{"type": "STRING"},
		},
		"required": []string{"title", "prompt"},
	},
}

// StrategySuggestions asks the reasoning model for three creative
// proposals tailored to the module persona. A response that cannot be
// parsed as the expected JSON array yields an empty list, not an error.
func (c *Client) StrategySuggestions(ctx context.Context, baseImage reference.Image, module shoot.Module, auxiliaryNote string) ([]Suggestion, error) {
	basePart, err := imagePart(baseImage.Data)
	if err != nil {
		return nil, err
	}

	parts := []part{
		{Text: shoot.StrategyPrompt(module, auxiliaryNote)},
		basePart,
	}
	cfg := &genConfig{
		ThinkingConfig:   &thinkingConfig{ThinkingBudget: 2048},
		ResponseMimeType: "application/json",
		ResponseSchema:   suggestionSchema,
	}

	return withRetry(ctx, c.sleep, func() ([]Suggestion, error) {
		raw, err := c.callRaw(ctx, ModelReasoning, parts, cfg)
		if err != nil {
			return nil, err
		}

		text := ""
		if len(raw.Candidates) > 0 && len(raw.Candidates[0].Content.Parts) > 0 {
			text = strings.TrimSpace(raw.Candidates[0].Content.Parts[0].Text)
		}
		if text == "" {
			return []Suggestion{}, nil
		}

		var suggestions []Suggestion
		if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
			c.logger.Warn("strategy response is not valid JSON", "error", err)
			return []Suggestion{}, nil
		}
		return suggestions, nil
	})
}
