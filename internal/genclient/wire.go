package genclient

import "encoding/json"

// Wire types for the backend proxy protocol. The proxy forwards the
// request body to the model service, so these mirror the upstream
// generateContent shapes.

type generateRequest struct {
	Model     string     `json:"model"`
	Parts     []part     `json:"parts"`
	GenConfig *genConfig `json:"genConfig,omitempty"`
}

type part struct {
	Text       string `json:"text,omitempty"`
	InlineData *blob  `json:"inlineData,omitempty"`
}

type blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type genConfig struct {
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	ImageConfig      *imageConfig      `json:"imageConfig,omitempty"`
	ThinkingConfig   *thinkingConfig   `json:"thinkingConfig,omitempty"`
	ResponseMimeType string            `json:"responseMimeType,omitempty"`
	ResponseSchema   any               `json:"responseSchema,omitempty"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type imageConfig struct {
	ImageSize   string `json:"imageSize,omitempty"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget,omitempty"`
}

type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content      candidateContent `json:"content"`
	FinishReason string           `json:"finishReason,omitempty"`
}

type candidateContent struct {
	Parts []part `json:"parts"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// proxyError tolerates both error shapes the proxy emits: a structured
// {"error":{"message":...}} object and a bare {"error":"..."} string.
type proxyError struct {
	Error proxyErrorValue `json:"error"`
}

type proxyErrorValue struct {
	Message string
}

func (v *proxyErrorValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Message = s
		return nil
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	v.Message = obj.Message
	return nil
}
