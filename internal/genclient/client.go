// Package genclient talks to the generation backend proxy: it compiles
// prompts and references into multimodal requests, classifies failures
// and retries the transient ones with exponential backoff.
package genclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
)

const (
	// ModelPro renders images.
	ModelPro = "gemini-3-pro-image-preview"
	// ModelReasoning drives text-only strategy generation.
	ModelReasoning = "gemini-3-pro-preview"

	imageSize2K = "2K"
)

type Options struct {
	// ProxyURL is the full endpoint of the backend generation proxy.
	ProxyURL string
	// Model overrides ModelPro for image calls when set.
	Model      string
	HTTPClient *http.Client
	Logger     *slog.Logger
	// OnQuotaExhausted fires once per call whose final outcome is a
	// quota failure, after all retries are spent.
	OnQuotaExhausted func(model string)
}

type Client struct {
	proxyURL   string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
	onQuota    func(model string)
	sleep      func(context.Context, time.Duration) error
}

func New(opts Options) *Client {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = ModelPro
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		proxyURL:   strings.TrimRight(opts.ProxyURL, "/"),
		model:      model,
		httpClient: httpClient,
		logger:     logger,
		onQuota:    opts.OnQuotaExhausted,
		sleep:      sleepContext,
	}
}

// GenerateRequest describes one image generation call.
type GenerateRequest struct {
	// BaseImage is the identity source (or the product, in still life).
	BaseImage reference.Image
	// References are all session references; the base-model entry is
	// used for its mask, the rest become inventory assets in order.
	References []reference.Object
	// UserPrompt is the operator's free-text note, or the shot template
	// during batch production.
	UserPrompt string
	// AspectRatio is the requested output ratio ("auto" disables it).
	AspectRatio string
	// OutpaintMask, when set, is the padded-canvas mask PNG.
	OutpaintMask []byte
	// SystemPrompt overrides the compiled persona prompt when set.
	SystemPrompt string
	Module       shoot.Module
	Stats        *reference.ModelStats
	// Refinement switches to the minimal refine flow: prompt, base and
	// mask only, no asset inventory.
	Refinement bool
}

// Generate runs one generation call and returns the produced image as a
// data URL.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	parts, cfg, err := c.assemble(req)
	if err != nil {
		return "", err
	}

	out, err := withRetry(ctx, c.sleep, func() (string, error) {
		return c.call(ctx, c.model, parts, cfg)
	})
	if err != nil {
		if IsKind(err, KindQuotaExceeded) && c.onQuota != nil {
			c.onQuota(c.model)
		}
		return "", err
	}
	return out, nil
}

func (c *Client) assemble(req GenerateRequest) ([]part, *genConfig, error) {
	if req.Refinement {
		basePart, err := imagePart(req.BaseImage.Data)
		if err != nil {
			return nil, nil, err
		}
		mp, err := imagePart(req.OutpaintMask)
		if err != nil {
			return nil, nil, err
		}
		parts := []part{
			{Text: fmt.Sprintf("Refinement Task: %q. Maintain identity.", req.UserPrompt)},
			basePart,
			mp,
		}
		return parts, &genConfig{ImageConfig: &imageConfig{ImageSize: imageSize2K}}, nil
	}

	var baseMask string
	hasGarment := false
	for _, ref := range req.References {
		if ref.Purpose == reference.PurposeBaseModel {
			baseMask = ref.Mask
		}
		if ref.Purpose == reference.PurposeClothingGarment {
			hasGarment = true
		}
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = shoot.SystemPrompt(shoot.SystemPromptInput{
			AspectRatio:     req.AspectRatio,
			HasOutpaintMask: len(req.OutpaintMask) > 0,
			HasGarmentTryOn: hasGarment,
			Module:          req.Module,
			Stats:           req.Stats,
		})
	}

	plan := shoot.ShotPrompt(req.References, req.Module, req.Stats)
	plan = shoot.WithClientNote(plan, req.UserPrompt)

	parts, err := buildParts(req.BaseImage, baseMask, req.OutpaintMask, req.References, systemPrompt, plan)
	if err != nil {
		return nil, nil, err
	}

	cfg := &genConfig{
		GenerationConfig: &generationConfig{Temperature: 0.4},
		ImageConfig:      &imageConfig{ImageSize: imageSize2K},
	}
	pureGeneration := baseMask == "" && len(req.OutpaintMask) == 0
	if pureGeneration && req.AspectRatio != "" && req.AspectRatio != "auto" {
		cfg.ImageConfig.AspectRatio = req.AspectRatio
	}
	return parts, cfg, nil
}

// call posts one request to the proxy and decodes the produced image.
func (c *Client) call(ctx context.Context, model string, parts []part, cfg *genConfig) (string, error) {
	decoded, err := c.callRaw(ctx, model, parts, cfg)
	if err != nil {
		return "", err
	}
	return handleResponse(decoded)
}

func (c *Client) callRaw(ctx context.Context, model string, parts []part, cfg *genConfig) (generateResponse, error) {
	body, err := json.Marshal(generateRequest{Model: model, Parts: parts, GenConfig: cfg})
	if err != nil {
		return generateResponse{}, newError(KindMalformedInput, "marshal request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.proxyURL, bytes.NewReader(body))
	if err != nil {
		return generateResponse{}, newError(KindBackendProxy, "create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return generateResponse{}, ctx.Err()
		}
		return generateResponse{}, newError(KindServiceUnavailable, "proxy request: %v", err)
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return generateResponse{}, newError(KindBackendProxy, "read response: %v", err)
	}

	c.logger.Debug("proxy call finished",
		"model", model,
		"status", httpResp.StatusCode,
		"duration", time.Since(started),
	)

	if httpResp.StatusCode >= 400 {
		return generateResponse{}, c.decodeProxyError(httpResp.StatusCode, httpResp.Status, rawBody)
	}

	var decoded generateResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return generateResponse{}, newError(KindBackendProxy, "decode response: %v", err)
	}
	return decoded, nil
}

func (c *Client) decodeProxyError(statusCode int, status string, rawBody []byte) error {
	msg := status
	var pe proxyError
	if err := json.Unmarshal(rawBody, &pe); err == nil && pe.Error.Message != "" {
		msg = pe.Error.Message
	}

	kind := classifyMessage(statusCode, msg)
	switch kind {
	case KindQuotaExceeded:
		return newError(KindQuotaExceeded, "quota exhausted: %s", truncateMessage(msg))
	case KindServiceUnavailable:
		return newError(KindServiceUnavailable, "service overloaded: %s", truncateMessage(msg))
	default:
		return newError(KindBackendProxy, "backend proxy error: %s", truncateMessage(msg))
	}
}

// handleResponse maps a decoded generation response onto either an
// image data URL or a typed failure. Policy blocks win over everything,
// then the first inline image, then a non-STOP finish reason.
func handleResponse(resp generateResponse) (string, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", newError(KindContentPolicyBlocked,
			"request blocked by safety system: %s", resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data), nil
			}
		}
		if fr := resp.Candidates[0].FinishReason; fr != "" && fr != "STOP" {
			return "", newError(KindGenerationInterrupted,
				"generation interrupted: %s", fr)
		}
	}

	return "", newError(KindNoImageProduced,
		"no image in response; simplify the instructions or change the references")
}
