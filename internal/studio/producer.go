// Package studio orchestrates generation flows on top of the backend
// client: single shots with aspect-ratio preprocessing, refinement
// passes and sequential batch production over the shot catalog.
package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"fashion-shot-studio/internal/genclient"
	"fashion-shot-studio/internal/imaging"
	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
)

// ErrNoBaseModel is returned when a flow requires a main subject and
// the reference set has none.
var ErrNoBaseModel = errors.New("base model reference is required")

// Generator is the backend surface the producer drives.
type Generator interface {
	Generate(ctx context.Context, req genclient.GenerateRequest) (string, error)
	StrategySuggestions(ctx context.Context, baseImage reference.Image, module shoot.Module, auxiliaryNote string) ([]genclient.Suggestion, error)
}

type Options struct {
	Client Generator
	Logger *slog.Logger
}

// Producer runs generation flows for one session.
type Producer struct {
	client  Generator
	logger  *slog.Logger
	results *resultStore

	mu        sync.Mutex
	exhausted map[string]struct{}
	running   bool
}

func New(opts Options) *Producer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Producer{
		client:    opts.Client,
		logger:    logger,
		results:   newResultStore(),
		exhausted: make(map[string]struct{}),
	}
}

// SingleRequest describes one interactive generation.
type SingleRequest struct {
	References  []reference.Object
	Module      shoot.Module
	Stats       *reference.ModelStats
	AspectRatio string
	Prompt      string
	// SystemPrompt overrides the compiled persona prompt when set.
	SystemPrompt string
}

// Single runs one interactive generation and returns the image data
// URL. When the base model carries an inpainting mask and a concrete
// aspect ratio is requested, the flow runs in two passes: inpaint at
// the source ratio first, then outpaint the intermediate onto the
// padded canvas.
func (p *Producer) Single(ctx context.Context, req SingleRequest) (string, error) {
	base := findBase(req.References)
	if base == nil {
		return "", ErrNoBaseModel
	}

	needsInpainting := base.Mask != ""
	needsRatio := req.AspectRatio != "" && req.AspectRatio != "auto"

	switch {
	case needsInpainting && needsRatio:
		intermediate, err := p.generate(ctx, genclient.GenerateRequest{
			BaseImage:    base.Image,
			References:   req.References,
			UserPrompt:   req.Prompt,
			AspectRatio:  "auto",
			Module:       req.Module,
			Stats:        req.Stats,
			SystemPrompt: req.SystemPrompt,
		})
		if err != nil {
			return "", err
		}

		mime, data, err := imaging.DecodeDataURL(intermediate)
		if err != nil {
			return "", err
		}

		// The inpainted result becomes the new base; its mask is spent.
		outpaintRefs := make([]reference.Object, len(req.References))
		copy(outpaintRefs, req.References)
		for i := range outpaintRefs {
			if outpaintRefs[i].Purpose == reference.PurposeBaseModel {
				outpaintRefs[i].Image = reference.Image{Data: data, MIME: mime}
				outpaintRefs[i].Mask = ""
				outpaintRefs[i].Description = ""
			}
		}
		return p.generateAtRatio(ctx, reference.Image{Data: data, MIME: mime}, outpaintRefs, req)

	case needsRatio:
		return p.generateAtRatio(ctx, base.Image, req.References, req)

	default:
		return p.generate(ctx, genclient.GenerateRequest{
			BaseImage:    base.Image,
			References:   req.References,
			UserPrompt:   req.Prompt,
			AspectRatio:  "auto",
			Module:       req.Module,
			Stats:        req.Stats,
			SystemPrompt: req.SystemPrompt,
		})
	}
}

// generateAtRatio pads the base image to the requested ratio when it
// does not already match, turning the call into an outpainting job.
func (p *Producer) generateAtRatio(ctx context.Context, baseImage reference.Image, refs []reference.Object, req SingleRequest) (string, error) {
	pad, err := imaging.PadToAspectRatio(baseImage.Data, req.AspectRatio)
	if err != nil {
		return "", malformedInput("pad to aspect ratio", err)
	}

	call := genclient.GenerateRequest{
		BaseImage:    baseImage,
		References:   refs,
		UserPrompt:   req.Prompt,
		AspectRatio:  req.AspectRatio,
		Module:       req.Module,
		Stats:        req.Stats,
		SystemPrompt: req.SystemPrompt,
	}
	if pad.Padded {
		call.BaseImage = reference.Image{Data: pad.Image, MIME: "image/png"}
		call.OutpaintMask = pad.Mask
	}
	return p.generate(ctx, call)
}

// Refine applies a masked edit to an already generated image. The mask
// is operator-drawn; identity and everything outside it must survive.
func (p *Producer) Refine(ctx context.Context, imageURL string, mask []byte, prompt string, module shoot.Module) (string, error) {
	mime, data, err := imaging.DecodeDataURL(imageURL)
	if err != nil {
		return "", malformedInput("parse image data URL", err)
	}
	return p.generate(ctx, genclient.GenerateRequest{
		BaseImage:    reference.Image{Data: data, MIME: mime},
		UserPrompt:   prompt,
		OutpaintMask: mask,
		Module:       module,
		Refinement:   true,
	})
}

// BatchRequest describes one batch production run.
type BatchRequest struct {
	SelectedIDs []string
	References  []reference.Object
	Module      shoot.Module
	Stats       *reference.ModelStats
	// SystemPrompt overrides the compiled persona prompt when set.
	SystemPrompt string
	// ShotRefs carries per-shot style references keyed by shot id.
	ShotRefs map[string]reference.Image
}

// Batch produces every selected shot strictly in order. All selected
// shots are marked generating up front so progress is visible before
// the first call completes. A failed shot is recorded and the run
// moves on; only context cancellation stops it.
func (p *Producer) Batch(ctx context.Context, req BatchRequest) error {
	base := findBase(req.References)
	if base == nil {
		return ErrNoBaseModel
	}

	p.setRunning(true)
	defer p.setRunning(false)

	for _, id := range req.SelectedIDs {
		p.results.set(ShotResult{ShotID: id, Status: StatusGenerating, Selected: true})
	}

	for _, id := range req.SelectedIDs {
		if err := ctx.Err(); err != nil {
			p.results.set(ShotResult{ShotID: id, Status: StatusError, Error: err.Error(), Selected: true})
			return err
		}

		def, ok := shoot.FindShot(req.Module, id)
		if !ok {
			p.results.set(ShotResult{ShotID: id, Status: StatusError, Error: "unknown shot id", Selected: true})
			continue
		}

		refs := req.References
		if local, ok := req.ShotRefs[id]; ok {
			refs = shotScopedRefs(req.References, id, local)
		}

		url, err := p.generate(ctx, genclient.GenerateRequest{
			BaseImage:    base.Image,
			References:   refs,
			UserPrompt:   def.PromptTemplate,
			AspectRatio:  def.AspectRatio,
			Module:       req.Module,
			Stats:        req.Stats,
			SystemPrompt: req.SystemPrompt,
		})
		if err != nil {
			p.logger.Warn("shot failed", "shot", id, "error", err)
			p.results.set(ShotResult{ShotID: id, Status: StatusError, Error: err.Error(), Selected: true})
			continue
		}

		p.results.set(ShotResult{ShotID: id, Status: StatusSuccess, ImageURL: url, Selected: true})
	}
	return nil
}

// Suggest asks for creative proposals grounded on the session's base
// model image.
func (p *Producer) Suggest(ctx context.Context, refs []reference.Object, module shoot.Module, auxiliaryNote string) ([]genclient.Suggestion, error) {
	base := findBase(refs)
	if base == nil {
		return nil, ErrNoBaseModel
	}
	return p.client.StrategySuggestions(ctx, base.Image, module, auxiliaryNote)
}

// Results returns a snapshot of the batch state.
func (p *Producer) Results() map[string]ShotResult {
	return p.results.snapshot()
}

// ResetResults drops all recorded batch results.
func (p *Producer) ResetResults() {
	p.results.clear()
}

func (p *Producer) setRunning(v bool) {
	p.mu.Lock()
	p.running = v
	p.mu.Unlock()
}

// InProgress reports whether a batch run is currently executing.
func (p *Producer) InProgress() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// ExhaustedModels lists models that hit a quota wall during this
// session.
func (p *Producer) ExhaustedModels() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.exhausted))
	for m := range p.exhausted {
		out = append(out, m)
	}
	return out
}

func (p *Producer) generate(ctx context.Context, req genclient.GenerateRequest) (string, error) {
	url, err := p.client.Generate(ctx, req)
	if err != nil {
		if genclient.IsKind(err, genclient.KindQuotaExceeded) {
			p.mu.Lock()
			p.exhausted[genclient.ModelPro] = struct{}{}
			p.mu.Unlock()
		}
		return "", err
	}
	return url, nil
}

// malformedInput types a preprocessing failure so the HTTP layer maps
// it to a client error instead of a server fault.
func malformedInput(op string, err error) error {
	return &genclient.Error{
		Kind:    genclient.KindMalformedInput,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}

// HasBase reports whether the reference set carries a main subject.
func HasBase(refs []reference.Object) bool {
	return findBase(refs) != nil
}

func findBase(refs []reference.Object) *reference.Object {
	for i := range refs {
		if refs[i].Purpose == reference.PurposeBaseModel {
			return &refs[i]
		}
	}
	return nil
}

// shotScopedRefs narrows the reference set for one shot: the base
// model, the garment if present, and the shot's own style reference.
func shotScopedRefs(refs []reference.Object, shotID string, local reference.Image) []reference.Object {
	var scoped []reference.Object
	for i := range refs {
		if refs[i].Purpose == reference.PurposeBaseModel {
			scoped = append(scoped, refs[i])
			break
		}
	}
	for i := range refs {
		if refs[i].Purpose == reference.PurposeClothingGarment {
			scoped = append(scoped, refs[i])
			break
		}
	}
	scoped = append(scoped, reference.Object{
		ID:          "local_" + shotID,
		Image:       local,
		Purpose:     reference.PurposeStyleMakeupHair,
		Description: "Shot Specific Reference",
	})
	return scoped
}
