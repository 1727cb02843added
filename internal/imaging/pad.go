package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"
)

// ratioTolerance is how far the source ratio may drift from the target
// before padding kicks in. Within tolerance the image passes through
// untouched and no mask is produced.
const ratioTolerance = 0.01

// ParseAspectRatio parses "W:H" into a width/height quotient.
func ParseAspectRatio(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid aspect ratio %q", s)
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, fmt.Errorf("invalid aspect ratio %q", s)
	}
	return w / h, nil
}

// PadResult carries the outpainting canvas and its paired mask. When
// Padded is false the source already matched the target ratio and both
// Image and Mask are nil.
type PadResult struct {
	Padded bool
	Image  []byte
	Mask   []byte
}

// PadToAspectRatio grows the canvas of src to match the target ratio
// without ever scaling the source pixels. A wider source gets vertical
// bands, a taller one gets horizontal bands, always split evenly. The
// mask is white over the new area and black over the original pixels,
// telling the backend exactly which region to synthesize.
func PadToAspectRatio(data []byte, aspectRatio string) (PadResult, error) {
	target, err := ParseAspectRatio(aspectRatio)
	if err != nil {
		return PadResult{}, err
	}

	src, _, err := Decode(data)
	if err != nil {
		return PadResult{}, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return PadResult{}, fmt.Errorf("empty image %dx%d", w, h)
	}

	ratio := float64(w) / float64(h)
	if math.Abs(ratio-target) <= ratioTolerance {
		return PadResult{}, nil
	}

	canvasW, canvasH := w, h
	dx, dy := 0, 0
	if ratio > target {
		canvasH = int(math.Round(float64(w) / target))
		dy = (canvasH - h) / 2
	} else {
		canvasW = int(math.Round(float64(h) * target))
		dx = (canvasW - w) / 2
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(canvas, image.Rect(dx, dy, dx+w, dy+h), src, bounds.Min, draw.Src)

	mask := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(mask, mask.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(mask, image.Rect(dx, dy, dx+w, dy+h), image.NewUniform(color.Black), image.Point{}, draw.Src)

	canvasPNG, err := EncodePNG(canvas)
	if err != nil {
		return PadResult{}, err
	}
	maskPNG, err := EncodePNG(mask)
	if err != nil {
		return PadResult{}, err
	}

	return PadResult{Padded: true, Image: canvasPNG, Mask: maskPNG}, nil
}
