// Package imaging prepares reference and mask images for the generation
// backend: decode, downscale, padding geometry and data URL codecs.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/webp"
)

const (
	// MaxDimension caps the longest side of any image sent upstream.
	MaxDimension = 1536

	jpegQuality = 85
)

// Decode sniffs the payload format and decodes it. WebP is handled
// explicitly since image.Decode has no registered decoder for it.
func Decode(data []byte) (image.Image, string, error) {
	if isWEBP(data) {
		img, err := webp.Decode(bytes.NewReader(data), &decoder.Options{})
		if err != nil {
			return nil, "", fmt.Errorf("decode webp: %w", err)
		}
		return img, "webp", nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Compress downscales the payload so its longest side is at most
// MaxDimension and re-encodes it. PNG input stays PNG to keep alpha;
// everything else (JPEG, WebP) comes back as JPEG at quality 85.
// Images already within bounds are still re-encoded, which strips
// metadata before upload.
func Compress(data []byte) ([]byte, string, error) {
	img, format, err := Decode(data)
	if err != nil {
		return nil, "", err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, "", fmt.Errorf("empty image %dx%d", w, h)
	}

	if w > MaxDimension || h > MaxDimension {
		if w > h {
			h = (h*MaxDimension + w/2) / w
			w = MaxDimension
		} else {
			w = (w*MaxDimension + h/2) / h
			h = MaxDimension
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		img = scaleNearest(img, w, h)
	}

	var out bytes.Buffer
	if format == "png" {
		if err := png.Encode(&out, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return out.Bytes(), "image/png", nil
	}

	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Bytes(), "image/jpeg", nil
}

// EncodePNG renders img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return out.Bytes(), nil
}

func isWEBP(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	return string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

func scaleNearest(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 {
		return dst
	}

	for y := 0; y < height; y++ {
		srcY := b.Min.Y + (y*srcH)/height
		for x := 0; x < width; x++ {
			srcX := b.Min.X + (x*srcW)/width
			dst.Set(x, y, src.At(srcX, srcY))
		}
	}
	return dst
}
