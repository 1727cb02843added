package genclient

import (
	"encoding/base64"
	"fmt"

	"fashion-shot-studio/internal/imaging"
	"fashion-shot-studio/internal/reference"
)

// imagePart compresses raw image bytes and wraps them as an inline part.
func imagePart(data []byte) (part, error) {
	compressed, mime, err := imaging.Compress(data)
	if err != nil {
		return part{}, newError(KindMalformedInput, "prepare image: %v", err)
	}
	return part{InlineData: &blob{
		MimeType: mime,
		Data:     base64.StdEncoding.EncodeToString(compressed),
	}}, nil
}

// maskPart wraps an already-rendered mask data URL as an inline part.
// Masks bypass compression so the region boundaries stay exact.
func maskPart(dataURL string) (part, error) {
	mime, data, err := imaging.DecodeDataURL(dataURL)
	if err != nil {
		return part{}, newError(KindMalformedInput, "parse mask: %v", err)
	}
	return part{InlineData: &blob{
		MimeType: mime,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}, nil
}

func usageTag(p reference.Purpose) string {
	switch p {
	case reference.PurposeClothingGarment:
		return "GARMENT TO WEAR"
	case reference.PurposeStyleMakeupHair:
		return "STYLE/POSE GUIDE (Override)"
	default:
		return "VISUAL REFERENCE"
	}
}

// buildParts lays out the multimodal request: role definition, asset
// inventory (base model first, then every auxiliary reference in its
// original order with masks attached right after their image), and the
// execute section with the compiled shoot plan.
func buildParts(baseImage reference.Image, baseMask string, outpaintMask []byte, refs []reference.Object, systemPrompt, shootPlan string) ([]part, error) {
	basePart, err := imagePart(baseImage.Data)
	if err != nil {
		return nil, err
	}

	parts := []part{
		{Text: "=== 🎭 ROLE DEFINITION ===\n" + systemPrompt},
		{Text: "\n=== 📂 ASSET INVENTORY === \n"},
		{Text: "**[PRIMARY]: [Base Model]**\nROLE: IDENTITY SOURCE. The output MUST look like this person.\n"},
		basePart,
	}

	if baseMask != "" {
		mp, err := maskPart(baseMask)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part{Text: "**[ASSET 1] MASK:**"}, mp)
	}

	if len(outpaintMask) > 0 {
		mp, err := imagePart(outpaintMask)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part{Text: "**OUTPAINTING MASK:**"}, mp)
	}

	assetCounter := 2
	for _, ref := range refs {
		if ref.Purpose == reference.PurposeBaseModel {
			continue
		}

		desc := ref.Description
		if desc == "" {
			desc = ref.ID
		}
		parts = append(parts, part{Text: fmt.Sprintf(
			"\n**ASSET %d: [%s]**\nUSAGE: %s\nDescription: %s",
			assetCounter, ref.Purpose.Label(), usageTag(ref.Purpose), desc,
		)})

		ip, err := imagePart(ref.Image.Data)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ip)

		if ref.Mask != "" {
			mp, err := maskPart(ref.Mask)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part{Text: fmt.Sprintf("**ASSET %d MASK:**", assetCounter)}, mp)
		}
		assetCounter++
	}

	parts = append(parts,
		part{Text: "\n=== 🎬 EXECUTE === \n"},
		part{Text: shootPlan},
	)
	return parts, nil
}
