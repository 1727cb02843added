package shoot

import (
	"fmt"
	"strings"

	"fashion-shot-studio/internal/reference"
)

// ShotPrompt compiles the per-shot shoot plan from the reference set.
// References other than the base model are grouped by purpose in the
// order they first appear, then rendered into module-specific sections.
func ShotPrompt(refs []reference.Object, module Module, stats *reference.ModelStats) string {
	byPurpose := map[reference.Purpose][]reference.Object{}
	for _, ref := range refs {
		if ref.Purpose == reference.PurposeBaseModel {
			continue
		}
		byPurpose[ref.Purpose] = append(byPurpose[ref.Purpose], ref)
	}

	has := func(p reference.Purpose) bool { return len(byPurpose[p]) > 0 }

	var b strings.Builder
	b.Grow(1024)
	fmt.Fprintf(&b, "### 📋 SHOOT PLAN: %s\n", strings.ToUpper(string(module)))

	if module == ModuleStillLife {
		b.WriteString("**[SUBJECT]**: [Main Product]. Isolate subject. High detail.\n")
		if has(reference.PurposeCraftMacroTexture) {
			b.WriteString("**[CAMERA]**: MACRO LENS 100mm. Focus on weave/grain.\n")
		}
		if has(reference.PurposeCraftFlatLay) {
			b.WriteString("**[ANGLE]**: 90° Overhead Flat Lay.\n")
		}
		if has(reference.PurposeCraftOriginScene) {
			b.WriteString("**[ENV]**: Raw Material Origin (Cotton field/Nature/Stone).\n")
		}
	} else {
		b.WriteString("**[SUBJECT SPEC]**: **[Base Model]**. ⚠️ STRICT IDENTITY LOCK REQUIRED.\n")
		if stats != nil {
			body := string(stats.BodyType)
			if stats.BodyType == reference.BodyUnchanged {
				body = "Natural/Unchanged"
			}
			fmt.Fprintf(&b, "**[BIOMETRICS]**: Biological Age %s, Morphology %s.\n", stats.Age, body)
		}

		if garments := byPurpose[reference.PurposeClothingGarment]; len(garments) > 0 {
			fmt.Fprintf(&b, "**[STYLING]**: **%s**. Drapes naturally on body.\n", assetString(garments[0]))
		} else {
			b.WriteString("**[STYLING]**: Maintain Original Wardrobe verbatim.\n")
		}

		switch module {
		case ModuleLookbook:
			lifestyle := has(reference.PurposeLifestyleSceneStreet) ||
				has(reference.PurposeLifestyleSceneCafe) ||
				has(reference.PurposeLifestyleSceneOffice) ||
				has(reference.PurposeLifestylePoseNatural)
			if lifestyle {
				b.WriteString("**[SCENE SETTING]**:\n")
				if has(reference.PurposeLifestyleSceneStreet) {
					b.WriteString("- Location: Busy Urban Street / City Crossing.\n")
				}
				if has(reference.PurposeLifestyleSceneCafe) {
					b.WriteString("- Location: Chic Cafe Window / Interior.\n")
				}
				if has(reference.PurposeLifestyleSceneOffice) {
					b.WriteString("- Location: Modern Minimalist Office.\n")
				}
				if has(reference.PurposeLifestylePoseNatural) {
					b.WriteString("- Action: Walking / Drinking Coffee / Hailing Taxi.\n")
				}
				b.WriteString("- Atmosphere: Authentic, \"Seeding\" style, OOTD.\n")
			} else {
				b.WriteString("**[STUDIO SETUP]**:\n")
				if has(reference.PurposeStudioBackgroundColor) {
					b.WriteString("- Background: Solid Color / Gradient Paper.\n")
				}
				if has(reference.PurposeStudioLightingClean) {
					b.WriteString("- Lighting: Butterfly Lighting or Loop Lighting. Soft.\n")
				}
				b.WriteString("- Quality: 8K, Sharp focus on garment.\n")
			}
		case ModuleCampaign:
			b.WriteString("**[ART DIRECTION]**:\n")
			if has(reference.PurposeBrandSceneLuxury) {
				b.WriteString("- Location: Historical Architecture / Luxury Hotel Lobby.\n")
			}
			if has(reference.PurposeBrandLightingCinematic) {
				b.WriteString("- Lighting: High Contrast, Spotlight, Volumetric Fog.\n")
			}
			if has(reference.PurposeBrandArtisticVibe) {
				b.WriteString("- Style: Surreal, Dreamy, Avant-Garde.\n")
			}
			b.WriteString("- Atmosphere: Expensive, Emotional, Cinematic.\n")
		}
	}

	if mods := byPurpose[reference.PurposeModificationDetail]; len(mods) > 0 {
		fmt.Fprintf(&b, "\n**[EDIT REQUEST]**: %s.\n", assetString(mods[0]))
	}

	return b.String()
}

// WithClientNote appends the operator's free-text instruction to a
// compiled shoot plan. An empty note returns the plan unchanged.
func WithClientNote(plan, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return plan
	}
	return plan + "\n\n#### 📣 CLIENT NOTE: " + note
}

func assetString(ref reference.Object) string {
	desc := ref.Description
	if desc == "" {
		desc = "Ref"
	}
	return fmt.Sprintf("[%s: %q]", ref.Purpose.Label(), desc)
}
