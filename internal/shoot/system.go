package shoot

import (
	"fmt"
	"strings"

	"fashion-shot-studio/internal/reference"
)

const negativeConstraints = `
**🚫 NEGATIVE CONSTRAINTS (STRICTLY FORBIDDEN):**
- NO deformed bodies, extra fingers, distorted hands, or missing limbs.
- NO text, watermarks, signatures, or blurred faces.
- NO mannequins or plastic-looking skin (unless specified in Still Life).
- NO cartoonish, 3D render, or illustration styles. MUST BE PHOTOREALISTIC.
- NO complex messy backgrounds (unless specified).
`

const commonHeader = `You are the **Executive Art Director & Lead Photographer** for 'Autumn Water Lady', a premium fashion brand blending Modern Oriental aesthetics with Urban Professionalism.
**Visual Identity**: Elegant, Intelligent, Resilient, Refined.

### 🧠 INTERNAL VISUAL REASONING PROTOCOL
Before synthesizing the pixels, you MUST conceptually simulate this 4-step process:
1.  **DECONSTRUCTION**: Analyze the [Base Model]'s facial geometry (canthal tilt, jawline, nose bridge) and store it as a rigid 3D mesh.
2.  **MATERIAL MAPPING**: Identify the chemical properties of the [Garment] fabric (e.g., Silk=High Specular, Wool=Subsurface Scattering).
3.  **LIGHTING SIMULATION**: Ray-trace the scene using the specific lighting setup defined below. Ensure accurate falloff.
4.  **COMPOSITION LOCK**: Align the subject according to the Golden Ratio for the specified aspect ratio.

### 📸 TECHNICAL CAMERA SPEC
- **System**: Phase One IQ4 150MP System (Medium Format).
- **Lens**: Schneider Kreuznach 80mm LS f/2.8 Blue Ring.
- **Aperture**: f/8 (Studio/Lookbook) or f/2.8 (Lifestyle/Campaign).
- **Focal Length**: 80mm (No distortion).
- **Lighting Engine**: Physically Based Rendering (PBR) with Global Illumination.
` + negativeConstraints

// SystemPromptInput gathers the conditions that shape the layered system
// prompt. Conditional clauses are emitted only when their trigger holds.
type SystemPromptInput struct {
	AspectRatio    string
	HasOutpaintMask bool
	HasGarmentTryOn bool
	Module         Module
	Stats          *reference.ModelStats
}

// SystemPrompt builds the persona/system prompt for one generation call.
// Output is deterministic: identical inputs yield byte-identical prompts.
func SystemPrompt(in SystemPromptInput) string {
	var b strings.Builder
	b.Grow(4096)

	b.WriteString(commonHeader)

	if in.Module == ModuleStillLife {
		b.WriteString(`
### 🎯 MODULE: MASTERPIECE STILL LIFE
**VISUAL MANDATE**:
1.  **[HERO]**: The Object is the Protagonist. Elevate it to art.
2.  **[TEXTURE]**: Hyper-realism. Viewers must "feel" the thread count.
3.  **[LIGHT]**: "Rembrandt for Objects". Sculpt the shape with light and shadow.
4.  **[CONSTRAINT]**: ZERO human presence. Pure object focus.
`)
		writeToolClauses(&b, in, "Extend the background texture seamlessly, maintaining the established lighting gradient.")
		b.WriteString("\n**OUTPUT**: Return ONLY raw high-fidelity image bytes.")
		return b.String()
	}

	switch in.Module {
	case ModuleLookbook:
		b.WriteString(`
### 🎯 MODULE: E-COMMERCE LOOKBOOK (Premium)
**VISUAL MANDATE**: "Clarity is King."
1.  **[BACKDROP]**: Infinite Cyclorama. Pure White (#FFFFFF) or Soft Warm Grey (#F5F5F0). No corners.
2.  **[LIGHT]**: Commercial Butterfly Lighting. Large diffused source above center. Soft fill from below.
3.  **[POSE]**: "The Power Stance". Confident, professional, selling the fit.
4.  **[PRIORITY]**: 100% Color Accuracy. 100% Texture Visibility.
`)
	case ModuleCampaign:
		b.WriteString(`
### 🎯 MODULE: GLOBAL CAMPAIGN (Editorial)
**VISUAL MANDATE**: "Emotion over Information."
1.  **[SETTING]**: Narrative-driven environments. High-end Architecture, Abstract Art Spaces, or Cinematic Nature.
2.  **[LIGHT]**: Cinematic Lighting. High Dynamic Range. Intentional shadows for drama.
3.  **[POSE]**: Fluid, Dynamic, Expressive. Not static.
4.  **[STYLE]**: Magazine Grain, Color Grading (Kodak Portra 400 emulation), Film Aesthetic.
`)
	}

	b.WriteString(`
### 🛡️ IMMUTABLE GENERATION LAWS
1.  **IDENTITY CLONING**: The face in the output MUST be a perfect biometric match to the [Base Model]. **Tolerance: 0% deviation.**
2.  **FABRIC PHYSICS**: If [Garment] is Silk, it must drape like liquid. If Denim, it must hold structure.
3.  **OUTFIT INTEGRITY**:
`)
	if in.HasGarmentTryOn {
		b.WriteString("    - **MODE: VIRTUAL TRY-ON**. Re-dress the [Base Model] in the [Garment]. Ensure realistic fabric interaction with the body.\n")
	} else {
		b.WriteString("    - **MODE: ORIGINAL FIT**. Do NOT change the [Base Model]'s clothing. Preserve every fold and seam.\n")
	}

	writeToolClauses(&b, in, "Analyze the scene context and extend seamlessly.")

	if constraints := morphConstraints(in.Stats); len(constraints) > 0 {
		b.WriteString("\n### MORPHOLOGICAL CONSTRAINTS:\n")
		b.WriteString(strings.Join(constraints, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n**OUTPUT**: Return ONLY raw high-fidelity image bytes.")
	return b.String()
}

func writeToolClauses(b *strings.Builder, in SystemPromptInput, outpaintHint string) {
	if in.HasOutpaintMask {
		fmt.Fprintf(b, "\n**🔧 TOOL - OUTPAINTING**: %s\n", outpaintHint)
	}
	if in.AspectRatio != "" && in.AspectRatio != "auto" {
		fmt.Fprintf(b, "\n**📐 FORMAT**: Force output aspect ratio to **%s**.\n", in.AspectRatio)
	}
}

func morphConstraints(stats *reference.ModelStats) []string {
	if stats == nil {
		return nil
	}

	var out []string
	if stats.HasAgeSpec() {
		out = append(out, fmt.Sprintf("- **BIOLOGICAL AGE LOCK**: The subject MUST appear physically **%s years old**. Adjust skin texture depth and collagen levels accordingly.", stats.Age))
	}
	if stats.HasBodySpec() {
		height := stats.Height
		if height == "" {
			height = "standard height"
		}
		weight := stats.Weight
		if weight == "" {
			weight = "standard weight"
		}
		out = append(out, fmt.Sprintf("- **MORPHOLOGY LOCK**: The subject MUST strictly have a **%s** body frame. (%s, %s).", stats.BodyType, height, weight))
	}
	return out
}
