package shoot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-shot-studio/internal/reference"
)

func ref(id string, purpose reference.Purpose, desc string) reference.Object {
	return reference.Object{ID: id, Purpose: purpose, Description: desc}
}

func TestSystemPrompt_StillLife(t *testing.T) {
	prompt := SystemPrompt(SystemPromptInput{Module: ModuleStillLife})

	assert.Contains(t, prompt, "MASTERPIECE STILL LIFE")
	assert.Contains(t, prompt, "ZERO human presence")
	assert.NotContains(t, prompt, "IDENTITY CLONING")
	assert.NotContains(t, prompt, "VIRTUAL TRY-ON")
}

func TestSystemPrompt_LookbookTryOn(t *testing.T) {
	prompt := SystemPrompt(SystemPromptInput{
		Module:          ModuleLookbook,
		HasGarmentTryOn: true,
	})

	assert.Contains(t, prompt, "E-COMMERCE LOOKBOOK")
	assert.Contains(t, prompt, "MODE: VIRTUAL TRY-ON")
	assert.NotContains(t, prompt, "MODE: ORIGINAL FIT")
	assert.Contains(t, prompt, "IDENTITY CLONING")
}

func TestSystemPrompt_CampaignOriginalFit(t *testing.T) {
	prompt := SystemPrompt(SystemPromptInput{Module: ModuleCampaign})

	assert.Contains(t, prompt, "GLOBAL CAMPAIGN")
	assert.Contains(t, prompt, "MODE: ORIGINAL FIT")
	assert.NotContains(t, prompt, "VIRTUAL TRY-ON")
}

func TestSystemPrompt_ConditionalClauses(t *testing.T) {
	bare := SystemPrompt(SystemPromptInput{Module: ModuleLookbook})
	assert.NotContains(t, bare, "OUTPAINTING")
	assert.NotContains(t, bare, "FORMAT")
	assert.NotContains(t, bare, "MORPHOLOGICAL CONSTRAINTS")

	full := SystemPrompt(SystemPromptInput{
		Module:          ModuleLookbook,
		AspectRatio:     "3:4",
		HasOutpaintMask: true,
		Stats:           &reference.ModelStats{Age: "30", Height: "175cm", BodyType: reference.BodySlim},
	})
	assert.Contains(t, full, "TOOL - OUTPAINTING")
	assert.Contains(t, full, "Force output aspect ratio to **3:4**")
	assert.Contains(t, full, "BIOLOGICAL AGE LOCK")
	assert.Contains(t, full, "**30 years old**")
	assert.Contains(t, full, "MORPHOLOGY LOCK")
	assert.Contains(t, full, "**slim** body frame")
	assert.Contains(t, full, "standard weight")

	auto := SystemPrompt(SystemPromptInput{Module: ModuleLookbook, AspectRatio: "auto"})
	assert.NotContains(t, auto, "Force output aspect ratio")
}

func TestSystemPrompt_Deterministic(t *testing.T) {
	in := SystemPromptInput{Module: ModuleCampaign, AspectRatio: "1:1", HasGarmentTryOn: true}
	assert.Equal(t, SystemPrompt(in), SystemPrompt(in))
}

func TestShotPrompt_StillLifeGatedLines(t *testing.T) {
	refs := []reference.Object{
		ref("p", reference.PurposeBaseModel, "the product"),
		ref("m", reference.PurposeCraftMacroTexture, "weave"),
	}

	prompt := ShotPrompt(refs, ModuleStillLife, nil)
	assert.Contains(t, prompt, "SHOOT PLAN: STILL_LIFE")
	assert.Contains(t, prompt, "MACRO LENS 100mm")
	assert.NotContains(t, prompt, "Overhead Flat Lay")
	assert.NotContains(t, prompt, "IDENTITY LOCK")

	refs = append(refs, ref("f", reference.PurposeCraftFlatLay, ""))
	prompt = ShotPrompt(refs, ModuleStillLife, nil)
	assert.Contains(t, prompt, "90° Overhead Flat Lay")
}

func TestShotPrompt_LookbookStudioVsLifestyle(t *testing.T) {
	stats := &reference.ModelStats{Age: "25", BodyType: reference.BodyUnchanged}
	base := []reference.Object{ref("b", reference.PurposeBaseModel, "")}

	studio := ShotPrompt(append(base, ref("l", reference.PurposeStudioLightingClean, "")), ModuleLookbook, stats)
	assert.Contains(t, studio, "[STUDIO SETUP]")
	assert.Contains(t, studio, "Butterfly Lighting or Loop Lighting")
	assert.NotContains(t, studio, "[SCENE SETTING]")
	assert.Contains(t, studio, "Morphology Natural/Unchanged")

	lifestyle := ShotPrompt(append(base,
		ref("c", reference.PurposeLifestyleSceneCafe, ""),
		ref("p", reference.PurposeLifestylePoseNatural, ""),
	), ModuleLookbook, stats)
	assert.Contains(t, lifestyle, "[SCENE SETTING]")
	assert.Contains(t, lifestyle, "Chic Cafe Window")
	assert.Contains(t, lifestyle, "Walking / Drinking Coffee")
	assert.NotContains(t, lifestyle, "[STUDIO SETUP]")
}

func TestShotPrompt_GarmentVsOriginalWardrobe(t *testing.T) {
	base := []reference.Object{ref("b", reference.PurposeBaseModel, "")}

	original := ShotPrompt(base, ModuleLookbook, nil)
	assert.Contains(t, original, "Maintain Original Wardrobe verbatim")

	withGarment := ShotPrompt(append(base, ref("g", reference.PurposeClothingGarment, "silk dress")), ModuleLookbook, nil)
	assert.Contains(t, withGarment, "silk dress")
	assert.Contains(t, withGarment, "Drapes naturally on body")
	assert.NotContains(t, withGarment, "Maintain Original Wardrobe")
}

func TestShotPrompt_CampaignArtDirection(t *testing.T) {
	refs := []reference.Object{
		ref("b", reference.PurposeBaseModel, ""),
		ref("lux", reference.PurposeBrandSceneLuxury, ""),
		ref("cin", reference.PurposeBrandLightingCinematic, ""),
	}

	prompt := ShotPrompt(refs, ModuleCampaign, nil)
	assert.Contains(t, prompt, "[ART DIRECTION]")
	assert.Contains(t, prompt, "Luxury Hotel Lobby")
	assert.Contains(t, prompt, "Volumetric Fog")
	assert.NotContains(t, prompt, "Avant-Garde")
}

func TestShotPrompt_EditRequestTrails(t *testing.T) {
	refs := []reference.Object{
		ref("b", reference.PurposeBaseModel, ""),
		ref("e", reference.PurposeModificationDetail, "shorten sleeves"),
	}

	prompt := ShotPrompt(refs, ModuleLookbook, nil)
	require.Contains(t, prompt, "[EDIT REQUEST]")
	assert.Contains(t, prompt, "shorten sleeves")
	assert.Greater(t, strings.Index(prompt, "[EDIT REQUEST]"), strings.Index(prompt, "[STUDIO SETUP]"))
}

func TestWithClientNote(t *testing.T) {
	plan := "plan body"
	assert.Equal(t, plan, WithClientNote(plan, ""))
	assert.Equal(t, plan, WithClientNote(plan, "   "))

	noted := WithClientNote(plan, "make it moody")
	assert.Contains(t, noted, "CLIENT NOTE: make it moody")
	assert.Contains(t, noted, plan)
}

func TestStrategyPrompt(t *testing.T) {
	lb := StrategyPrompt(ModuleLookbook, "")
	assert.Contains(t, lb, "E-commerce Photography Director")

	camp := StrategyPrompt(ModuleCampaign, "warm tones")
	assert.Contains(t, camp, "Creative Director")
	assert.Contains(t, camp, "USER NOTE**: warm tones")

	still := StrategyPrompt(ModuleStillLife, "")
	assert.Contains(t, still, "Luxury Product Set Designer")

	fallback := StrategyPrompt(Module("other"), "")
	assert.Equal(t, DefaultStrategyPrompt, fallback)
}
