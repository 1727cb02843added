package reference

import "strings"

// Purpose tags a reference image with its semantic role in a shoot.
type Purpose string

const (
	PurposeBaseModel Purpose = "baseModel"

	// Studio
	PurposeStudioLightingClean   Purpose = "studio_lighting_clean"
	PurposeStudioBackgroundColor Purpose = "studio_background_color"

	// Lifestyle
	PurposeLifestyleSceneStreet Purpose = "lifestyle_scene_street"
	PurposeLifestyleSceneCafe   Purpose = "lifestyle_scene_cafe"
	PurposeLifestyleSceneOffice Purpose = "lifestyle_scene_office"
	PurposeLifestylePoseNatural Purpose = "lifestyle_pose_natural"

	// Brand
	PurposeBrandSceneLuxury       Purpose = "brand_scene_luxury"
	PurposeBrandLightingCinematic Purpose = "brand_lighting_cinematic"
	PurposeBrandArtisticVibe      Purpose = "brand_artistic_vibe"

	// Still life
	PurposeCraftMacroTexture Purpose = "craft_macro_texture"
	PurposeCraftOriginScene  Purpose = "craft_origin_scene"
	PurposeCraftFlatLay      Purpose = "craft_flat_lay"

	// Common
	PurposeClothingGarment    Purpose = "clothing_garment"
	PurposeAccessoryGeneral   Purpose = "accessory_general"
	PurposeStyleMakeupHair    Purpose = "style_makeup_hair"
	PurposeModificationDetail Purpose = "modification_detail"
)

// globalPurposes apply to the whole scene and never carry a mask or
// bounding box.
var globalPurposes = map[Purpose]struct{}{
	PurposeStudioLightingClean:    {},
	PurposeBrandLightingCinematic: {},
}

func (p Purpose) IsGlobal() bool {
	_, ok := globalPurposes[p]
	return ok
}

var purposeLabels = map[Purpose]string{
	PurposeBaseModel:          "Main Subject",
	PurposeClothingGarment:    "★ Garment (Try-On)",
	PurposeModificationDetail: "Local Edit",

	PurposeStudioBackgroundColor: "Color Background",
	PurposeStudioLightingClean:   "Clean Studio Light",

	PurposeLifestyleSceneStreet: "Street Scene",
	PurposeLifestyleSceneCafe:   "Cafe Scene",
	PurposeLifestyleSceneOffice: "Office Scene",
	PurposeLifestylePoseNatural: "Natural Pose",

	PurposeBrandSceneLuxury:       "Luxury Set",
	PurposeBrandArtisticVibe:      "Art Vibe",
	PurposeBrandLightingCinematic: "Cinematic Light",
	PurposeStyleMakeupHair:        "High-End Makeup & Hair",

	PurposeCraftFlatLay:      "Flat Lay",
	PurposeCraftMacroTexture: "Fabric Macro",
	PurposeCraftOriginScene:  "Origin / Raw Material",

	PurposeAccessoryGeneral: "Accessory",
}

// Label returns the human-readable asset-inventory label for the purpose.
// Unknown purposes fall back to the raw tag so prompts stay self-describing.
func (p Purpose) Label() string {
	if label, ok := purposeLabels[p]; ok {
		return label
	}
	return string(p)
}

// Image holds one reference image payload.
type Image struct {
	Data []byte
	MIME string
}

// BoundingBox is a relative unit-square rectangle, each field in [0,1].
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Object is one user-supplied reference asset.
type Object struct {
	ID          string
	Image       Image
	Description string
	Purpose     Purpose
	// Mask is a base64 data URL encoding an edit region
	// (white=editable, black=protected).
	Mask        string
	BoundingBox *BoundingBox
}

// BodyType selects the morphology lock applied to the generated model.
type BodyType string

const (
	BodyUnchanged BodyType = "unchanged"
	BodySlim      BodyType = "slim"
	BodyAverage   BodyType = "average"
	BodyAthletic  BodyType = "athletic"
	BodyPlusSize  BodyType = "plus-size"
	BodyChubby    BodyType = "chubby"
)

// ModelStats carries the user-specified model biometrics. All fields are
// free text except BodyType; empty values mean "leave unchanged".
type ModelStats struct {
	Age      string   `json:"age"`
	Height   string   `json:"height"`
	Weight   string   `json:"weight"`
	BodyType BodyType `json:"bodyType"`
}

func DefaultStats() ModelStats {
	return ModelStats{BodyType: BodyUnchanged}
}

// HasAgeSpec reports whether an explicit age lock was requested.
func (s ModelStats) HasAgeSpec() bool {
	return strings.TrimSpace(s.Age) != ""
}

// HasBodySpec reports whether a morphology lock was requested.
func (s ModelStats) HasBodySpec() bool {
	return s.BodyType != "" && s.BodyType != BodyUnchanged
}
