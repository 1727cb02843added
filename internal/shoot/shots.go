package shoot

// Brand DNA: intellectual elegance and relaxed luxury. Shared modifiers
// across sets: sculpted light, soft shadows, dappled sunlight outdoors,
// art-gallery lighting indoors; fluid, candid, unposed stances.

// sGradeTopsShots is the 9-shot S-grade standard for tops, dresses, coats
// and matching sets.
var sGradeTopsShots = []ShotDefinition{
	{
		ID:          "s_full_front",
		Name:        "Full Front",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Core hero image, relaxed yet upright.",
		PromptTemplate: `[SHOT: FULL BODY FRONT]
- **FRAMING**: Head to toe. 10% breathing space above head.
- **POSE**: Standing straight but relaxed. Shoulders dropped. One leg slightly forward. Not rigid.
- **LIGHTING**: Soft "Art Gallery" lighting. Sculpted shadows on garment to show depth.
- **BACKGROUND**: {environment} (Clean, textured wall or minimalist architecture).
- **MOOD**: Intellectual elegance, confident, high-end catalog.`,
	},
	{
		ID:          "s_full_walk",
		Name:        "Dynamic Walk",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Motion capture emphasizing fabric flow.",
		PromptTemplate: `[SHOT: DYNAMIC WALK]
- **FRAMING**: Full body, caught mid-stride.
- **POSE**: Walking towards camera. Fabric flowing naturally. Slight blur on hem is acceptable for realism.
- **FOCUS**: The drape and movement of the material.
- **BACKGROUND**: {environment} with depth.
- **MOOD**: Effortless chic, "on the go", vivid.`,
	},
	{
		ID:          "s_half_front",
		Name:        "Half Body Interaction",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Eye contact with a natural hand gesture.",
		PromptTemplate: `[SHOT: HALF BODY PORTRAIT]
- **FRAMING**: Cut at hips.
- **POSE**: Candid moment. Maybe adjusting a cuff or hair behind ear. Looking slightly off-camera or soft contact.
- **LIGHTING**: Rembrandt lighting on face, soft fill on clothes. Highlighting fabric texture.
- **BACKGROUND**: {environment} slightly blurred (Bokeh).
- **MOOD**: Intimate, engaging, warm.`,
	},
	{
		ID:          "s_half_side",
		Name:        "Half Body Profile",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Side silhouette, architectural feel.",
		PromptTemplate: `[SHOT: HALF BODY SIDE]
- **FRAMING**: Waist up profile (90°).
- **POSE**: Static but breathing. Chin slightly up.
- **FOCUS**: Architectural silhouette of the garment. Sleeve volume.
- **BACKGROUND**: {environment}.
- **MOOD**: Structural, calm, composed.`,
	},
	{
		ID:          "s_half_34",
		Name:        "3/4 Upper",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Classic composition, intellectual air.",
		PromptTemplate: `[SHOT: 3/4 ANGLE UPPER]
- **FRAMING**: Thigh up.
- **POSE**: Leaning slightly (if wall exists) or shifting weight. Elegant geometry.
- **FOCUS**: Outfit coordination and fit.
- **BACKGROUND**: {environment}.
- **MOOD**: Sophisticated, "Old Money" aesthetic.`,
	},
	{
		ID:          "s_back_main",
		Name:        "Back View",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Back lines with a natural turn.",
		PromptTemplate: `[SHOT: FULL BODY BACK]
- **FRAMING**: Full body rear view.
- **POSE**: Turned away, but head turning back slightly (optional). Natural stance.
- **FOCUS**: Back design, zipper/seam details.
- **BACKGROUND**: {environment}.
- **MOOD**: Clean, informative.`,
	},
	{
		ID:          "s_detail_core",
		Name:        "Core Detail",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Collar or waist detail, macro texture.",
		PromptTemplate: `[SHOT: DETAIL CLOSEUP]
- **FRAMING**: Close-up on collar, waist, or buttons.
- **LIGHTING**: Raking light (Side light) to emphasize material grain and stitching.
- **FOCUS**: Sharp texture.
- **BACKGROUND**: Blurred neutral tone.`,
	},
	{
		ID:          "s_detail_fabric",
		Name:        "Fabric Texture",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Extreme fabric close-up, tactile.",
		PromptTemplate: `[SHOT: MACRO TEXTURE]
- **FRAMING**: Extreme close-up on fabric surface.
- **CONTENT**: Fold or drape of the cloth.
- **LIGHTING**: High contrast micro-contrast to show weave.
- **MOOD**: Tactile, expensive, high-quality.`,
	},
	{
		ID:          "s_creative_pose",
		Name:        "Creative Pose",
		Category:    ShotCreative,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Mood piece, light and shadow atmosphere.",
		PromptTemplate: `[SHOT: CREATIVE POSE]
- **FRAMING**: Relaxed sitting or artistic leaning.
- **LIGHTING**: Dappled sunlight (if outdoor) or Spotlight (if indoor).
- **POSE**: Unconventional, editorial.
- **MOOD**: Storytelling, emotional connection.`,
	},
}

// sGradeBottomsShots is the S-grade standard for pants and skirts. The
// waist-down block is the core of the set.
var sGradeBottomsShots = []ShotDefinition{
	{
		ID:          "s_btm_full_std",
		Name:        "Full Front",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Standard full body showing proportion.",
		PromptTemplate: `[SHOT: FULL BODY FRONT]
- **FRAMING**: Head to toe.
- **POSE**: Standing straight, legs hip-width apart. Stable.
- **FOCUS**: Leg length and outfit proportion.
- **BACKGROUND**: {environment}.`,
	},
	{
		ID:          "s_btm_full_side",
		Name:        "Full Side",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Side line of the full look.",
		PromptTemplate: `[SHOT: FULL BODY SIDE]
- **FRAMING**: Full body profile.
- **POSE**: Walking stride or static side view.
- **FOCUS**: Side silhouette smoothness.
- **BACKGROUND**: {environment}.`,
	},
	{
		ID:          "s_btm_low_front",
		Name:        "Lower Front",
		Category:    ShotStandard,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Waist-down close-up, fit display.",
		PromptTemplate: `[SHOT: WAIST DOWN FRONT]
- **FRAMING**: From waist to floor. Head cut off.
- **POSE**: Neutral standing.
- **FOCUS**: Fit at hips, drape of the leg.
- **LIGHTING**: Soft dimensional light to show fabric weight.`,
	},
	{
		ID:          "s_btm_low_side",
		Name:        "Lower Side",
		Category:    ShotStandard,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Side waist-down, smooth lines.",
		PromptTemplate: `[SHOT: WAIST DOWN SIDE]
- **FRAMING**: Waist to floor profile.
- **POSE**: One leg stepping forward.
- **FOCUS**: Side seam finish, hip curve.
- **BACKGROUND**: {environment}.`,
	},
	{
		ID:          "s_btm_low_back",
		Name:        "Lower Back",
		Category:    ShotStandard,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Rear fit and lift effect.",
		PromptTemplate: `[SHOT: WAIST DOWN BACK]
- **FRAMING**: Waist to floor rear view.
- **POSE**: Relaxed standing.
- **FOCUS**: Pocket placement, lifting effect (if jeans/pants).`,
	},
	{
		ID:          "s_btm_low_detail",
		Name:        "Lower Sitting",
		Category:    ShotStandard,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Seated pose showing fabric tension.",
		PromptTemplate: `[SHOT: WAIST DOWN SITTING]
- **FRAMING**: Cropped on legs while sitting on a stool/chair.
- **POSE**: Knees crossed or relaxed.
- **FOCUS**: How fabric stretches or drapes when seated.`,
	},
	{
		ID:          "s_btm_low_walk",
		Name:        "Lower Walking",
		Category:    ShotStandard,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Hem in motion.",
		PromptTemplate: `[SHOT: WAIST DOWN WALKING]
- **FRAMING**: Waist to floor, motion blur allowed on feet.
- **POSE**: Wide stride.
- **FOCUS**: Movement, flow, dynamic drape.`,
	},
	{
		ID:          "s_btm_detail_waist",
		Name:        "Waist Detail",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Waistband craftsmanship macro.",
		PromptTemplate: `[SHOT: CLOSEUP WAIST]
- **FRAMING**: Tight crop on waistband/belt.
- **LIGHTING**: Harder light to show button/texture details.`,
	},
	{
		ID:          "s_btm_back_full",
		Name:        "Back Full",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Full body from behind.",
		PromptTemplate: `[SHOT: FULL BODY BACK]
- **FRAMING**: Full body from behind.
- **POSE**: Relaxed.
- **BACKGROUND**: {environment}.`,
	},
	{
		ID:          "s_btm_sa_sit",
		Name:        "Creative Sit",
		Category:    ShotCreative,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Elegant seated full body.",
		PromptTemplate: `[SHOT: FULL BODY SITTING]
- **FRAMING**: Full body sitting on a designer chair.
- **POSE**: Elegant, legs extended.
- **MOOD**: Relaxed luxury, coffee break vibe.`,
	},
	{
		ID:          "s_btm_sa_motion",
		Name:        "Creative Motion",
		Category:    ShotCreative,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Dynamic instant.",
		PromptTemplate: `[SHOT: DYNAMIC MOTION]
- **FRAMING**: Full body.
- **POSE**: Twirling or jumping slightly.
- **MOOD**: Joyful, lighthearted.`,
	},
}

// sGradeShortsShots is the S-grade standard for shorts and short skirts.
var sGradeShortsShots = []ShotDefinition{
	{
		ID:          "s_sht_full",
		Name:        "Full",
		Category:    ShotBasic,
		Pack:        PackStandard,
		AspectRatio: "3:4",
		Description: "Whole-look coordination.",
		PromptTemplate: `[SHOT: FULL BODY]
- **FRAMING**: Full body.
- **POSE**: Casual standing, hand in pocket.
- **MOOD**: Summer breeze, light.`,
	},
	{ID: "s_sht_low_1", Name: "Lower Front", Category: ShotStandard, Pack: PackStandard, AspectRatio: "3:4", Description: "Front shorts close-up.", PromptTemplate: "[SHOT: WAIST DOWN FRONT] Focus on leg shape and shorts fit."},
	{ID: "s_sht_low_2", Name: "Lower Side", Category: ShotStandard, Pack: PackStandard, AspectRatio: "3:4", Description: "Side shorts close-up.", PromptTemplate: "[SHOT: WAIST DOWN SIDE] Focus on hemline angle."},
	{ID: "s_sht_with_upper_1", Name: "With Upper", Category: ShotStandard, Pack: PackStandard, AspectRatio: "3:4", Description: "Half body including waist.", PromptTemplate: "[SHOT: THIGH UP FRONT] Mid-thigh to head. Connecting top and bottom."},
	{ID: "s_sht_with_upper_2", Name: "With Upper Side", Category: ShotStandard, Pack: PackStandard, AspectRatio: "3:4", Description: "Side half body including waist.", PromptTemplate: "[SHOT: THIGH UP SIDE] Looking over shoulder. Gentle curve."},
	{ID: "s_sht_macro_1", Name: "Macro", Category: ShotBasic, Pack: PackStandard, AspectRatio: "3:4", Description: "Material close-up.", PromptTemplate: "[SHOT: MACRO DETAIL] Texture focus."},
	{ID: "s_sht_detail", Name: "Waist Detail", Category: ShotBasic, Pack: PackStandard, AspectRatio: "3:4", Description: "Waistband construction.", PromptTemplate: "[SHOT: WAIST DETAIL] Construction focus."},
	{ID: "s_sht_back", Name: "Back", Category: ShotBasic, Pack: PackStandard, AspectRatio: "3:4", Description: "Rear view.", PromptTemplate: "[SHOT: FULL BODY BACK] Rear view."},
	{ID: "s_sht_sa_1", Name: "Creative", Category: ShotCreative, Pack: PackStandard, AspectRatio: "3:4", Description: "Creative angle.", PromptTemplate: "[SHOT: LOW ANGLE] Enhancing leg length."},
}

// campaignShots is the fixed editorial campaign set.
var campaignShots = []ShotDefinition{
	{
		ID:          "campaign_hero",
		Name:        "Hero",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "Brand statement, cinematic texture.",
		PromptTemplate: `[SHOT: CINEMATIC WIDE]
- **COMPOSITION**: Wide shot, perfectly balanced.
- **LIGHTING**: Golden hour sunlight filtering through trees (Dappled Light). Warm, enveloping nuances.
- **POSE**: Relaxed elegance. Leaning on a railing or walking slowly.
- **BACKGROUND**: High-end resort garden or pool side. Blurred but recognizable luxury.
- **TEXTURE**: Slight film grain added.
- **VIBE**: "The Face of the Holiday". Quiet luxury, emotional.`,
	},
	{
		ID:          "campaign_scene",
		Name:        "Scene",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "Model and environment in resonance.",
		PromptTemplate: `[SHOT: ENVIRONMENTAL PORTRAIT]
- **FRAMING**: Incorporating architectural elements or tropical plants in foreground.
- **RELATIONSHIP**: Merging with nature.
- **FOCUS**: The feeling of vacation.
- **LIGHTING**: Natural, directional sunlight.
- **MOOD**: Escapism, freedom, narrative.`,
	},
	{
		ID:          "campaign_light",
		Name:        "Light",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "Light-and-shadow artistry.",
		PromptTemplate: `[SHOT: ARTISTIC SHADOWS]
- **TECHNIQUE**: Hard sunlight creating geometric shadows of palm leaves on the dress/body.
- **FOCUS**: Texture interaction with light.
- **MOOD**: Sensory, warm, lazy afternoon.`,
	},
	{
		ID:          "campaign_emotion",
		Name:        "Emotion",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "Emotional close-up, storytelling.",
		PromptTemplate: `[SHOT: EMOTIONAL CLOSEUP]
- **FRAMING**: Close up on face and shoulder.
- **EXPRESSION**: Soft, genuine, looking away or closed eyes enjoying breeze.
- **STYLE**: Backlit (Rim light) on hair. Airy and ethereal.
- **VIBE**: Soulful, intimate, cinematic.`,
	},
}

// stillLifeCreativeShots are always included in a still-life query.
var stillLifeCreativeShots = []ShotDefinition{
	{
		ID:          "sc_outdoor_vibe",
		Name:        "Outdoor Vibe",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "Still life under natural light.",
		PromptTemplate: `[SHOT: CREATIVE STILL LIFE]
- **COMPOSITION**: Product placed naturally on stone or wood surface.
- **LIGHTING**: Dappled sunlight, leaf shadows.
- **BACKGROUND**: Blurred garden depth.
- **MOOD**: Organic, breathing.`,
	},
	{
		ID:          "sc_color_stack",
		Name:        "Stack",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "The art of folding and stacking.",
		PromptTemplate: `[SHOT: ARTISTIC FOLD]
- **COMPOSITION**: Neatly folded or artistically draped.
- **FOCUS**: Soft edges, volume of the stack.
- **LIGHTING**: Soft studio light.`,
	},
	{
		ID:          "sc_fabric_source",
		Name:        "Source",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "Concept image of raw materials.",
		PromptTemplate: `[SHOT: CONCEPTUAL MATERIAL]
- **COMPOSITION**: Garment mixed with raw textures (cotton, linen, silk).
- **STYLE**: Art installation vibe.
- **LIGHTING**: Warm, cozy.`,
	},
	{
		ID:          "sc_detail_craft",
		Name:        "Craft",
		Category:    ShotCreative,
		AspectRatio: "3:4",
		Description: "Extreme macro of craftsmanship.",
		PromptTemplate: `[SHOT: MACRO CRAFT]
- **FRAMING**: Extreme macro on embroidery or seam.
- **LIGHTING**: Raking light to show relief and height of thread.
- **FOCUS**: Precision.`,
	},
}

// Standard still-life sets on a clean white backdrop, per product category.
var stillLifeTopsShots = []ShotDefinition{
	{ID: "st_top_hang_f", Name: "Hanging Front", Category: ShotStandard, AspectRatio: "3:4", Description: "Standard hang shot.", PromptTemplate: "[SHOT: HANGING FRONT] Clean white background (RGB 255,255,255). Perfect symmetry. Soft even light."},
	{ID: "st_top_hang_b", Name: "Hanging Back", Category: ShotStandard, AspectRatio: "3:4", Description: "Standard back view.", PromptTemplate: "[SHOT: HANGING BACK] Clean white background. Showing back design."},
	{ID: "st_top_flat", Name: "Flat Lay", Category: ShotStandard, AspectRatio: "3:4", Description: "Standard flat lay.", PromptTemplate: "[SHOT: FLAT LAY] Top down view. White background. Natural styling."},
	{ID: "st_top_col", Name: "Collar Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Collar close-up.", PromptTemplate: "[SHOT: CLOSEUP] Collar details. High quality textures."},
	{ID: "st_top_cuff", Name: "Cuff Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Cuff close-up.", PromptTemplate: "[SHOT: CLOSEUP] Sleeve cuff details."},
	{ID: "st_top_hem", Name: "Hem Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Hemline close-up.", PromptTemplate: "[SHOT: CLOSEUP] Hemline details."},
}

var stillLifeBottomsShots = []ShotDefinition{
	{ID: "st_btm_hang_f", Name: "Hanging Front", Category: ShotStandard, AspectRatio: "3:4", Description: "Trouser hang shot.", PromptTemplate: "[SHOT: HANGING FRONT] Clean white background. Clip hanger visible. Straight legs."},
	{ID: "st_btm_hang_b", Name: "Hanging Back", Category: ShotStandard, AspectRatio: "3:4", Description: "Rear hang shot.", PromptTemplate: "[SHOT: HANGING BACK] Clean white background. Pocket details."},
	{ID: "st_btm_waist", Name: "Waist Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Waistband close-up.", PromptTemplate: "[SHOT: CLOSEUP] Waistband, button, zipper. Sharp focus."},
	{ID: "st_btm_hem", Name: "Hem Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Trouser hem close-up.", PromptTemplate: "[SHOT: CLOSEUP] Hem sticking and fabric weave."},
	{ID: "st_btm_tex", Name: "Texture", Category: ShotStandard, AspectRatio: "1:1", Description: "Fabric macro.", PromptTemplate: "[SHOT: MACRO TEXTURE] Fabric grain and color."},
}

var stillLifeDressesShots = []ShotDefinition{
	{ID: "st_dress_hang_f", Name: "Hanging Front", Category: ShotStandard, AspectRatio: "3:4", Description: "Full-length front.", PromptTemplate: "[SHOT: HANGING FRONT] Full length dress. Clean white background. Soft shadows."},
	{ID: "st_dress_hang_b", Name: "Hanging Back", Category: ShotStandard, AspectRatio: "3:4", Description: "Full-length reverse.", PromptTemplate: "[SHOT: HANGING BACK] Full length reverse. Clean white background."},
	{ID: "st_dress_detail_top", Name: "Bodice Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Upper-body craftsmanship.", PromptTemplate: "[SHOT: CLOSEUP] Bodice and neckline details. High fidelity."},
	{ID: "st_dress_waist", Name: "Waist Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Waistline structure.", PromptTemplate: "[SHOT: CLOSEUP] Waistline draping or belt details."},
	{ID: "st_dress_hem", Name: "Hem Detail", Category: ShotStandard, AspectRatio: "1:1", Description: "Hem drape.", PromptTemplate: "[SHOT: CLOSEUP] Hemline flow and stitching."},
	{ID: "st_dress_fabric", Name: "Fabric", Category: ShotStandard, AspectRatio: "1:1", Description: "Print or weave detail.", PromptTemplate: "[SHOT: MACRO TEXTURE] Print or weave detail. Touching reality."},
}
