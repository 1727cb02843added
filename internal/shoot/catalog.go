package shoot

import "strings"

var envDescriptions = map[Environment]string{
	// Studio: art-gallery vibe (clean, textured wall, soft light).
	EnvIndoor: "Indoor Studio, minimalist grey textured wall, soft window light, art gallery atmosphere",
	// Outdoor: architecture/street vibe (natural light, depth).
	EnvOutdoor: "Outdoor, upscale city architecture, clean lines, soft natural daylight, shallow depth of field",
}

// LookbookShots returns the lookbook set for the product category with the
// {environment} placeholder resolved. Unknown categories fall back to the
// tops set; unknown environments fall back to indoor. The vip pack is an
// accepted no-op: it contributes no shots today.
func LookbookShots(category ProductCategory, packs []Pack, env Environment) []ShotDefinition {
	var shots []ShotDefinition

	if hasPack(packs, PackStandard) {
		switch category {
		case CategoryPants, CategorySkirt:
			shots = append(shots, sGradeBottomsShots...)
		case CategoryShorts:
			shots = append(shots, sGradeShortsShots...)
		default:
			// dress, top, coat, matching_set and anything unknown
			shots = append(shots, sGradeTopsShots...)
		}
	}

	return resolveEnvironment(shots, env)
}

// StillLifeShots returns the standard set for the category followed by the
// creative set, which is always included.
func StillLifeShots(category ProductCategory) []ShotDefinition {
	var standard []ShotDefinition
	switch category {
	case CategoryPants, CategorySkirt, CategoryShorts:
		standard = stillLifeBottomsShots
	case CategoryTop:
		standard = stillLifeTopsShots
	default:
		// dress, coat, matching_set and anything unknown
		standard = stillLifeDressesShots
	}

	out := make([]ShotDefinition, 0, len(standard)+len(stillLifeCreativeShots))
	out = append(out, standard...)
	out = append(out, stillLifeCreativeShots...)
	return out
}

// CampaignShots returns the fixed editorial campaign set.
func CampaignShots() []ShotDefinition {
	out := make([]ShotDefinition, len(campaignShots))
	copy(out, campaignShots)
	return out
}

// FindShot resolves a shot id within a module's full catalog. Lookbook
// lookups search every product category's set, deduplicated by id.
func FindShot(module Module, id string) (ShotDefinition, bool) {
	var all []ShotDefinition

	switch module {
	case ModuleLookbook:
		seen := make(map[string]struct{})
		categories := []ProductCategory{
			CategoryDress, CategoryTop, CategoryPants,
			CategorySkirt, CategoryShorts, CategoryCoat, CategoryMatchingSet,
		}
		for _, c := range categories {
			for _, s := range LookbookShots(c, []Pack{PackStandard}, EnvIndoor) {
				if _, ok := seen[s.ID]; ok {
					continue
				}
				seen[s.ID] = struct{}{}
				all = append(all, s)
			}
		}
	case ModuleCampaign:
		all = CampaignShots()
	case ModuleStillLife:
		all = append(all, stillLifeCreativeShots...)
		all = append(all, stillLifeTopsShots...)
		all = append(all, stillLifeBottomsShots...)
		all = append(all, stillLifeDressesShots...)
	}

	for _, s := range all {
		if s.ID == id {
			return s, true
		}
	}
	return ShotDefinition{}, false
}

func hasPack(packs []Pack, want Pack) bool {
	for _, p := range packs {
		if p == want {
			return true
		}
	}
	return false
}

func resolveEnvironment(shots []ShotDefinition, env Environment) []ShotDefinition {
	desc, ok := envDescriptions[env]
	if !ok {
		desc = envDescriptions[EnvIndoor]
	}

	out := make([]ShotDefinition, len(shots))
	for i, shot := range shots {
		shot.PromptTemplate = strings.ReplaceAll(shot.PromptTemplate, "{environment}", desc)
		out[i] = shot
	}
	return out
}
