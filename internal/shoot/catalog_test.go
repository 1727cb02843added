package shoot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookbookShots_CategoryMapping(t *testing.T) {
	packs := []Pack{PackStandard}

	tops := LookbookShots(CategoryDress, packs, EnvIndoor)
	require.NotEmpty(t, tops)
	assert.Equal(t, "s_full_front", tops[0].ID)

	bottoms := LookbookShots(CategoryPants, packs, EnvIndoor)
	require.NotEmpty(t, bottoms)
	assert.Equal(t, "s_btm_full_std", bottoms[0].ID)

	skirts := LookbookShots(CategorySkirt, packs, EnvIndoor)
	assert.Equal(t, bottomIDs(bottoms), bottomIDs(skirts))

	shorts := LookbookShots(CategoryShorts, packs, EnvIndoor)
	require.NotEmpty(t, shorts)
	assert.NotEqual(t, bottoms[0].ID, shorts[0].ID)
}

func bottomIDs(shots []ShotDefinition) []string {
	ids := make([]string, len(shots))
	for i, s := range shots {
		ids[i] = s.ID
	}
	return ids
}

func TestLookbookShots_PackGate(t *testing.T) {
	all := LookbookShots(CategoryDress, []Pack{PackStandard}, EnvIndoor)
	none := LookbookShots(CategoryDress, nil, EnvIndoor)

	assert.NotEmpty(t, all)
	assert.Empty(t, none)
}

func TestLookbookShots_EnvironmentSubstitution(t *testing.T) {
	indoor := LookbookShots(CategoryDress, []Pack{PackStandard}, EnvIndoor)
	outdoor := LookbookShots(CategoryDress, []Pack{PackStandard}, EnvOutdoor)

	for _, s := range indoor {
		assert.NotContains(t, s.PromptTemplate, "{environment}", "shot %s keeps placeholder", s.ID)
	}

	var differs bool
	for i := range indoor {
		if indoor[i].PromptTemplate != outdoor[i].PromptTemplate {
			differs = true
			break
		}
	}
	assert.True(t, differs, "indoor and outdoor templates should differ")

	// unknown environments fall back to indoor
	unknown := LookbookShots(CategoryDress, []Pack{PackStandard}, Environment("space"))
	assert.Equal(t, indoor[0].PromptTemplate, unknown[0].PromptTemplate)
}

func TestLookbookShots_Deterministic(t *testing.T) {
	a := LookbookShots(CategoryDress, []Pack{PackStandard}, EnvIndoor)
	b := LookbookShots(CategoryDress, []Pack{PackStandard}, EnvIndoor)
	assert.Equal(t, a, b)

	// returned slices are copies, mutation must not leak into the catalog
	a[0].PromptTemplate = "mutated"
	c := LookbookShots(CategoryDress, []Pack{PackStandard}, EnvIndoor)
	assert.NotEqual(t, "mutated", c[0].PromptTemplate)
}

func TestStillLifeShots_CreativeAppended(t *testing.T) {
	shots := StillLifeShots(CategoryDress)
	require.NotEmpty(t, shots)

	var creativeStart int
	for i, s := range shots {
		if s.Category == ShotCreative {
			creativeStart = i
			break
		}
	}
	assert.Greater(t, creativeStart, 0, "standard shots come before creative")
	for _, s := range shots[creativeStart:] {
		assert.Equal(t, ShotCreative, s.Category)
	}
}

func TestStillLifeShots_BottomsForAllBottomCategories(t *testing.T) {
	pants := StillLifeShots(CategoryPants)
	skirt := StillLifeShots(CategorySkirt)
	shorts := StillLifeShots(CategoryShorts)

	assert.Equal(t, pants[0].ID, skirt[0].ID)
	assert.Equal(t, pants[0].ID, shorts[0].ID)

	dress := StillLifeShots(CategoryDress)
	assert.NotEqual(t, pants[0].ID, dress[0].ID)
}

func TestCampaignShots(t *testing.T) {
	shots := CampaignShots()
	require.Len(t, shots, 4)
	for _, s := range shots {
		assert.True(t, strings.HasPrefix(s.ID, "campaign_"), "unexpected id %s", s.ID)
	}
}

func TestFindShot(t *testing.T) {
	def, ok := FindShot(ModuleLookbook, "s_btm_full_std")
	require.True(t, ok)
	assert.Equal(t, "s_btm_full_std", def.ID)
	assert.NotContains(t, def.PromptTemplate, "{environment}")

	_, ok = FindShot(ModuleLookbook, "nope")
	assert.False(t, ok)

	def, ok = FindShot(ModuleStillLife, "sc_color_stack")
	require.True(t, ok)
	assert.Equal(t, ShotCreative, def.Category)

	def, ok = FindShot(ModuleCampaign, "campaign_hero")
	require.True(t, ok)
	assert.Equal(t, "campaign_hero", def.ID)
}
