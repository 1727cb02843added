package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
)

func newStore() *Store {
	return NewStore(StoreOptions{})
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newStore()

	state := store.Create()
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, 1, store.Len())

	got, ok := store.Get(state.ID)
	require.True(t, ok)
	assert.Same(t, state, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Delete(state.ID)
	assert.Equal(t, 0, store.Len())
}

func TestCreateDefaults(t *testing.T) {
	state := newStore().Create()
	settings := state.Settings()

	assert.Equal(t, shoot.ModuleLookbook, settings.Module)
	assert.Equal(t, shoot.CategoryDress, settings.Category)
	assert.Equal(t, shoot.EnvIndoor, settings.Environment)
	assert.Equal(t, []shoot.Pack{shoot.PackStandard}, settings.Packs)
	assert.Equal(t, "auto", settings.AspectRatio)
	assert.Equal(t, reference.BodyUnchanged, settings.Stats.BodyType)
}

func TestApplySettings(t *testing.T) {
	state := newStore().Create()

	module := shoot.ModuleCampaign
	ratio := "3:4"
	stats := reference.ModelStats{Age: "28", BodyType: reference.BodySlim}
	settings := state.Apply(SettingsPatch{
		Module:      &module,
		AspectRatio: &ratio,
		Stats:       &stats,
	})

	assert.Equal(t, shoot.ModuleCampaign, settings.Module)
	assert.Equal(t, "3:4", settings.AspectRatio)
	assert.Equal(t, "28", settings.Stats.Age)

	// invalid modules are ignored
	bad := shoot.Module("bogus")
	settings = state.Apply(SettingsPatch{Module: &bad})
	assert.Equal(t, shoot.ModuleCampaign, settings.Module)
}

func TestModuleSwitchChangesDemotionPurpose(t *testing.T) {
	state := newStore().Create()
	img := reference.Image{Data: []byte{0x1}, MIME: "image/png"}

	module := shoot.ModuleStillLife
	state.Apply(SettingsPatch{Module: &module})

	first := state.AddReference(img, "product", reference.PurposeBaseModel)
	state.AddReference(img, "replacement", reference.PurposeBaseModel)

	refs := state.References()
	require.Len(t, refs, 2)
	for _, r := range refs {
		if r.ID == first.ID {
			assert.Equal(t, reference.PurposeCraftFlatLay, r.Purpose)
		}
	}
}

func TestReferenceLifecycle(t *testing.T) {
	state := newStore().Create()
	img := reference.Image{Data: []byte{0x1}, MIME: "image/png"}

	obj := state.AddReference(img, "main", reference.PurposeBaseModel)
	assert.NotEmpty(t, obj.ID)

	desc := "updated"
	updated, err := state.UpdateReference(obj.ID, reference.Patch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Description)

	require.NoError(t, state.RemoveReference(obj.ID))
	assert.Empty(t, state.References())
	assert.ErrorIs(t, state.RemoveReference(obj.ID), reference.ErrNotFound)
}

func TestShotReferenceLifecycle(t *testing.T) {
	state := newStore().Create()
	img := reference.Image{Data: []byte{0x2}, MIME: "image/png"}

	state.SetShotReference("s_full_front", img)
	refs := state.ShotReferences()
	require.Len(t, refs, 1)
	assert.Equal(t, img.Data, refs["s_full_front"].Data)

	// the returned map is a copy
	delete(refs, "s_full_front")
	assert.Len(t, state.ShotReferences(), 1)

	state.RemoveShotReference("s_full_front")
	assert.Empty(t, state.ShotReferences())
}

func TestShotsFollowSettings(t *testing.T) {
	state := newStore().Create()

	lookbook := state.Shots()
	require.NotEmpty(t, lookbook)
	assert.Equal(t, "s_full_front", lookbook[0].ID)

	module := shoot.ModuleCampaign
	state.Apply(SettingsPatch{Module: &module})
	campaign := state.Shots()
	require.Len(t, campaign, 4)

	module = shoot.ModuleStillLife
	category := shoot.CategoryPants
	state.Apply(SettingsPatch{Module: &module, Category: &category})
	still := state.Shots()
	require.NotEmpty(t, still)
	assert.Equal(t, "st_btm_hang_f", still[0].ID)
}

func TestStoreEviction(t *testing.T) {
	store := NewStore(StoreOptions{MaxIdle: 10 * time.Millisecond})

	stale := store.Create()
	stale.mu.Lock()
	stale.lastActivity = time.Now().Add(-time.Minute)
	stale.mu.Unlock()

	fresh := store.Create()

	_, ok := store.Get(stale.ID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}
