package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obj(id string, purpose Purpose) Object {
	return Object{ID: id, Purpose: purpose, Image: Image{Data: []byte{0x1}, MIME: "image/png"}}
}

func TestSetAdd_BaseModelIsExclusive(t *testing.T) {
	s := NewSet(PurposeClothingGarment)

	s.Add(obj("a", PurposeBaseModel))
	s.Add(obj("b", PurposeBaseModel))

	base, ok := s.BaseModel()
	require.True(t, ok)
	assert.Equal(t, "b", base.ID)

	demoted, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, PurposeClothingGarment, demoted.Purpose)
}

func TestSetAdd_StillLifeFallback(t *testing.T) {
	s := NewSet(PurposeCraftFlatLay)

	s.Add(obj("a", PurposeBaseModel))
	s.Add(obj("b", PurposeBaseModel))

	demoted, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, PurposeCraftFlatLay, demoted.Purpose)
}

func TestSetAdd_BaseModelDropsMask(t *testing.T) {
	s := NewSet(PurposeClothingGarment)

	o := obj("a", PurposeBaseModel)
	o.Mask = "data:image/png;base64,AAAA"
	o.BoundingBox = &BoundingBox{X: 1, Y: 2, Width: 3, Height: 4}
	s.Add(o)

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Empty(t, got.Mask)
	assert.Nil(t, got.BoundingBox)
}

func TestSetAdd_GlobalPurposeDropsMask(t *testing.T) {
	s := NewSet(PurposeClothingGarment)

	o := obj("light", PurposeStudioLightingClean)
	o.Mask = "data:image/png;base64,AAAA"
	s.Add(o)

	got, ok := s.Get("light")
	require.True(t, ok)
	assert.Empty(t, got.Mask)
}

func TestSetUpdate_PromotionDemotesPreviousBase(t *testing.T) {
	s := NewSet(PurposeClothingGarment)
	s.Add(obj("a", PurposeBaseModel))
	s.Add(obj("b", PurposeAccessoryGeneral))

	purpose := PurposeBaseModel
	updated, err := s.Update("b", Patch{Purpose: &purpose})
	require.NoError(t, err)
	assert.Equal(t, PurposeBaseModel, updated.Purpose)

	old, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, PurposeClothingGarment, old.Purpose)
}

func TestSetUpdate_PartialPatch(t *testing.T) {
	s := NewSet(PurposeClothingGarment)
	o := obj("a", PurposeClothingGarment)
	o.Description = "silk dress"
	s.Add(o)

	mask := "data:image/png;base64,AAAA"
	updated, err := s.Update("a", Patch{Mask: &mask})
	require.NoError(t, err)
	assert.Equal(t, "silk dress", updated.Description)
	assert.Equal(t, mask, updated.Mask)

	_, err = s.Update("missing", Patch{Mask: &mask})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetUpdate_ClearMask(t *testing.T) {
	s := NewSet(PurposeClothingGarment)
	o := obj("a", PurposeClothingGarment)
	o.Mask = "data:image/png;base64,AAAA"
	s.Add(o)

	updated, err := s.Update("a", Patch{ClearMask: true})
	require.NoError(t, err)
	assert.Empty(t, updated.Mask)
}

func TestSetRemove_BasePromotesFirstRemaining(t *testing.T) {
	s := NewSet(PurposeClothingGarment)
	s.Add(obj("a", PurposeBaseModel))

	b := obj("b", PurposeAccessoryGeneral)
	b.Mask = "data:image/png;base64,AAAA"
	s.Add(b)
	s.Add(obj("c", PurposeStyleMakeupHair))

	require.NoError(t, s.Remove("a"))

	base, ok := s.BaseModel()
	require.True(t, ok)
	assert.Equal(t, "b", base.ID)
	assert.Empty(t, base.Mask)

	assert.ErrorIs(t, s.Remove("a"), ErrNotFound)
}

func TestSetObjects_PreservesOrderAndCopies(t *testing.T) {
	s := NewSet(PurposeClothingGarment)
	s.Add(obj("a", PurposeBaseModel))
	s.Add(obj("b", PurposeClothingGarment))
	s.Add(obj("c", PurposeAccessoryGeneral))

	objects := s.Objects()
	require.Len(t, objects, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{objects[0].ID, objects[1].ID, objects[2].ID})

	objects[0].Description = "mutated"
	fresh, _ := s.Get("a")
	assert.Empty(t, fresh.Description)
}

func TestModelStats(t *testing.T) {
	stats := DefaultStats()
	assert.False(t, stats.HasAgeSpec())
	assert.False(t, stats.HasBodySpec())

	stats.Age = "28"
	stats.BodyType = BodySlim
	assert.True(t, stats.HasAgeSpec())
	assert.True(t, stats.HasBodySpec())
}

func TestPurposeIsGlobal(t *testing.T) {
	assert.True(t, PurposeStudioLightingClean.IsGlobal())
	assert.True(t, PurposeBrandLightingCinematic.IsGlobal())
	assert.False(t, PurposeClothingGarment.IsGlobal())
	assert.False(t, PurposeBaseModel.IsGlobal())
}
