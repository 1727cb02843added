package reference

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("reference not found")

// Patch is a partial update applied to one reference object. Nil fields are
// left untouched. ClearMask/ClearBoundingBox exist so a patch can distinguish
// "remove" from "keep".
type Patch struct {
	Description      *string
	Purpose          *Purpose
	Mask             *string
	BoundingBox      *BoundingBox
	ClearMask        bool
	ClearBoundingBox bool
}

// Set owns the ordered list of reference objects for one workflow session
// and enforces the tagging invariants:
//
//   - at most one object carries PurposeBaseModel;
//   - promoting an object to base model demotes the previous holder to the
//     set's fallback purpose and strips its mask and bounding box;
//   - global purposes never carry a mask or bounding box;
//   - removing the base model promotes the first remaining object.
//
// Set is not safe for concurrent use; callers serialize access per session.
type Set struct {
	objects  []Object
	fallback Purpose
}

// NewSet creates an empty set. fallback is the purpose a demoted base model
// receives; it depends on the workflow module (still-life sessions demote to
// a flat-lay prop, model sessions demote to a garment).
func NewSet(fallback Purpose) *Set {
	if fallback == "" || fallback == PurposeBaseModel {
		fallback = PurposeClothingGarment
	}
	return &Set{fallback: fallback}
}

// SetFallback changes the demotion purpose for future base-model swaps.
// Existing objects keep their purposes.
func (s *Set) SetFallback(fallback Purpose) {
	if fallback == "" || fallback == PurposeBaseModel {
		fallback = PurposeClothingGarment
	}
	s.fallback = fallback
}

// Add appends obj, preserving insertion order. If obj claims the base-model
// purpose, any previous holder is demoted first.
func (s *Set) Add(obj Object) {
	if obj.Purpose == PurposeBaseModel {
		s.demoteBase()
		obj.Mask = ""
		obj.BoundingBox = nil
	}
	if obj.Purpose.IsGlobal() {
		obj.Mask = ""
		obj.BoundingBox = nil
	}
	s.objects = append(s.objects, obj)
}

// Update applies a partial patch to the object with the given id.
func (s *Set) Update(id string, patch Patch) (Object, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Object{}, fmt.Errorf("update %q: %w", id, ErrNotFound)
	}

	obj := &s.objects[idx]

	if patch.Description != nil {
		obj.Description = *patch.Description
	}
	if patch.Mask != nil {
		obj.Mask = *patch.Mask
	}
	if patch.BoundingBox != nil {
		box := *patch.BoundingBox
		obj.BoundingBox = &box
	}
	if patch.ClearMask {
		obj.Mask = ""
	}
	if patch.ClearBoundingBox {
		obj.BoundingBox = nil
	}

	if patch.Purpose != nil && *patch.Purpose != obj.Purpose {
		next := *patch.Purpose
		if next == PurposeBaseModel {
			s.demoteBase()
			obj.Mask = ""
			obj.BoundingBox = nil
		}
		obj.Purpose = next
	}

	if obj.Purpose.IsGlobal() {
		obj.Mask = ""
		obj.BoundingBox = nil
	}

	return *obj, nil
}

// Remove deletes the object with the given id. If it was the base model,
// the first remaining object is promoted in its place.
func (s *Set) Remove(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}

	wasBase := s.objects[idx].Purpose == PurposeBaseModel
	s.objects = append(s.objects[:idx], s.objects[idx+1:]...)

	if wasBase && len(s.objects) > 0 {
		s.objects[0].Purpose = PurposeBaseModel
		s.objects[0].Mask = ""
		s.objects[0].BoundingBox = nil
	}
	return nil
}

// BaseModel returns the designated base-model object, if any.
func (s *Set) BaseModel() (Object, bool) {
	for _, obj := range s.objects {
		if obj.Purpose == PurposeBaseModel {
			return obj, true
		}
	}
	return Object{}, false
}

// Objects returns a copy of the set in insertion order.
func (s *Set) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Set) Len() int { return len(s.objects) }

// Get returns the object with the given id.
func (s *Set) Get(id string) (Object, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Object{}, false
	}
	return s.objects[idx], true
}

func (s *Set) indexOf(id string) int {
	for i := range s.objects {
		if s.objects[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Set) demoteBase() {
	for i := range s.objects {
		if s.objects[i].Purpose == PurposeBaseModel {
			s.objects[i].Purpose = s.fallback
			s.objects[i].Mask = ""
			s.objects[i].BoundingBox = nil
		}
	}
}
