// Package workflow holds per-session production state: the selected
// module, the reference set, model stats and output settings, plus the
// producer driving generation for that session.
package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
	"fashion-shot-studio/internal/studio"
)

// State is one operator session. Its mutex guards the mutable settings
// and the reference set; generation calls snapshot what they need and
// release the lock before going to the network.
type State struct {
	ID string

	mu           sync.Mutex
	module       shoot.Module
	category     shoot.ProductCategory
	environment  shoot.Environment
	packs        []shoot.Pack
	references   *reference.Set
	stats        reference.ModelStats
	aspectRatio  string
	systemPrompt string
	shotRefs     map[string]reference.Image
	lastActivity time.Time

	Producer *studio.Producer
}

// Settings is the serializable view of session settings.
type Settings struct {
	Module       shoot.Module          `json:"module"`
	Category     shoot.ProductCategory `json:"category"`
	Environment  shoot.Environment     `json:"environment"`
	Packs        []shoot.Pack          `json:"packs"`
	Stats        reference.ModelStats  `json:"modelStats"`
	AspectRatio  string                `json:"aspectRatio"`
	SystemPrompt string                `json:"systemPrompt,omitempty"`
}

// SettingsPatch applies partial updates; nil fields are untouched.
type SettingsPatch struct {
	Module       *shoot.Module          `json:"module"`
	Category     *shoot.ProductCategory `json:"category"`
	Environment  *shoot.Environment     `json:"environment"`
	Packs        *[]shoot.Pack          `json:"packs"`
	Stats        *reference.ModelStats  `json:"modelStats"`
	AspectRatio  *string                `json:"aspectRatio"`
	SystemPrompt *string                `json:"systemPrompt"`
}

func (s *State) touchLocked() { s.lastActivity = time.Now() }

// Settings returns the current session settings.
func (s *State) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	packs := make([]shoot.Pack, len(s.packs))
	copy(packs, s.packs)
	return Settings{
		Module:       s.module,
		Category:     s.category,
		Environment:  s.environment,
		Packs:        packs,
		Stats:        s.stats,
		AspectRatio:  s.aspectRatio,
		SystemPrompt: s.systemPrompt,
	}
}

// Apply updates session settings. Switching the module retunes the
// reference set's demotion purpose: still-life sessions demote a
// replaced base model to a flat-lay prop instead of a garment.
func (s *State) Apply(patch SettingsPatch) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	if patch.Module != nil && patch.Module.Valid() {
		s.module = *patch.Module
		s.references.SetFallback(fallbackFor(s.module))
	}
	if patch.Category != nil {
		s.category = *patch.Category
	}
	if patch.Environment != nil {
		s.environment = *patch.Environment
	}
	if patch.Packs != nil {
		s.packs = append([]shoot.Pack(nil), (*patch.Packs)...)
	}
	if patch.Stats != nil {
		s.stats = *patch.Stats
	}
	if patch.AspectRatio != nil {
		s.aspectRatio = *patch.AspectRatio
	}
	if patch.SystemPrompt != nil {
		s.systemPrompt = *patch.SystemPrompt
	}

	packs := make([]shoot.Pack, len(s.packs))
	copy(packs, s.packs)
	return Settings{
		Module:       s.module,
		Category:     s.category,
		Environment:  s.environment,
		Packs:        packs,
		Stats:        s.stats,
		AspectRatio:  s.aspectRatio,
		SystemPrompt: s.systemPrompt,
	}
}

// AddReference stores a new reference object and returns it with its
// assigned id.
func (s *State) AddReference(img reference.Image, description string, purpose reference.Purpose) reference.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	obj := reference.Object{
		ID:          uuid.NewString(),
		Image:       img,
		Description: description,
		Purpose:     purpose,
	}
	s.references.Add(obj)
	got, _ := s.references.Get(obj.ID)
	return got
}

// UpdateReference patches one reference object.
func (s *State) UpdateReference(id string, patch reference.Patch) (reference.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.references.Update(id, patch)
}

// RemoveReference deletes one reference object.
func (s *State) RemoveReference(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.references.Remove(id)
}

// References returns the session's reference objects in order.
func (s *State) References() []reference.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.references.Objects()
}

// SetShotReference attaches a per-shot style reference for batch runs.
func (s *State) SetShotReference(shotID string, img reference.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.shotRefs[shotID] = img
}

// RemoveShotReference detaches a per-shot style reference.
func (s *State) RemoveShotReference(shotID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	delete(s.shotRefs, shotID)
}

// ShotReferences returns a copy of the per-shot reference map.
func (s *State) ShotReferences() map[string]reference.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]reference.Image, len(s.shotRefs))
	for id, img := range s.shotRefs {
		out[id] = img
	}
	return out
}

// Shots lists the catalog entries the session's settings select.
func (s *State) Shots() []shoot.ShotDefinition {
	s.mu.Lock()
	module, category, environment := s.module, s.category, s.environment
	packs := make([]shoot.Pack, len(s.packs))
	copy(packs, s.packs)
	s.mu.Unlock()

	switch module {
	case shoot.ModuleCampaign:
		return shoot.CampaignShots()
	case shoot.ModuleStillLife:
		return shoot.StillLifeShots(category)
	default:
		return shoot.LookbookShots(category, packs, environment)
	}
}

// LastActivity reports when the session was last touched.
func (s *State) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

func fallbackFor(module shoot.Module) reference.Purpose {
	if module == shoot.ModuleStillLife {
		return reference.PurposeCraftFlatLay
	}
	return reference.PurposeClothingGarment
}
