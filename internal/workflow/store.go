package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
	"fashion-shot-studio/internal/studio"
)

type StoreOptions struct {
	// NewProducer builds the producer for each fresh session.
	NewProducer func() *studio.Producer
	// MaxIdle evicts sessions untouched for longer than this. Zero
	// disables eviction.
	MaxIdle time.Duration
}

// Store owns all live sessions keyed by their id.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*State
	newProducer func() *studio.Producer
	maxIdle     time.Duration
}

func NewStore(opts StoreOptions) *Store {
	return &Store{
		sessions:    make(map[string]*State),
		newProducer: opts.NewProducer,
		maxIdle:     opts.MaxIdle,
	}
}

// Create starts a fresh session with lookbook defaults.
func (s *Store) Create() *State {
	state := &State{
		ID:           uuid.NewString(),
		module:       shoot.ModuleLookbook,
		category:     shoot.CategoryDress,
		environment:  shoot.EnvIndoor,
		packs:        []shoot.Pack{shoot.PackStandard},
		references:   reference.NewSet(fallbackFor(shoot.ModuleLookbook)),
		stats:        reference.DefaultStats(),
		aspectRatio:  "auto",
		shotRefs:     make(map[string]reference.Image),
		lastActivity: time.Now(),
	}
	if s.newProducer != nil {
		state.Producer = s.newProducer()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.sessions[state.ID] = state
	return state
}

// Get looks up a session by id.
func (s *Store) Get(id string) (*State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	return state, ok
}

// Delete drops a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) evictLocked() {
	if s.maxIdle <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.maxIdle)
	for id, state := range s.sessions {
		if state.LastActivity().Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
