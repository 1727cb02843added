package studio

import "sync"

// ShotStatus tracks one shot through a batch run.
type ShotStatus string

const (
	StatusGenerating ShotStatus = "generating"
	StatusSuccess    ShotStatus = "success"
	StatusError      ShotStatus = "error"
)

// ShotResult is the outcome of one shot in a batch production run.
type ShotResult struct {
	ShotID   string     `json:"shotId"`
	Status   ShotStatus `json:"status"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Error    string     `json:"error,omitempty"`
	Selected bool       `json:"selected"`
}

type resultStore struct {
	mu      sync.Mutex
	results map[string]ShotResult
}

func newResultStore() *resultStore {
	return &resultStore{results: make(map[string]ShotResult)}
}

func (s *resultStore) set(r ShotResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[r.ShotID] = r
}

func (s *resultStore) snapshot() map[string]ShotResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]ShotResult, len(s.results))
	for id, r := range s.results {
		out[id] = r
	}
	return out
}

func (s *resultStore) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[string]ShotResult)
}
