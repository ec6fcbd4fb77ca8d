package service

import (
	"sync"

	"bikematch-service/internal/catalog/model"
)

// Store holds the current in-memory snapshot for query-time readers.
// A pipeline run replaces the whole snapshot; entries are never mutated.
type Store struct {
	mu   sync.RWMutex
	snap *model.Snapshot
}

func NewStore() *Store { return &Store{} }

func (s *Store) Replace(snap *model.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Current returns the latest snapshot, or nil when none has been produced.
func (s *Store) Current() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
