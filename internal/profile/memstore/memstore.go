// Package memstore provides an in-memory implementation of profile.Store.
package memstore

import (
	"context"
	"sync"

	"github.com/linnemanlabs/lifeline/internal/profile"
)

// Store holds the profile in memory. Suitable for dev/testing.
type Store struct {
	mu    sync.RWMutex
	p     profile.Profile
	saved bool
}

// New initializes an empty Store.
func New() *Store {
	return &Store{}
}

// Get returns a copy of the saved profile.
func (s *Store) Get(_ context.Context) (profile.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p, s.saved, nil
}

// Save overwrites the profile.
func (s *Store) Save(_ context.Context, p profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p
	s.saved = true
	return nil
}
