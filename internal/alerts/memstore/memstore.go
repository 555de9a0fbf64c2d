// Package memstore provides an in-memory implementation of alerts.Store.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/linnemanlabs/lifeline/internal/alerts"
)

// Store holds the alert log in memory. Suitable for dev/testing.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	records []alerts.Record // insertion order, ids contiguous from 1
}

// New initializes a new in-memory Store.
func New() *Store {
	return &Store{nextID: 1}
}

// Append assigns the next ID and insert timestamp under the write lock, so
// concurrent appends get distinct, contiguous ids and readers never see a
// half-written record.
func (s *Store) Append(_ context.Context, r alerts.Record) (alerts.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID
	r.CreatedAt = time.Now().UTC()
	s.nextID++
	s.records = append(s.records, r)

	return r, nil
}

// ListAll returns a most-recent-first snapshot copy of the log.
func (s *Store) ListAll(_ context.Context) ([]alerts.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]alerts.Record, len(s.records))
	for i, r := range s.records {
		out[len(s.records)-1-i] = r
	}
	return out, nil
}
