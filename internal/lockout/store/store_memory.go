package store

import (
	"context"
	"sync"
	"time"

	"afternote/internal/lockout/models"
)

// InMemoryStore keeps lockout records in a map. Pure I/O; window and lock
// rules live in the service.
type InMemoryStore struct {
	mu      sync.Mutex
	records map[string]models.Lockout
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]models.Lockout)}
}

// Get returns nil without error when no record exists.
func (s *InMemoryStore) Get(_ context.Context, identifier string) (*models.Lockout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[identifier]
	if !ok {
		return nil, nil
	}
	return copyLockout(r), nil
}

// RecordFailure increments the count, restarting it at 1 when the previous
// failure happened before cutoff.
func (s *InMemoryStore) RecordFailure(_ context.Context, identifier string, now, cutoff time.Time) (*models.Lockout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[identifier]
	if !ok || r.LastFailureAt.Before(cutoff) {
		r.Identifier = identifier
		r.FailureCount = 0
	}
	r.FailureCount++
	r.LastFailureAt = now
	s.records[identifier] = r
	return copyLockout(r), nil
}

func (s *InMemoryStore) Update(_ context.Context, record *models.Lockout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Identifier] = *copyLockout(*record)
	return nil
}

func (s *InMemoryStore) Clear(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, identifier)
	return nil
}

func copyLockout(r models.Lockout) *models.Lockout {
	out := r
	if r.LockedUntil != nil {
		t := *r.LockedUntil
		out.LockedUntil = &t
	}
	return &out
}
