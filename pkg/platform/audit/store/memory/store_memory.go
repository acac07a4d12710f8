package memory

import (
	"context"
	"sync"

	id "afternote/pkg/domain"
	audit "afternote/pkg/platform/audit"
)

// InMemoryStore keeps audit events per owner. Events without an owner are
// kept under the nil owner key.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.OwnerID][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.OwnerID][]audit.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.OwnerID] = append(s.events[event.OwnerID], event)
	return nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, ownerID id.OwnerID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[ownerID]...), nil
}

// ListAll returns all events across owners.
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []audit.Event
	for _, ownerEvents := range s.events {
		all = append(all, ownerEvents...)
	}
	return all, nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.OwnerID][]audit.Event)
}
