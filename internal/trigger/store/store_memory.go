package store

import (
	"context"
	"fmt"
	"sync"

	"afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

// InMemoryStore keeps one release per owner.
type InMemoryStore struct {
	mu       sync.RWMutex
	releases map[id.OwnerID]models.Release
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{releases: make(map[id.OwnerID]models.Release)}
}

// CreateIfAbsent stores release unless the owner already has one. It returns
// the stored release and whether this call created it.
func (s *InMemoryStore) CreateIfAbsent(_ context.Context, release *models.Release) (*models.Release, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.releases[release.OwnerID]; ok {
		return &existing, false, nil
	}
	s.releases[release.OwnerID] = *release
	stored := *release
	return &stored, true, nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, ownerID id.OwnerID) (*models.Release, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.releases[ownerID]
	if !ok {
		return nil, fmt.Errorf("release for %s: %w", ownerID, sentinel.ErrNotFound)
	}
	return &r, nil
}
