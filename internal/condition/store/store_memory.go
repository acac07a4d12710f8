package store

import (
	"context"
	"fmt"
	"sync"

	"afternote/internal/condition/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

// InMemoryStore keeps one condition per owner. Reads return copies so
// callers cannot mutate stored state.
type InMemoryStore struct {
	mu         sync.RWMutex
	conditions map[id.OwnerID]*models.DeliveryCondition
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{conditions: make(map[id.OwnerID]*models.DeliveryCondition)}
}

func (s *InMemoryStore) Upsert(_ context.Context, condition *models.DeliveryCondition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conditions[condition.OwnerID] = condition.Clone()
	return nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, ownerID id.OwnerID) (*models.DeliveryCondition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conditions[ownerID]
	if !ok {
		return nil, fmt.Errorf("delivery condition for %s: %w", ownerID, sentinel.ErrNotFound)
	}
	return c.Clone(), nil
}

func (s *InMemoryStore) Execute(_ context.Context, ownerID id.OwnerID,
	validate func(*models.DeliveryCondition) error,
	mutate func(*models.DeliveryCondition),
) (*models.DeliveryCondition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conditions[ownerID]
	if !ok {
		return nil, fmt.Errorf("delivery condition for %s: %w", ownerID, sentinel.ErrNotFound)
	}
	working := c.Clone()
	if err := validate(working); err != nil {
		return nil, err
	}
	mutate(working)
	s.conditions[ownerID] = working
	return working.Clone(), nil
}
