package receiver

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"afternote/internal/receiverauth/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

// InMemoryStore indexes receivers by id and by master key digest.
type InMemoryStore struct {
	mu       sync.RWMutex
	byID     map[id.ReceiverID]models.Receiver
	byDigest map[string]id.ReceiverID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:     make(map[id.ReceiverID]models.Receiver),
		byDigest: make(map[string]id.ReceiverID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, r *models.Receiver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byDigest[r.MasterKeyDigest]; ok {
		return fmt.Errorf("master key digest: %w", sentinel.ErrConflict)
	}
	if _, ok := s.byID[r.ID]; ok {
		return fmt.Errorf("receiver %s: %w", r.ID, sentinel.ErrConflict)
	}
	s.byID[r.ID] = *r
	s.byDigest[r.MasterKeyDigest] = r.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, receiverID id.ReceiverID) (*models.Receiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[receiverID]
	if !ok {
		return nil, fmt.Errorf("receiver %s: %w", receiverID, sentinel.ErrNotFound)
	}
	return &r, nil
}

func (s *InMemoryStore) FindByDigest(_ context.Context, digest string) (*models.Receiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rid, ok := s.byDigest[digest]
	if !ok {
		return nil, fmt.Errorf("receiver by digest: %w", sentinel.ErrNotFound)
	}
	r := s.byID[rid]
	return &r, nil
}

func (s *InMemoryStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.byID {
		if r.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ListByOwner returns the owner's receivers, oldest first.
func (s *InMemoryStore) ListByOwner(_ context.Context, ownerID id.OwnerID) ([]*models.Receiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Receiver, 0)
	for _, r := range s.byID {
		if r.OwnerID == ownerID {
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
