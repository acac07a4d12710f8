package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"afternote/internal/review/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

// InMemoryStore keeps verifications in a map. Create enforces one PENDING
// record per receiver, matching the partial unique index in postgres.
type InMemoryStore struct {
	mu            sync.Mutex
	verifications map[id.VerificationID]*models.Verification
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{verifications: make(map[id.VerificationID]*models.Verification)}
}

func (s *InMemoryStore) Create(_ context.Context, v *models.Verification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.verifications[v.ID]; ok {
		return fmt.Errorf("verification %s: %w", v.ID, sentinel.ErrConflict)
	}
	for _, existing := range s.verifications {
		if existing.ReceiverID == v.ReceiverID && existing.Status == models.StatusPending {
			return fmt.Errorf("pending verification for %s: %w", v.ReceiverID, sentinel.ErrConflict)
		}
	}
	s.verifications[v.ID] = v.Clone()
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, verificationID id.VerificationID) (*models.Verification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.verifications[verificationID]
	if !ok {
		return nil, fmt.Errorf("verification %s: %w", verificationID, sentinel.ErrNotFound)
	}
	return v.Clone(), nil
}

// LatestByReceiver returns the most recently created record for the
// receiver.
func (s *InMemoryStore) LatestByReceiver(_ context.Context, receiverID id.ReceiverID) (*models.Verification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *models.Verification
	for _, v := range s.verifications {
		if v.ReceiverID != receiverID {
			continue
		}
		if latest == nil || v.CreatedAt.After(latest.CreatedAt) {
			latest = v
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("verification for %s: %w", receiverID, sentinel.ErrNotFound)
	}
	return latest.Clone(), nil
}

// ListByStatus returns matching records oldest first.
func (s *InMemoryStore) ListByStatus(_ context.Context, status models.Status) ([]*models.Verification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Verification, 0)
	for _, v := range s.verifications {
		if v.Status == status {
			out = append(out, v.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Execute holds the store lock across validate and mutate.
func (s *InMemoryStore) Execute(_ context.Context, verificationID id.VerificationID,
	validate func(*models.Verification) error,
	mutate func(*models.Verification),
) (*models.Verification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.verifications[verificationID]
	if !ok {
		return nil, fmt.Errorf("verification %s: %w", verificationID, sentinel.ErrNotFound)
	}
	working := v.Clone()
	if err := validate(working); err != nil {
		return nil, err
	}
	mutate(working)
	s.verifications[verificationID] = working
	return working.Clone(), nil
}
