package emailcode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"afternote/internal/receiverauth/models"
	"afternote/pkg/platform/sentinel"
)

// InMemoryStore keeps one pending code per email. Expiry is enforced by the
// service through ExpiresAt.
type InMemoryStore struct {
	mu    sync.Mutex
	codes map[string]models.EmailCode
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{codes: make(map[string]models.EmailCode)}
}

func (s *InMemoryStore) Save(_ context.Context, code *models.EmailCode, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code.Email] = *code
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, email string) (*models.EmailCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[email]
	if !ok {
		return nil, fmt.Errorf("email code: %w", sentinel.ErrNotFound)
	}
	return &c, nil
}

func (s *InMemoryStore) IncrementAttempts(_ context.Context, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[email]
	if !ok {
		return 0, fmt.Errorf("email code: %w", sentinel.ErrNotFound)
	}
	c.Attempts++
	s.codes[email] = c
	return c.Attempts, nil
}

func (s *InMemoryStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}
