package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) TestCreateIfAbsentKeepsFirstRelease() {
	owner := id.OwnerID(uuid.New())
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	stored, created, err := s.store.CreateIfAbsent(s.ctx, &models.Release{
		OwnerID: owner, ReleasedAt: first, Reason: models.ReasonTriggerDateReached,
	})
	s.Require().NoError(err)
	s.True(created)
	s.Equal(first, stored.ReleasedAt)

	stored, created, err = s.store.CreateIfAbsent(s.ctx, &models.Release{
		OwnerID: owner, ReleasedAt: first.Add(48 * time.Hour), Reason: models.ReasonVerificationApproved,
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first, stored.ReleasedAt)
	s.Equal(models.ReasonTriggerDateReached, stored.Reason)
}

func (s *InMemoryStoreSuite) TestFindByOwnerNotFound() {
	_, err := s.store.FindByOwner(s.ctx, id.OwnerID(uuid.New()))
	s.True(errors.Is(err, sentinel.ErrNotFound))
}
