package receiver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"afternote/internal/receiverauth/models"
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

func newReceiver(t *testing.T, owner id.OwnerID, email, digest string) *models.Receiver {
	t.Helper()
	r, err := models.NewReceiver(id.ReceiverID(uuid.New()), owner, "Kim", "Lee", "son", email, digest, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func (s *InMemoryStoreSuite) TestCreateAndFind() {
	owner := id.OwnerID(uuid.New())
	r := newReceiver(s.T(), owner, "Kim@Example.com", "digest-1")
	s.Require().NoError(s.store.Create(s.ctx, r))

	byID, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("kim@example.com", byID.Email)

	byDigest, err := s.store.FindByDigest(s.ctx, "digest-1")
	s.Require().NoError(err)
	s.Equal(r.ID, byDigest.ID)

	exists, err := s.store.ExistsByEmail(s.ctx, "kim@example.com")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *InMemoryStoreSuite) TestDuplicateDigestConflicts() {
	owner := id.OwnerID(uuid.New())
	s.Require().NoError(s.store.Create(s.ctx, newReceiver(s.T(), owner, "a@example.com", "same")))
	err := s.store.Create(s.ctx, newReceiver(s.T(), owner, "b@example.com", "same"))
	s.True(errors.Is(err, sentinel.ErrConflict))
}

func (s *InMemoryStoreSuite) TestMissingIsNotFound() {
	_, err := s.store.FindByDigest(s.ctx, "nope")
	s.True(errors.Is(err, sentinel.ErrNotFound))
	_, err = s.store.FindByID(s.ctx, id.ReceiverID(uuid.New()))
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

func (s *InMemoryStoreSuite) TestListByOwnerIsScoped() {
	owner, other := id.OwnerID(uuid.New()), id.OwnerID(uuid.New())
	s.Require().NoError(s.store.Create(s.ctx, newReceiver(s.T(), owner, "a@example.com", "d1")))
	s.Require().NoError(s.store.Create(s.ctx, newReceiver(s.T(), owner, "b@example.com", "d2")))
	s.Require().NoError(s.store.Create(s.ctx, newReceiver(s.T(), other, "c@example.com", "d3")))

	list, err := s.store.ListByOwner(s.ctx, owner)
	s.Require().NoError(err)
	s.Len(list, 2)
}
