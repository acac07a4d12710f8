package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"afternote/internal/review/models"
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

func newVerification(t *testing.T, receiver id.ReceiverID, at time.Time) *models.Verification {
	t.Helper()
	v, err := models.NewVerification(id.VerificationID(uuid.New()), receiver, id.OwnerID(uuid.New()),
		"https://files/death.pdf", "https://files/family.pdf", at)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func (s *InMemoryStoreSuite) TestOnePendingPerReceiver() {
	receiver := id.ReceiverID(uuid.New())
	now := time.Now().UTC()
	first := newVerification(s.T(), receiver, now)
	s.Require().NoError(s.store.Create(s.ctx, first))

	err := s.store.Create(s.ctx, newVerification(s.T(), receiver, now.Add(time.Second)))
	s.True(errors.Is(err, sentinel.ErrConflict))

	_, err = s.store.Execute(s.ctx, first.ID,
		func(v *models.Verification) error { return v.CanReject() },
		func(v *models.Verification) { v.ApplyRejection(nil, now) },
	)
	s.Require().NoError(err)
	second := newVerification(s.T(), receiver, now.Add(time.Minute))
	s.Require().NoError(s.store.Create(s.ctx, second))

	latest, err := s.store.LatestByReceiver(s.ctx, receiver)
	s.Require().NoError(err)
	s.Equal(second.ID, latest.ID)
}

func (s *InMemoryStoreSuite) TestExecuteValidationFailureLeavesRecord() {
	v := newVerification(s.T(), id.ReceiverID(uuid.New()), time.Now())
	s.Require().NoError(s.store.Create(s.ctx, v))

	boom := errors.New("nope")
	_, err := s.store.Execute(s.ctx, v.ID,
		func(*models.Verification) error { return boom },
		func(v *models.Verification) { v.Status = models.StatusApproved },
	)
	s.ErrorIs(err, boom)

	got, err := s.store.FindByID(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, got.Status)
}

func (s *InMemoryStoreSuite) TestReturnsCopies() {
	v := newVerification(s.T(), id.ReceiverID(uuid.New()), time.Now())
	s.Require().NoError(s.store.Create(s.ctx, v))
	got, err := s.store.FindByID(s.ctx, v.ID)
	s.Require().NoError(err)
	got.Status = models.StatusApproved

	again, err := s.store.FindByID(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, again.Status)
}

func (s *InMemoryStoreSuite) TestListByStatusOldestFirst() {
	now := time.Now()
	late := newVerification(s.T(), id.ReceiverID(uuid.New()), now.Add(time.Hour))
	early := newVerification(s.T(), id.ReceiverID(uuid.New()), now)
	s.Require().NoError(s.store.Create(s.ctx, late))
	s.Require().NoError(s.store.Create(s.ctx, early))

	list, err := s.store.ListByStatus(s.ctx, models.StatusPending)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(early.ID, list[0].ID)

	_, err = s.store.LatestByReceiver(s.ctx, id.ReceiverID(uuid.New()))
	s.True(errors.Is(err, sentinel.ErrNotFound))
}
