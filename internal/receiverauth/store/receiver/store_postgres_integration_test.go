//go:build integration

package receiver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"afternote/internal/platform/postgres"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	store *PostgresStore
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	pg := containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(s.ctx, pg.DB))
	s.store = NewPostgres(pg.DB)
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	owner := id.OwnerID(uuid.New())
	digest := uuid.NewString()
	r := newReceiver(s.T(), owner, "rt@example.com", digest)
	s.Require().NoError(s.store.Create(s.ctx, r))

	got, err := s.store.FindByDigest(s.ctx, digest)
	s.Require().NoError(err)
	s.Equal(r.ID, got.ID)
	s.Equal(owner, got.OwnerID)
	s.Equal("Lee", got.SenderName)
	s.WithinDuration(r.CreatedAt, got.CreatedAt, time.Millisecond)

	exists, err := s.store.ExistsByEmail(s.ctx, "rt@example.com")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *PostgresStoreSuite) TestDigestIsUnique() {
	owner := id.OwnerID(uuid.New())
	digest := uuid.NewString()
	s.Require().NoError(s.store.Create(s.ctx, newReceiver(s.T(), owner, "u1@example.com", digest)))
	err := s.store.Create(s.ctx, newReceiver(s.T(), owner, "u2@example.com", digest))
	s.True(errors.Is(err, sentinel.ErrConflict))
}

func (s *PostgresStoreSuite) TestListByOwner() {
	owner := id.OwnerID(uuid.New())
	for range 3 {
		s.Require().NoError(s.store.Create(s.ctx, newReceiver(s.T(), owner, "l@example.com", uuid.NewString())))
	}
	list, err := s.store.ListByOwner(s.ctx, owner)
	s.Require().NoError(err)
	s.Len(list, 3)

	_, err = s.store.FindByID(s.ctx, id.ReceiverID(uuid.New()))
	s.True(errors.Is(err, sentinel.ErrNotFound))
}
