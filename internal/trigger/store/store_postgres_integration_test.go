//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"afternote/internal/platform/postgres"
	"afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
	txcontext "afternote/pkg/platform/tx"
	"afternote/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(s.ctx, s.pg.DB))
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) TestCreateIfAbsentIsIdempotent() {
	owner := id.OwnerID(uuid.New())
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, created, err := s.store.CreateIfAbsent(s.ctx, &models.Release{OwnerID: owner, ReleasedAt: first, Reason: "a"})
	s.Require().NoError(err)
	s.True(created)

	stored, created, err := s.store.CreateIfAbsent(s.ctx, &models.Release{OwnerID: owner, ReleasedAt: first.Add(time.Hour), Reason: "b"})
	s.Require().NoError(err)
	s.False(created)
	s.True(first.Equal(stored.ReleasedAt))
	s.Equal("a", stored.Reason)
}

func (s *PostgresStoreSuite) TestRolledBackTxLeavesNoRelease() {
	owner := id.OwnerID(uuid.New())
	tx, err := s.pg.DB.BeginTx(s.ctx, nil)
	s.Require().NoError(err)

	_, _, err = s.store.CreateIfAbsent(txcontext.WithTx(s.ctx, tx), &models.Release{
		OwnerID: owner, ReleasedAt: time.Now().UTC(), Reason: models.ReasonVerificationApproved,
	})
	s.Require().NoError(err)
	s.Require().NoError(tx.Rollback())

	_, err = s.store.FindByOwner(s.ctx, owner)
	s.True(errors.Is(err, sentinel.ErrNotFound))
}
