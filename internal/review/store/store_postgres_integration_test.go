//go:build integration

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"afternote/internal/platform/postgres"
	"afternote/internal/review/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
	txcontext "afternote/pkg/platform/tx"
	"afternote/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	db    *sql.DB
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
	s.db = pg.DB
	s.store = NewPostgres(pg.DB)
}

// receiver inserts the row delivery_verifications references.
func (s *PostgresStoreSuite) receiver() id.ReceiverID {
	rid := id.ReceiverID(uuid.New())
	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO receivers (id, owner_id, name, sender_name, relation, email, master_key_digest, created_at)
		VALUES ($1, $2, 'r', 's', 'rel', 'r@example.com', $3, now())`,
		rid.String(), uuid.NewString(), uuid.NewString())
	s.Require().NoError(err)
	return rid
}

func (s *PostgresStoreSuite) TestPendingUniquenessAndLatest() {
	rid := s.receiver()
	now := time.Now().UTC().Truncate(time.Microsecond)
	first := newVerification(s.T(), rid, now)
	s.Require().NoError(s.store.Create(s.ctx, first))

	err := s.store.Create(s.ctx, newVerification(s.T(), rid, now.Add(time.Second)))
	s.True(errors.Is(err, sentinel.ErrConflict))

	note := "서류 불일치"
	rejected, err := s.store.Execute(s.ctx, first.ID,
		func(v *models.Verification) error { return v.CanReject() },
		func(v *models.Verification) { v.ApplyRejection(&note, now) },
	)
	s.Require().NoError(err)
	s.Equal(models.StatusRejected, rejected.Status)

	second := newVerification(s.T(), rid, now.Add(time.Minute))
	s.Require().NoError(s.store.Create(s.ctx, second))

	latest, err := s.store.LatestByReceiver(s.ctx, rid)
	s.Require().NoError(err)
	s.Equal(second.ID, latest.ID)

	stored, err := s.store.FindByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.AdminNote)
	s.Equal(note, *stored.AdminNote)
	s.Require().NotNil(stored.DecidedAt)
}

func (s *PostgresStoreSuite) TestExecuteJoinsCallerTransaction() {
	rid := s.receiver()
	v := newVerification(s.T(), rid, time.Now().UTC())
	s.Require().NoError(s.store.Create(s.ctx, v))

	tx, err := s.db.BeginTx(s.ctx, nil)
	s.Require().NoError(err)
	_, err = s.store.Execute(txcontext.WithTx(s.ctx, tx), v.ID,
		func(v *models.Verification) error { return v.CanApprove() },
		func(v *models.Verification) { v.ApplyApproval(nil, time.Now().UTC()) },
	)
	s.Require().NoError(err)
	s.Require().NoError(tx.Rollback())

	got, err := s.store.FindByID(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, got.Status, "rollback discards the decision")
}

func (s *PostgresStoreSuite) TestListByStatus() {
	v := newVerification(s.T(), s.receiver(), time.Now().UTC())
	s.Require().NoError(s.store.Create(s.ctx, v))
	list, err := s.store.ListByStatus(s.ctx, models.StatusPending)
	s.Require().NoError(err)
	var found bool
	for _, item := range list {
		found = found || item.ID == v.ID
	}
	s.True(found)
}
