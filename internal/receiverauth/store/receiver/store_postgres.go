package receiver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"afternote/internal/platform/postgres"
	"afternote/internal/receiverauth/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

// PostgresStore persists receivers in the receivers table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const receiverColumns = `id, owner_id, name, sender_name, relation, email, master_key_digest, created_at`

func (s *PostgresStore) Create(ctx context.Context, r *models.Receiver) error {
	query := `INSERT INTO receivers (` + receiverColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, query,
		r.ID.String(), r.OwnerID.String(), r.Name, r.SenderName, r.Relation, r.Email, r.MasterKeyDigest, r.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("create receiver: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create receiver: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, receiverID id.ReceiverID) (*models.Receiver, error) {
	query := `SELECT ` + receiverColumns + ` FROM receivers WHERE id = $1`
	return s.findOne(ctx, query, receiverID.String())
}

func (s *PostgresStore) FindByDigest(ctx context.Context, digest string) (*models.Receiver, error) {
	query := `SELECT ` + receiverColumns + ` FROM receivers WHERE master_key_digest = $1`
	return s.findOne(ctx, query, digest)
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*models.Receiver, error) {
	r, err := scanReceiver(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("receiver: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find receiver: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM receivers WHERE lower(email) = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("receiver exists by email: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Receiver, error) {
	query := `SELECT ` + receiverColumns + ` FROM receivers WHERE owner_id = $1 ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("list receivers: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Receiver, 0)
	for rows.Next() {
		r, err := scanReceiver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receiver: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list receivers: %w", err)
	}
	return out, nil
}

type receiverRow interface {
	Scan(dest ...any) error
}

func scanReceiver(row receiverRow) (*models.Receiver, error) {
	var (
		rawID, rawOwner string
		r               models.Receiver
		createdAt       time.Time
	)
	if err := row.Scan(&rawID, &rawOwner, &r.Name, &r.SenderName, &r.Relation, &r.Email, &r.MasterKeyDigest, &createdAt); err != nil {
		return nil, err
	}
	receiverID, err := id.ParseReceiverID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan receiver id: %w", err)
	}
	ownerID, err := id.ParseOwnerID(rawOwner)
	if err != nil {
		return nil, fmt.Errorf("scan owner id: %w", err)
	}
	r.ID = receiverID
	r.OwnerID = ownerID
	r.CreatedAt = createdAt
	return &r, nil
}
