package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
	txcontext "afternote/pkg/platform/tx"
)

// PostgresStore persists releases in delivery_releases.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// CreateIfAbsent inserts the release, leaving an existing row untouched.
func (s *PostgresStore) CreateIfAbsent(ctx context.Context, release *models.Release) (*models.Release, bool, error) {
	query := `
		INSERT INTO delivery_releases (owner_id, released_at, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO NOTHING
		RETURNING owner_id, released_at, reason
	`
	stored, err := scanRelease(s.execer(ctx).QueryRowContext(ctx, query,
		release.OwnerID.String(), release.ReleasedAt, release.Reason))
	if err == nil {
		return stored, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("insert release: %w", err)
	}
	existing, err := s.FindByOwner(ctx, release.OwnerID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *PostgresStore) FindByOwner(ctx context.Context, ownerID id.OwnerID) (*models.Release, error) {
	query := `SELECT owner_id, released_at, reason FROM delivery_releases WHERE owner_id = $1`
	r, err := scanRelease(s.execer(ctx).QueryRowContext(ctx, query, ownerID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("release for %s: %w", ownerID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find release: %w", err)
	}
	return r, nil
}

func scanRelease(row *sql.Row) (*models.Release, error) {
	var (
		ownerID    string
		releasedAt time.Time
		reason     string
	)
	if err := row.Scan(&ownerID, &releasedAt, &reason); err != nil {
		return nil, err
	}
	parsed, err := id.ParseOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("scan owner id: %w", err)
	}
	return &models.Release{OwnerID: parsed, ReleasedAt: releasedAt, Reason: reason}, nil
}
