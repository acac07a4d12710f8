package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"afternote/internal/lockout/models"
)

// PostgresStore persists lockouts in master_key_lockouts.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, identifier string) (*models.Lockout, error) {
	query := `
		SELECT identifier, failure_count, locked_until, last_failure_at
		FROM master_key_lockouts
		WHERE identifier = $1
	`
	record, err := scanLockout(s.db.QueryRowContext(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lockout: %w", err)
	}
	return record, nil
}

// RecordFailure increments atomically so concurrent failures cannot slip
// past the threshold. A failure older than cutoff restarts the count.
func (s *PostgresStore) RecordFailure(ctx context.Context, identifier string, now, cutoff time.Time) (*models.Lockout, error) {
	query := `
		INSERT INTO master_key_lockouts (identifier, failure_count, locked_until, last_failure_at)
		VALUES ($1, 1, NULL, $2)
		ON CONFLICT (identifier) DO UPDATE SET
			failure_count = CASE
				WHEN master_key_lockouts.last_failure_at < $3 THEN 1
				ELSE master_key_lockouts.failure_count + 1
			END,
			last_failure_at = $2
		RETURNING identifier, failure_count, locked_until, last_failure_at
	`
	record, err := scanLockout(s.db.QueryRowContext(ctx, query, identifier, now, cutoff))
	if err != nil {
		return nil, fmt.Errorf("record lockout failure: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) Update(ctx context.Context, record *models.Lockout) error {
	query := `
		INSERT INTO master_key_lockouts (identifier, failure_count, locked_until, last_failure_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (identifier) DO UPDATE SET
			failure_count = EXCLUDED.failure_count,
			locked_until = EXCLUDED.locked_until,
			last_failure_at = EXCLUDED.last_failure_at
	`
	_, err := s.db.ExecContext(ctx, query,
		record.Identifier,
		record.FailureCount,
		record.LockedUntil,
		record.LastFailureAt,
	)
	if err != nil {
		return fmt.Errorf("update lockout: %w", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context, identifier string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM master_key_lockouts WHERE identifier = $1`, identifier)
	if err != nil {
		return fmt.Errorf("clear lockout: %w", err)
	}
	return nil
}

func scanLockout(row *sql.Row) (*models.Lockout, error) {
	var record models.Lockout
	var lockedUntil sql.NullTime
	if err := row.Scan(&record.Identifier, &record.FailureCount, &lockedUntil, &record.LastFailureAt); err != nil {
		return nil, err
	}
	if lockedUntil.Valid {
		t := lockedUntil.Time
		record.LockedUntil = &t
	}
	return &record, nil
}
