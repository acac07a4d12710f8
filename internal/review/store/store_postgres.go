package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"afternote/internal/platform/postgres"
	"afternote/internal/review/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
	txcontext "afternote/pkg/platform/tx"
)

// PostgresStore persists verifications in delivery_verifications.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const verificationColumns = `id, receiver_id, owner_id, status, death_certificate_url,
	family_relation_certificate_url, admin_note, created_at, decided_at`

func (s *PostgresStore) Create(ctx context.Context, v *models.Verification) error {
	query := `INSERT INTO delivery_verifications (` + verificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.execer(ctx).ExecContext(ctx, query, verificationArgs(v)...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("pending verification for %s: %w", v.ReceiverID, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert verification: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, verificationID id.VerificationID) (*models.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM delivery_verifications WHERE id = $1`
	return s.findOne(ctx, query, verificationID.String())
}

func (s *PostgresStore) LatestByReceiver(ctx context.Context, receiverID id.ReceiverID) (*models.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM delivery_verifications
		WHERE receiver_id = $1 ORDER BY created_at DESC LIMIT 1`
	return s.findOne(ctx, query, receiverID.String())
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*models.Verification, error) {
	v, err := scanVerification(s.execer(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("verification: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find verification: %w", err)
	}
	return v, nil
}

func (s *PostgresStore) ListByStatus(ctx context.Context, status models.Status) ([]*models.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM delivery_verifications
		WHERE status = $1 ORDER BY created_at`
	rows, err := s.execer(ctx).QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Verification, 0)
	for rows.Next() {
		v, err := scanVerification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan verification: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}
	return out, nil
}

// Execute locks the row with FOR UPDATE. When ctx already carries a
// transaction the work joins it and the caller commits.
func (s *PostgresStore) Execute(ctx context.Context, verificationID id.VerificationID,
	validate func(*models.Verification) error,
	mutate func(*models.Verification),
) (*models.Verification, error) {
	if tx, ok := txcontext.From(ctx); ok {
		return s.executeIn(ctx, tx, verificationID, validate, mutate)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin verification tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	v, err := s.executeIn(ctx, tx, verificationID, validate, mutate)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit verification tx: %w", err)
	}
	return v, nil
}

func (s *PostgresStore) executeIn(ctx context.Context, tx *sql.Tx, verificationID id.VerificationID,
	validate func(*models.Verification) error,
	mutate func(*models.Verification),
) (*models.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM delivery_verifications WHERE id = $1 FOR UPDATE`
	v, err := scanVerification(tx.QueryRowContext(ctx, query, verificationID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("verification %s: %w", verificationID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("lock verification: %w", err)
	}
	if err := validate(v); err != nil {
		return nil, err
	}
	mutate(v)

	_, err = tx.ExecContext(ctx, `
		UPDATE delivery_verifications
		SET status = $2, admin_note = $3, decided_at = $4
		WHERE id = $1`,
		v.ID.String(), string(v.Status), nullString(v.AdminNote), nullTime(v.DecidedAt))
	if err != nil {
		return nil, fmt.Errorf("update verification: %w", err)
	}
	return v, nil
}

func verificationArgs(v *models.Verification) []any {
	return []any{
		v.ID.String(),
		v.ReceiverID.String(),
		v.OwnerID.String(),
		string(v.Status),
		v.DeathCertificateURL,
		v.FamilyRelationCertificateURL,
		nullString(v.AdminNote),
		v.CreatedAt,
		nullTime(v.DecidedAt),
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

type verificationRow interface {
	Scan(dest ...any) error
}

func scanVerification(row verificationRow) (*models.Verification, error) {
	var (
		rawID, rawReceiver, rawOwner, status string
		v                                    models.Verification
		adminNote                            sql.NullString
		decidedAt                            sql.NullTime
	)
	if err := row.Scan(&rawID, &rawReceiver, &rawOwner, &status,
		&v.DeathCertificateURL, &v.FamilyRelationCertificateURL,
		&adminNote, &v.CreatedAt, &decidedAt); err != nil {
		return nil, err
	}
	verificationID, err := id.ParseVerificationID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan verification id: %w", err)
	}
	receiverID, err := id.ParseReceiverID(rawReceiver)
	if err != nil {
		return nil, fmt.Errorf("scan receiver id: %w", err)
	}
	ownerID, err := id.ParseOwnerID(rawOwner)
	if err != nil {
		return nil, fmt.Errorf("scan owner id: %w", err)
	}
	v.ID = verificationID
	v.ReceiverID = receiverID
	v.OwnerID = ownerID
	v.Status = models.Status(status)
	if adminNote.Valid {
		note := adminNote.String
		v.AdminNote = &note
	}
	if decidedAt.Valid {
		t := decidedAt.Time
		v.DecidedAt = &t
	}
	return &v, nil
}
