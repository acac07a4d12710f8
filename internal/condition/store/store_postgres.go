package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"afternote/internal/condition/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
	txcontext "afternote/pkg/platform/tx"
)

// PostgresStore persists delivery conditions in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const selectCondition = `
	SELECT owner_id, delivery_method, trigger_condition, trigger_date, leave_message, inactivity_days, updated_at
	FROM delivery_conditions
	WHERE owner_id = $1
`

func (s *PostgresStore) Upsert(ctx context.Context, c *models.DeliveryCondition) error {
	query := `
		INSERT INTO delivery_conditions
			(owner_id, delivery_method, trigger_condition, trigger_date, leave_message, inactivity_days, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id) DO UPDATE SET
			delivery_method = EXCLUDED.delivery_method,
			trigger_condition = EXCLUDED.trigger_condition,
			trigger_date = EXCLUDED.trigger_date,
			leave_message = EXCLUDED.leave_message,
			inactivity_days = EXCLUDED.inactivity_days,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.execer(ctx).ExecContext(ctx, query, conditionArgs(c)...)
	if err != nil {
		return fmt.Errorf("upsert delivery condition: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByOwner(ctx context.Context, ownerID id.OwnerID) (*models.DeliveryCondition, error) {
	c, err := scanCondition(s.execer(ctx).QueryRowContext(ctx, selectCondition, ownerID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("delivery condition for %s: %w", ownerID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find delivery condition: %w", err)
	}
	return c, nil
}

// Execute locks the owner's row with FOR UPDATE for the validate and mutate
// callbacks, then writes the result back.
func (s *PostgresStore) Execute(ctx context.Context, ownerID id.OwnerID,
	validate func(*models.DeliveryCondition) error,
	mutate func(*models.DeliveryCondition),
) (*models.DeliveryCondition, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin condition tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	c, err := scanCondition(tx.QueryRowContext(ctx, selectCondition+" FOR UPDATE", ownerID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("delivery condition for %s: %w", ownerID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("lock delivery condition: %w", err)
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	mutate(c)

	txCtx := txcontext.WithTx(ctx, tx)
	if err := s.Upsert(txCtx, c); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit condition tx: %w", err)
	}
	return c, nil
}

func conditionArgs(c *models.DeliveryCondition) []any {
	var triggerDate sql.NullTime
	if c.TriggerDate != nil {
		triggerDate = sql.NullTime{Time: c.TriggerDate.Time(), Valid: true}
	}
	var leaveMessage sql.NullString
	if c.LeaveMessage != nil {
		leaveMessage = sql.NullString{String: *c.LeaveMessage, Valid: true}
	}
	var inactivityDays sql.NullInt32
	if c.InactivityDays != nil {
		inactivityDays = sql.NullInt32{Int32: int32(*c.InactivityDays), Valid: true}
	}
	return []any{
		c.OwnerID.String(),
		string(c.DeliveryMethod),
		string(c.TriggerCondition),
		triggerDate,
		leaveMessage,
		inactivityDays,
		c.UpdatedAt,
	}
}

type conditionRow interface {
	Scan(dest ...any) error
}

func scanCondition(row conditionRow) (*models.DeliveryCondition, error) {
	var (
		ownerID        string
		method         string
		trigger        string
		triggerDate    sql.NullTime
		leaveMessage   sql.NullString
		inactivityDays sql.NullInt32
		updatedAt      time.Time
	)
	if err := row.Scan(&ownerID, &method, &trigger, &triggerDate, &leaveMessage, &inactivityDays, &updatedAt); err != nil {
		return nil, err
	}
	parsedOwner, err := id.ParseOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("scan owner id: %w", err)
	}
	c := &models.DeliveryCondition{
		OwnerID:          parsedOwner,
		DeliveryMethod:   models.DeliveryMethod(method),
		TriggerCondition: models.TriggerCondition(trigger),
		UpdatedAt:        updatedAt,
	}
	if triggerDate.Valid {
		d := id.DateOf(triggerDate.Time.UTC())
		c.TriggerDate = &d
	}
	if leaveMessage.Valid {
		m := leaveMessage.String
		c.LeaveMessage = &m
	}
	if inactivityDays.Valid {
		n := int(inactivityDays.Int32)
		c.InactivityDays = &n
	}
	return c, nil
}
