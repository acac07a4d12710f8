package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "afternote/pkg/domain"
	audit "afternote/pkg/platform/audit"
	txcontext "afternote/pkg/platform/tx"
)

// Store implements audit.Store using the transactional outbox pattern.
// Events are written to the outbox table, inside the caller's transaction when
// one is in the context, and published to Kafka by the outbox relay.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Payload is the JSON structure published to Kafka.
type Payload struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Timestamp  string `json:"timestamp"`
	OwnerID    string `json:"ownerId,omitempty"`
	ReceiverID string `json:"receiverId,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Action     string `json:"action"`
	Decision   string `json:"decision,omitempty"`
	Reason     string `json:"reason,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
	ActorID    string `json:"actorId,omitempty"`
	Device     string `json:"device,omitempty"`
}

// Entry is an unpublished outbox row.
type Entry struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	eventID := uuid.New()
	category := audit.AuditEvent(event.Action).Category()

	payload := Payload{
		ID:         eventID.String(),
		Category:   string(category),
		Timestamp:  event.Timestamp.UTC().Format(time.RFC3339Nano),
		ReceiverID: event.ReceiverID,
		Subject:    event.Subject,
		Action:     event.Action,
		Decision:   event.Decision,
		Reason:     event.Reason,
		RequestID:  event.RequestID,
		ActorID:    event.ActorID,
		Device:     event.Device,
	}
	if !event.OwnerID.IsNil() {
		payload.OwnerID = event.OwnerID.String()
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	aggregateType := "audit"
	aggregateID := eventID.String()
	if !event.OwnerID.IsNil() {
		aggregateType = "owner"
		aggregateID = event.OwnerID.String()
	}

	query := `
		INSERT INTO outbox (id, aggregate_type, aggregate_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.execer(ctx).ExecContext(ctx, query,
		eventID,
		aggregateType,
		aggregateID,
		event.Action,
		payloadBytes,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

// ListByOwner returns an owner's events, newest first.
func (s *Store) ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]audit.Event, error) {
	query := `
		SELECT payload
		FROM outbox
		WHERE aggregate_type = 'owner' AND aggregate_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("query outbox: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan outbox payload: %w", err)
		}
		var p Payload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode outbox payload: %w", err)
		}
		events = append(events, p.toEvent(ownerID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox: %w", err)
	}
	return events, nil
}

func (p Payload) toEvent(ownerID id.OwnerID) audit.Event {
	ts, _ := time.Parse(time.RFC3339Nano, p.Timestamp)
	return audit.Event{
		Category:   audit.EventCategory(p.Category),
		Timestamp:  ts,
		OwnerID:    ownerID,
		ReceiverID: p.ReceiverID,
		Subject:    p.Subject,
		Action:     p.Action,
		Decision:   p.Decision,
		Reason:     p.Reason,
		RequestID:  p.RequestID,
		ActorID:    p.ActorID,
		Device:     p.Device,
	}
}

// FetchUnpublished returns up to limit rows not yet relayed, oldest first.
// A single relay per deployment is assumed; Kafka consumers dedupe on id.
func (s *Store) FetchUnpublished(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query unpublished outbox: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox: %w", err)
	}
	return entries, nil
}

// MarkPublished stamps the given rows as relayed.
func (s *Store) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, v := range ids {
		raw[i] = v.String()
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE outbox SET published_at = $2 WHERE id = ANY($1::uuid[])`,
		pq.Array(raw), at,
	)
	if err != nil {
		return fmt.Errorf("mark outbox published: %w", err)
	}
	return nil
}
