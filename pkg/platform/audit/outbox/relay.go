// Package outbox relays audit rows written by the postgres store to Kafka.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"afternote/pkg/platform/audit/store/postgres"
	"afternote/pkg/platform/circuit"
)

type Source interface {
	FetchUnpublished(ctx context.Context, limit int) ([]postgres.Entry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// Relay polls the outbox and publishes each row keyed by aggregate id, so
// all events for one owner land on the same partition in order.
type Relay struct {
	source    Source
	producer  Producer
	topic     string
	interval  time.Duration
	batchSize int
	breaker   *circuit.Breaker
	logger    *slog.Logger
}

type Option func(*Relay)

func WithInterval(d time.Duration) Option {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) {
		r.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(r *Relay) {
		r.breaker = b
	}
}

func NewRelay(source Source, producer Producer, topic string, opts ...Option) *Relay {
	r := &Relay{
		source:    source,
		producer:  producer,
		topic:     topic,
		interval:  2 * time.Second,
		batchSize: 100,
		breaker:   circuit.New("audit-outbox", circuit.WithFailureThreshold(3), circuit.WithSuccessThreshold(1)),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run relays until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil {
				r.logger.WarnContext(ctx, "audit outbox relay failed", "error", err)
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many rows were marked. While
// the breaker is open only the first row is sent, as a probe.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	limit := r.batchSize
	if r.breaker.IsOpen() {
		limit = 1
	}
	entries, err := r.source.FetchUnpublished(ctx, limit)
	if err != nil {
		return 0, err
	}

	published := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if err := r.producer.Publish(ctx, r.topic, []byte(e.AggregateID), e.Payload); err != nil {
			if _, change := r.breaker.RecordFailure(); change.Opened {
				r.logger.WarnContext(ctx, "audit outbox circuit opened", "breaker", r.breaker.Name())
			}
			break
		}
		if _, change := r.breaker.RecordSuccess(); change.Closed {
			r.logger.InfoContext(ctx, "audit outbox circuit closed", "breaker", r.breaker.Name())
		}
		published = append(published, e.ID)
	}

	if err := r.source.MarkPublished(ctx, published, time.Now()); err != nil {
		return 0, err
	}
	return len(published), nil
}
