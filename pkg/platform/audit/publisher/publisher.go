// Package publisher fans domain audit events into an audit.Store, either
// synchronously or through a bounded async buffer.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	id "afternote/pkg/domain"
	audit "afternote/pkg/platform/audit"
)

var (
	ErrBufferFull = errors.New("audit buffer full")
	ErrClosed     = errors.New("audit publisher closed")
)

type Store interface {
	Append(ctx context.Context, event audit.Event) error
	ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]audit.Event, error)
}

// Publisher implements audit.Emitter.
type Publisher struct {
	store  Store
	logger *slog.Logger
	buffer int

	mu     sync.RWMutex
	closed bool
	queue  chan audit.Event
	done   chan struct{}
}

type Option func(*Publisher)

// WithAsyncBuffer makes Emit enqueue instead of writing inline. Events that do
// not fit are rejected with ErrBufferFull.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.buffer = size
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer > 0 {
		p.queue = make(chan audit.Event, p.buffer)
		p.done = make(chan struct{})
		go p.drain()
	}
	return p
}

func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.queue == nil {
		return p.store.Append(ctx, event)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBufferFull
	}
}

// List returns the stored events for an owner.
func (p *Publisher) List(ctx context.Context, ownerID id.OwnerID) ([]audit.Event, error) {
	return p.store.ListByOwner(ctx, ownerID)
}

// Close stops accepting events and waits for the async buffer to drain.
func (p *Publisher) Close() {
	if p.queue == nil {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()
	<-p.done
}

func (p *Publisher) drain() {
	defer close(p.done)
	for event := range p.queue {
		if err := p.store.Append(context.Background(), event); err != nil && p.logger != nil {
			p.logger.Error("failed to persist audit event",
				"event", event.Action,
				"error", err,
			)
		}
	}
}
