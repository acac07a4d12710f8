package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"afternote/internal/lockout/models"
	"afternote/internal/platform/config"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/privacy"
	"afternote/pkg/requestcontext"
)

// Store is pure I/O. RecordFailure must increment atomically.
type Store interface {
	Get(ctx context.Context, identifier string) (*models.Lockout, error)
	RecordFailure(ctx context.Context, identifier string, now, cutoff time.Time) (*models.Lockout, error)
	Update(ctx context.Context, record *models.Lockout) error
	Clear(ctx context.Context, identifier string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service throttles master key guessing per client key.
type Service struct {
	store          Store
	auditPublisher AuditPublisher
	logger         *slog.Logger
	config         config.LockoutConfig
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithConfig(cfg config.LockoutConfig) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("lockout store is required")
	}
	svc := &Service{
		store:  store,
		config: config.Default().Lockout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Check reports whether key may attempt another verification.
func (s *Service) Check(ctx context.Context, key string) (*models.Result, error) {
	record, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to get lockout record")
	}
	// Zero record keeps one code path for known and unknown keys.
	if record == nil {
		record = &models.Lockout{}
	}
	now := requestcontext.Now(ctx)

	if record.IsLockedAt(now) {
		return &models.Result{
			Allowed:      false,
			RetryAfter:   max(record.LockedUntil.Sub(now), 0),
			FailureCount: record.FailureCount,
		}, nil
	}
	if record.InWindow(now, s.config.Window) && record.FailureCount >= s.config.AttemptsPerWindow {
		resetAt := record.LastFailureAt.Add(s.config.Window)
		return &models.Result{
			Allowed:      false,
			RetryAfter:   max(resetAt.Sub(now), 0),
			FailureCount: record.FailureCount,
		}, nil
	}
	return &models.Result{Allowed: true, FailureCount: record.FailureCount}, nil
}

// RecordFailure counts one failed attempt and applies the hard lock once
// the window threshold is reached.
func (s *Service) RecordFailure(ctx context.Context, key string) (*models.Lockout, error) {
	now := requestcontext.Now(ctx)
	current, err := s.store.RecordFailure(ctx, key, now, now.Add(-s.config.Window))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record verification failure")
	}

	if current.ShouldHardLock(s.config.AttemptsPerWindow, now) {
		current.ApplyHardLock(s.config.HardLockDuration, now)
		if err := s.store.Update(ctx, current); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update lockout record")
		}
		audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventLockoutTriggered,
			"reason", privacy.AnonymizeIP(key),
			"locked_until", current.LockedUntil.UTC().Format(time.RFC3339),
		)
	}
	return current, nil
}

// Clear drops the key's record after a successful verification.
func (s *Service) Clear(ctx context.Context, key string) error {
	existing, err := s.store.Get(ctx, key)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to get lockout record")
	}
	if existing == nil {
		return nil
	}
	if err := s.store.Clear(ctx, key); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear lockout record")
	}
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventLockoutCleared,
		"reason", privacy.AnonymizeIP(key),
	)
	return nil
}
