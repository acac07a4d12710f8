package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	condition "afternote/internal/condition/models"
	"afternote/internal/platform/config"
	receiverauth "afternote/internal/receiverauth/models"
	"afternote/internal/review/metrics"
	"afternote/internal/review/models"
	trigger "afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/audit"
)

var tracer = otel.Tracer("afternote/review")

// Store persists verifications. Create fails with sentinel.ErrConflict when
// the receiver already has a PENDING record. Execute runs validate-then-
// mutate under the store's lock.
type Store interface {
	Create(ctx context.Context, v *models.Verification) error
	FindByID(ctx context.Context, verificationID id.VerificationID) (*models.Verification, error)
	LatestByReceiver(ctx context.Context, receiverID id.ReceiverID) (*models.Verification, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Verification, error)
	Execute(ctx context.Context, verificationID id.VerificationID,
		validate func(*models.Verification) error,
		mutate func(*models.Verification),
	) (*models.Verification, error)
}

// StatusCache holds each receiver's latest verification. Get returns nil on
// a miss.
type StatusCache interface {
	Get(ctx context.Context, receiverID id.ReceiverID) (*models.Verification, error)
	Set(ctx context.Context, v *models.Verification, ttl time.Duration) error
	Invalidate(ctx context.Context, receiverID id.ReceiverID) error
}

// ConditionLoader returns an owner's delivery condition, or not_found.
type ConditionLoader interface {
	Load(ctx context.Context, ownerID id.OwnerID) (*condition.DeliveryCondition, error)
}

// Releases reads and records owner releases. ReleaseFor returns nil when the
// owner's trigger has not fired.
type Releases interface {
	MarkReleased(ctx context.Context, ownerID id.OwnerID, reason string) (*trigger.Release, error)
	ReleaseFor(ctx context.Context, ownerID id.OwnerID) (*trigger.Release, error)
}

// TxRunner runs fn atomically. Stores pick the transaction up from the
// context fn receives.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Capability is the receiver identity a submission is made under.
type Capability = receiverauth.AccessCapability

type directTx struct{}

func (directTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Service owns delivery verification submissions and admin decisions.
type Service struct {
	store          Store
	conditions     ConditionLoader
	releases       Releases
	tx             TxRunner
	cache          StatusCache
	cacheTTL       time.Duration
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
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

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTx makes Approve and any release it writes one unit.
func WithTx(tx TxRunner) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

func WithStatusCache(cache StatusCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func New(store Store, conditions ConditionLoader, releases Releases, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("verification store is required")
	}
	if conditions == nil {
		return nil, errors.New("condition loader is required")
	}
	if releases == nil {
		return nil, errors.New("release source is required")
	}
	s := &Service{
		store:      store,
		conditions: conditions,
		releases:   releases,
		tx:       directTx{},
		cacheTTL: config.Default().Delivery.StatusCacheTTL,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
