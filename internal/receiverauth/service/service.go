package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	condition "afternote/internal/condition/models"
	lockout "afternote/internal/lockout/models"
	"afternote/internal/platform/config"
	"afternote/internal/platform/objectstore"
	"afternote/internal/receiverauth/metrics"
	"afternote/internal/receiverauth/models"
	review "afternote/internal/review/models"
	trigger "afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/audit"
)

var tracer = otel.Tracer("afternote/receiverauth")

type ReceiverStore interface {
	Create(ctx context.Context, r *models.Receiver) error
	FindByID(ctx context.Context, receiverID id.ReceiverID) (*models.Receiver, error)
	FindByDigest(ctx context.Context, digest string) (*models.Receiver, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Receiver, error)
}

type EmailCodeStore interface {
	Save(ctx context.Context, code *models.EmailCode, ttl time.Duration) error
	Find(ctx context.Context, email string) (*models.EmailCode, error)
	IncrementAttempts(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// CapabilityCache maps master key digests to capabilities. Get returns nil
// on a miss.
type CapabilityCache interface {
	Get(ctx context.Context, digest string) (*models.AccessCapability, error)
	Set(ctx context.Context, digest string, capability models.AccessCapability, ttl time.Duration) error
}

// CodeSender delivers an email verification code.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

type Lockout interface {
	Check(ctx context.Context, key string) (*lockout.Result, error)
	RecordFailure(ctx context.Context, key string) (*lockout.Lockout, error)
	Clear(ctx context.Context, key string) error
}

type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (*objectstore.PresignedUpload, error)
}

type ConditionLoader interface {
	Load(ctx context.Context, ownerID id.OwnerID) (*condition.DeliveryCondition, error)
}

// ReleaseLookup returns nil when the owner has not been released.
type ReleaseLookup interface {
	ReleaseFor(ctx context.Context, ownerID id.OwnerID) (*trigger.Release, error)
}

// ReviewLookup returns the status of the receiver's latest submission, or
// nil when they never submitted.
type ReviewLookup interface {
	LatestStatus(ctx context.Context, receiverID id.ReceiverID) (*review.Status, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// AccessSources are the facts Authorize combines.
type AccessSources struct {
	Conditions ConditionLoader
	Releases   ReleaseLookup
	Reviews    ReviewLookup
}

// Service owns receiver registration, receiver verification and
// capability checks.
type Service struct {
	receivers      ReceiverStore
	access         AccessSources
	pepper         []byte
	emailCodes     EmailCodeStore
	codeSender     CodeSender
	lockout        Lockout
	presigner      Presigner
	cache          CapabilityCache
	cfg            config.DeliveryConfig
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

func WithConfig(cfg config.DeliveryConfig) Option {
	return func(s *Service) {
		s.cfg = cfg
	}
}

// WithEmailCodes enables the email step.
func WithEmailCodes(store EmailCodeStore, sender CodeSender) Option {
	return func(s *Service) {
		s.emailCodes = store
		s.codeSender = sender
	}
}

func WithLockout(l Lockout) Option {
	return func(s *Service) {
		s.lockout = l
	}
}

func WithPresigner(p Presigner) Option {
	return func(s *Service) {
		s.presigner = p
	}
}

func WithCapabilityCache(c CapabilityCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func New(receivers ReceiverStore, access AccessSources, pepper []byte, opts ...Option) (*Service, error) {
	if receivers == nil {
		return nil, errors.New("receiver store is required")
	}
	if access.Conditions == nil || access.Releases == nil || access.Reviews == nil {
		return nil, errors.New("access sources are required")
	}
	if len(pepper) == 0 {
		return nil, errors.New("master key pepper is required")
	}
	s := &Service{
		receivers: receivers,
		access:    access,
		pepper:    pepper,
		cfg:       config.Default().Delivery,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.emailCodes != nil && s.codeSender == nil {
		s.codeSender = NewLogCodeSender(s.logger)
	}
	return s, nil
}
