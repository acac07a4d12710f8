// Package service serves an owner's legacy content to a verified receiver.
// Every read is limited to the share set of the capability it is given.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"afternote/internal/legacy/metrics"
	"afternote/internal/legacy/models"
	receiverauth "afternote/internal/receiverauth/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
)

var tracer = otel.Tracer("afternote/legacy")

// Store reads content within a Scope. Find* return sentinel.ErrNotFound for
// anything outside it. MarkTimeLetterRead reports whether it set ReadAt.
type Store interface {
	ListTimeLetters(ctx context.Context, scope models.Scope, page models.PageRequest) ([]*models.TimeLetter, int, error)
	FindTimeLetter(ctx context.Context, scope models.Scope, deliveryID id.TimeLetterReceiverID) (*models.TimeLetter, error)
	MarkTimeLetterRead(ctx context.Context, scope models.Scope, deliveryID id.TimeLetterReceiverID, at time.Time) (bool, error)
	CountTimeLetters(ctx context.Context, scope models.Scope) (total int, unread int, err error)

	ListMindRecords(ctx context.Context, scope models.Scope, page models.PageRequest) ([]*models.MindRecord, int, error)
	FindMindRecord(ctx context.Context, scope models.Scope, recordID id.MindRecordID) (*models.MindRecord, error)
	CountMindRecords(ctx context.Context, scope models.Scope) (int, error)

	ListAfternotes(ctx context.Context, scope models.Scope, page models.PageRequest) ([]*models.Afternote, int, error)
	FindAfternote(ctx context.Context, scope models.Scope, noteID id.AfternoteID) (*models.Afternote, error)
	CountAfternotes(ctx context.Context, scope models.Scope) (int, error)
}

// ReceiverLookup resolves the sender name shown next to shared content.
type ReceiverLookup interface {
	FindByID(ctx context.Context, receiverID id.ReceiverID) (*receiverauth.Receiver, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Capability = receiverauth.AccessCapability

const (
	kindTimeLetter = "time_letter"
	kindMindRecord = "mind_record"
	kindAfternote  = "afternote"
)

type Service struct {
	store          Store
	receivers      ReceiverLookup
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

// WithSenderNames fills SenderName on everything returned.
func WithSenderNames(receivers ReceiverLookup) Option {
	return func(s *Service) {
		s.receivers = receivers
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("legacy store is required")
	}
	s := &Service{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func scopeOf(capability Capability) (models.Scope, error) {
	if capability.IsZero() {
		return models.Scope{}, dErrors.New(dErrors.CodeUnauthorized, "invalid auth code")
	}
	return models.Scope{OwnerID: capability.OwnerID, ReceiverID: capability.ReceiverID}, nil
}

func (s *Service) senderName(ctx context.Context, receiverID id.ReceiverID) (string, error) {
	if s.receivers == nil {
		return "", nil
	}
	receiver, err := s.receivers.FindByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeUnauthorized, "invalid auth code")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load receiver")
	}
	return receiver.SenderName, nil
}

// notFound maps store misses to one response whether the id is unknown or
// belongs to someone else.
func (s *Service) notFound(err error, kind, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		s.metrics.IncrementMiss(kind)
		return dErrors.New(dErrors.CodeNotFound, message)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+kind)
}

func (s *Service) accessed(ctx context.Context, scope models.Scope, kind, resourceID string) {
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("legacy.kind", kind),
		attribute.String("legacy.resource_id", resourceID),
	)
	s.metrics.IncrementRead(kind, "get")
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventLegacyAccessed,
		"owner_id", scope.OwnerID.String(),
		"receiver_id", scope.ReceiverID.String(),
		"kind", kind,
		"resource_id", resourceID,
	)
}
