package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"afternote/internal/condition/metrics"
	"afternote/internal/condition/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
)

var tracer = otel.Tracer("afternote/condition")

// Store persists one condition per owner. Upsert replaces in place; Execute
// runs validate-then-mutate under the store's lock (mutex or FOR UPDATE).
type Store interface {
	Upsert(ctx context.Context, condition *models.DeliveryCondition) error
	FindByOwner(ctx context.Context, ownerID id.OwnerID) (*models.DeliveryCondition, error)
	Execute(ctx context.Context, ownerID id.OwnerID,
		validate func(*models.DeliveryCondition) error,
		mutate func(*models.DeliveryCondition),
	) (*models.DeliveryCondition, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// SaveRequest carries the owner's desired condition. Enum fields are raw
// strings; the service rejects unknown values.
type SaveRequest struct {
	DeliveryMethod   string
	TriggerCondition string
	TriggerDate      *id.Date
	LeaveMessage     *string
	InactivityDays   *int
}

// Service owns delivery condition writes and reads.
type Service struct {
	store          Store
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

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("delivery condition store is required")
	}
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// InvalidConditionError reports a condition that cannot be saved. It carries
// the validation code so handlers map it to 400.
func InvalidConditionError(msg string) error {
	return dErrors.New(dErrors.CodeValidation, msg)
}

// Save validates and stores the owner's condition, replacing any previous
// one. A request without leaveMessage keeps the stored message.
func (s *Service) Save(ctx context.Context, ownerID id.OwnerID, req SaveRequest) (*models.DeliveryCondition, error) {
	ctx, span := tracer.Start(ctx, "condition.Save")
	defer span.End()

	method, err := models.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		s.metrics.IncrementInvalid()
		return nil, InvalidConditionError(dErrors.MessageOf(err))
	}
	trigger, err := models.ParseTriggerCondition(req.TriggerCondition)
	if err != nil {
		s.metrics.IncrementInvalid()
		return nil, InvalidConditionError(dErrors.MessageOf(err))
	}
	span.SetAttributes(
		attribute.String("delivery.method", string(method)),
		attribute.String("delivery.trigger", string(trigger)),
	)

	condition, err := models.NewDeliveryCondition(ownerID, method, trigger,
		req.TriggerDate, req.LeaveMessage, req.InactivityDays, requestcontext.Now(ctx))
	if err != nil {
		s.metrics.IncrementInvalid()
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, InvalidConditionError(dErrors.MessageOf(err))
		}
		return nil, err
	}

	if req.LeaveMessage == nil {
		existing, err := s.store.FindByOwner(ctx, ownerID)
		switch {
		case err == nil:
			condition.LeaveMessage = existing.LeaveMessage
		case !errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load delivery condition")
		}
	}

	if err := s.store.Upsert(ctx, condition); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save delivery condition")
	}

	s.metrics.IncrementSaved(string(trigger), string(method))
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventDeliveryConditionSaved,
		"owner_id", ownerID.String(),
		"decision", string(method),
		"reason", string(trigger),
	)
	return condition, nil
}

// Load returns the owner's condition or not_found when none was saved.
func (s *Service) Load(ctx context.Context, ownerID id.OwnerID) (*models.DeliveryCondition, error) {
	condition, err := s.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, wrapConditionErr(err, "failed to load delivery condition")
	}
	return condition, nil
}

// UpdateLeaveMessage replaces only the farewell message of an existing
// condition.
func (s *Service) UpdateLeaveMessage(ctx context.Context, ownerID id.OwnerID, message *string) (*models.DeliveryCondition, error) {
	ctx, span := tracer.Start(ctx, "condition.UpdateLeaveMessage")
	defer span.End()

	now := requestcontext.Now(ctx)
	condition, err := s.store.Execute(ctx, ownerID,
		func(c *models.DeliveryCondition) error {
			return c.CanApplyLeaveMessage(message)
		},
		func(c *models.DeliveryCondition) {
			c.ApplyLeaveMessage(message, now)
		},
	)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, InvalidConditionError(dErrors.MessageOf(err))
		}
		return nil, wrapConditionErr(err, "failed to update leave message")
	}

	s.metrics.IncrementLeaveMessage()
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventDeliveryConditionSaved,
		"owner_id", ownerID.String(),
		"reason", "leave_message",
	)
	return condition, nil
}

func wrapConditionErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "delivery condition not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
