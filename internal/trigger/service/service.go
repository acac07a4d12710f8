package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	condition "afternote/internal/condition/models"
	"afternote/internal/trigger/metrics"
	"afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
)

var tracer = otel.Tracer("afternote/trigger")

const defaultConcurrency = 8

// Store holds at most one release per owner.
type Store interface {
	CreateIfAbsent(ctx context.Context, release *models.Release) (*models.Release, bool, error)
	FindByOwner(ctx context.Context, ownerID id.OwnerID) (*models.Release, error)
}

// ConditionLoader returns the owner's saved condition or a not_found error.
type ConditionLoader interface {
	Load(ctx context.Context, ownerID id.OwnerID) (*condition.DeliveryCondition, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// BatchResult is one owner's evaluation inside a batch. Err is set instead
// of Outcome when that owner could not be evaluated.
type BatchResult struct {
	OwnerID id.OwnerID
	Outcome *models.Outcome
	Err     error
}

// Service evaluates delivery triggers and records releases.
type Service struct {
	store          Store
	conditions     ConditionLoader
	policy         models.Policy
	concurrency    int
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

func WithPolicy(p models.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithConcurrency bounds parallel evaluations in EvaluateBatch.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func New(store Store, conditions ConditionLoader, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("release store is required")
	}
	if conditions == nil {
		return nil, errors.New("condition loader is required")
	}
	s := &Service{
		store:       store,
		conditions:  conditions,
		policy:      models.DefaultPolicy(),
		concurrency: defaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EvaluateOwner evaluates the owner's condition against signal and records a
// release when it fires. Re-evaluating a released owner keeps the first
// release.
func (s *Service) EvaluateOwner(ctx context.Context, ownerID id.OwnerID, signal models.Signal) (*models.Outcome, error) {
	ctx, span := tracer.Start(ctx, "trigger.EvaluateOwner")
	defer span.End()

	cond, err := s.conditions.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	outcome := models.Evaluate(cond, signal, s.policy)
	span.SetAttributes(
		attribute.String("delivery.trigger", string(cond.TriggerCondition)),
		attribute.Bool("delivery.release", outcome.ShouldRelease),
	)
	s.metrics.IncrementEvaluation(string(cond.TriggerCondition), outcome.ShouldRelease)

	if outcome.ShouldRelease {
		if _, err := s.MarkReleased(ctx, ownerID, outcome.Reason); err != nil {
			return nil, err
		}
	}
	return &outcome, nil
}

// EvaluateBatch evaluates every signal with bounded parallelism. A failure
// for one owner is reported in its result and does not stop the others.
// Results keep the input order.
func (s *Service) EvaluateBatch(ctx context.Context, signals []models.OwnerSignal) ([]BatchResult, error) {
	ctx, span := tracer.Start(ctx, "trigger.EvaluateBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.size", len(signals)))

	start := time.Now()
	defer func() { s.metrics.ObserveBatch(time.Since(start)) }()

	results := make([]BatchResult, len(signals))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, sig := range signals {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := s.EvaluateOwner(gctx, sig.OwnerID, sig.Signal)
			results[i] = BatchResult{OwnerID: sig.OwnerID, Outcome: outcome, Err: err}
			if err != nil {
				s.logger.WarnContext(gctx, "trigger evaluation failed",
					"owner_id", sig.OwnerID.String(),
					"error", err,
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "trigger batch cancelled")
	}
	return results, nil
}

// MarkReleased records the owner's release. It is idempotent: the first
// release and its reason are kept.
func (s *Service) MarkReleased(ctx context.Context, ownerID id.OwnerID, reason string) (*models.Release, error) {
	release, created, err := s.store.CreateIfAbsent(ctx, &models.Release{
		OwnerID:    ownerID,
		ReleasedAt: requestcontext.Now(ctx),
		Reason:     reason,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record release")
	}
	if created {
		s.metrics.IncrementRelease(reason)
		audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventDeliveryReleased,
			"owner_id", ownerID.String(),
			"reason", reason,
		)
	}
	return release, nil
}

// ReleaseFor returns the owner's release, or nil when the trigger has not
// fired.
func (s *Service) ReleaseFor(ctx context.Context, ownerID id.OwnerID) (*models.Release, error) {
	release, err := s.store.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load release")
	}
	return release, nil
}
