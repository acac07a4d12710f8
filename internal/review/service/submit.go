package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	condition "afternote/internal/condition/models"
	"afternote/internal/review/models"
	trigger "afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
)

var (
	errInProgress      = dErrors.New(dErrors.CodeConflict, "verification already in progress")
	errAlreadyApproved = dErrors.New(dErrors.CodeConflict, "verification already approved")
	errNotOpen         = dErrors.New(dErrors.CodeForbidden, "verification is not available yet")
)

// Submit files a receiver's certificates for review. The owner's trigger
// must have unlocked verification. A PENDING or APPROVED record for the same
// receiver is a conflict; after a rejection a new record is made.
func (s *Service) Submit(ctx context.Context, capability Capability, deathURL, familyURL string) (*models.Verification, error) {
	ctx, span := tracer.Start(ctx, "review.Submit")
	defer span.End()

	if capability.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid auth code")
	}

	open, err := s.verificationOpen(ctx, capability.OwnerID)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, errNotOpen
	}

	latest, err := s.store.LatestByReceiver(ctx, capability.ReceiverID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load verification")
	}
	if latest != nil {
		switch latest.Status {
		case models.StatusPending:
			return nil, errInProgress
		case models.StatusApproved:
			return nil, errAlreadyApproved
		}
	}

	v, err := models.NewVerification(id.VerificationID(uuid.New()), capability.ReceiverID, capability.OwnerID,
		deathURL, familyURL, requestcontext.Now(ctx))
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, err
	}
	if err := s.store.Create(ctx, v); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, errInProgress
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save verification")
	}

	s.invalidate(ctx, capability.ReceiverID)
	s.metrics.IncrementSubmitted()
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventVerificationSubmitted,
		"owner_id", capability.OwnerID.String(),
		"receiver_id", capability.ReceiverID.String(),
	)
	return v, nil
}

func (s *Service) verificationOpen(ctx context.Context, ownerID id.OwnerID) (bool, error) {
	cond, err := s.loadCondition(ctx, ownerID)
	if err != nil || cond == nil {
		return false, err
	}
	release, err := s.releases.ReleaseFor(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return trigger.VerificationOpen(cond, release), nil
}

// loadCondition returns nil when the owner has no condition.
func (s *Service) loadCondition(ctx context.Context, ownerID id.OwnerID) (*condition.DeliveryCondition, error) {
	cond, err := s.conditions.Load(ctx, ownerID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cond, nil
}

// GetStatus returns the receiver's latest verification, or not_found when
// nothing was submitted.
func (s *Service) GetStatus(ctx context.Context, capability Capability) (*models.Verification, error) {
	if capability.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid auth code")
	}
	v, err := s.latest(ctx, capability.ReceiverID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "no verification submitted")
	}
	return v, nil
}

// LatestStatus returns the status of the receiver's latest verification, or
// nil when none exists.
func (s *Service) LatestStatus(ctx context.Context, receiverID id.ReceiverID) (*models.Status, error) {
	v, err := s.latest(ctx, receiverID)
	if err != nil || v == nil {
		return nil, err
	}
	status := v.Status
	return &status, nil
}

func (s *Service) latest(ctx context.Context, receiverID id.ReceiverID) (*models.Verification, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, receiverID)
		if err != nil {
			s.logger.WarnContext(ctx, "review status cache read failed", "error", err)
		} else if cached != nil {
			s.metrics.IncrementStatusLookup("cache")
			return cached, nil
		}
	}

	v, err := s.store.LatestByReceiver(ctx, receiverID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementStatusLookup("none")
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load verification")
	}
	s.metrics.IncrementStatusLookup("store")

	if s.cache != nil {
		if err := s.cache.Set(ctx, v, s.cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "review status cache write failed", "error", err)
		}
	}
	return v, nil
}

func (s *Service) invalidate(ctx context.Context, receiverID id.ReceiverID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, receiverID); err != nil {
		s.logger.ErrorContext(ctx, "review status cache invalidation failed",
			"receiver_id", receiverID.String(),
			"error", err,
		)
	}
}
