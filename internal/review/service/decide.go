package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"afternote/internal/review/models"
	trigger "afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
)

// ListPending returns verifications awaiting a decision, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]*models.Verification, error) {
	out, err := s.store.ListByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list verifications")
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, verificationID id.VerificationID) (*models.Verification, error) {
	v, err := s.store.FindByID(ctx, verificationID)
	if err != nil {
		return nil, wrapVerificationErr(err, "failed to load verification")
	}
	return v, nil
}

// Approve decides a PENDING verification. Under RECEIVER_REQUEST the
// approval is the release event and is recorded in the same transaction;
// other triggers release only through the evaluator.
func (s *Service) Approve(ctx context.Context, verificationID id.VerificationID, note *string) (*models.Verification, error) {
	ctx, span := tracer.Start(ctx, "review.Approve")
	defer span.End()
	span.SetAttributes(attribute.String("verification.id", verificationID.String()))

	if err := models.ValidateAdminNote(note); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	now := requestcontext.Now(ctx)

	var approved *models.Verification
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.store.Execute(ctx, verificationID,
			func(v *models.Verification) error { return v.CanApprove() },
			func(v *models.Verification) { v.ApplyApproval(note, now) },
		)
		if err != nil {
			return err
		}
		cond, err := s.loadCondition(ctx, v.OwnerID)
		if err != nil {
			return err
		}
		if trigger.ApprovalReleases(cond) {
			if _, err := s.releases.MarkReleased(ctx, v.OwnerID, trigger.ReasonVerificationApproved); err != nil {
				return err
			}
		}
		approved = v
		return nil
	})
	if err != nil {
		return nil, wrapDecisionErr(err, "failed to approve verification")
	}

	s.decided(ctx, approved, audit.EventVerificationApproved)
	return approved, nil
}

// Reject decides a PENDING verification. The receiver may submit again.
func (s *Service) Reject(ctx context.Context, verificationID id.VerificationID, note *string) (*models.Verification, error) {
	ctx, span := tracer.Start(ctx, "review.Reject")
	defer span.End()
	span.SetAttributes(attribute.String("verification.id", verificationID.String()))

	if err := models.ValidateAdminNote(note); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	now := requestcontext.Now(ctx)

	rejected, err := s.store.Execute(ctx, verificationID,
		func(v *models.Verification) error { return v.CanReject() },
		func(v *models.Verification) { v.ApplyRejection(note, now) },
	)
	if err != nil {
		return nil, wrapDecisionErr(err, "failed to reject verification")
	}

	s.decided(ctx, rejected, audit.EventVerificationRejected)
	return rejected, nil
}

func (s *Service) decided(ctx context.Context, v *models.Verification, event audit.AuditEvent) {
	s.invalidate(ctx, v.ReceiverID)
	if v.DecidedAt != nil {
		s.metrics.IncrementDecision(string(v.Status), v.DecidedAt.Sub(v.CreatedAt))
	}
	audit.LogAudit(ctx, s.logger, s.auditPublisher, event,
		"owner_id", v.OwnerID.String(),
		"receiver_id", v.ReceiverID.String(),
		"decision", string(v.Status),
		"actor_id", "admin",
	)
}

func wrapDecisionErr(err error, msg string) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeConflict, dErrors.MessageOf(err))
	}
	return wrapVerificationErr(err, msg)
}

func wrapVerificationErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "verification not found")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
