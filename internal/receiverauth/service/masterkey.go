package service

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"afternote/internal/receiverauth/models"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/privacy"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
	"afternote/pkg/secrets"
)

const unknownClient = "unknown"

// VerifyMasterKey checks a receiver's master key. The key doubles as the
// authCode for every later receiver call.
func (s *Service) VerifyMasterKey(ctx context.Context, authCode string) (*models.VerifyResult, error) {
	ctx, span := tracer.Start(ctx, "receiverauth.VerifyMasterKey")
	defer span.End()

	authCode = strings.TrimSpace(authCode)
	if authCode == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "master key is required")
	}

	client := requestcontext.ClientIP(ctx)
	if client == "" {
		client = unknownClient
	}
	if s.lockout != nil {
		res, err := s.lockout.Check(ctx, client)
		if err != nil {
			return nil, err
		}
		if !res.Allowed {
			s.metrics.IncrementMasterKey("locked")
			return nil, dErrors.New(dErrors.CodeTooManyRequests, "too many attempts, retry later")
		}
	}

	receiver, err := s.receivers.FindByDigest(ctx, secrets.Digest(s.pepper, authCode))
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify master key")
		}
		if s.lockout != nil {
			if _, lerr := s.lockout.RecordFailure(ctx, client); lerr != nil {
				s.logger.ErrorContext(ctx, "failed to record master key failure", "error", lerr)
			}
		}
		s.metrics.IncrementMasterKey("invalid")
		audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventMasterKeyFailed,
			"reason", privacy.AnonymizeIP(client),
		)
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid master key")
	}

	if s.lockout != nil {
		if err := s.lockout.Clear(ctx, client); err != nil {
			s.logger.ErrorContext(ctx, "failed to clear master key lockout", "error", err)
		}
	}
	span.SetAttributes(attribute.String("receiver.id", receiver.ID.String()))
	s.metrics.IncrementMasterKey("verified")
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventMasterKeyVerified,
		"owner_id", receiver.OwnerID.String(),
		"receiver_id", receiver.ID.String(),
	)
	return &models.VerifyResult{
		ReceiverID:   receiver.ID,
		ReceiverName: receiver.Name,
		SenderName:   receiver.SenderName,
		Relation:     receiver.Relation,
	}, nil
}
