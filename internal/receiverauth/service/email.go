package service

import (
	"context"
	"errors"
	"net/mail"

	"afternote/internal/receiverauth/models"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/privacy"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
	"afternote/pkg/secrets"
)

const emailCodeDigits = 6

var errInvalidEmailCode = dErrors.New(dErrors.CodeUnauthorized, "invalid or expired code")

// SendEmailCode issues a verification code to a registered receiver email.
// Unknown addresses get the same response without a send.
func (s *Service) SendEmailCode(ctx context.Context, address string) error {
	ctx, span := tracer.Start(ctx, "receiverauth.SendEmailCode")
	defer span.End()

	if s.emailCodes == nil {
		return dErrors.New(dErrors.CodeInternal, "email verification is not enabled")
	}
	address = models.NormalizeEmail(address)
	if address == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}

	known, err := s.receivers.ExistsByEmail(ctx, address)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up receiver")
	}
	if !known {
		s.metrics.IncrementEmailCode("send", "unknown")
		s.logger.InfoContext(ctx, "email code requested for unknown address",
			"email", privacy.MaskEmail(address),
		)
		return nil
	}

	code, err := secrets.GenerateNumericCode(emailCodeDigits)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate code")
	}
	hash, err := secrets.Hash(code)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash code")
	}
	ttl := s.cfg.EmailCodeTTL
	err = s.emailCodes.Save(ctx, &models.EmailCode{
		Email:     address,
		CodeHash:  hash,
		ExpiresAt: requestcontext.Now(ctx).Add(ttl),
	}, ttl)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store code")
	}
	if err := s.codeSender.SendCode(ctx, address, code); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send code")
	}

	s.metrics.IncrementEmailCode("send", "sent")
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventEmailCodeSent,
		"reason", privacy.MaskEmail(address),
	)
	return nil
}

// VerifyEmailCode checks and consumes a code. Wrong and expired codes are
// unauthorized; a code that used up its attempts is too_many_requests.
func (s *Service) VerifyEmailCode(ctx context.Context, address, code string) error {
	ctx, span := tracer.Start(ctx, "receiverauth.VerifyEmailCode")
	defer span.End()

	if s.emailCodes == nil {
		return dErrors.New(dErrors.CodeInternal, "email verification is not enabled")
	}
	address = models.NormalizeEmail(address)
	if address == "" || code == "" {
		return dErrors.New(dErrors.CodeValidation, "email and code are required")
	}

	stored, err := s.emailCodes.Find(ctx, address)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementEmailCode("verify", "missing")
			return errInvalidEmailCode
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load code")
	}
	if stored.IsExpiredAt(requestcontext.Now(ctx)) {
		_ = s.emailCodes.Delete(ctx, address)
		s.metrics.IncrementEmailCode("verify", "expired")
		return errInvalidEmailCode
	}
	if stored.AttemptsExhausted(s.cfg.EmailCodeMaxAttempts) {
		s.metrics.IncrementEmailCode("verify", "exhausted")
		return dErrors.New(dErrors.CodeTooManyRequests, "too many attempts, request a new code")
	}

	if err := secrets.Verify(code, stored.CodeHash); err != nil {
		if _, incErr := s.emailCodes.IncrementAttempts(ctx, address); incErr != nil {
			s.logger.ErrorContext(ctx, "failed to count email code attempt", "error", incErr)
		}
		s.metrics.IncrementEmailCode("verify", "mismatch")
		audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventEmailCodeFailed,
			"reason", privacy.MaskEmail(address),
		)
		return errInvalidEmailCode
	}

	if err := s.emailCodes.Delete(ctx, address); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to consume code")
	}
	s.metrics.IncrementEmailCode("verify", "verified")
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventEmailCodeVerified,
		"reason", privacy.MaskEmail(address),
	)
	return nil
}
