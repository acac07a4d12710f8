package service

import (
	"context"
	"errors"
	"strings"

	"afternote/internal/receiverauth/models"
	trigger "afternote/internal/trigger/models"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/secrets"
)

var (
	errInvalidAuthCode = dErrors.New(dErrors.CodeUnauthorized, "invalid auth code")
	errAccessDenied    = dErrors.New(dErrors.CodeUnauthorized, "access not granted")
)

// ResolveCapability turns an authCode into a capability. It is the only
// constructor of AccessCapability outside tests.
func (s *Service) ResolveCapability(ctx context.Context, authCode string) (*models.AccessCapability, error) {
	authCode = strings.TrimSpace(authCode)
	if authCode == "" {
		return nil, errInvalidAuthCode
	}
	digest := secrets.Digest(s.pepper, authCode)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, digest)
		if err != nil {
			s.logger.WarnContext(ctx, "capability cache read failed", "error", err)
		} else if cached != nil {
			s.metrics.IncrementCapabilityLookup("cache")
			return cached, nil
		}
	}

	receiver, err := s.receivers.FindByDigest(ctx, digest)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementCapabilityLookup("invalid")
			return nil, errInvalidAuthCode
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve auth code")
	}
	capability := models.AccessCapability{ReceiverID: receiver.ID, OwnerID: receiver.OwnerID}
	s.metrics.IncrementCapabilityLookup("store")

	if s.cache != nil {
		if err := s.cache.Set(ctx, digest, capability, s.cfg.CapabilityCacheTTL); err != nil {
			s.logger.WarnContext(ctx, "capability cache write failed", "error", err)
		}
	}
	return &capability, nil
}

// Authorize applies the trigger x method grant rules to the capability's
// owner and receiver. A denial is unauthorized; the reason goes to audit
// only.
func (s *Service) Authorize(ctx context.Context, capability models.AccessCapability) error {
	ctx, span := tracer.Start(ctx, "receiverauth.Authorize")
	defer span.End()

	if capability.IsZero() {
		return errInvalidAuthCode
	}

	cond, err := s.access.Conditions.Load(ctx, capability.OwnerID)
	if err != nil && !dErrors.HasCode(err, dErrors.CodeNotFound) {
		return err
	}
	release, err := s.access.Releases.ReleaseFor(ctx, capability.OwnerID)
	if err != nil {
		return err
	}
	latest, err := s.access.Reviews.LatestStatus(ctx, capability.ReceiverID)
	if err != nil {
		return err
	}

	decision := trigger.Grant(cond, release, latest)
	s.metrics.IncrementAccessDecision(decision.Granted)
	if !decision.Granted {
		audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventCapabilityRejected,
			"owner_id", capability.OwnerID.String(),
			"receiver_id", capability.ReceiverID.String(),
			"decision", "denied",
			"reason", decision.Reason,
		)
		return errAccessDenied
	}
	return nil
}
