package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"afternote/internal/receiverauth/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
	"afternote/pkg/secrets"
)

// RegisterRequest describes a receiver as entered by the owner. A blank
// name falls back to one derived from the email address.
type RegisterRequest struct {
	Name       string
	SenderName string
	Relation   string
	Email      string
}

// RegisterReceiver creates a receiver and its master key. The plaintext key
// is returned here and nowhere else.
func (s *Service) RegisterReceiver(ctx context.Context, ownerID id.OwnerID, req RegisterRequest) (*models.RegisteredReceiver, error) {
	ctx, span := tracer.Start(ctx, "receiverauth.RegisterReceiver")
	defer span.End()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = models.NameFromEmail(req.Email)
	}

	masterKey, err := secrets.Generate()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate master key")
	}

	receiver, err := models.NewReceiver(id.ReceiverID(uuid.New()), ownerID,
		name, req.SenderName, req.Relation, req.Email,
		secrets.Digest(s.pepper, masterKey), requestcontext.Now(ctx))
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, err
	}

	if err := s.receivers.Create(ctx, receiver); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "receiver could not be registered, retry")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register receiver")
	}

	s.metrics.IncrementRegistered()
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventReceiverRegistered,
		"owner_id", ownerID.String(),
		"receiver_id", receiver.ID.String(),
	)
	return &models.RegisteredReceiver{Receiver: receiver, MasterKey: masterKey}, nil
}

// ListReceivers returns the owner's receivers without master keys.
func (s *Service) ListReceivers(ctx context.Context, ownerID id.OwnerID) ([]*models.Receiver, error) {
	receivers, err := s.receivers.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list receivers")
	}
	return receivers, nil
}
