package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"afternote/internal/receiverauth/models"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
)

// PresignDocument signs an upload slot for one certificate image or PDF.
func (s *Service) PresignDocument(ctx context.Context, capability models.AccessCapability, extension string) (*models.DocumentUpload, error) {
	ctx, span := tracer.Start(ctx, "receiverauth.PresignDocument")
	defer span.End()

	if s.presigner == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "document upload is not configured")
	}
	ext, contentType, err := models.DocumentContentType(extension)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	key := models.DocumentKey(capability.ReceiverID, requestcontext.Now(ctx), uuid.NewString(), ext)
	upload, err := s.presigner.PresignPut(ctx, key, contentType)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to presign upload")
	}

	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventDocumentPresigned,
		"owner_id", capability.OwnerID.String(),
		"receiver_id", capability.ReceiverID.String(),
		"reason", ext,
	)
	return &models.DocumentUpload{
		PresignedURL: upload.URL,
		FileURL:      upload.FileURL,
		ContentType:  contentType,
	}, nil
}

// GetMessage returns the owner's farewell message once access is granted.
func (s *Service) GetMessage(ctx context.Context, capability models.AccessCapability) (*models.SenderMessage, error) {
	ctx, span := tracer.Start(ctx, "receiverauth.GetMessage")
	defer span.End()

	if err := s.Authorize(ctx, capability); err != nil {
		return nil, err
	}
	receiver, err := s.receivers.FindByID(ctx, capability.ReceiverID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, errInvalidAuthCode
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load receiver")
	}
	cond, err := s.access.Conditions.Load(ctx, capability.OwnerID)
	if err != nil {
		return nil, err
	}

	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventSenderMessageViewed,
		"owner_id", capability.OwnerID.String(),
		"receiver_id", capability.ReceiverID.String(),
	)
	return &models.SenderMessage{SenderName: receiver.SenderName, Message: cond.LeaveMessage}, nil
}
