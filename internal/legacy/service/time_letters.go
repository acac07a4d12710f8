package service

import (
	"context"

	"afternote/internal/legacy/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/requestcontext"
)

func (s *Service) ListTimeLetters(ctx context.Context, capability Capability, limit, offset int) (*models.Page[*models.TimeLetter], error) {
	ctx, span := tracer.Start(ctx, "legacy.ListTimeLetters")
	defer span.End()

	scope, err := scopeOf(capability)
	if err != nil {
		return nil, err
	}
	sender, err := s.senderName(ctx, scope.ReceiverID)
	if err != nil {
		return nil, err
	}
	letters, total, err := s.store.ListTimeLetters(ctx, scope, models.NewPageRequest(limit, offset))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list time letters")
	}
	for _, l := range letters {
		l.SenderName = sender
	}
	s.metrics.IncrementRead(kindTimeLetter, "list")
	return &models.Page[*models.TimeLetter]{Items: letters, TotalCount: total}, nil
}

// GetTimeLetter returns one delivery and marks it read. Only the first read
// sets ReadAt; later reads return the same content and timestamp.
func (s *Service) GetTimeLetter(ctx context.Context, capability Capability, deliveryID id.TimeLetterReceiverID) (*models.TimeLetter, error) {
	ctx, span := tracer.Start(ctx, "legacy.GetTimeLetter")
	defer span.End()

	scope, err := scopeOf(capability)
	if err != nil {
		return nil, err
	}
	sender, err := s.senderName(ctx, scope.ReceiverID)
	if err != nil {
		return nil, err
	}
	first, err := s.store.MarkTimeLetterRead(ctx, scope, deliveryID, requestcontext.Now(ctx))
	if err != nil {
		return nil, s.notFound(err, kindTimeLetter, "time letter not found")
	}
	letter, err := s.store.FindTimeLetter(ctx, scope, deliveryID)
	if err != nil {
		return nil, s.notFound(err, kindTimeLetter, "time letter not found")
	}
	letter.SenderName = sender
	if first {
		s.metrics.IncrementFirstRead()
	}
	s.accessed(ctx, scope, kindTimeLetter, deliveryID.String())
	return letter, nil
}
