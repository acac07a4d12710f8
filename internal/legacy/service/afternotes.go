package service

import (
	"context"

	"afternote/internal/legacy/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

func (s *Service) ListAfternotes(ctx context.Context, capability Capability, limit, offset int) (*models.Page[*models.Afternote], error) {
	ctx, span := tracer.Start(ctx, "legacy.ListAfternotes")
	defer span.End()

	scope, err := scopeOf(capability)
	if err != nil {
		return nil, err
	}
	sender, err := s.senderName(ctx, scope.ReceiverID)
	if err != nil {
		return nil, err
	}
	notes, total, err := s.store.ListAfternotes(ctx, scope, models.NewPageRequest(limit, offset))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list afternotes")
	}
	for _, n := range notes {
		n.SenderName = sender
	}
	s.metrics.IncrementRead(kindAfternote, "list")
	return &models.Page[*models.Afternote]{Items: notes, TotalCount: total}, nil
}

func (s *Service) GetAfternote(ctx context.Context, capability Capability, noteID id.AfternoteID) (*models.Afternote, error) {
	ctx, span := tracer.Start(ctx, "legacy.GetAfternote")
	defer span.End()

	scope, err := scopeOf(capability)
	if err != nil {
		return nil, err
	}
	sender, err := s.senderName(ctx, scope.ReceiverID)
	if err != nil {
		return nil, err
	}
	note, err := s.store.FindAfternote(ctx, scope, noteID)
	if err != nil {
		return nil, s.notFound(err, kindAfternote, "afternote not found")
	}
	note.SenderName = sender
	s.accessed(ctx, scope, kindAfternote, noteID.String())
	return note, nil
}
