package service

import (
	"context"

	"afternote/internal/legacy/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

func (s *Service) ListMindRecords(ctx context.Context, capability Capability, limit, offset int) (*models.Page[*models.MindRecord], error) {
	ctx, span := tracer.Start(ctx, "legacy.ListMindRecords")
	defer span.End()

	scope, err := scopeOf(capability)
	if err != nil {
		return nil, err
	}
	sender, err := s.senderName(ctx, scope.ReceiverID)
	if err != nil {
		return nil, err
	}
	records, total, err := s.store.ListMindRecords(ctx, scope, models.NewPageRequest(limit, offset))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list mind records")
	}
	for _, r := range records {
		r.SenderName = sender
	}
	s.metrics.IncrementRead(kindMindRecord, "list")
	return &models.Page[*models.MindRecord]{Items: records, TotalCount: total}, nil
}

func (s *Service) GetMindRecord(ctx context.Context, capability Capability, recordID id.MindRecordID) (*models.MindRecord, error) {
	ctx, span := tracer.Start(ctx, "legacy.GetMindRecord")
	defer span.End()

	scope, err := scopeOf(capability)
	if err != nil {
		return nil, err
	}
	sender, err := s.senderName(ctx, scope.ReceiverID)
	if err != nil {
		return nil, err
	}
	record, err := s.store.FindMindRecord(ctx, scope, recordID)
	if err != nil {
		return nil, s.notFound(err, kindMindRecord, "mind record not found")
	}
	record.SenderName = sender
	s.accessed(ctx, scope, kindMindRecord, recordID.String())
	return record, nil
}
