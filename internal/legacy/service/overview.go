package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"afternote/internal/legacy/models"
	dErrors "afternote/pkg/domain-errors"
)

// Overview counts the receiver's share set. The three counts run
// concurrently; any failure fails the whole call.
func (s *Service) Overview(ctx context.Context, capability Capability) (*models.Overview, error) {
	ctx, span := tracer.Start(ctx, "legacy.Overview")
	defer span.End()

	scope, err := scopeOf(capability)
	if err != nil {
		return nil, err
	}

	var out models.Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, unread, err := s.store.CountTimeLetters(gctx, scope)
		if err != nil {
			return err
		}
		out.TimeLetters, out.UnreadTimeLetters = total, unread
		return nil
	})
	g.Go(func() error {
		n, err := s.store.CountMindRecords(gctx, scope)
		if err != nil {
			return err
		}
		out.MindRecords = n
		return nil
	})
	g.Go(func() error {
		n, err := s.store.CountAfternotes(gctx, scope)
		if err != nil {
			return err
		}
		out.Afternotes = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count legacy content")
	}
	s.metrics.IncrementRead("overview", "get")
	return &out, nil
}
