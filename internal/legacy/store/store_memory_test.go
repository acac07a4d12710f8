package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afternote/internal/legacy/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

func scope() models.Scope {
	return models.Scope{OwnerID: id.OwnerID(uuid.New()), ReceiverID: id.ReceiverID(uuid.New())}
}

func TestInMemoryStore_MarkTimeLetterRead(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	sc := scope()
	deliveryID := id.TimeLetterReceiverID(uuid.New())
	s.SeedTimeLetter(models.TimeLetter{
		ID: id.TimeLetterID(uuid.New()), DeliveryID: deliveryID,
		OwnerID: sc.OwnerID, ReceiverID: sc.ReceiverID, Title: "t",
	})
	first := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	set, err := s.MarkTimeLetterRead(ctx, sc, deliveryID, first)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = s.MarkTimeLetterRead(ctx, sc, deliveryID, first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, set)

	letter, err := s.FindTimeLetter(ctx, sc, deliveryID)
	require.NoError(t, err)
	assert.Equal(t, first, *letter.ReadAt)

	_, err = s.MarkTimeLetterRead(ctx, scope(), deliveryID, first)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestInMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	sc := scope()
	noteID := id.AfternoteID(uuid.New())
	s.SeedAfternote(models.Afternote{ID: noteID, OwnerID: sc.OwnerID, Actions: []string{"delete photos"}}, sc.ReceiverID)

	got, err := s.FindAfternote(ctx, sc, noteID)
	require.NoError(t, err)
	got.Actions[0] = "changed"

	again, err := s.FindAfternote(ctx, sc, noteID)
	require.NoError(t, err)
	assert.Equal(t, []string{"delete photos"}, again.Actions)
}

func TestInMemoryStore_ShareSets(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	sc := scope()
	other := models.Scope{OwnerID: sc.OwnerID, ReceiverID: id.ReceiverID(uuid.New())}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		s.SeedMindRecord(models.MindRecord{
			ID: id.MindRecordID(uuid.New()), OwnerID: sc.OwnerID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}, sc.ReceiverID)
	}
	s.SeedMindRecord(models.MindRecord{ID: id.MindRecordID(uuid.New()), OwnerID: sc.OwnerID, CreatedAt: base}, other.ReceiverID)

	items, total, err := s.ListMindRecords(ctx, sc, models.NewPageRequest(2, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, base.Add(3*time.Hour), items[0].CreatedAt)

	n, err := s.CountMindRecords(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
