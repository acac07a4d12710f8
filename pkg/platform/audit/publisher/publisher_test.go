package publisher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "afternote/pkg/domain"
	audit "afternote/pkg/platform/audit"
	"afternote/pkg/platform/audit/store/memory"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	ownerID := id.OwnerID(uuid.New())
	err := pub.Emit(context.Background(), audit.Event{
		OwnerID: ownerID,
		Action:  string(audit.EventDeliveryConditionSaved),
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventDeliveryConditionSaved), events[0].Action)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category, "category derived from action")
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	ownerID := id.OwnerID(uuid.New())
	for range 10 {
		err := pub.Emit(context.Background(), audit.Event{
			OwnerID: ownerID,
			Action:  string(audit.EventMasterKeyFailed),
		})
		require.NoError(t, err)
	}

	pub.Close()

	events, err := store.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_EmitAfterClose(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore(), WithAsyncBuffer(1))
	pub.Close()
	pub.Close()

	err := pub.Emit(context.Background(), audit.Event{Action: string(audit.EventLockoutTriggered)})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPublisher_BufferFull_DoesNotBlock(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore(), WithAsyncBuffer(1))
	defer pub.Close()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{Action: string(audit.EventMasterKeyFailed)})
			if err != nil {
				assert.ErrorIs(t, err, ErrBufferFull)
			}
		}()
	}
	wg.Wait()
}

func TestPublisher_SetsTimestamp(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore())
	defer pub.Close()

	ownerID := id.OwnerID(uuid.New())
	before := time.Now()
	require.NoError(t, pub.Emit(context.Background(), audit.Event{
		OwnerID: ownerID,
		Action:  string(audit.EventReceiverRegistered),
	}))
	after := time.Now()

	events, err := pub.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.Before(before))
	assert.False(t, events[0].Timestamp.After(after))
}

func TestPublisher_PreservesExistingTimestamp(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore())
	defer pub.Close()

	ownerID := id.OwnerID(uuid.New())
	customTime := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, pub.Emit(context.Background(), audit.Event{
		OwnerID:   ownerID,
		Action:    string(audit.EventDeliveryReleased),
		Timestamp: customTime,
	}))

	events, err := pub.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, customTime, events[0].Timestamp)
}

func TestPublisher_DifferentOwners(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore())
	defer pub.Close()

	ownerA := id.OwnerID(uuid.New())
	ownerB := id.OwnerID(uuid.New())
	require.NoError(t, pub.Emit(context.Background(), audit.Event{OwnerID: ownerA, Action: string(audit.EventVerificationApproved)}))
	require.NoError(t, pub.Emit(context.Background(), audit.Event{OwnerID: ownerB, Action: string(audit.EventVerificationRejected)}))

	eventsA, err := pub.List(context.Background(), ownerA)
	require.NoError(t, err)
	require.Len(t, eventsA, 1)
	assert.Equal(t, string(audit.EventVerificationApproved), eventsA[0].Action)

	eventsB, err := pub.List(context.Background(), ownerB)
	require.NoError(t, err)
	require.Len(t, eventsB, 1)
	assert.Equal(t, string(audit.EventVerificationRejected), eventsB[0].Action)
}
