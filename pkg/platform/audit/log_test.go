package audit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "afternote/pkg/domain"
	"afternote/pkg/requestcontext"
)

type captureEmitter struct {
	events []Event
}

func (c *captureEmitter) Emit(_ context.Context, e Event) error {
	c.events = append(c.events, e)
	return nil
}

func TestLogAudit(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	emitter := &captureEmitter{}

	owner := id.OwnerID(uuid.New())
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithRequestID(context.Background(), "req-9")
	ctx = requestcontext.WithTime(ctx, now)
	ctx = requestcontext.WithDeviceLabel(ctx, "okhttp/Android")

	LogAudit(ctx, logger, emitter, EventVerificationRejected,
		"owner_id", owner.String(),
		"receiver_id", "r-1",
		"decision", "rejected",
		"actor_id", "admin",
	)

	require.Len(t, emitter.events, 1)
	ev := emitter.events[0]
	assert.Equal(t, owner, ev.OwnerID)
	assert.Equal(t, "r-1", ev.ReceiverID)
	assert.Equal(t, "rejected", ev.Decision)
	assert.Equal(t, "admin", ev.ActorID)
	assert.Equal(t, "req-9", ev.RequestID)
	assert.Equal(t, now, ev.Timestamp)
	assert.Equal(t, CategoryCompliance, ev.Category)
	assert.Equal(t, "okhttp/Android", ev.Device)

	assert.Contains(t, buf.String(), `"log_type":"audit"`)
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}

func TestAuditEventCategory(t *testing.T) {
	assert.Equal(t, CategorySecurity, EventLockoutTriggered.Category())
	assert.Equal(t, CategoryCompliance, EventDeliveryReleased.Category())
	assert.Equal(t, CategoryOperations, AuditEvent("something_new").Category())
}

func TestStringAttr(t *testing.T) {
	attributes := []any{"owner_id", "o-1", "count", 3, "receiver_id", "r-1", "dangling"}

	assert.Equal(t, "o-1", stringAttr(attributes, "owner_id"))
	assert.Equal(t, "r-1", stringAttr(attributes, "receiver_id"))
	assert.Empty(t, stringAttr(attributes, "count"), "non-string values are ignored")
	assert.Empty(t, stringAttr(attributes, "dangling"))
	assert.Empty(t, stringAttr(nil, "owner_id"))
}
