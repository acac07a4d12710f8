package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	id "afternote/pkg/domain"
	"afternote/pkg/requestcontext"
)

// LogAudit writes the structured audit log line and, when an emitter is
// configured, publishes the event. Recognized attribute keys are owner_id,
// receiver_id, decision, reason and actor_id.
func LogAudit(ctx context.Context, logger *slog.Logger, emitter Emitter, event AuditEvent, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	if logger != nil {
		args := append(attributes, "event", string(event), "log_type", "audit")
		logger.InfoContext(ctx, string(event), args...)
	}
	if emitter == nil {
		return
	}

	var ownerID id.OwnerID
	if raw := stringAttr(attributes, "owner_id"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			ownerID = id.OwnerID(parsed)
		}
	}
	receiverID := stringAttr(attributes, "receiver_id")

	err := emitter.Emit(ctx, Event{
		Category:   event.Category(),
		Timestamp:  requestcontext.Now(ctx),
		OwnerID:    ownerID,
		ReceiverID: receiverID,
		Subject:    receiverID,
		Action:     string(event),
		Decision:   stringAttr(attributes, "decision"),
		Reason:     stringAttr(attributes, "reason"),
		RequestID:  requestID,
		ActorID:    stringAttr(attributes, "actor_id"),
		Device:     requestcontext.DeviceLabel(ctx),
	})
	if err != nil && logger != nil {
		logger.ErrorContext(ctx, "failed to emit audit event",
			"event", string(event),
			"error", err,
			"request_id", requestID,
		)
	}
}

// stringAttr returns the string value following key in a slog-style
// key/value list, or "".
func stringAttr(attributes []any, key string) string {
	for i := 0; i+1 < len(attributes); i += 2 {
		if k, ok := attributes[i].(string); ok && k == key {
			v, _ := attributes[i+1].(string)
			return v
		}
	}
	return ""
}
