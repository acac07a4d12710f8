package audit

import (
	"context"
	"time"

	id "afternote/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so storage
// and retention can differ per category.
type EventCategory string

const (
	// CategoryCompliance covers events with legal significance: who released
	// a deceased owner's data, to whom, and on whose decision.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers authentication failures and lockouts.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity that can be sampled.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category   EventCategory
	Timestamp  time.Time
	OwnerID    id.OwnerID
	ReceiverID string
	Subject    string
	Action     string
	Decision   string
	Reason     string
	RequestID  string
	// ActorID is set when someone other than the subject acted, e.g. the
	// reviewing admin.
	ActorID string
	// Device is the coarse client label, never the raw User-Agent.
	Device string
}

type AuditEvent string

const (
	// Owner events
	EventDeliveryConditionSaved AuditEvent = "delivery_condition_saved"
	EventReceiverRegistered     AuditEvent = "receiver_registered"

	// Receiver verification events
	EventEmailCodeSent       AuditEvent = "email_code_sent"
	EventEmailCodeVerified   AuditEvent = "email_code_verified"
	EventEmailCodeFailed     AuditEvent = "email_code_failed"
	EventMasterKeyVerified   AuditEvent = "master_key_verified"
	EventMasterKeyFailed     AuditEvent = "master_key_failed"
	EventLockoutTriggered    AuditEvent = "master_key_lockout_triggered"
	EventLockoutCleared      AuditEvent = "master_key_lockout_cleared"
	EventDocumentPresigned   AuditEvent = "document_presigned"
	EventCapabilityRejected  AuditEvent = "capability_rejected"
	EventLegacyAccessed      AuditEvent = "legacy_accessed"
	EventSenderMessageViewed AuditEvent = "sender_message_viewed"

	// Review events
	EventVerificationSubmitted AuditEvent = "verification_submitted"
	EventVerificationApproved  AuditEvent = "verification_approved"
	EventVerificationRejected  AuditEvent = "verification_rejected"

	// Trigger events
	EventDeliveryReleased AuditEvent = "delivery_released"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventDeliveryConditionSaved: CategoryCompliance,
	EventReceiverRegistered:     CategoryCompliance,
	EventVerificationSubmitted:  CategoryCompliance,
	EventVerificationApproved:   CategoryCompliance,
	EventVerificationRejected:   CategoryCompliance,
	EventDeliveryReleased:       CategoryCompliance,
	EventLegacyAccessed:         CategoryCompliance,

	EventMasterKeyFailed:    CategorySecurity,
	EventEmailCodeFailed:    CategorySecurity,
	EventLockoutTriggered:   CategorySecurity,
	EventLockoutCleared:     CategorySecurity,
	EventCapabilityRejected: CategorySecurity,

	EventEmailCodeSent:       CategoryOperations,
	EventEmailCodeVerified:   CategoryOperations,
	EventMasterKeyVerified:   CategoryOperations,
	EventDocumentPresigned:   CategoryOperations,
	EventSenderMessageViewed: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]Event, error)
}

// Emitter is what services depend on to publish events.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}
