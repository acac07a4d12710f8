package models

import (
	"time"

	id "afternote/pkg/domain"
)

// DefaultInactivityThresholdDays applies when the owner did not pick a
// shorter inactivity window.
const DefaultInactivityThresholdDays = 365

// Release reasons.
const (
	ReasonInactivityReached    = "inactivity_threshold_reached"
	ReasonInactivityPending    = "inactivity_below_threshold"
	ReasonTriggerDateReached   = "trigger_date_reached"
	ReasonTriggerDatePending   = "trigger_date_pending"
	ReasonReceiverRequestOnly  = "receiver_request_only"
	ReasonVerificationApproved = "verification_approved"
)

// Signal is the clock input supplied by the scheduler. The evaluator never
// reads wall time itself.
type Signal struct {
	DaysSinceActivity int
	Today             id.Date
}

// OwnerSignal pairs a signal with the owner it applies to, for batches.
type OwnerSignal struct {
	OwnerID id.OwnerID
	Signal  Signal
}

// Policy holds server-side evaluation settings.
type Policy struct {
	InactivityThresholdDays int
}

func DefaultPolicy() Policy {
	return Policy{InactivityThresholdDays: DefaultInactivityThresholdDays}
}

// Outcome is the result of evaluating one condition against one signal.
type Outcome struct {
	ShouldRelease    bool   `json:"shouldRelease"`
	RequiresApproval bool   `json:"requiresApproval"`
	Reason           string `json:"reason"`
}

// Release records that an owner's trigger fired. There is at most one per
// owner and ReleasedAt never moves once written.
type Release struct {
	OwnerID    id.OwnerID
	ReleasedAt time.Time
	Reason     string
}
