package models

import (
	"time"

	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

// DeliveryMethod decides whether a fired trigger releases data directly or
// only unlocks receiver verification.
type DeliveryMethod string

const (
	DeliveryMethodAutomatic        DeliveryMethod = "AUTOMATIC_TRANSFER"
	DeliveryMethodReceiverApproval DeliveryMethod = "RECEIVER_APPROVAL_TRANSFER"
)

func (m DeliveryMethod) IsValid() bool {
	return m == DeliveryMethodAutomatic || m == DeliveryMethodReceiverApproval
}

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	m := DeliveryMethod(s)
	if !m.IsValid() {
		return "", dErrors.New(dErrors.CodeInvariantViolation, "unknown delivery method: "+s)
	}
	return m, nil
}

// TriggerCondition is the event that makes release eligible.
type TriggerCondition string

const (
	TriggerAppInactivity   TriggerCondition = "APP_INACTIVITY"
	TriggerSpecificDate    TriggerCondition = "SPECIFIC_DATE"
	TriggerReceiverRequest TriggerCondition = "RECEIVER_REQUEST"
)

func (c TriggerCondition) IsValid() bool {
	switch c {
	case TriggerAppInactivity, TriggerSpecificDate, TriggerReceiverRequest:
		return true
	}
	return false
}

func ParseTriggerCondition(s string) (TriggerCondition, error) {
	c := TriggerCondition(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvariantViolation, "unknown trigger condition: "+s)
	}
	return c, nil
}

const (
	MinInactivityDays = 1
	MaxInactivityDays = 365
	MaxLeaveMessage   = 2000
)

// DeliveryCondition is an owner's release configuration. One per owner;
// saves replace it in place.
//
// Invariants:
//   - TriggerCondition == SPECIFIC_DATE iff TriggerDate != nil
//   - InactivityDays is nil unless TriggerCondition == APP_INACTIVITY,
//     and within 1..365 when set
type DeliveryCondition struct {
	OwnerID          id.OwnerID       `json:"ownerId"`
	DeliveryMethod   DeliveryMethod   `json:"deliveryMethod"`
	TriggerCondition TriggerCondition `json:"triggerCondition"`
	TriggerDate      *id.Date         `json:"triggerDate,omitempty"`
	LeaveMessage     *string          `json:"leaveMessage,omitempty"`
	InactivityDays   *int             `json:"inactivityDays,omitempty"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// NewDeliveryCondition builds a condition and enforces its invariants. A date
// sent with a trigger other than SPECIFIC_DATE is dropped, as is an
// inactivity override sent with a trigger other than APP_INACTIVITY.
func NewDeliveryCondition(
	ownerID id.OwnerID,
	method DeliveryMethod,
	trigger TriggerCondition,
	triggerDate *id.Date,
	leaveMessage *string,
	inactivityDays *int,
	now time.Time,
) (*DeliveryCondition, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "owner id is required")
	}
	if !method.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "unknown delivery method: "+string(method))
	}
	if !trigger.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "unknown trigger condition: "+string(trigger))
	}

	c := &DeliveryCondition{
		OwnerID:          ownerID,
		DeliveryMethod:   method,
		TriggerCondition: trigger,
		UpdatedAt:        now,
	}

	if trigger == TriggerSpecificDate {
		if triggerDate == nil || triggerDate.IsZero() {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "triggerDate is required for SPECIFIC_DATE")
		}
		d := *triggerDate
		c.TriggerDate = &d
	}

	if inactivityDays != nil {
		if *inactivityDays < MinInactivityDays || *inactivityDays > MaxInactivityDays {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "inactivityDays must be between 1 and 365")
		}
		if trigger == TriggerAppInactivity {
			n := *inactivityDays
			c.InactivityDays = &n
		}
	}

	if err := validateLeaveMessage(leaveMessage); err != nil {
		return nil, err
	}
	c.setLeaveMessage(leaveMessage)
	return c, nil
}

// CanApplyLeaveMessage checks the message length.
func (c *DeliveryCondition) CanApplyLeaveMessage(message *string) error {
	return validateLeaveMessage(message)
}

// ApplyLeaveMessage replaces the farewell message. Empty clears it.
// Must only be called after CanApplyLeaveMessage returns nil.
func (c *DeliveryCondition) ApplyLeaveMessage(message *string, now time.Time) {
	c.setLeaveMessage(message)
	c.UpdatedAt = now
}

func validateLeaveMessage(message *string) error {
	if message != nil && len([]rune(*message)) > MaxLeaveMessage {
		return dErrors.New(dErrors.CodeInvariantViolation, "leaveMessage must be 2000 characters or less")
	}
	return nil
}

func (c *DeliveryCondition) setLeaveMessage(message *string) {
	if message == nil || *message == "" {
		c.LeaveMessage = nil
		return
	}
	m := *message
	c.LeaveMessage = &m
}

// RequiresApproval reports whether data access waits on an approved review.
func (c *DeliveryCondition) RequiresApproval() bool {
	return c.DeliveryMethod == DeliveryMethodReceiverApproval
}

// Clone returns a deep copy.
func (c *DeliveryCondition) Clone() *DeliveryCondition {
	if c == nil {
		return nil
	}
	out := *c
	if c.TriggerDate != nil {
		d := *c.TriggerDate
		out.TriggerDate = &d
	}
	if c.LeaveMessage != nil {
		m := *c.LeaveMessage
		out.LeaveMessage = &m
	}
	if c.InactivityDays != nil {
		n := *c.InactivityDays
		out.InactivityDays = &n
	}
	return &out
}
