package handler

import (
	"strings"

	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

// SaveConditionRequest is the body of PUT /api/users/delivery-condition.
type SaveConditionRequest struct {
	DeliveryMethod   string  `json:"deliveryMethod"`
	TriggerCondition string  `json:"triggerCondition"`
	TriggerDate      *string `json:"triggerDate,omitempty"`
	LeaveMessage     *string `json:"leaveMessage,omitempty"`
	InactivityDays   *int    `json:"inactivityDays,omitempty"`

	parsedDate *id.Date
}

func (r *SaveConditionRequest) Normalize() {
	r.DeliveryMethod = strings.TrimSpace(r.DeliveryMethod)
	r.TriggerCondition = strings.TrimSpace(r.TriggerCondition)
	if r.TriggerDate != nil {
		trimmed := strings.TrimSpace(*r.TriggerDate)
		if trimmed == "" {
			r.TriggerDate = nil
		} else {
			r.TriggerDate = &trimmed
		}
	}
}

// Validate checks shape only; enum and cross-field rules belong to the
// service.
func (r *SaveConditionRequest) Validate() error {
	if r.DeliveryMethod == "" {
		return dErrors.New(dErrors.CodeValidation, "deliveryMethod is required")
	}
	if r.TriggerCondition == "" {
		return dErrors.New(dErrors.CodeValidation, "triggerCondition is required")
	}
	if r.TriggerDate != nil {
		d, err := id.ParseDate(*r.TriggerDate)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "triggerDate must be formatted as YYYY-MM-DD")
		}
		r.parsedDate = &d
	}
	return nil
}

func (r *SaveConditionRequest) ParsedTriggerDate() *id.Date {
	return r.parsedDate
}

// UpdateLeaveMessageRequest is the body of PUT /api/users/delivery-condition/message.
type UpdateLeaveMessageRequest struct {
	LeaveMessage *string `json:"leaveMessage"`
}

func (r *UpdateLeaveMessageRequest) Normalize() {}

func (r *UpdateLeaveMessageRequest) Validate() error { return nil }
