package handler

import (
	"time"

	"afternote/internal/condition/models"
)

type ConditionResponse struct {
	DeliveryMethod   string  `json:"deliveryMethod"`
	TriggerCondition string  `json:"triggerCondition"`
	TriggerDate      *string `json:"triggerDate"`
	LeaveMessage     *string `json:"leaveMessage"`
	InactivityDays   *int    `json:"inactivityDays,omitempty"`
	UpdatedAt        string  `json:"updatedAt"`
}

func toConditionResponse(c *models.DeliveryCondition) ConditionResponse {
	resp := ConditionResponse{
		DeliveryMethod:   string(c.DeliveryMethod),
		TriggerCondition: string(c.TriggerCondition),
		LeaveMessage:     c.LeaveMessage,
		InactivityDays:   c.InactivityDays,
		UpdatedAt:        c.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if c.TriggerDate != nil {
		d := c.TriggerDate.String()
		resp.TriggerDate = &d
	}
	return resp
}
