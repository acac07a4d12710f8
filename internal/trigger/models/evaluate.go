package models

import (
	condition "afternote/internal/condition/models"
)

// Evaluate decides whether cond fires for the given signal. It is pure:
// the same inputs always produce the same outcome.
func Evaluate(cond *condition.DeliveryCondition, signal Signal, policy Policy) Outcome {
	out := Outcome{RequiresApproval: cond.RequiresApproval()}

	switch cond.TriggerCondition {
	case condition.TriggerAppInactivity:
		threshold := inactivityThreshold(cond, policy)
		if signal.DaysSinceActivity >= threshold {
			out.ShouldRelease = true
			out.Reason = ReasonInactivityReached
		} else {
			out.Reason = ReasonInactivityPending
		}
	case condition.TriggerSpecificDate:
		if cond.TriggerDate != nil && !signal.Today.Before(*cond.TriggerDate) {
			out.ShouldRelease = true
			out.Reason = ReasonTriggerDateReached
		} else {
			out.Reason = ReasonTriggerDatePending
		}
	default:
		out.Reason = ReasonReceiverRequestOnly
	}
	return out
}

func inactivityThreshold(cond *condition.DeliveryCondition, policy Policy) int {
	threshold := policy.InactivityThresholdDays
	if threshold <= 0 {
		threshold = DefaultInactivityThresholdDays
	}
	if cond.InactivityDays != nil && *cond.InactivityDays > 0 && *cond.InactivityDays < threshold {
		threshold = *cond.InactivityDays
	}
	return threshold
}
