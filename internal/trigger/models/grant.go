package models

import (
	condition "afternote/internal/condition/models"
	review "afternote/internal/review/models"
)

// Grant denial reasons. Handlers never expose them; they go to audit only.
const (
	DenyNoCondition      = "no_delivery_condition"
	DenyNotReleased      = "not_released"
	DenyApprovalRequired = "approval_required"
	DenyNoSubmission     = "no_submission"
	DenyRejected         = "verification_rejected"
)

// AccessDecision answers whether a receiver may read the owner's legacy.
type AccessDecision struct {
	Granted bool
	Reason  string
}

func allow(reason string) AccessDecision { return AccessDecision{Granted: true, Reason: reason} }
func deny(reason string) AccessDecision  { return AccessDecision{Reason: reason} }

// Grant applies the trigger x method access matrix. release is nil when the
// owner's trigger has not fired; latest is nil when the receiver never
// submitted documents.
//
//	                   AUTOMATIC            RECEIVER_APPROVAL
//	APP_INACTIVITY     released             released + APPROVED
//	SPECIFIC_DATE      released             released + APPROVED
//	RECEIVER_REQUEST   submitted, not REJ.  APPROVED
func Grant(cond *condition.DeliveryCondition, release *Release, latest *review.Status) AccessDecision {
	if cond == nil {
		return deny(DenyNoCondition)
	}

	approved := latest != nil && *latest == review.StatusApproved

	if cond.TriggerCondition == condition.TriggerReceiverRequest {
		if cond.RequiresApproval() {
			if approved {
				return allow(ReasonVerificationApproved)
			}
			return deny(DenyApprovalRequired)
		}
		switch {
		case latest == nil:
			return deny(DenyNoSubmission)
		case *latest == review.StatusRejected:
			return deny(DenyRejected)
		default:
			return allow(ReasonReceiverRequestOnly)
		}
	}

	if release == nil {
		return deny(DenyNotReleased)
	}
	if cond.RequiresApproval() && !approved {
		return deny(DenyApprovalRequired)
	}
	return allow(release.Reason)
}

// VerificationOpen reports whether a receiver may file documents. Inactivity
// and date triggers unlock the flow only after they have fired;
// RECEIVER_REQUEST is open from the start.
func VerificationOpen(cond *condition.DeliveryCondition, release *Release) bool {
	if cond == nil {
		return false
	}
	if cond.TriggerCondition == condition.TriggerReceiverRequest {
		return true
	}
	return release != nil
}

// ApprovalReleases reports whether an approved verification is itself the
// release event. Only RECEIVER_REQUEST has no other event.
func ApprovalReleases(cond *condition.DeliveryCondition) bool {
	return cond != nil && cond.TriggerCondition == condition.TriggerReceiverRequest
}
