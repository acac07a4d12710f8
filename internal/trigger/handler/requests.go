package handler

import (
	"fmt"
	"strings"

	"afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

const maxBatchSize = 1000

// EvaluateRequest is the scheduler's batch body.
type EvaluateRequest struct {
	Signals []SignalRequest `json:"signals"`

	parsed []models.OwnerSignal
}

type SignalRequest struct {
	OwnerID           string `json:"ownerId"`
	DaysSinceActivity int    `json:"daysSinceActivity"`
	Today             string `json:"today"`
}

func (r *EvaluateRequest) Normalize() {
	for i := range r.Signals {
		r.Signals[i].OwnerID = strings.TrimSpace(r.Signals[i].OwnerID)
		r.Signals[i].Today = strings.TrimSpace(r.Signals[i].Today)
	}
}

func (r *EvaluateRequest) Validate() error {
	if len(r.Signals) == 0 {
		return dErrors.New(dErrors.CodeValidation, "signals are required")
	}
	if len(r.Signals) > maxBatchSize {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d signals per batch", maxBatchSize))
	}
	r.parsed = make([]models.OwnerSignal, 0, len(r.Signals))
	for i, sig := range r.Signals {
		ownerID, err := id.ParseOwnerID(sig.OwnerID)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("signals[%d].ownerId is invalid", i))
		}
		if sig.DaysSinceActivity < 0 {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("signals[%d].daysSinceActivity must not be negative", i))
		}
		today, err := id.ParseDate(sig.Today)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("signals[%d].today must be formatted as YYYY-MM-DD", i))
		}
		r.parsed = append(r.parsed, models.OwnerSignal{
			OwnerID: ownerID,
			Signal:  models.Signal{DaysSinceActivity: sig.DaysSinceActivity, Today: today},
		})
	}
	return nil
}

func (r *EvaluateRequest) OwnerSignals() []models.OwnerSignal {
	return r.parsed
}
