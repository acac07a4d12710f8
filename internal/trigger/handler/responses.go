package handler

import (
	"time"

	"afternote/internal/trigger/models"
	"afternote/internal/trigger/service"
	dErrors "afternote/pkg/domain-errors"
)

type EvaluateResponse struct {
	Results []EvaluateResult `json:"results"`
}

type EvaluateResult struct {
	OwnerID          string `json:"ownerId"`
	ShouldRelease    bool   `json:"shouldRelease"`
	RequiresApproval bool   `json:"requiresApproval"`
	Reason           string `json:"reason,omitempty"`
	Error            string `json:"error,omitempty"`
}

type ReleaseResponse struct {
	OwnerID    string `json:"ownerId"`
	ReleasedAt string `json:"releasedAt"`
	Reason     string `json:"reason"`
}

func toEvaluateResponse(results []service.BatchResult) EvaluateResponse {
	out := EvaluateResponse{Results: make([]EvaluateResult, 0, len(results))}
	for _, r := range results {
		item := EvaluateResult{OwnerID: r.OwnerID.String()}
		if r.Err != nil {
			item.Error = string(dErrors.CodeOf(r.Err))
		} else if r.Outcome != nil {
			item.ShouldRelease = r.Outcome.ShouldRelease
			item.RequiresApproval = r.Outcome.RequiresApproval
			item.Reason = r.Outcome.Reason
		}
		out.Results = append(out.Results, item)
	}
	return out
}

func toReleaseResponse(r *models.Release) ReleaseResponse {
	return ReleaseResponse{
		OwnerID:    r.OwnerID.String(),
		ReleasedAt: r.ReleasedAt.UTC().Format(time.RFC3339),
		Reason:     r.Reason,
	}
}
