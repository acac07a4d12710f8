package handler

import (
	"time"

	"afternote/internal/review/models"
)

// StatusResponse is what the receiver polls.
type StatusResponse struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	AdminNote *string `json:"adminNote,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// SubmissionResponse echoes a new submission back to the receiver.
type SubmissionResponse struct {
	StatusResponse
	DeathCertificateURL          string `json:"deathCertificateUrl"`
	FamilyRelationCertificateURL string `json:"familyRelationCertificateUrl"`
}

type VerificationResponse struct {
	StatusResponse
	ReceiverID                   string  `json:"receiverId"`
	OwnerID                      string  `json:"ownerId"`
	DeathCertificateURL          string  `json:"deathCertificateUrl"`
	FamilyRelationCertificateURL string  `json:"familyRelationCertificateUrl"`
	DecidedAt                    *string `json:"decidedAt,omitempty"`
}

type VerificationListResponse struct {
	Items      []VerificationResponse `json:"items"`
	TotalCount int                    `json:"totalCount"`
}

func toStatusResponse(v *models.Verification) StatusResponse {
	return StatusResponse{
		ID:        v.ID.String(),
		Status:    string(v.Status),
		AdminNote: v.AdminNote,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toSubmissionResponse(v *models.Verification) SubmissionResponse {
	return SubmissionResponse{
		StatusResponse:               toStatusResponse(v),
		DeathCertificateURL:          v.DeathCertificateURL,
		FamilyRelationCertificateURL: v.FamilyRelationCertificateURL,
	}
}

func toVerificationResponse(v *models.Verification) VerificationResponse {
	resp := VerificationResponse{
		StatusResponse:               toStatusResponse(v),
		ReceiverID:                   v.ReceiverID.String(),
		OwnerID:                      v.OwnerID.String(),
		DeathCertificateURL:          v.DeathCertificateURL,
		FamilyRelationCertificateURL: v.FamilyRelationCertificateURL,
	}
	if v.DecidedAt != nil {
		decided := v.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}

func toListResponse(items []*models.Verification) VerificationListResponse {
	out := make([]VerificationResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toVerificationResponse(v))
	}
	return VerificationListResponse{Items: out, TotalCount: len(out)}
}
