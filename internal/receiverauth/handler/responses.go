package handler

import (
	"time"

	"afternote/internal/receiverauth/models"
)

type ReceiverResponse struct {
	ReceiverID string `json:"receiverId"`
	Name       string `json:"name"`
	SenderName string `json:"senderName"`
	Relation   string `json:"relation"`
	Email      string `json:"email"`
	CreatedAt  string `json:"createdAt"`
}

// RegisteredReceiverResponse is the only response that ever carries a
// master key.
type RegisteredReceiverResponse struct {
	ReceiverResponse
	MasterKey string `json:"masterKey"`
}

type ReceiverListResponse struct {
	Items      []ReceiverResponse `json:"items"`
	TotalCount int                `json:"totalCount"`
}

type VerifyMasterKeyResponse struct {
	ReceiverID   string `json:"receiverId"`
	ReceiverName string `json:"receiverName"`
	SenderName   string `json:"senderName"`
	Relation     string `json:"relation"`
}

type EmailCodeResponse struct {
	Sent     bool `json:"sent,omitempty"`
	Verified bool `json:"verified,omitempty"`
}

type PresignResponse struct {
	PresignedURL string `json:"presignedUrl"`
	FileURL      string `json:"fileUrl"`
	ContentType  string `json:"contentType"`
}

type MessageResponse struct {
	SenderName string  `json:"senderName"`
	Message    *string `json:"message"`
}

func toReceiverResponse(r *models.Receiver) ReceiverResponse {
	return ReceiverResponse{
		ReceiverID: r.ID.String(),
		Name:       r.Name,
		SenderName: r.SenderName,
		Relation:   r.Relation,
		Email:      r.Email,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toReceiverListResponse(receivers []*models.Receiver) ReceiverListResponse {
	items := make([]ReceiverResponse, 0, len(receivers))
	for _, r := range receivers {
		items = append(items, toReceiverResponse(r))
	}
	return ReceiverListResponse{Items: items, TotalCount: len(items)}
}

func toVerifyResponse(r *models.VerifyResult) VerifyMasterKeyResponse {
	return VerifyMasterKeyResponse{
		ReceiverID:   r.ReceiverID.String(),
		ReceiverName: r.ReceiverName,
		SenderName:   r.SenderName,
		Relation:     r.Relation,
	}
}
