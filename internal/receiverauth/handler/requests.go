package handler

import (
	"strings"

	dErrors "afternote/pkg/domain-errors"
)

// RegisterReceiverRequest is the body of POST /api/users/receivers.
type RegisterReceiverRequest struct {
	Name       string `json:"name"`
	SenderName string `json:"senderName"`
	Relation   string `json:"relation"`
	Email      string `json:"email"`
}

func (r *RegisterReceiverRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SenderName = strings.TrimSpace(r.SenderName)
	r.Relation = strings.TrimSpace(r.Relation)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *RegisterReceiverRequest) Validate() error {
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if r.SenderName == "" {
		return dErrors.New(dErrors.CodeValidation, "senderName is required")
	}
	if r.Relation == "" {
		return dErrors.New(dErrors.CodeValidation, "relation is required")
	}
	return nil
}

type SendEmailCodeRequest struct {
	Email string `json:"email"`
}

func (r *SendEmailCodeRequest) Normalize() { r.Email = strings.TrimSpace(r.Email) }

func (r *SendEmailCodeRequest) Validate() error {
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	return nil
}

type VerifyEmailCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (r *VerifyEmailCodeRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Code = strings.TrimSpace(r.Code)
}

func (r *VerifyEmailCodeRequest) Validate() error {
	if r.Email == "" || r.Code == "" {
		return dErrors.New(dErrors.CodeValidation, "email and code are required")
	}
	return nil
}

// VerifyMasterKeyRequest is the body of POST /api/receiver-auth/verify.
// A blank key is rejected by the service so the message stays in one place.
type VerifyMasterKeyRequest struct {
	AuthCode string `json:"authCode"`
}

func (r *VerifyMasterKeyRequest) Normalize() { r.AuthCode = strings.TrimSpace(r.AuthCode) }

func (r *VerifyMasterKeyRequest) Validate() error { return nil }

type PresignRequest struct {
	Extension string `json:"extension"`
}

func (r *PresignRequest) Normalize() { r.Extension = strings.TrimSpace(r.Extension) }

func (r *PresignRequest) Validate() error {
	if r.Extension == "" {
		return dErrors.New(dErrors.CodeValidation, "extension is required")
	}
	return nil
}
