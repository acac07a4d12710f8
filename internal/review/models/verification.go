package models

import (
	"net/url"
	"strings"
	"time"

	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

// Status is the review state of a document submission.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsTerminal reports whether no further decision can be applied.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

const maxAdminNote = 500

// Verification is one receiver submission of a death certificate and a
// family relation certificate.
//
// Invariants:
//   - Status moves PENDING -> APPROVED or PENDING -> REJECTED, never back
//   - DecidedAt is set iff Status is terminal
//   - both certificate URLs are absolute http(s) URLs
type Verification struct {
	ID                           id.VerificationID `json:"id"`
	ReceiverID                   id.ReceiverID     `json:"receiverId"`
	OwnerID                      id.OwnerID        `json:"ownerId"`
	Status                       Status            `json:"status"`
	DeathCertificateURL          string            `json:"deathCertificateUrl"`
	FamilyRelationCertificateURL string            `json:"familyRelationCertificateUrl"`
	AdminNote                    *string           `json:"adminNote,omitempty"`
	CreatedAt                    time.Time         `json:"createdAt"`
	DecidedAt                    *time.Time        `json:"decidedAt,omitempty"`
}

func NewVerification(
	verificationID id.VerificationID,
	receiverID id.ReceiverID,
	ownerID id.OwnerID,
	deathCertificateURL string,
	familyRelationCertificateURL string,
	now time.Time,
) (*Verification, error) {
	if receiverID.IsNil() || ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "receiver and owner are required")
	}
	death := strings.TrimSpace(deathCertificateURL)
	family := strings.TrimSpace(familyRelationCertificateURL)
	if death == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "deathCertificateUrl is required")
	}
	if family == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "familyRelationCertificateUrl is required")
	}
	if !isHTTPURL(death) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "deathCertificateUrl must be an http(s) URL")
	}
	if !isHTTPURL(family) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "familyRelationCertificateUrl must be an http(s) URL")
	}
	return &Verification{
		ID:                           verificationID,
		ReceiverID:                   receiverID,
		OwnerID:                      ownerID,
		Status:                       StatusPending,
		DeathCertificateURL:          death,
		FamilyRelationCertificateURL: family,
		CreatedAt:                    now,
	}, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CanApprove checks the PENDING -> APPROVED transition.
func (v *Verification) CanApprove() error {
	if v.Status != StatusPending {
		return dErrors.New(dErrors.CodeInvariantViolation, "verification already processed")
	}
	return nil
}

// ApplyApproval must only be called after CanApprove returns nil.
func (v *Verification) ApplyApproval(note *string, now time.Time) {
	v.Status = StatusApproved
	v.AdminNote = cleanNote(note)
	v.DecidedAt = &now
}

// CanReject checks the PENDING -> REJECTED transition.
func (v *Verification) CanReject() error {
	if v.Status != StatusPending {
		return dErrors.New(dErrors.CodeInvariantViolation, "verification already processed")
	}
	return nil
}

// ApplyRejection must only be called after CanReject returns nil.
func (v *Verification) ApplyRejection(note *string, now time.Time) {
	v.Status = StatusRejected
	v.AdminNote = cleanNote(note)
	v.DecidedAt = &now
}

// ValidateAdminNote bounds the note length.
func ValidateAdminNote(note *string) error {
	if note != nil && len([]rune(*note)) > maxAdminNote {
		return dErrors.New(dErrors.CodeInvariantViolation, "adminNote must be 500 characters or less")
	}
	return nil
}

func cleanNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Clone returns a deep copy.
func (v *Verification) Clone() *Verification {
	if v == nil {
		return nil
	}
	out := *v
	if v.AdminNote != nil {
		n := *v.AdminNote
		out.AdminNote = &n
	}
	if v.DecidedAt != nil {
		t := *v.DecidedAt
		out.DecidedAt = &t
	}
	return &out
}
