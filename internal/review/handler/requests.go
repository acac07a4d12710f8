package handler

import (
	"strings"

	dErrors "afternote/pkg/domain-errors"
)

type SubmitRequest struct {
	DeathCertificateURL          string `json:"deathCertificateUrl"`
	FamilyRelationCertificateURL string `json:"familyRelationCertificateUrl"`
}

func (r *SubmitRequest) Normalize() {
	r.DeathCertificateURL = strings.TrimSpace(r.DeathCertificateURL)
	r.FamilyRelationCertificateURL = strings.TrimSpace(r.FamilyRelationCertificateURL)
}

func (r *SubmitRequest) Validate() error {
	if r.DeathCertificateURL == "" || r.FamilyRelationCertificateURL == "" {
		return dErrors.New(dErrors.CodeValidation, "both certificate urls are required")
	}
	return nil
}

// DecisionRequest is the optional body of approve and reject.
type DecisionRequest struct {
	AdminNote *string `json:"adminNote"`
}

func (r *DecisionRequest) Normalize() {}

func (r *DecisionRequest) Validate() error { return nil }
