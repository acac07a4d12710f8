package receiverflow

import (
	"context"
	"strings"

	review "afternote/internal/review/models"
)

// Document is a certificate chosen by the receiver.
type Document struct {
	Name      string
	Extension string
	Data      []byte
}

func (d Document) isEmpty() bool {
	return strings.TrimSpace(d.Extension) == "" || len(d.Data) == 0
}

// documentPair remembers the chosen documents and the file URLs already
// uploaded, so a retry neither re-selects nor re-uploads.
type documentPair struct {
	death, family       Document
	deathURL, familyURL string
}

// SubmitDocuments uploads both certificates and files the verification.
// On success the session moves to END with a PENDING status. On failure it
// stays at UPLOAD_PDF_AUTH and keeps the documents for RetrySubmit.
func (f *Flow) SubmitDocuments(ctx context.Context, death, family Document) error {
	f.mu.Lock()
	if f.state.Step == StepUploadPDFAuth && !f.inFlight {
		if death.isEmpty() || family.isEmpty() {
			defer f.mu.Unlock()
			return f.fail(required("both certificates are required"))
		}
		f.documents = &documentPair{death: death, family: family}
	}
	f.mu.Unlock()
	return f.RetrySubmit(ctx)
}

// RetrySubmit repeats the submission with the documents already chosen.
func (f *Flow) RetrySubmit(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Step == StepUploadPDFAuth && f.documents == nil {
		defer f.mu.Unlock()
		return f.fail(required("both certificates are required"))
	}
	token, err := f.begin(StepUploadPDFAuth)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	docs := *f.documents
	authCode := f.authCode
	f.mu.Unlock()

	status, callErr := f.submit(ctx, authCode, &docs)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.documents != nil {
		f.documents.deathURL, f.documents.familyURL = docs.deathURL, docs.familyURL
	}
	if !f.finish(token) {
		return ErrStale
	}
	if callErr != nil {
		return f.fail(callErr)
	}
	if status == nil {
		status = &VerificationStatus{Status: review.StatusPending}
	}
	f.state.Verification = status
	f.moveTo(StepEnd)
	return nil
}

func (f *Flow) submit(ctx context.Context, authCode string, docs *documentPair) (*VerificationStatus, error) {
	if docs.deathURL == "" {
		url, err := f.upload(ctx, authCode, docs.death)
		if err != nil {
			return nil, err
		}
		docs.deathURL = url
	}
	if docs.familyURL == "" {
		url, err := f.upload(ctx, authCode, docs.family)
		if err != nil {
			return nil, err
		}
		docs.familyURL = url
	}
	return f.api.SubmitVerification(ctx, authCode, docs.deathURL, docs.familyURL)
}

func (f *Flow) upload(ctx context.Context, authCode string, doc Document) (string, error) {
	presigned, err := f.api.PresignDocument(ctx, authCode, strings.TrimPrefix(doc.Extension, "."))
	if err != nil {
		return "", err
	}
	if err := f.uploader.Upload(ctx, *presigned, doc); err != nil {
		return "", err
	}
	return presigned.FileURL, nil
}
