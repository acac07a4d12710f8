package models

import (
	"fmt"
	"strings"
	"time"

	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

var documentContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"heic": "image/heic",
	"pdf":  "application/pdf",
}

// DocumentContentType maps an upload extension to its content type. The
// extension is matched case-insensitively, with or without a leading dot.
func DocumentContentType(extension string) (string, string, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))
	ct, ok := documentContentTypes[ext]
	if !ok {
		return "", "", dErrors.New(dErrors.CodeInvariantViolation, "unsupported file extension")
	}
	return ext, ct, nil
}

// DocumentKey places uploads under the receiver and the upload date.
func DocumentKey(receiverID id.ReceiverID, now time.Time, name, ext string) string {
	now = now.UTC()
	return fmt.Sprintf("receivers/%s/%04d/%02d/%02d/%s.%s",
		receiverID, now.Year(), int(now.Month()), now.Day(), name, ext)
}

// DocumentUpload is a presigned PUT for one certificate.
type DocumentUpload struct {
	PresignedURL string
	FileURL      string
	ContentType  string
}
