package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

func TestNewReceiver(t *testing.T) {
	now := time.Now()
	owner := id.OwnerID(uuid.New())

	r, err := NewReceiver(id.ReceiverID(uuid.New()), owner, " 김지은 ", "김철수", "딸", " Jieun@Example.COM ", "digest", now)
	require.NoError(t, err)
	assert.Equal(t, "jieun@example.com", r.Email)
	assert.Equal(t, "김지은", r.Name)

	_, err = NewReceiver(id.ReceiverID(uuid.New()), owner, "a", "b", "c", "not-an-email", "digest", now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewReceiver(id.ReceiverID(uuid.New()), owner, "a", "", "c", "a@b.com", "digest", now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewReceiver(id.ReceiverID(uuid.New()), id.OwnerID{}, "a", "b", "c", "a@b.com", "digest", now)
	assert.Error(t, err)
}

func TestDocumentContentType(t *testing.T) {
	for _, ext := range []string{"PDF", ".pdf", "Jpg", "jpeg", "png", "gif", "webp", "HEIC"} {
		_, _, err := DocumentContentType(ext)
		assert.NoError(t, err, ext)
	}
	ext, ct, err := DocumentContentType(".PDF")
	require.NoError(t, err)
	assert.Equal(t, "pdf", ext)
	assert.Equal(t, "application/pdf", ct)

	for _, ext := range []string{"exe", "", "pdf.exe", "svg"} {
		_, _, err := DocumentContentType(ext)
		assert.Error(t, err, ext)
	}
}

func TestDocumentKey(t *testing.T) {
	rid := id.ReceiverID(uuid.MustParse("5c1b7a0e-8e0f-4b0a-9a57-0f2b1a1c2d3e"))
	key := DocumentKey(rid, time.Date(2025, 2, 3, 23, 0, 0, 0, time.UTC), "abc", "pdf")
	assert.Equal(t, "receivers/5c1b7a0e-8e0f-4b0a-9a57-0f2b1a1c2d3e/2025/02/03/abc.pdf", key)
}

func TestEmailCode(t *testing.T) {
	now := time.Now()
	c := &EmailCode{ExpiresAt: now.Add(time.Minute), Attempts: 4}
	assert.False(t, c.IsExpiredAt(now))
	assert.True(t, c.IsExpiredAt(now.Add(time.Minute)))
	assert.False(t, c.AttemptsExhausted(5))
	c.Attempts++
	assert.True(t, c.AttemptsExhausted(5))
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "Jane Doe", NameFromEmail(" Jane.Doe@example.com"))
	assert.Equal(t, "Min Ji", NameFromEmail("min_ji@example.com"))
	assert.Equal(t, "Receiver", NameFromEmail("@example.com"))
	assert.Equal(t, "Receiver", NameFromEmail(""))
}
