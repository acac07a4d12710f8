package models

import "time"

// EmailCode is a pending email verification. The plaintext code is never
// stored.
type EmailCode struct {
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	Attempts  int
}

func (c *EmailCode) IsExpiredAt(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

func (c *EmailCode) AttemptsExhausted(maxAttempts int) bool {
	return c.Attempts >= maxAttempts
}
