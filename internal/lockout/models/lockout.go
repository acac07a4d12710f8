package models

import (
	"time"

	dErrors "afternote/pkg/domain-errors"
)

// Lockout tracks master key failures for one client key.
type Lockout struct {
	Identifier    string
	FailureCount  int
	LockedUntil   *time.Time
	LastFailureAt time.Time
}

func NewLockout(identifier string, now time.Time) (*Lockout, error) {
	if identifier == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "identifier cannot be empty")
	}
	return &Lockout{Identifier: identifier, LastFailureAt: now}, nil
}

// IsLockedAt reports whether a hard lock is active at now.
func (l *Lockout) IsLockedAt(now time.Time) bool {
	return l.LockedUntil != nil && now.Before(*l.LockedUntil)
}

// InWindow reports whether the last failure is still inside window.
func (l *Lockout) InWindow(now time.Time, window time.Duration) bool {
	return !l.LastFailureAt.IsZero() && now.Before(l.LastFailureAt.Add(window))
}

// ShouldHardLock is true once the failure count reaches threshold and no
// lock is active.
func (l *Lockout) ShouldHardLock(threshold int, now time.Time) bool {
	return l.FailureCount >= threshold && !l.IsLockedAt(now)
}

func (l *Lockout) ApplyHardLock(d time.Duration, now time.Time) {
	until := now.Add(d)
	l.LockedUntil = &until
}

// Result is the outcome of a lockout check.
type Result struct {
	Allowed      bool
	RetryAfter   time.Duration
	FailureCount int
}
