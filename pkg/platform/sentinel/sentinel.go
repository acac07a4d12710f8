// Package sentinel holds the storage-level facts stores report. Services map
// them to domain errors and never let them reach a handler unwrapped.
package sentinel

import "errors"

var (
	// ErrNotFound: no row, or a row outside the caller's scope.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a uniqueness rule rejected the write.
	ErrConflict = errors.New("conflict")
)
