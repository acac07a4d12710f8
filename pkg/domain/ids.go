// Package domain holds typed identifiers shared across modules.
//
// Each ID is a distinct named UUID type so an OwnerID can never be passed where
// a ReceiverID is expected. Parse functions are the trust boundary: they reject
// empty, malformed and nil values with CodeInvalidInput.
package domain

import (
	"github.com/google/uuid"

	dErrors "afternote/pkg/domain-errors"
)

type (
	OwnerID              uuid.UUID
	ReceiverID           uuid.UUID
	VerificationID       uuid.UUID
	TimeLetterID         uuid.UUID
	TimeLetterReceiverID uuid.UUID
	MindRecordID         uuid.UUID
	AfternoteID          uuid.UUID
)

func parseID[T ~[16]byte](s, kind string) (T, error) {
	if s == "" {
		return T{}, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return T{}, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if parsed == uuid.Nil {
		return T{}, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return T(parsed), nil
}

func ParseOwnerID(s string) (OwnerID, error) { return parseID[OwnerID](s, "owner id") }

func ParseReceiverID(s string) (ReceiverID, error) { return parseID[ReceiverID](s, "receiver id") }

func ParseVerificationID(s string) (VerificationID, error) {
	return parseID[VerificationID](s, "verification id")
}

func ParseTimeLetterID(s string) (TimeLetterID, error) {
	return parseID[TimeLetterID](s, "time letter id")
}

func ParseTimeLetterReceiverID(s string) (TimeLetterReceiverID, error) {
	return parseID[TimeLetterReceiverID](s, "time letter receiver id")
}

func ParseMindRecordID(s string) (MindRecordID, error) {
	return parseID[MindRecordID](s, "mind record id")
}

func ParseAfternoteID(s string) (AfternoteID, error) {
	return parseID[AfternoteID](s, "afternote id")
}

func (id OwnerID) String() string { return uuid.UUID(id).String() }
func (id ReceiverID) String() string { return uuid.UUID(id).String() }
func (id VerificationID) String() string { return uuid.UUID(id).String() }
func (id TimeLetterID) String() string { return uuid.UUID(id).String() }
func (id TimeLetterReceiverID) String() string { return uuid.UUID(id).String() }
func (id MindRecordID) String() string { return uuid.UUID(id).String() }
func (id AfternoteID) String() string { return uuid.UUID(id).String() }

func (id OwnerID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ReceiverID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id VerificationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id TimeLetterID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id TimeLetterReceiverID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id MindRecordID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id AfternoteID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets typed IDs serialize as plain UUID strings in JSON.
func (id OwnerID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id ReceiverID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id VerificationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id TimeLetterReceiverID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id TimeLetterID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id MindRecordID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id AfternoteID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *ReceiverID) UnmarshalText(b []byte) error {
	parsed, err := ParseReceiverID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *OwnerID) UnmarshalText(b []byte) error {
	parsed, err := ParseOwnerID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *VerificationID) UnmarshalText(b []byte) error {
	parsed, err := ParseVerificationID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
