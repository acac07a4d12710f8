package models

import (
	"net/mail"
	"strings"
	"time"
	"unicode"

	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

// Receiver is a person the owner designated to receive their legacy. Only a
// keyed digest of the master key is stored.
type Receiver struct {
	ID              id.ReceiverID
	OwnerID         id.OwnerID
	Name            string
	SenderName      string
	Relation        string
	Email           string
	MasterKeyDigest string
	CreatedAt       time.Time
}

func NewReceiver(
	receiverID id.ReceiverID,
	ownerID id.OwnerID,
	name, senderName, relation, email, digest string,
	now time.Time,
) (*Receiver, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "owner is required")
	}
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "email is invalid")
	}
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name is required")
	}
	if strings.TrimSpace(senderName) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "senderName is required")
	}
	if strings.TrimSpace(relation) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "relation is required")
	}
	if digest == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "master key digest is required")
	}
	return &Receiver{
		ID:              receiverID,
		OwnerID:         ownerID,
		Name:            strings.TrimSpace(name),
		SenderName:      strings.TrimSpace(senderName),
		Relation:        strings.TrimSpace(relation),
		Email:           email,
		MasterKeyDigest: digest,
		CreatedAt:       now,
	}, nil
}

// NormalizeEmail lowercases and trims so lookups match registration.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NameFromEmail turns the local part of an address into a display name:
// "jane.doe+x@example.com" becomes "Jane Doe X". It never returns "".
func NameFromEmail(email string) string {
	local := NormalizeEmail(email)
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(words) == 0 {
		return "Receiver"
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// RegisteredReceiver is returned once, at registration. MasterKey is the
// only copy of the plaintext key.
type RegisteredReceiver struct {
	Receiver  *Receiver
	MasterKey string
}

// AccessCapability is the proof that a caller presented a valid authCode.
// It is only ever built by capability resolution, never from a bare id.
type AccessCapability struct {
	ReceiverID id.ReceiverID
	OwnerID    id.OwnerID
}

func (c AccessCapability) IsZero() bool {
	return c.ReceiverID.IsNil() || c.OwnerID.IsNil()
}

// VerifyResult is what a receiver learns after presenting the master key.
type VerifyResult struct {
	ReceiverID   id.ReceiverID `json:"receiverId"`
	ReceiverName string        `json:"receiverName"`
	SenderName   string        `json:"senderName"`
	Relation     string        `json:"relation"`
}

// SenderMessage is the owner's farewell message as seen by a receiver.
type SenderMessage struct {
	SenderName string
	Message    *string
}
