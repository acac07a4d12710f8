// Package models holds the deceased owner's content as a receiver sees it.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	id "afternote/pkg/domain"
)

// Scope is the share set a read is limited to.
type Scope struct {
	OwnerID    id.OwnerID
	ReceiverID id.ReceiverID
}

type TimeLetterMedia struct {
	ID        uuid.UUID
	MediaType string
	MediaURL  string
}

// TimeLetter is one delivery of a letter to one receiver. DeliveryID is the
// receiver-facing identifier.
type TimeLetter struct {
	ID          id.TimeLetterID
	DeliveryID  id.TimeLetterReceiverID
	OwnerID     id.OwnerID
	ReceiverID  id.ReceiverID
	Title       string
	Content     string
	Status      string
	SendAt      *time.Time
	DeliveredAt *time.Time
	ReadAt      *time.Time
	CreatedAt   time.Time
	Media       []TimeLetterMedia
	SenderName  string
}

func (t *TimeLetter) IsRead() bool { return t.ReadAt != nil }

type MindRecordImage struct {
	ID        uuid.UUID
	MediaType string
	ImageURL  string
}

type MindRecord struct {
	ID              id.MindRecordID
	OwnerID         id.OwnerID
	Type            string
	Title           string
	Content         string
	RecordDate      id.Date
	QuestionContent *string
	Category        *string
	CreatedAt       time.Time
	Images          []MindRecordImage
	SenderName      string
}

type Song struct {
	Title    string
	Artist   string
	CoverURL *string
}

// Afternote is an instruction the owner left for one of their accounts or
// collections. Playlist afternotes carry songs and a memorial video.
type Afternote struct {
	ID                   id.AfternoteID
	OwnerID              id.OwnerID
	Category             string
	Title                string
	ProcessMethod        *string
	Actions              []string
	LeaveMessage         *string
	Atmosphere           *string
	MemorialVideoURL     *string
	MemorialThumbnailURL *string
	CreatedAt            time.Time
	Songs                []Song
	SenderName           string
}

// NormalizeActions trims the checklist and drops blanks and repeats.
func (a *Afternote) NormalizeActions() {
	seen := make(map[string]struct{}, len(a.Actions))
	actions := make([]string, 0, len(a.Actions))
	for _, action := range a.Actions {
		action = strings.TrimSpace(action)
		if action == "" {
			continue
		}
		if _, dup := seen[action]; dup {
			continue
		}
		seen[action] = struct{}{}
		actions = append(actions, action)
	}
	a.Actions = actions
}

// Overview summarizes everything shared with a receiver.
type Overview struct {
	TimeLetters       int
	UnreadTimeLetters int
	MindRecords       int
	Afternotes        int
}
