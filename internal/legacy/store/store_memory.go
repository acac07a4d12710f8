package store

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"afternote/internal/legacy/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

// InMemoryStore serves legacy content from maps. Seed* methods load
// content for tests and local runs.
type InMemoryStore struct {
	mu          sync.RWMutex
	timeLetters map[id.TimeLetterReceiverID]*models.TimeLetter
	mindRecords map[id.MindRecordID]*models.MindRecord
	mindShares  map[id.MindRecordID][]id.ReceiverID
	afternotes  map[id.AfternoteID]*models.Afternote
	noteShares  map[id.AfternoteID][]id.ReceiverID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		timeLetters: make(map[id.TimeLetterReceiverID]*models.TimeLetter),
		mindRecords: make(map[id.MindRecordID]*models.MindRecord),
		mindShares:  make(map[id.MindRecordID][]id.ReceiverID),
		afternotes:  make(map[id.AfternoteID]*models.Afternote),
		noteShares:  make(map[id.AfternoteID][]id.ReceiverID),
	}
}

// SeedTimeLetter stores one delivery. DeliveryID and ReceiverID must be set.
func (s *InMemoryStore) SeedTimeLetter(letter models.TimeLetter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeLetters[letter.DeliveryID] = &letter
}

func (s *InMemoryStore) SeedMindRecord(record models.MindRecord, receivers ...id.ReceiverID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mindRecords[record.ID] = &record
	s.mindShares[record.ID] = append(s.mindShares[record.ID], receivers...)
}

func (s *InMemoryStore) SeedAfternote(note models.Afternote, receivers ...id.ReceiverID) {
	note.NormalizeActions()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.afternotes[note.ID] = &note
	s.noteShares[note.ID] = append(s.noteShares[note.ID], receivers...)
}

func (s *InMemoryStore) sharedLetters(scope models.Scope) []*models.TimeLetter {
	out := make([]*models.TimeLetter, 0)
	for _, l := range s.timeLetters {
		if l.ReceiverID == scope.ReceiverID && l.OwnerID == scope.OwnerID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *InMemoryStore) ListTimeLetters(_ context.Context, scope models.Scope, page models.PageRequest) ([]*models.TimeLetter, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.sharedLetters(scope)
	start, end := page.Window(len(all))
	out := make([]*models.TimeLetter, 0, end-start)
	for _, l := range all[start:end] {
		out = append(out, cloneLetter(l))
	}
	return out, len(all), nil
}

func (s *InMemoryStore) FindTimeLetter(_ context.Context, scope models.Scope, deliveryID id.TimeLetterReceiverID) (*models.TimeLetter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.timeLetters[deliveryID]
	if !ok || l.ReceiverID != scope.ReceiverID || l.OwnerID != scope.OwnerID {
		return nil, fmt.Errorf("time letter %s: %w", deliveryID, sentinel.ErrNotFound)
	}
	return cloneLetter(l), nil
}

// MarkTimeLetterRead sets ReadAt only when it is unset and reports whether
// this call set it.
func (s *InMemoryStore) MarkTimeLetterRead(_ context.Context, scope models.Scope, deliveryID id.TimeLetterReceiverID, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.timeLetters[deliveryID]
	if !ok || l.ReceiverID != scope.ReceiverID || l.OwnerID != scope.OwnerID {
		return false, fmt.Errorf("time letter %s: %w", deliveryID, sentinel.ErrNotFound)
	}
	if l.ReadAt != nil {
		return false, nil
	}
	l.ReadAt = &at
	return true, nil
}

func (s *InMemoryStore) CountTimeLetters(_ context.Context, scope models.Scope) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.sharedLetters(scope)
	unread := 0
	for _, l := range all {
		if l.ReadAt == nil {
			unread++
		}
	}
	return len(all), unread, nil
}

func (s *InMemoryStore) sharedRecords(scope models.Scope) []*models.MindRecord {
	out := make([]*models.MindRecord, 0)
	for recordID, r := range s.mindRecords {
		if r.OwnerID == scope.OwnerID && slices.Contains(s.mindShares[recordID], scope.ReceiverID) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *InMemoryStore) ListMindRecords(_ context.Context, scope models.Scope, page models.PageRequest) ([]*models.MindRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.sharedRecords(scope)
	start, end := page.Window(len(all))
	out := make([]*models.MindRecord, 0, end-start)
	for _, r := range all[start:end] {
		out = append(out, cloneRecord(r))
	}
	return out, len(all), nil
}

func (s *InMemoryStore) FindMindRecord(_ context.Context, scope models.Scope, recordID id.MindRecordID) (*models.MindRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.mindRecords[recordID]
	if !ok || r.OwnerID != scope.OwnerID || !slices.Contains(s.mindShares[recordID], scope.ReceiverID) {
		return nil, fmt.Errorf("mind record %s: %w", recordID, sentinel.ErrNotFound)
	}
	return cloneRecord(r), nil
}

func (s *InMemoryStore) CountMindRecords(_ context.Context, scope models.Scope) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sharedRecords(scope)), nil
}

func (s *InMemoryStore) sharedNotes(scope models.Scope) []*models.Afternote {
	out := make([]*models.Afternote, 0)
	for noteID, n := range s.afternotes {
		if n.OwnerID == scope.OwnerID && slices.Contains(s.noteShares[noteID], scope.ReceiverID) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *InMemoryStore) ListAfternotes(_ context.Context, scope models.Scope, page models.PageRequest) ([]*models.Afternote, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.sharedNotes(scope)
	start, end := page.Window(len(all))
	out := make([]*models.Afternote, 0, end-start)
	for _, n := range all[start:end] {
		out = append(out, cloneNote(n))
	}
	return out, len(all), nil
}

func (s *InMemoryStore) FindAfternote(_ context.Context, scope models.Scope, noteID id.AfternoteID) (*models.Afternote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.afternotes[noteID]
	if !ok || n.OwnerID != scope.OwnerID || !slices.Contains(s.noteShares[noteID], scope.ReceiverID) {
		return nil, fmt.Errorf("afternote %s: %w", noteID, sentinel.ErrNotFound)
	}
	return cloneNote(n), nil
}

func (s *InMemoryStore) CountAfternotes(_ context.Context, scope models.Scope) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sharedNotes(scope)), nil
}

func cloneLetter(l *models.TimeLetter) *models.TimeLetter {
	out := *l
	out.Media = slices.Clone(l.Media)
	return &out
}

func cloneRecord(r *models.MindRecord) *models.MindRecord {
	out := *r
	out.Images = slices.Clone(r.Images)
	return &out
}

func cloneNote(n *models.Afternote) *models.Afternote {
	out := *n
	out.Actions = slices.Clone(n.Actions)
	out.Songs = slices.Clone(n.Songs)
	return &out
}
