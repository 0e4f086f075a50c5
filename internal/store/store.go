// Package store holds the in-memory application state: the four journal
// record sequences plus transient toast notification state.
//
// The store is the single owner of its sequences. Every mutation takes
// the store lock and updates the whole aggregate before returning, so a
// reader never observes a partial update. Mutations are total: deleting
// or updating an absent id is a silent no-op, never an error. Validation
// happens earlier, in the record factory; the store never rejects a
// well-formed record.
package store

import (
	"sync"
	"time"

	"github.com/ayselgur/cradle/internal/journal"
)

// DefaultToastDuration is the auto-clear delay used when none is configured.
const DefaultToastDuration = 3000 * time.Millisecond

// ToastKind classifies a toast notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Toast is the transient notification state.
type Toast struct {
	Message string    `json:"message"`
	Kind    ToastKind `json:"kind"`
}

// Snapshot is a read-only copy of the full application state, taken
// atomically. Sequences are newest-first: index 0 is always the most
// recently added record, regardless of CreatedAt values.
type Snapshot struct {
	Moods        []journal.MoodRecord    `json:"moods"`
	Feedings     []journal.FeedingRecord `json:"feedings"`
	PanasRecords []journal.PanasRecord   `json:"panasRecords"`
	DailyNotes   []journal.DailyNote     `json:"dailyNotes"`
	Toast        *Toast                  `json:"toast,omitempty"`
}

// Store is the authoritative in-memory collection of all four record
// kinds. Construct one per process (or per test) with New; there is no
// package-level instance.
type Store struct {
	mu sync.Mutex

	moods    []journal.MoodRecord
	feedings []journal.FeedingRecord
	panas    []journal.PanasRecord
	notes    []journal.DailyNote

	toast      *Toast
	toastTimer *time.Timer
	toastGen   uint64
	toastDur   time.Duration
}

// New creates an empty store. A non-positive duration falls back to
// DefaultToastDuration.
func New(toastDuration time.Duration) *Store {
	if toastDuration <= 0 {
		toastDuration = DefaultToastDuration
	}
	return &Store{toastDur: toastDuration}
}

// SetInitial replaces all four sequences at once. Used to seed the store
// from a repository load at startup; the given slices are copied.
func (s *Store) SetInitial(moods []journal.MoodRecord, feedings []journal.FeedingRecord, panas []journal.PanasRecord, notes []journal.DailyNote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.moods = append([]journal.MoodRecord(nil), moods...)
	s.feedings = append([]journal.FeedingRecord(nil), feedings...)
	s.panas = append([]journal.PanasRecord(nil), panas...)
	s.notes = append([]journal.DailyNote(nil), notes...)
}

// AddMood prepends a mood record.
func (s *Store) AddMood(rec journal.MoodRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moods = append([]journal.MoodRecord{rec}, s.moods...)
}

// DeleteMood removes the mood with the given id. Reports whether a
// record was found; an absent id is a no-op, not an error.
func (s *Store) DeleteMood(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.moods {
		if m.ID == id {
			s.moods = append(s.moods[:i:i], s.moods[i+1:]...)
			return true
		}
	}
	return false
}

// AddFeeding prepends a feeding record.
func (s *Store) AddFeeding(rec journal.FeedingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedings = append([]journal.FeedingRecord{rec}, s.feedings...)
}

// DeleteFeeding removes the feeding with the given id.
func (s *Store) DeleteFeeding(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.feedings {
		if f.ID == id {
			s.feedings = append(s.feedings[:i:i], s.feedings[i+1:]...)
			return true
		}
	}
	return false
}

// AddPanas prepends a PANAS record.
func (s *Store) AddPanas(rec journal.PanasRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panas = append([]journal.PanasRecord{rec}, s.panas...)
}

// DeletePanas removes the PANAS record with the given id.
func (s *Store) DeletePanas(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.panas {
		if p.ID == id {
			s.panas = append(s.panas[:i:i], s.panas[i+1:]...)
			return true
		}
	}
	return false
}

// AddNote prepends a daily note.
func (s *Store) AddNote(rec journal.DailyNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]journal.DailyNote{rec}, s.notes...)
}

// UpdateNote replaces the note whose id matches rec.ID, keeping its
// position. Reports whether a record was found.
func (s *Store) UpdateNote(rec journal.DailyNote) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.ID == rec.ID {
			s.notes[i] = rec
			return true
		}
	}
	return false
}

// DeleteNote removes the note with the given id.
func (s *Store) DeleteNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// ShowToast sets the toast state and schedules its auto-clear. A new
// call supersedes any pending clear: the previous timer is cancelled and
// the clear fires once, one full duration after the latest call. An
// empty kind defaults to success.
func (s *Store) ShowToast(message string, kind ToastKind) {
	if kind == "" {
		kind = ToastSuccess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.toastTimer != nil {
		s.toastTimer.Stop()
	}

	s.toast = &Toast{Message: message, Kind: kind}
	s.toastGen++
	gen := s.toastGen

	// The generation check makes a stale timer that already fired before
	// Stop a no-op.
	s.toastTimer = time.AfterFunc(s.toastDur, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.toastGen == gen {
			s.toast = nil
			s.toastTimer = nil
		}
	})
}

// HideToast clears the toast state immediately. Idempotent.
func (s *Store) HideToast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.toastTimer != nil {
		s.toastTimer.Stop()
		s.toastTimer = nil
	}
	s.toastGen++
	s.toast = nil
}

// Snapshot returns an atomic copy of the full state for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Moods:        append([]journal.MoodRecord(nil), s.moods...),
		Feedings:     append([]journal.FeedingRecord(nil), s.feedings...),
		PanasRecords: append([]journal.PanasRecord(nil), s.panas...),
		DailyNotes:   append([]journal.DailyNote(nil), s.notes...),
	}
	if s.toast != nil {
		t := *s.toast
		snap.Toast = &t
	}
	return snap
}

// Close stops any pending toast timer. The store remains usable but
// should be discarded after Close.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.toastTimer != nil {
		s.toastTimer.Stop()
		s.toastTimer = nil
	}
	s.toastGen++
}
