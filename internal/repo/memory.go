package repo

import (
	"context"
	"sync"

	"github.com/ayselgur/cradle/internal/errors"
	"github.com/ayselgur/cradle/internal/journal"
)

// Memory is an in-memory Repository. It is the stand-in for a future
// network backend and the fixture used by tests.
type Memory struct {
	mu       sync.Mutex
	moods    []journal.MoodRecord
	feedings []journal.FeedingRecord
	panas    []journal.PanasRecord
	notes    []journal.DailyNote
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Moods(_ context.Context) ([]journal.MoodRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]journal.MoodRecord(nil), m.moods...), nil
}

func (m *Memory) AddMood(_ context.Context, rec journal.MoodRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moods = append([]journal.MoodRecord{rec}, m.moods...)
	return nil
}

func (m *Memory) DeleteMood(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.moods {
		if r.ID == id {
			m.moods = append(m.moods[:i:i], m.moods[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFound("mood", id)
}

func (m *Memory) Feedings(_ context.Context) ([]journal.FeedingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]journal.FeedingRecord(nil), m.feedings...), nil
}

func (m *Memory) AddFeeding(_ context.Context, rec journal.FeedingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedings = append([]journal.FeedingRecord{rec}, m.feedings...)
	return nil
}

func (m *Memory) DeleteFeeding(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.feedings {
		if r.ID == id {
			m.feedings = append(m.feedings[:i:i], m.feedings[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFound("feeding", id)
}

func (m *Memory) PanasRecords(_ context.Context) ([]journal.PanasRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]journal.PanasRecord(nil), m.panas...), nil
}

func (m *Memory) AddPanas(_ context.Context, rec journal.PanasRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panas = append([]journal.PanasRecord{rec}, m.panas...)
	return nil
}

func (m *Memory) DeletePanas(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.panas {
		if r.ID == id {
			m.panas = append(m.panas[:i:i], m.panas[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFound("panas", id)
}

func (m *Memory) Notes(_ context.Context) ([]journal.DailyNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]journal.DailyNote(nil), m.notes...), nil
}

func (m *Memory) AddNote(_ context.Context, rec journal.DailyNote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append([]journal.DailyNote{rec}, m.notes...)
	return nil
}

func (m *Memory) UpdateNote(_ context.Context, rec journal.DailyNote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.notes {
		if r.ID == rec.ID {
			m.notes[i] = rec
			return nil
		}
	}
	return errors.NewNotFound("note", rec.ID)
}

func (m *Memory) DeleteNote(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.notes {
		if r.ID == id {
			m.notes = append(m.notes[:i:i], m.notes[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFound("note", id)
}

// Close is a no-op for the in-memory repository.
func (m *Memory) Close() error { return nil }
