// Package repo defines the journal's persistence boundary. The Store
// owns live state; a Repository is where records go between process
// runs, and where a network-backed implementation would plug in later.
package repo

import (
	"context"

	"github.com/ayselgur/cradle/internal/journal"
)

// Repository is the abstract backend for journal records. List methods
// return sequences newest-first by insertion order. Delete and update
// of an unknown id return a NOT_FOUND error; the state store's no-op
// contract applies above this boundary, not at it.
type Repository interface {
	Moods(ctx context.Context) ([]journal.MoodRecord, error)
	AddMood(ctx context.Context, rec journal.MoodRecord) error
	DeleteMood(ctx context.Context, id string) error

	Feedings(ctx context.Context) ([]journal.FeedingRecord, error)
	AddFeeding(ctx context.Context, rec journal.FeedingRecord) error
	DeleteFeeding(ctx context.Context, id string) error

	PanasRecords(ctx context.Context) ([]journal.PanasRecord, error)
	AddPanas(ctx context.Context, rec journal.PanasRecord) error
	DeletePanas(ctx context.Context, id string) error

	Notes(ctx context.Context) ([]journal.DailyNote, error)
	AddNote(ctx context.Context, rec journal.DailyNote) error
	UpdateNote(ctx context.Context, rec journal.DailyNote) error
	DeleteNote(ctx context.Context, id string) error

	Close() error
}

// Load reads all four sequences in one pass, for seeding a store at
// startup.
func Load(ctx context.Context, r Repository) (moods []journal.MoodRecord, feedings []journal.FeedingRecord, panas []journal.PanasRecord, notes []journal.DailyNote, err error) {
	if moods, err = r.Moods(ctx); err != nil {
		return nil, nil, nil, nil, err
	}
	if feedings, err = r.Feedings(ctx); err != nil {
		return nil, nil, nil, nil, err
	}
	if panas, err = r.PanasRecords(ctx); err != nil {
		return nil, nil, nil, nil, err
	}
	if notes, err = r.Notes(ctx); err != nil {
		return nil, nil, nil, nil, err
	}
	return moods, feedings, panas, notes, nil
}
