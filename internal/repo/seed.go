package repo

import (
	"context"
	"time"

	"github.com/ayselgur/cradle/internal/journal"
)

// Demo records for first runs and manual testing. Timestamps are
// relative to now so the day views have something recent to show.

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// DemoMoods returns sample mood records, oldest last.
func DemoMoods(now time.Time) []journal.MoodRecord {
	return []journal.MoodRecord{
		{
			ID:        "demo-mood-1",
			MoodLevel: 4,
			MoodLabel: journal.MoodConfigs[4].Label,
			Emoji:     journal.MoodConfigs[4].Emoji,
			Note:      strPtr("Bebeğim çok güzel uyudu."),
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "demo-mood-2",
			MoodLevel: 3,
			MoodLabel: journal.MoodConfigs[3].Label,
			Emoji:     journal.MoodConfigs[3].Emoji,
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:        "demo-mood-3",
			MoodLevel: 5,
			MoodLabel: journal.MoodConfigs[5].Label,
			Emoji:     journal.MoodConfigs[5].Emoji,
			Note:      strPtr("İlk adımını attı!"),
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}

// DemoFeedings returns sample feeding records, oldest last.
func DemoFeedings(now time.Time) []journal.FeedingRecord {
	return []journal.FeedingRecord{
		{
			ID:        "demo-feeding-1",
			Type:      journal.FeedingBottle,
			AmountMl:  intPtr(120),
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:              "demo-feeding-2",
			Type:            journal.FeedingBreast,
			DurationMinutes: intPtr(15),
			Note:            strPtr("Sol meme 10 dk, sağ meme 5 dk"),
			CreatedAt:       now.Add(-3 * time.Hour),
		},
		{
			ID:         "demo-feeding-3",
			Type:       journal.FeedingFormula,
			AmountGram: intPtr(80),
			CreatedAt:  now.Add(-6 * time.Hour),
		},
	}
}

// DemoPanas returns one sample PANAS record with scores consistent with
// its answers.
func DemoPanas(now time.Time) []journal.PanasRecord {
	answers := make([]journal.PanasAnswer, 0, len(journal.PanasQuestions))
	for i, q := range journal.PanasQuestions {
		score := 3
		if q.Category == journal.PanasNegative {
			score = 1
		}
		if i%4 == 0 {
			score++
		}
		answers = append(answers, journal.PanasAnswer{QuestionID: q.ID, Score: score})
	}

	positive, negative, _ := journal.Score(answers)
	return []journal.PanasRecord{
		{
			ID:            "demo-panas-1",
			Answers:       answers,
			PositiveScore: positive,
			NegativeScore: negative,
			CreatedAt:     now.Add(-2 * 24 * time.Hour),
		},
	}
}

// DemoNotes returns sample daily notes, oldest last.
func DemoNotes(now time.Time) []journal.DailyNote {
	return []journal.DailyNote{
		{
			ID:        "demo-note-1",
			Text:      "Bugün bebeğimle oyun oynadım. Çok güzel vakit geçirdik.",
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:        "demo-note-2",
			Text:      "İlk dişi çıkmaya başladı. Biraz huzursuzdu ama geçti.",
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}

// Seed inserts the demo records into a repository. Records are inserted
// oldest-first so the newest-first list order matches their timestamps.
func Seed(ctx context.Context, r Repository) error {
	now := time.Now()

	moods := DemoMoods(now)
	for i := len(moods) - 1; i >= 0; i-- {
		if err := r.AddMood(ctx, moods[i]); err != nil {
			return err
		}
	}

	feedings := DemoFeedings(now)
	for i := len(feedings) - 1; i >= 0; i-- {
		if err := r.AddFeeding(ctx, feedings[i]); err != nil {
			return err
		}
	}

	for _, p := range DemoPanas(now) {
		if err := r.AddPanas(ctx, p); err != nil {
			return err
		}
	}

	notes := DemoNotes(now)
	for i := len(notes) - 1; i >= 0; i-- {
		if err := r.AddNote(ctx, notes[i]); err != nil {
			return err
		}
	}

	return nil
}
