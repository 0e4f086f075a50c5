package journal

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ayselgur/cradle/internal/errors"
)

// Per-type quantity ranges for feeding records.
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 60
	MinAmountMl        = 10
	MaxAmountMl        = 300
	MinAmountGram      = 10
	MaxAmountGram      = 200
)

// Quantity is a feeding amount bound to the feeding type it measures.
// Values are built with Minutes, Milliliters, or Grams, so the type and
// the amount cannot disagree.
type Quantity struct {
	typ    FeedingType
	amount int
}

// Minutes is a breastfeeding duration.
func Minutes(n int) Quantity { return Quantity{typ: FeedingBreast, amount: n} }

// Milliliters is a bottle amount.
func Milliliters(n int) Quantity { return Quantity{typ: FeedingBottle, amount: n} }

// Grams is a formula amount.
func Grams(n int) Quantity { return Quantity{typ: FeedingFormula, amount: n} }

// NewMood builds a MoodRecord for the given level, deriving label and
// emoji from the canonical table. The note is optional; an empty or
// all-whitespace note is stored as absent.
func NewMood(level MoodLevel, note string) (*MoodRecord, error) {
	cfg, ok := MoodConfigs[level]
	if !ok {
		return nil, errors.NewInvalidArgument(fmt.Sprintf("mood level must be between 1 and 5, got %d", level))
	}

	return &MoodRecord{
		ID:        newID(),
		MoodLevel: level,
		MoodLabel: cfg.Label,
		Emoji:     cfg.Emoji,
		Note:      optionalText(note),
		CreatedAt: time.Now(),
	}, nil
}

// NewFeeding builds a FeedingRecord. The quantity must measure the given
// type and fall within the per-type range.
func NewFeeding(typ FeedingType, qty Quantity, note string) (*FeedingRecord, error) {
	if _, ok := FeedingConfigs[typ]; !ok {
		return nil, errors.NewInvalidArgument(fmt.Sprintf("unknown feeding type: %q", typ))
	}
	if qty.typ != typ {
		return nil, errors.NewInvalidArgument(fmt.Sprintf("quantity unit does not match feeding type %q", typ))
	}

	rec := &FeedingRecord{
		ID:        newID(),
		Type:      typ,
		Note:      optionalText(note),
		CreatedAt: time.Now(),
	}

	n := qty.amount
	switch typ {
	case FeedingBreast:
		if n < MinDurationMinutes || n > MaxDurationMinutes {
			return nil, errors.NewInvalidArgument(fmt.Sprintf("duration must be between %d and %d minutes, got %d", MinDurationMinutes, MaxDurationMinutes, n))
		}
		rec.DurationMinutes = &n
	case FeedingBottle:
		if n < MinAmountMl || n > MaxAmountMl {
			return nil, errors.NewInvalidArgument(fmt.Sprintf("amount must be between %d and %d mL, got %d", MinAmountMl, MaxAmountMl, n))
		}
		rec.AmountMl = &n
	case FeedingFormula:
		if n < MinAmountGram || n > MaxAmountGram {
			return nil, errors.NewInvalidArgument(fmt.Sprintf("amount must be between %d and %d grams, got %d", MinAmountGram, MaxAmountGram, n))
		}
		rec.AmountGram = &n
	}

	return rec, nil
}

// NewPanas builds a PanasRecord from a complete answer set. The answers
// must cover the 20-question bank exactly once each with scores 0-5; the
// positive and negative subscale scores are computed and embedded.
func NewPanas(answers []PanasAnswer) (*PanasRecord, error) {
	positive, negative, err := Score(answers)
	if err != nil {
		return nil, err
	}

	stored := make([]PanasAnswer, len(answers))
	copy(stored, answers)

	return &PanasRecord{
		ID:            newID(),
		Answers:       stored,
		PositiveScore: positive,
		NegativeScore: negative,
		CreatedAt:     time.Now(),
	}, nil
}

// NewNote builds a DailyNote. The text must be non-empty after trimming.
func NewNote(text string) (*DailyNote, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewInvalidArgument("note text must not be empty")
	}

	return &DailyNote{
		ID:        newID(),
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// EditNote returns a copy of the note with its text replaced. The
// original ID and CreatedAt are preserved; there is no updated-at.
func EditNote(existing DailyNote, newText string) (*DailyNote, error) {
	if strings.TrimSpace(newText) == "" {
		return nil, errors.NewInvalidArgument("note text must not be empty")
	}

	edited := existing
	edited.Text = newText
	return &edited, nil
}

// optionalText returns nil for empty/whitespace input, else the text.
func optionalText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// newID generates a new ULID.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
