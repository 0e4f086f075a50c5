package journal

import "time"

// MoodLevel is a 1-5 mood rating.
type MoodLevel int

// MoodRecord represents one logged mood entry.
// MoodLabel and Emoji are derived from MoodLevel via the reference table
// and are never set independently.
type MoodRecord struct {
	// ID is a ULID that uniquely identifies this record
	ID string `json:"id"`

	// MoodLevel is the 1-5 rating selected by the parent
	MoodLevel MoodLevel `json:"moodLevel"`

	// MoodLabel is the canonical label for MoodLevel
	MoodLabel string `json:"moodLabel"`

	// Emoji is the canonical emoji for MoodLevel
	Emoji string `json:"emoji"`

	// Note is an optional free-text note
	Note *string `json:"note,omitempty"`

	// CreatedAt is when the record was created (RFC 3339 on the wire)
	CreatedAt time.Time `json:"createdAt"`
}

// FeedingType identifies how the baby was fed.
type FeedingType string

const (
	FeedingBreast  FeedingType = "Meme"    // breastfeeding, measured in minutes
	FeedingBottle  FeedingType = "Biberon" // bottle, measured in mL
	FeedingFormula FeedingType = "Mama"    // formula/solid, measured in grams
)

// FeedingRecord represents one logged feeding.
// Exactly one of the three quantity fields is populated, matching Type.
// Construction goes through NewFeeding with a Quantity value, so a
// mismatched pair cannot be produced.
type FeedingRecord struct {
	ID              string      `json:"id"`
	Type            FeedingType `json:"type"`
	DurationMinutes *int        `json:"durationMinutes,omitempty"`
	AmountMl        *int        `json:"amountMl,omitempty"`
	AmountGram      *int        `json:"amountGram,omitempty"`
	Note            *string     `json:"note,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Amount returns the populated quantity value for the record's type.
func (f *FeedingRecord) Amount() int {
	switch {
	case f.DurationMinutes != nil:
		return *f.DurationMinutes
	case f.AmountMl != nil:
		return *f.AmountMl
	case f.AmountGram != nil:
		return *f.AmountGram
	}
	return 0
}

// PanasAnswer is one answered item of the 20-question PANAS bank.
type PanasAnswer struct {
	QuestionID string `json:"questionId"`
	Score      int    `json:"score"` // 0-5
}

// PanasRecord represents one completed PANAS questionnaire.
// PositiveScore and NegativeScore are derived from Answers at creation
// time and are not independently editable.
type PanasRecord struct {
	ID            string        `json:"id"`
	Answers       []PanasAnswer `json:"answers"`
	PositiveScore int           `json:"positiveScore"`
	NegativeScore int           `json:"negativeScore"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// DailyNote is a free-text journal entry.
// Edits replace Text only; CreatedAt is preserved across edits.
type DailyNote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
