package journal

import "time"

// Display-time helpers. Day bucketing and "today" filtering are derived
// computations over full record sequences; the state store itself knows
// nothing about dates.

// SameDay reports whether two timestamps fall on the same calendar day
// in the local timezone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayKey returns the bucket key for a timestamp, e.g. "2026-08-31".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime renders a timestamp as dd.mm.yyyy hh:mm.
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatDate renders a timestamp as dd.mm.yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatTime renders a timestamp as hh:mm.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// MoodsOn filters moods down to those created on the given day,
// preserving order.
func MoodsOn(day time.Time, moods []MoodRecord) []MoodRecord {
	out := make([]MoodRecord, 0)
	for _, m := range moods {
		if SameDay(day, m.CreatedAt) {
			out = append(out, m)
		}
	}
	return out
}

// FeedingsOn filters feedings down to those created on the given day,
// preserving order.
func FeedingsOn(day time.Time, feedings []FeedingRecord) []FeedingRecord {
	out := make([]FeedingRecord, 0)
	for _, f := range feedings {
		if SameDay(day, f.CreatedAt) {
			out = append(out, f)
		}
	}
	return out
}
