package journal

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		a, b     time.Time
		expected bool
	}{
		{name: "same moment", a: base, b: base, expected: true},
		{name: "same day different hour", a: base, b: base.Add(10 * time.Hour), expected: true},
		{name: "next day", a: base, b: base.Add(24 * time.Hour), expected: false},
		{name: "just before midnight vs just after", a: time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local), b: time.Date(2026, 9, 1, 0, 1, 0, 0, time.Local), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.expected {
				t.Errorf("SameDay() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMoodsOn(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	yesterday := today.Add(-24 * time.Hour)

	moods := []MoodRecord{
		{ID: "a", CreatedAt: today.Add(-2 * time.Hour)},
		{ID: "b", CreatedAt: yesterday},
		{ID: "c", CreatedAt: today.Add(-5 * time.Hour)},
	}

	got := MoodsOn(today, moods)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("order = [%s, %s], want [a, c]", got[0].ID, got[1].ID)
	}
}

func TestFeedingsOn_Empty(t *testing.T) {
	got := FeedingsOn(time.Now(), nil)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 8, 31, 9, 5, 0, 0, time.Local)

	if got := FormatDateTime(ts); got != "31.08.2026 09:05" {
		t.Errorf("FormatDateTime = %q, want %q", got, "31.08.2026 09:05")
	}
	if got := FormatDate(ts); got != "31.08.2026" {
		t.Errorf("FormatDate = %q, want %q", got, "31.08.2026")
	}
	if got := FormatTime(ts); got != "09:05" {
		t.Errorf("FormatTime = %q, want %q", got, "09:05")
	}
	if got := DayKey(ts); got != "2026-08-31" {
		t.Errorf("DayKey = %q, want %q", got, "2026-08-31")
	}
}
