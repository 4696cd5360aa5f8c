// ABOUTME: Tests for Tracker constructors and date helpers.
// ABOUTME: Validates event weekday stamping, trimming, and declension.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewHabit(t *testing.T) {
	h := NewHabit("  Morning run  ", ColorGreen, EmojiMedal, []WeekDay{Monday, Thursday})

	if h.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if h.Name != "Morning run" {
		t.Errorf("Name = %q, want trimmed %q", h.Name, "Morning run")
	}
	if len(h.Schedule) != 2 {
		t.Errorf("Schedule length = %d, want 2", len(h.Schedule))
	}
	if h.IsPinned {
		t.Error("new trackers must not be pinned")
	}
}

func TestNewEventStampsCreationWeekday(t *testing.T) {
	// 2025-06-08 is a Sunday
	created := time.Date(2025, 6, 8, 15, 30, 0, 0, time.Local)
	e := NewEvent("Dentist", ColorBlue, EmojiThinking, created)

	if len(e.Schedule) != 1 {
		t.Fatalf("Schedule length = %d, want 1", len(e.Schedule))
	}
	if e.Schedule[0] != Sunday {
		t.Errorf("Schedule[0] = %v, want Sunday", e.Schedule[0])
	}
	if !e.ScheduledOn(Sunday) {
		t.Error("event must be schedulable on its creation weekday")
	}
	if e.ScheduledOn(Monday) {
		t.Error("event must not be schedulable on other weekdays")
	}
}

func TestNewCompletionRecordNormalizesDate(t *testing.T) {
	at := time.Date(2025, 3, 14, 18, 45, 12, 500, time.Local)
	r := NewCompletionRecord(uuid.New(), at)

	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	if !r.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", r.Date, want)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 3, 14, 1, 0, 0, 0, time.Local)
	night := time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local)
	next := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	if !SameDay(morning, night) {
		t.Error("same calendar day should match regardless of time")
	}
	if SameDay(night, next) {
		t.Error("adjacent days should not match")
	}
}

func TestDaysDeclension(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{2, "2 days"},
		{21, "21 days"},
	}

	for _, tt := range tests {
		if got := DaysDeclension(tt.n); got != tt.want {
			t.Errorf("DaysDeclension(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
