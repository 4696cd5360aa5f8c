// ABOUTME: Tracker, Category, and CompletionRecord core entities.
// ABOUTME: Constructors stamp irregular events with their creation weekday.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PinnedCategoryTitle names the synthetic category that holds pinned
// trackers. It is materialized at query time, never persisted.
const PinnedCategoryTitle = "Pinned"

// Tracker is a user-defined habit or one-off event to be checked off.
// Edits produce a replacement value sharing the original ID.
type Tracker struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Color    Color     `json:"color"`
	Emoji    Emoji     `json:"emoji"`
	Schedule []WeekDay `json:"schedule"`
	IsPinned bool      `json:"is_pinned"`
}

// NewHabit creates a habit tracker due on the given weekdays.
func NewHabit(name string, color Color, emoji Emoji, schedule []WeekDay) Tracker {
	return Tracker{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Color:    color,
		Emoji:    emoji,
		Schedule: schedule,
	}
}

// NewEvent creates an irregular event tracker. An event has no recurring
// schedule, so it is stamped with the weekday of its creation date.
// Without the stamp it would never be schedulable.
func NewEvent(name string, color Color, emoji Emoji, createdAt time.Time) Tracker {
	return Tracker{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Color:    color,
		Emoji:    emoji,
		Schedule: []WeekDay{WeekDayFromTime(createdAt)},
	}
}

// ScheduledOn reports whether the tracker is due on the given weekday.
func (t Tracker) ScheduledOn(day WeekDay) bool {
	return ScheduleContains(t.Schedule, day)
}

// Category groups trackers under a unique title. The title is the
// category's identity key; trackers are ordered by membership.
type Category struct {
	Title    string    `json:"title"`
	Trackers []Tracker `json:"trackers"`
}

// CompletionRecord stamps a tracker done on a specific calendar day.
// TrackerID is a plain foreign-key value, not an owning reference.
type CompletionRecord struct {
	ID        uuid.UUID `json:"id"`
	TrackerID uuid.UUID `json:"tracker_id"`
	Date      time.Time `json:"date"`
}

// NewCompletionRecord creates a record for the tracker on the given day,
// normalized to local midnight.
func NewCompletionRecord(trackerID uuid.UUID, date time.Time) CompletionRecord {
	return CompletionRecord{
		ID:        uuid.New(),
		TrackerID: trackerID,
		Date:      StartOfDay(date),
	}
}

// StartOfDay truncates a timestamp to midnight in its own location.
// Time-of-day is never significant for completion records.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// DaysDeclension formats a completed-day count with the right singular
// or plural form, e.g. "1 day", "5 days".
func DaysDeclension(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
