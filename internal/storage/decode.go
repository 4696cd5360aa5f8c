// ABOUTME: Row decoding shared by the SQLite and Badger backends.
// ABOUTME: Maps stored strings back to model values, flagging corrupt data.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

// dayFormat is the stored calendar-day encoding. Days are stored without
// time-of-day; parsing yields local midnight.
const dayFormat = "2006-01-02"

func decodeTracker(idStr, name, colorName, emojiName, schedule string, pinned bool) (models.Tracker, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return models.Tracker{}, fmt.Errorf("%w: tracker id %q", models.ErrCorruptData, idStr)
	}

	color, err := models.ParseColor(colorName)
	if err != nil {
		return models.Tracker{}, err
	}
	emoji, err := models.ParseEmoji(emojiName)
	if err != nil {
		return models.Tracker{}, err
	}
	days, err := models.DecodeSchedule(schedule)
	if err != nil {
		return models.Tracker{}, err
	}

	return models.Tracker{
		ID:       id,
		Name:     name,
		Color:    color,
		Emoji:    emoji,
		Schedule: days,
		IsPinned: pinned,
	}, nil
}

func decodeRecord(idStr, trackerStr, day string) (models.CompletionRecord, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return models.CompletionRecord{}, fmt.Errorf("%w: record id %q", models.ErrCorruptData, idStr)
	}
	trackerID, err := uuid.Parse(trackerStr)
	if err != nil {
		return models.CompletionRecord{}, fmt.Errorf("%w: record tracker id %q", models.ErrCorruptData, trackerStr)
	}
	date, err := time.ParseInLocation(dayFormat, day, time.Local)
	if err != nil {
		return models.CompletionRecord{}, fmt.Errorf("%w: record date %q", models.ErrCorruptData, day)
	}

	return models.CompletionRecord{ID: id, TrackerID: trackerID, Date: date}, nil
}

// containsFold reports whether haystack contains needle, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
