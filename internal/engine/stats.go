// ABOUTME: StatisticsEngine deriving aggregate statistics from the full
// ABOUTME: completion history and tracker schedules.
package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

// Compute derives a statistics snapshot from the full record history and
// tracker set. Pure and deterministic apart from the UpdatedAt stamp.
func Compute(records []models.CompletionRecord, trackers []models.Tracker) models.Statistics {
	return models.Statistics{
		UpdatedAt:      time.Now(),
		TotalCompleted: len(records),
		PerfectDays:    perfectWeekdays(records, trackers),
		BestStreak:     bestStreak(records),
		AveragePerDay:  averagePerDay(records),
	}
}

// bestStreak finds the longest run of consecutive calendar days with a
// completion for a single tracker, maximized over all trackers.
func bestStreak(records []models.CompletionRecord) int {
	byTracker := make(map[uuid.UUID][]time.Time)
	for _, r := range records {
		byTracker[r.TrackerID] = append(byTracker[r.TrackerID], models.StartOfDay(r.Date))
	}

	maxStreak := 0
	for _, dates := range byTracker {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		streak := 1
		best := 1
		for i := 1; i < len(dates); i++ {
			if dates[i-1].AddDate(0, 0, 1).Equal(dates[i]) {
				streak++
				if streak > best {
					best = streak
				}
			} else {
				streak = 1
			}
		}
		if best > maxStreak {
			maxStreak = best
		}
	}
	return maxStreak
}

// perfectWeekdays counts weekday buckets where every tracker scheduled
// for that weekday has at least one completion falling on it. Records
// are grouped by weekday of week, not by individual calendar date, so
// all Mondays in history share one bucket. This matches the shipped
// behavior; see DESIGN.md before changing it.
func perfectWeekdays(records []models.CompletionRecord, trackers []models.Tracker) int {
	byWeekday := make(map[models.WeekDay]map[uuid.UUID]bool)
	for _, r := range records {
		day := models.WeekDayFromTime(r.Date)
		if byWeekday[day] == nil {
			byWeekday[day] = make(map[uuid.UUID]bool)
		}
		byWeekday[day][r.TrackerID] = true
	}

	count := 0
	for day, completed := range byWeekday {
		scheduled := 0
		perfect := true
		for _, tracker := range trackers {
			if !tracker.ScheduledOn(day) {
				continue
			}
			scheduled++
			if !completed[tracker.ID] {
				perfect = false
				break
			}
		}
		if scheduled > 0 && perfect {
			count++
		}
	}
	return count
}

// averagePerDay divides total completions by the number of distinct days
// having at least one completion. Zero when there is no history.
func averagePerDay(records []models.CompletionRecord) float64 {
	days := make(map[time.Time]int)
	for _, r := range records {
		days[models.StartOfDay(r.Date)]++
	}
	if len(days) == 0 {
		return 0
	}

	total := 0
	for _, n := range days {
		total += n
	}
	return float64(total) / float64(len(days))
}
