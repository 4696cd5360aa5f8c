// ABOUTME: Tests for statistics computation.
// ABOUTME: Streak gaps, average per day, and perfect weekday buckets.
package engine

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

func recordOn(trackerID uuid.UUID, year int, month time.Month, day int) models.CompletionRecord {
	return models.NewCompletionRecord(trackerID, time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

func TestBestStreakWithGap(t *testing.T) {
	trackerID := uuid.New()
	// completions on days 1,2,3,5,6 of June — gap at day 4
	var records []models.CompletionRecord
	for _, day := range []int{1, 2, 3, 5, 6} {
		records = append(records, recordOn(trackerID, 2025, time.June, day))
	}

	stats := Compute(records, nil)
	if stats.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3 (days 1-3, not 5)", stats.BestStreak)
	}
}

func TestBestStreakAcrossTrackers(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	records := []models.CompletionRecord{
		recordOn(a, 2025, time.June, 1),
		recordOn(a, 2025, time.June, 2),
		recordOn(b, 2025, time.June, 10),
		recordOn(b, 2025, time.June, 11),
		recordOn(b, 2025, time.June, 12),
		recordOn(b, 2025, time.June, 13),
	}

	stats := Compute(records, nil)
	if stats.BestStreak != 4 {
		t.Errorf("BestStreak = %d, want 4 (tracker b)", stats.BestStreak)
	}
}

func TestBestStreakSingleRecord(t *testing.T) {
	stats := Compute([]models.CompletionRecord{recordOn(uuid.New(), 2025, time.June, 1)}, nil)
	if stats.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", stats.BestStreak)
	}
}

func TestBestStreakNoRecords(t *testing.T) {
	stats := Compute(nil, nil)
	if stats.BestStreak != 0 {
		t.Errorf("BestStreak = %d, want 0", stats.BestStreak)
	}
}

func TestBestStreakMonthBoundary(t *testing.T) {
	trackerID := uuid.New()
	records := []models.CompletionRecord{
		recordOn(trackerID, 2025, time.May, 30),
		recordOn(trackerID, 2025, time.May, 31),
		recordOn(trackerID, 2025, time.June, 1),
	}

	stats := Compute(records, nil)
	if stats.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3 across month boundary", stats.BestStreak)
	}
}

func TestAveragePerDay(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	// two trackers completed on day A, one tracker on day B:
	// total 3, distinct days 2, average 1.5
	records := []models.CompletionRecord{
		recordOn(a, 2025, time.June, 2),
		recordOn(b, 2025, time.June, 2),
		recordOn(c, 2025, time.June, 3),
	}

	stats := Compute(records, nil)
	if stats.TotalCompleted != 3 {
		t.Errorf("TotalCompleted = %d, want 3", stats.TotalCompleted)
	}
	if math.Abs(stats.AveragePerDay-1.5) > 1e-9 {
		t.Errorf("AveragePerDay = %f, want 1.5", stats.AveragePerDay)
	}
}

func TestAveragePerDayNoRecords(t *testing.T) {
	stats := Compute(nil, nil)
	if stats.AveragePerDay != 0 {
		t.Errorf("AveragePerDay = %f, want 0", stats.AveragePerDay)
	}
	if stats.HasData() {
		t.Error("HasData should be false with no records")
	}
}

func TestPerfectWeekdayAllScheduledCompleted(t *testing.T) {
	run := models.NewHabit("Run", models.ColorGreen, models.EmojiMedal,
		[]models.WeekDay{models.Monday})
	read := models.NewHabit("Read", models.ColorBlue, models.EmojiThinking,
		[]models.WeekDay{models.Monday})
	trackers := []models.Tracker{run, read}

	// 2025-06-02 is a Monday; both scheduled trackers completed
	records := []models.CompletionRecord{
		recordOn(run.ID, 2025, time.June, 2),
		recordOn(read.ID, 2025, time.June, 2),
	}

	stats := Compute(records, trackers)
	if stats.PerfectDays != 1 {
		t.Errorf("PerfectDays = %d, want 1", stats.PerfectDays)
	}
}

func TestPerfectWeekdayPartialCompletion(t *testing.T) {
	run := models.NewHabit("Run", models.ColorGreen, models.EmojiMedal,
		[]models.WeekDay{models.Monday})
	read := models.NewHabit("Read", models.ColorBlue, models.EmojiThinking,
		[]models.WeekDay{models.Monday})
	trackers := []models.Tracker{run, read}

	// only one of the two Monday trackers completed
	records := []models.CompletionRecord{
		recordOn(run.ID, 2025, time.June, 2),
	}

	stats := Compute(records, trackers)
	if stats.PerfectDays != 0 {
		t.Errorf("PerfectDays = %d, want 0", stats.PerfectDays)
	}
}

func TestPerfectWeekdayBucketsByWeekdayNotDate(t *testing.T) {
	run := models.NewHabit("Run", models.ColorGreen, models.EmojiMedal,
		[]models.WeekDay{models.Monday})
	trackers := []models.Tracker{run}

	// completions on two different Mondays share one weekday bucket
	records := []models.CompletionRecord{
		recordOn(run.ID, 2025, time.June, 2),
		recordOn(run.ID, 2025, time.June, 9),
	}

	stats := Compute(records, trackers)
	if stats.PerfectDays != 1 {
		t.Errorf("PerfectDays = %d, want 1 (single Monday bucket)", stats.PerfectDays)
	}
}

func TestPerfectWeekdaySkipsUnscheduledBuckets(t *testing.T) {
	// a completion on a weekday with no scheduled trackers never counts
	orphan := uuid.New()
	records := []models.CompletionRecord{
		recordOn(orphan, 2025, time.June, 2),
	}

	stats := Compute(records, nil)
	if stats.PerfectDays != 0 {
		t.Errorf("PerfectDays = %d, want 0", stats.PerfectDays)
	}
}
