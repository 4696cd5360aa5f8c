// ABOUTME: Statistics snapshot derived from the full completion history.
// ABOUTME: Cached view only; completion records remain the source of truth.
package models

import "time"

// Statistics is an aggregate snapshot over all completion records and
// tracker schedules.
type Statistics struct {
	UpdatedAt      time.Time `json:"updated_at"`
	TotalCompleted int       `json:"total_completed"`
	PerfectDays    int       `json:"perfect_days"`
	BestStreak     int       `json:"best_streak"`
	AveragePerDay  float64   `json:"average_per_day"`
}

// HasData reports whether any completions exist. When false, callers
// render a "no data" placeholder instead of zeros.
func (s Statistics) HasData() bool {
	return s.TotalCompleted > 0
}
