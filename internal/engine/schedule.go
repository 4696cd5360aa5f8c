// ABOUTME: Schedule filter selecting trackers due on a given weekday.
// ABOUTME: Pure function over categories; ordering is preserved.
package engine

import "github.com/harperreed/habits/internal/models"

// FilterByWeekday keeps only trackers scheduled for the given weekday.
// Categories left empty after filtering are dropped. Category and
// tracker order is preserved.
func FilterByWeekday(categories []models.Category, weekday models.WeekDay) []models.Category {
	var result []models.Category
	for _, category := range categories {
		var kept []models.Tracker
		for _, tracker := range category.Trackers {
			if tracker.ScheduledOn(weekday) {
				kept = append(kept, tracker)
			}
		}
		if len(kept) > 0 {
			result = append(result, models.Category{Title: category.Title, Trackers: kept})
		}
	}
	return result
}
