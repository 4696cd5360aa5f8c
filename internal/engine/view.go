// ABOUTME: ViewFilterEngine composing schedule, filter mode, search, and
// ABOUTME: pin precedence into the final ordered category list.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

// FilterMode selects which trackers remain visible for a date.
type FilterMode string

const (
	FilterAll         FilterMode = "all"
	FilterToday       FilterMode = "today"
	FilterCompleted   FilterMode = "completed"
	FilterUncompleted FilterMode = "uncompleted"
)

// AllFilterModes lists the selectable modes.
var AllFilterModes = []FilterMode{FilterAll, FilterToday, FilterCompleted, FilterUncompleted}

// ParseFilterMode validates a user-supplied mode name.
func ParseFilterMode(s string) (FilterMode, error) {
	mode := FilterMode(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range AllFilterModes {
		if mode == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown filter mode: %q", s)
}

// CompletionSource answers per-day completion queries. *Ledger satisfies it.
type CompletionSource interface {
	IsCompleted(trackerID uuid.UUID, date time.Time) bool
}

// BuildView produces the ordered category list the UI renders.
//
// A non-empty search query bypasses weekday scheduling and the filter
// mode entirely: any tracker whose name contains the query
// (case-insensitive) is shown. Otherwise trackers pass the schedule
// filter for the weekday, then the filter mode. "today" means the caller
// has already moved date/weekday to today, so at this level it behaves
// like "all".
//
// Pinned trackers are pulled out of their home categories into a single
// leading "Pinned" pseudo-category and are not duplicated.
func BuildView(
	categories []models.Category,
	weekday models.WeekDay,
	date time.Time,
	mode FilterMode,
	query string,
	completions CompletionSource,
) []models.Category {
	if strings.TrimSpace(query) != "" {
		return searchView(categories, query)
	}

	visible := FilterByWeekday(categories, weekday)

	switch mode {
	case FilterCompleted:
		visible = filterByCompletion(visible, date, completions, true)
	case FilterUncompleted:
		visible = filterByCompletion(visible, date, completions, false)
	case FilterAll, FilterToday:
		// no further reduction
	}

	return splitPinned(visible)
}

// searchView selects trackers by name substring across all categories,
// ignoring weekday eligibility. Search takes precedence over date and
// filter mode.
func searchView(categories []models.Category, query string) []models.Category {
	needle := strings.ToLower(strings.TrimSpace(query))

	var matched []models.Category
	for _, category := range categories {
		var kept []models.Tracker
		for _, tracker := range category.Trackers {
			if strings.Contains(strings.ToLower(tracker.Name), needle) {
				kept = append(kept, tracker)
			}
		}
		if len(kept) > 0 {
			matched = append(matched, models.Category{Title: category.Title, Trackers: kept})
		}
	}

	return splitPinned(matched)
}

func filterByCompletion(
	categories []models.Category,
	date time.Time,
	completions CompletionSource,
	wantCompleted bool,
) []models.Category {
	var result []models.Category
	for _, category := range categories {
		var kept []models.Tracker
		for _, tracker := range category.Trackers {
			if completions.IsCompleted(tracker.ID, date) == wantCompleted {
				kept = append(kept, tracker)
			}
		}
		if len(kept) > 0 {
			result = append(result, models.Category{Title: category.Title, Trackers: kept})
		}
	}
	return result
}

// splitPinned moves pinned trackers into a synthetic leading category.
// Home category order is preserved for the remainder; categories left
// empty are dropped.
func splitPinned(categories []models.Category) []models.Category {
	var pinned []models.Tracker
	var rest []models.Category

	for _, category := range categories {
		var unpinned []models.Tracker
		for _, tracker := range category.Trackers {
			if tracker.IsPinned {
				pinned = append(pinned, tracker)
			} else {
				unpinned = append(unpinned, tracker)
			}
		}
		if len(unpinned) > 0 {
			rest = append(rest, models.Category{Title: category.Title, Trackers: unpinned})
		}
	}

	if len(pinned) == 0 {
		return rest
	}

	result := make([]models.Category, 0, len(rest)+1)
	result = append(result, models.Category{Title: models.PinnedCategoryTitle, Trackers: pinned})
	return append(result, rest...)
}
