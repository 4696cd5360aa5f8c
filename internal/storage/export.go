// ABOUTME: JSON export and import of the full tracker dataset.
// ABOUTME: Works across backends through the Repository interface.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

// ExportData is the portable JSON form of the full dataset. The same
// document round-trips between the SQLite and Badger backends.
type ExportData struct {
	Version    int                       `json:"version"`
	ExportedAt time.Time                 `json:"exported_at"`
	Categories []ExportCategory          `json:"categories"`
	Records    []models.CompletionRecord `json:"records"`
}

// ExportCategory pairs a category title with its trackers in order.
type ExportCategory struct {
	Title    string           `json:"title"`
	Trackers []models.Tracker `json:"trackers"`
}

// ExportVersion is the current export document version.
const ExportVersion = 1

// Export captures the full dataset from any Repository.
func Export(r Repository) (*ExportData, error) {
	categories, err := r.AllCategories()
	if err != nil {
		return nil, fmt.Errorf("export categories: %w", err)
	}
	records, err := r.AllCompletionRecords()
	if err != nil {
		return nil, fmt.Errorf("export records: %w", err)
	}

	data := &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Records:    records,
	}
	for _, category := range categories {
		data.Categories = append(data.Categories, ExportCategory{
			Title:    category.Title,
			Trackers: category.Trackers,
		})
	}
	return data, nil
}

// Import loads an export document into any Repository. Existing data is
// left in place; imported trackers keep their original ids so completion
// records stay attached.
func Import(r Repository, data *ExportData) error {
	if data.Version != ExportVersion {
		return fmt.Errorf("unsupported export version: %d", data.Version)
	}

	for _, category := range data.Categories {
		for _, tracker := range category.Trackers {
			if err := r.CreateTracker(tracker, category.Title); err != nil {
				return fmt.Errorf("import tracker %s: %w", tracker.ID, err)
			}
		}
	}
	// Deduplicate by (tracker, day) so a crafted document cannot break
	// the one-record-per-day rule. First occurrence wins on every
	// backend; SQLite would reject the duplicate, Badger would not.
	type dayKey struct {
		trackerID uuid.UUID
		day       string
	}
	seen := make(map[dayKey]bool)
	for _, record := range data.Records {
		key := dayKey{record.TrackerID, record.Date.Format(dayFormat)}
		if seen[key] {
			continue
		}
		seen[key] = true

		if err := r.AddCompletionRecord(record); err != nil {
			return fmt.Errorf("import record %s: %w", record.ID, err)
		}
	}
	return nil
}
