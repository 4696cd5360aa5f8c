// ABOUTME: Tracker and category CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for trackers.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/harperreed/habits/internal/models"
)

// CreateTracker stores a new tracker under the given category, creating
// the category on first use. The tracker is appended at the end of the
// category's membership order.
func (d *DB) CreateTracker(t models.Tracker, categoryTitle string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := ensureCategory(tx, categoryTitle); err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}

	position, err := nextPosition(tx, categoryTitle)
	if err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO trackers (id, name, color, emoji, schedule, is_pinned, category_title, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(),
		t.Name,
		string(t.Color),
		string(t.Emoji),
		models.EncodeSchedule(t.Schedule),
		boolToInt(t.IsPinned),
		categoryTitle,
		position,
	)
	if err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}
	d.notify()
	return nil
}

// UpdateTracker replaces a tracker's value wholesale, keeping its id.
// Moving categories removes the tracker from the old category's order
// and appends it to the new one.
func (d *DB) UpdateTracker(t models.Tracker, newCategoryTitle string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("update tracker: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var currentCategory string
	err = tx.QueryRow(`SELECT category_title FROM trackers WHERE id = ?`, t.ID.String()).
		Scan(&currentCategory)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, t.ID)
	}
	if err != nil {
		return fmt.Errorf("update tracker: %w", err)
	}

	categoryTitle := currentCategory
	position := -1
	if newCategoryTitle != "" && newCategoryTitle != currentCategory {
		if err := ensureCategory(tx, newCategoryTitle); err != nil {
			return fmt.Errorf("update tracker: %w", err)
		}
		position, err = nextPosition(tx, newCategoryTitle)
		if err != nil {
			return fmt.Errorf("update tracker: %w", err)
		}
		categoryTitle = newCategoryTitle
	}

	if position >= 0 {
		_, err = tx.Exec(`
			UPDATE trackers
			SET name = ?, color = ?, emoji = ?, schedule = ?, is_pinned = ?, category_title = ?, position = ?
			WHERE id = ?`,
			t.Name, string(t.Color), string(t.Emoji), models.EncodeSchedule(t.Schedule),
			boolToInt(t.IsPinned), categoryTitle, position, t.ID.String())
	} else {
		_, err = tx.Exec(`
			UPDATE trackers
			SET name = ?, color = ?, emoji = ?, schedule = ?, is_pinned = ?
			WHERE id = ?`,
			t.Name, string(t.Color), string(t.Emoji), models.EncodeSchedule(t.Schedule),
			boolToInt(t.IsPinned), t.ID.String())
	}
	if err != nil {
		return fmt.Errorf("update tracker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update tracker: %w", err)
	}
	d.notify()
	return nil
}

// DeleteTracker removes a tracker. Its completion records go with it via
// the ON DELETE CASCADE relationship.
func (d *DB) DeleteTracker(id uuid.UUID) error {
	result, err := d.db.Exec(`DELETE FROM trackers WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete tracker: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tracker: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	d.notify()
	return nil
}

// TogglePin flips a tracker's pinned flag. Pin state only changes group
// membership at query time, not the tracker's position in its category.
func (d *DB) TogglePin(id uuid.UUID) error {
	result, err := d.db.Exec(`UPDATE trackers SET is_pinned = NOT is_pinned WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("toggle pin: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggle pin: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	d.notify()
	return nil
}

// FetchTrackers retrieves trackers whose name contains the given
// substring, case-insensitively. An empty string matches everything.
func (d *DB) FetchTrackers(nameContains string) ([]models.Tracker, error) {
	rows, err := d.db.Query(`
		SELECT t.id, t.name, t.color, t.emoji, t.schedule, t.is_pinned
		FROM trackers t
		JOIN categories c ON c.title = t.category_title
		WHERE t.name LIKE '%' || ? || '%'
		ORDER BY c.position, t.position`,
		nameContains)
	if err != nil {
		return nil, fmt.Errorf("fetch trackers: %w", err)
	}
	defer rows.Close()

	return d.scanTrackers(rows)
}

// AllTrackers retrieves every tracker, ordered by category registration
// order and then by membership order within the category, matching
// AllCategories.
func (d *DB) AllTrackers() ([]models.Tracker, error) {
	rows, err := d.db.Query(`
		SELECT t.id, t.name, t.color, t.emoji, t.schedule, t.is_pinned
		FROM trackers t
		JOIN categories c ON c.title = t.category_title
		ORDER BY c.position, t.position`)
	if err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}
	defer rows.Close()

	return d.scanTrackers(rows)
}

// AllCategories retrieves categories with their trackers in membership
// order. Categories with no trackers are included; the view layer drops
// them after filtering.
func (d *DB) AllCategories() ([]models.Category, error) {
	rows, err := d.db.Query(`
		SELECT c.title, t.id, t.name, t.color, t.emoji, t.schedule, t.is_pinned
		FROM categories c
		LEFT JOIN trackers t ON t.category_title = c.title
		ORDER BY c.position, t.position`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	index := make(map[string]int)

	for rows.Next() {
		var title string
		var id, name, colorName, emojiName, schedule sql.NullString
		var pinned sql.NullInt64

		if err := rows.Scan(&title, &id, &name, &colorName, &emojiName, &schedule, &pinned); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}

		i, ok := index[title]
		if !ok {
			categories = append(categories, models.Category{Title: title})
			i = len(categories) - 1
			index[title] = i
		}

		if !id.Valid {
			continue // empty category
		}

		tracker, err := decodeTracker(id.String, name.String, colorName.String,
			emojiName.String, schedule.String, pinned.Int64 != 0)
		if err != nil {
			log.Warn().Err(err).Str("tracker_id", id.String).Msg("skipping corrupt tracker row")
			continue
		}
		categories[i].Trackers = append(categories[i].Trackers, tracker)
	}

	return categories, rows.Err()
}

// AddCompletionRecord inserts a completion record.
func (d *DB) AddCompletionRecord(r models.CompletionRecord) error {
	_, err := d.db.Exec(`
		INSERT INTO completion_records (id, tracker_id, completed_on)
		VALUES (?, ?, ?)`,
		r.ID.String(),
		r.TrackerID.String(),
		r.Date.Format(dayFormat),
	)
	if err != nil {
		return fmt.Errorf("add completion record: %w", err)
	}

	d.notify()
	return nil
}

// DeleteCompletionRecord removes a completion record by id.
func (d *DB) DeleteCompletionRecord(id uuid.UUID) error {
	result, err := d.db.Exec(`DELETE FROM completion_records WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete completion record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete completion record: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	d.notify()
	return nil
}

// AllCompletionRecords retrieves the full completion history, oldest day
// first.
func (d *DB) AllCompletionRecords() ([]models.CompletionRecord, error) {
	rows, err := d.db.Query(`
		SELECT id, tracker_id, completed_on
		FROM completion_records
		ORDER BY completed_on`)
	if err != nil {
		return nil, fmt.Errorf("list completion records: %w", err)
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var idStr, trackerStr, day string
		if err := rows.Scan(&idStr, &trackerStr, &day); err != nil {
			return nil, fmt.Errorf("scan completion record: %w", err)
		}

		record, err := decodeRecord(idStr, trackerStr, day)
		if err != nil {
			log.Warn().Err(err).Str("record_id", idStr).Msg("skipping corrupt completion record")
			continue
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (d *DB) scanTrackers(rows *sql.Rows) ([]models.Tracker, error) {
	var trackers []models.Tracker
	for rows.Next() {
		var idStr, name, colorName, emojiName, schedule string
		var pinned int

		if err := rows.Scan(&idStr, &name, &colorName, &emojiName, &schedule, &pinned); err != nil {
			return nil, fmt.Errorf("scan tracker: %w", err)
		}

		tracker, err := decodeTracker(idStr, name, colorName, emojiName, schedule, pinned != 0)
		if err != nil {
			log.Warn().Err(err).Str("tracker_id", idStr).Msg("skipping corrupt tracker row")
			continue
		}
		trackers = append(trackers, tracker)
	}
	return trackers, rows.Err()
}

func ensureCategory(tx *sql.Tx, title string) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO categories (title, position)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM categories))`,
		title)
	return err
}

func nextPosition(tx *sql.Tx, categoryTitle string) (int, error) {
	var position int
	err := tx.QueryRow(`
		SELECT COALESCE(MAX(position), -1) + 1 FROM trackers WHERE category_title = ?`,
		categoryTitle).Scan(&position)
	return position, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
