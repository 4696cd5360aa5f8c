// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for categories, trackers, and completion records.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS categories (
		title TEXT PRIMARY KEY,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trackers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		emoji TEXT NOT NULL,
		schedule TEXT NOT NULL,
		is_pinned INTEGER NOT NULL DEFAULT 0,
		category_title TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (category_title) REFERENCES categories(title)
	);

	CREATE TABLE IF NOT EXISTS completion_records (
		id TEXT PRIMARY KEY,
		tracker_id TEXT NOT NULL,
		completed_on TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (tracker_id) REFERENCES trackers(id) ON DELETE CASCADE,
		UNIQUE (tracker_id, completed_on)
	);

	CREATE INDEX IF NOT EXISTS idx_trackers_category ON trackers(category_title, position);
	CREATE INDEX IF NOT EXISTS idx_trackers_name ON trackers(name);
	CREATE INDEX IF NOT EXISTS idx_records_tracker ON completion_records(tracker_id);
	CREATE INDEX IF NOT EXISTS idx_records_day ON completion_records(completed_on);
	`

	_, err := d.db.Exec(schema)
	return err
}
