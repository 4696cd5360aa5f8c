// ABOUTME: CompletionLedger owning the set of completion records.
// ABOUTME: Toggle is atomic per ledger; future dates are a defined no-op.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

// RecordStore is the slice of the persistence collaborator the ledger
// needs. Records are only ever inserted or deleted, never updated.
type RecordStore interface {
	AddCompletionRecord(models.CompletionRecord) error
	DeleteCompletionRecord(id uuid.UUID) error
	AllCompletionRecords() ([]models.CompletionRecord, error)
}

// Ledger owns the in-memory set of completion records and keeps the
// backing store in step. The at-most-one-record-per-day rule is enforced
// entirely inside Toggle; nothing else inserts records.
type Ledger struct {
	mu      sync.Mutex
	store   RecordStore
	records []models.CompletionRecord
	now     func() time.Time
}

// NewLedger loads the full record history from the store.
func NewLedger(store RecordStore) (*Ledger, error) {
	records, err := store.AllCompletionRecords()
	if err != nil {
		return nil, fmt.Errorf("load completion records: %w", err)
	}
	return &Ledger{
		store:   store,
		records: records,
		now:     time.Now,
	}, nil
}

// Toggle flips completion state for the tracker on the given calendar
// day. Dates strictly after today are never marked: the call is a no-op
// returning (false, nil), not an error. Otherwise an absent record is
// inserted and a present one removed. The read-check-then-write runs
// under the ledger lock.
func (l *Ledger) Toggle(trackerID uuid.UUID, date time.Time) (bool, error) {
	day := models.StartOfDay(date)
	today := models.StartOfDay(l.now())
	if day.After(today) {
		return false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := l.indexOf(trackerID, day); idx >= 0 {
		record := l.records[idx]
		if err := l.store.DeleteCompletionRecord(record.ID); err != nil {
			return false, fmt.Errorf("delete completion record: %w", err)
		}
		l.records = append(l.records[:idx], l.records[idx+1:]...)
		return false, nil
	}

	record := models.NewCompletionRecord(trackerID, day)
	if err := l.store.AddCompletionRecord(record); err != nil {
		return false, fmt.Errorf("add completion record: %w", err)
	}
	l.records = append(l.records, record)
	return true, nil
}

// IsCompleted reports whether the tracker has a record on the given day.
func (l *Ledger) IsCompleted(trackerID uuid.UUID, date time.Time) bool {
	day := models.StartOfDay(date)

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.indexOf(trackerID, day) >= 0
}

// CompletedCount returns the total records for a tracker across all dates.
func (l *Ledger) CompletedCount(trackerID uuid.UUID) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, r := range l.records {
		if r.TrackerID == trackerID {
			count++
		}
	}
	return count
}

// AllRecords returns a snapshot of the full history.
func (l *Ledger) AllRecords() []models.CompletionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]models.CompletionRecord, len(l.records))
	copy(snapshot, l.records)
	return snapshot
}

// indexOf must be called with the lock held.
func (l *Ledger) indexOf(trackerID uuid.UUID, day time.Time) int {
	for i, r := range l.records {
		if r.TrackerID == trackerID && models.SameDay(r.Date, day) {
			return i
		}
	}
	return -1
}
