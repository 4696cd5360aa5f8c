// ABOUTME: StatsService caching the latest statistics snapshot.
// ABOUTME: Recomputes eagerly on storage change notifications.
package engine

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/harperreed/habits/internal/models"
)

// SnapshotStore is the slice of the persistence collaborator the stats
// service reads from, plus its change notification hook.
type SnapshotStore interface {
	AllTrackers() ([]models.Tracker, error)
	AllCompletionRecords() ([]models.CompletionRecord, error)
	OnChange(fn func())
}

// StatsService keeps a current statistics snapshot. History sizes are
// personal-scale, so every change triggers a whole-history rescan
// instead of incremental bookkeeping.
type StatsService struct {
	mu       sync.RWMutex
	store    SnapshotStore
	snapshot models.Statistics
}

// NewStatsService computes an initial snapshot and subscribes to change
// notifications from the store.
func NewStatsService(store SnapshotStore) (*StatsService, error) {
	s := &StatsService{store: store}
	if err := s.Refresh(); err != nil {
		return nil, err
	}

	store.OnChange(func() {
		if err := s.Refresh(); err != nil {
			log.Warn().Err(err).Msg("statistics refresh failed")
		}
	})
	return s, nil
}

// Refresh recomputes the snapshot from the full history.
func (s *StatsService) Refresh() error {
	records, err := s.store.AllCompletionRecords()
	if err != nil {
		return fmt.Errorf("load completion records: %w", err)
	}
	trackers, err := s.store.AllTrackers()
	if err != nil {
		return fmt.Errorf("load trackers: %w", err)
	}

	snapshot := Compute(records, trackers)

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
	return nil
}

// Current returns the cached snapshot. The bool is false when no
// completions exist and the caller should render a placeholder.
func (s *StatsService) Current() (models.Statistics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot.HasData()
}
