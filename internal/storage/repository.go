// ABOUTME: Repository interface for tracker data storage.
// ABOUTME: Defines CRUD plus change notification for all entities.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

// ErrNotFound reports operations on tracker or record ids that do not
// exist. Callers use it to show feedback instead of silently no-oping.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for tracker data.
// This interface allows swapping implementations (e.g., for testing).
//
// Implementations fire change notifications registered via OnChange
// after any mutating operation commits. Rows that fail to decode are
// skipped and logged rather than failing the whole listing.
type Repository interface {
	// Tracker operations
	CreateTracker(t models.Tracker, categoryTitle string) error
	UpdateTracker(t models.Tracker, newCategoryTitle string) error
	DeleteTracker(id uuid.UUID) error
	TogglePin(id uuid.UUID) error
	FetchTrackers(nameContains string) ([]models.Tracker, error)
	AllCategories() ([]models.Category, error)
	AllTrackers() ([]models.Tracker, error)

	// Completion record operations
	AddCompletionRecord(r models.CompletionRecord) error
	DeleteCompletionRecord(id uuid.UUID) error
	AllCompletionRecords() ([]models.CompletionRecord, error)

	// OnChange registers a callback fired after any mutation commits.
	OnChange(fn func())

	// Lifecycle
	Close() error
}

// ResolveTrackerID finds a full tracker id from an id or unique prefix.
// The prefix form is what the CLI prints in list output. A well-formed
// UUID still has to belong to a stored tracker; ids of deleted or
// never-created trackers report ErrNotFound.
func ResolveTrackerID(r Repository, idOrPrefix string) (uuid.UUID, error) {
	trackers, err := r.AllTrackers()
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve tracker id: %w", err)
	}

	if id, err := uuid.Parse(idOrPrefix); err == nil {
		for _, t := range trackers {
			if t.ID == id {
				return id, nil
			}
		}
		return uuid.Nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}

	var matches []uuid.UUID
	for _, t := range trackers {
		if strings.HasPrefix(t.ID.String(), strings.ToLower(idOrPrefix)) {
			matches = append(matches, t.ID)
		}
	}

	if len(matches) == 0 {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous prefix %s: matches multiple trackers", idOrPrefix)
	}
	return matches[0], nil
}

// notifier is the shared change-notification fanout used by backends.
type notifier struct {
	listeners []func()
}

func (n *notifier) OnChange(fn func()) {
	n.listeners = append(n.listeners, fn)
}

// notify runs listeners synchronously, after a mutation has committed.
func (n *notifier) notify() {
	for _, fn := range n.listeners {
		fn()
	}
}
