// ABOUTME: Badger key-value backend implementing the Repository interface.
// ABOUTME: JSON documents under tracker:/record: prefixes plus a category index.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/harperreed/habits/internal/models"
)

const (
	trackerPrefix = "tracker:"
	recordPrefix  = "record:"
	categoryKey   = "meta:categories"
)

// trackerDoc is the stored form of a tracker plus its category membership.
type trackerDoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Emoji    string `json:"emoji"`
	Schedule string `json:"schedule"`
	IsPinned bool   `json:"is_pinned"`
	Category string `json:"category"`
	Position int    `json:"position"`
}

// recordDoc is the stored form of a completion record.
type recordDoc struct {
	ID        string `json:"id"`
	TrackerID string `json:"tracker_id"`
	Day       string `json:"day"`
}

// BadgerStore is a Repository backed by a Badger key-value database.
type BadgerStore struct {
	notifier
	db *badger.DB
}

// OpenBadger opens or creates a Badger database rooted at dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}

// CreateTracker stores a new tracker, appending it to the category's
// membership order and registering the category on first use.
func (b *BadgerStore) CreateTracker(t models.Tracker, categoryTitle string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		titles, err := readCategoryIndex(txn)
		if err != nil {
			return err
		}
		if !containsString(titles, categoryTitle) {
			titles = append(titles, categoryTitle)
			if err := writeCategoryIndex(txn, titles); err != nil {
				return err
			}
		}

		position, err := nextBadgerPosition(txn, categoryTitle)
		if err != nil {
			return err
		}

		return writeTracker(txn, trackerDoc{
			ID:       t.ID.String(),
			Name:     t.Name,
			Color:    string(t.Color),
			Emoji:    string(t.Emoji),
			Schedule: models.EncodeSchedule(t.Schedule),
			IsPinned: t.IsPinned,
			Category: categoryTitle,
			Position: position,
		})
	})
	if err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}

	b.notify()
	return nil
}

// UpdateTracker replaces a tracker's value, moving it to the end of the
// new category's order when the category changes.
func (b *BadgerStore) UpdateTracker(t models.Tracker, newCategoryTitle string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		doc, err := readTracker(txn, t.ID)
		if err != nil {
			return err
		}

		doc.Name = t.Name
		doc.Color = string(t.Color)
		doc.Emoji = string(t.Emoji)
		doc.Schedule = models.EncodeSchedule(t.Schedule)
		doc.IsPinned = t.IsPinned

		if newCategoryTitle != "" && newCategoryTitle != doc.Category {
			titles, err := readCategoryIndex(txn)
			if err != nil {
				return err
			}
			if !containsString(titles, newCategoryTitle) {
				titles = append(titles, newCategoryTitle)
				if err := writeCategoryIndex(txn, titles); err != nil {
					return err
				}
			}
			position, err := nextBadgerPosition(txn, newCategoryTitle)
			if err != nil {
				return err
			}
			doc.Category = newCategoryTitle
			doc.Position = position
		}

		return writeTracker(txn, doc)
	})
	if err != nil {
		return fmt.Errorf("update tracker: %w", err)
	}

	b.notify()
	return nil
}

// DeleteTracker removes a tracker and cascades to its completion records.
func (b *BadgerStore) DeleteTracker(id uuid.UUID) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := readTracker(txn, id); err != nil {
			return err
		}
		if err := txn.Delete([]byte(trackerPrefix + id.String())); err != nil {
			return err
		}

		// cascade: drop all records referencing the tracker
		var orphaned [][]byte
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := []byte(recordPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var doc recordDoc
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				continue
			}
			if doc.TrackerID == id.String() {
				orphaned = append(orphaned, item.KeyCopy(nil))
			}
		}
		it.Close()

		for _, key := range orphaned {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete tracker: %w", err)
	}

	b.notify()
	return nil
}

// TogglePin flips a tracker's pinned flag in place.
func (b *BadgerStore) TogglePin(id uuid.UUID) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		doc, err := readTracker(txn, id)
		if err != nil {
			return err
		}
		doc.IsPinned = !doc.IsPinned
		return writeTracker(txn, doc)
	})
	if err != nil {
		return fmt.Errorf("toggle pin: %w", err)
	}

	b.notify()
	return nil
}

// FetchTrackers retrieves trackers whose name contains the substring,
// case-insensitively. An empty string matches everything.
func (b *BadgerStore) FetchTrackers(nameContains string) ([]models.Tracker, error) {
	docs, err := b.allTrackerDocs()
	if err != nil {
		return nil, fmt.Errorf("fetch trackers: %w", err)
	}

	var trackers []models.Tracker
	for _, doc := range docs {
		if nameContains != "" && !containsFold(doc.Name, nameContains) {
			continue
		}
		tracker, err := decodeTracker(doc.ID, doc.Name, doc.Color, doc.Emoji, doc.Schedule, doc.IsPinned)
		if err != nil {
			log.Warn().Err(err).Str("tracker_id", doc.ID).Msg("skipping corrupt tracker document")
			continue
		}
		trackers = append(trackers, tracker)
	}
	return trackers, nil
}

// AllTrackers retrieves every tracker in category membership order.
func (b *BadgerStore) AllTrackers() ([]models.Tracker, error) {
	return b.FetchTrackers("")
}

// AllCategories retrieves categories in registration order with their
// trackers in membership order.
func (b *BadgerStore) AllCategories() ([]models.Category, error) {
	var titles []string
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		titles, err = readCategoryIndex(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	docs, err := b.allTrackerDocs()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	byCategory := make(map[string][]models.Tracker)
	for _, doc := range docs {
		tracker, err := decodeTracker(doc.ID, doc.Name, doc.Color, doc.Emoji, doc.Schedule, doc.IsPinned)
		if err != nil {
			log.Warn().Err(err).Str("tracker_id", doc.ID).Msg("skipping corrupt tracker document")
			continue
		}
		byCategory[doc.Category] = append(byCategory[doc.Category], tracker)
	}

	categories := make([]models.Category, 0, len(titles))
	for _, title := range titles {
		categories = append(categories, models.Category{
			Title:    title,
			Trackers: byCategory[title],
		})
	}
	return categories, nil
}

// AddCompletionRecord inserts a completion record.
func (b *BadgerStore) AddCompletionRecord(r models.CompletionRecord) error {
	doc := recordDoc{
		ID:        r.ID.String(),
		TrackerID: r.TrackerID.String(),
		Day:       r.Date.Format(dayFormat),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("add completion record: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(recordPrefix+doc.ID), data)
	})
	if err != nil {
		return fmt.Errorf("add completion record: %w", err)
	}

	b.notify()
	return nil
}

// DeleteCompletionRecord removes a completion record by id.
func (b *BadgerStore) DeleteCompletionRecord(id uuid.UUID) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		key := []byte(recordPrefix + id.String())
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("delete completion record: %w", err)
	}

	b.notify()
	return nil
}

// AllCompletionRecords retrieves the full completion history, oldest day
// first.
func (b *BadgerStore) AllCompletionRecords() ([]models.CompletionRecord, error) {
	var docs []recordDoc
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(recordPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var doc recordDoc
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list completion records: %w", err)
	}

	var records []models.CompletionRecord
	for _, doc := range docs {
		record, err := decodeRecord(doc.ID, doc.TrackerID, doc.Day)
		if err != nil {
			log.Warn().Err(err).Str("record_id", doc.ID).Msg("skipping corrupt completion record")
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

func (b *BadgerStore) allTrackerDocs() ([]trackerDoc, error) {
	var docs []trackerDoc
	var titles []string
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		titles, err = readCategoryIndex(txn)
		if err != nil {
			return err
		}

		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(trackerPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var doc trackerDoc
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Order categories by registration, matching AllCategories.
	categoryOrder := make(map[string]int, len(titles))
	for i, title := range titles {
		categoryOrder[title] = i
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Category != docs[j].Category {
			return categoryOrder[docs[i].Category] < categoryOrder[docs[j].Category]
		}
		return docs[i].Position < docs[j].Position
	})
	return docs, nil
}

func readTracker(txn *badger.Txn, id uuid.UUID) (trackerDoc, error) {
	item, err := txn.Get([]byte(trackerPrefix + id.String()))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return trackerDoc{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return trackerDoc{}, err
	}

	var doc trackerDoc
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &doc)
	})
	return doc, err
}

func writeTracker(txn *badger.Txn, doc trackerDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return txn.Set([]byte(trackerPrefix+doc.ID), data)
}

func readCategoryIndex(txn *badger.Txn) ([]string, error) {
	item, err := txn.Get([]byte(categoryKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var titles []string
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &titles)
	})
	return titles, err
}

func writeCategoryIndex(txn *badger.Txn, titles []string) error {
	data, err := json.Marshal(titles)
	if err != nil {
		return err
	}
	return txn.Set([]byte(categoryKey), data)
}

func nextBadgerPosition(txn *badger.Txn, categoryTitle string) (int, error) {
	max := -1
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	prefix := []byte(trackerPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var doc trackerDoc
		err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		})
		if err != nil {
			return 0, err
		}
		if doc.Category == categoryTitle && doc.Position > max {
			max = doc.Position
		}
	}
	return max + 1, nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
