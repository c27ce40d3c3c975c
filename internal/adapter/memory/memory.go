// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"weightlog/internal/domain"
)

// DB implements an in-memory weight-entry store. It enforces the same
// one-entry-per-day-per-user rule as the PostgreSQL adapter.
type DB struct {
	mu      sync.Mutex
	entries []domain.WeightEntry
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

var _ domain.WeightRepository = (*DB)(nil)

// ListByUser returns all of the user's entries, most recent entry date first.
func (db *DB) ListByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.WeightEntry, 0)
	for i := range db.entries {
		if db.entries[i].UserID == userID {
			out = append(out, cloneEntry(db.entries[i]))
		}
	}
	// YYYY-MM-DD strings sort the same way the dates do.
	sort.Slice(out, func(i, j int) bool {
		return out[i].EntryDate > out[j].EntryDate
	})
	return out, nil
}

// Insert creates a new entry, rejecting a second entry on the same day.
func (db *DB) Insert(ctx context.Context, userID string, weightKg float64, entryDate string, notes *string) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].UserID == userID && db.entries[i].EntryDate == entryDate {
			return nil, domain.ErrDuplicateEntry
		}
	}

	now := time.Now().UTC()
	e := domain.WeightEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		WeightKg:  weightKg,
		EntryDate: entryDate,
		Notes:     cloneNotes(notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	db.entries = append(db.entries, e)
	ret := cloneEntry(e)
	return &ret, nil
}

// UpdateByID rewrites the entry scoped to (id, userID). Moving it onto a day
// occupied by a different entry fails; keeping its own day is allowed.
func (db *DB) UpdateByID(ctx context.Context, id, userID string, weightKg float64, entryDate string, notes *string) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	idx := -1
	for i := range db.entries {
		if db.entries[i].ID == id && db.entries[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	for i := range db.entries {
		if i != idx && db.entries[i].UserID == userID && db.entries[i].EntryDate == entryDate {
			return nil, domain.ErrDuplicateEntry
		}
	}

	e := &db.entries[idx]
	e.WeightKg = weightKg
	e.EntryDate = entryDate
	e.Notes = cloneNotes(notes)
	e.UpdatedAt = time.Now().UTC()
	ret := cloneEntry(*e)
	return &ret, nil
}

// DeleteByID removes the entry scoped to (id, userID) and returns its prior state.
func (db *DB) DeleteByID(ctx context.Context, id, userID string) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == id && db.entries[i].UserID == userID {
			prior := cloneEntry(db.entries[i])
			db.entries = append(db.entries[:i], db.entries[i+1:]...)
			return &prior, nil
		}
	}
	return nil, nil
}

// AverageInWindow returns the mean weight over entries dated inside
// [startDate, endDate], or nil when the window holds no entries.
func (db *DB) AverageInWindow(ctx context.Context, userID, startDate, endDate string) (*float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var sum float64
	var count int
	for i := range db.entries {
		e := &db.entries[i]
		if e.UserID == userID && e.EntryDate >= startDate && e.EntryDate <= endDate {
			sum += e.WeightKg
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := sum / float64(count)
	return &avg, nil
}

func cloneEntry(e domain.WeightEntry) domain.WeightEntry {
	e.Notes = cloneNotes(e.Notes)
	return e
}

func cloneNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	n := *notes
	return &n
}
