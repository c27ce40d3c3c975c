package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"weightlog/internal/domain"
)

var _ domain.WeightRepository = (*DB)(nil)

const entryColumns = "id, user_id, weight_kg, entry_date, notes, created_at, updated_at"

// uniqueViolation is the PostgreSQL error code for unique_violation. Hitting
// it on (user_id, entry_date) is the only store error the service recovers
// from; everything else stays opaque.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.WeightEntry, error) {
	var e domain.WeightEntry
	var entryDate time.Time
	if err := row.Scan(&e.ID, &e.UserID, &e.WeightKg, &entryDate, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.EntryDate = entryDate.Format("2006-01-02")
	return &e, nil
}

// ListByUser returns all of the user's entries, most recent entry date first.
func (d *DB) ListByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM weight_entries WHERE user_id = $1 ORDER BY entry_date DESC;",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WeightEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Insert creates a new entry and returns it as stored. Violating the
// (user_id, entry_date) constraint yields domain.ErrDuplicateEntry.
func (d *DB) Insert(ctx context.Context, userID string, weightKg float64, entryDate string, notes *string) (*domain.WeightEntry, error) {
	row := d.sql.QueryRowContext(ctx,
		"INSERT INTO weight_entries(user_id, weight_kg, entry_date, notes) VALUES($1, $2, $3, $4) RETURNING "+entryColumns+";",
		userID, weightKg, entryDate, notes)
	e, err := scanEntry(row)
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicateEntry
	}
	return e, err
}

// UpdateByID rewrites the entry scoped to (id, userID), refreshing
// updated_at. Returns (nil, nil) when no row matches.
func (d *DB) UpdateByID(ctx context.Context, id, userID string, weightKg float64, entryDate string, notes *string) (*domain.WeightEntry, error) {
	row := d.sql.QueryRowContext(ctx,
		"UPDATE weight_entries SET weight_kg = $1, entry_date = $2, notes = $3, updated_at = now() WHERE id = $4 AND user_id = $5 RETURNING "+entryColumns+";",
		weightKg, entryDate, notes, id, userID)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, err
	}
	return e, nil
}

// DeleteByID removes the entry scoped to (id, userID) and returns its prior
// state. Returns (nil, nil) when no row matches.
func (d *DB) DeleteByID(ctx context.Context, id, userID string) (*domain.WeightEntry, error) {
	row := d.sql.QueryRowContext(ctx,
		"DELETE FROM weight_entries WHERE id = $1 AND user_id = $2 RETURNING "+entryColumns+";",
		id, userID)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// AverageInWindow returns the mean weight over entries dated inside
// [startDate, endDate], or nil when the window holds no entries.
func (d *DB) AverageInWindow(ctx context.Context, userID, startDate, endDate string) (*float64, error) {
	var avg sql.NullFloat64
	err := d.sql.QueryRowContext(ctx,
		"SELECT AVG(weight_kg) FROM weight_entries WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3;",
		userID, startDate, endDate).Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
