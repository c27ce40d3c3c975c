// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateEntry is reported by repositories when an insert or update
// would leave two entries on the same calendar day for the same user. The
// uniqueness rule lives in the store's own constraint rather than in
// application code, so concurrent writers cannot race past it.
var ErrDuplicateEntry = errors.New("entry already exists for this date")

// WeightEntry is one user's weight measurement for one calendar day.
type WeightEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WeightKg  float64   `json:"weight_kg"`
	EntryDate string    `json:"entry_date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Trend classifications for a WeightSummary.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendSame   = "same"
	TrendNoData = "no_data"
)

// WeightSummary compares the rolling 7-day average against the 7 days
// before it. Averages are nil when their window holds no entries.
type WeightSummary struct {
	CurrentAverageKg  *float64 `json:"currentAverageKg"`
	PreviousAverageKg *float64 `json:"previousAverageKg"`
	Trend             string   `json:"trend"`
}

// WeightRepository is the port for weight-entry persistence. Date arguments
// are YYYY-MM-DD strings; window bounds are inclusive on both ends.
// UpdateByID and DeleteByID return (nil, nil) when no row matches.
type WeightRepository interface {
	ListByUser(ctx context.Context, userID string) ([]WeightEntry, error)
	Insert(ctx context.Context, userID string, weightKg float64, entryDate string, notes *string) (*WeightEntry, error)
	UpdateByID(ctx context.Context, id, userID string, weightKg float64, entryDate string, notes *string) (*WeightEntry, error)
	DeleteByID(ctx context.Context, id, userID string) (*WeightEntry, error)
	AverageInWindow(ctx context.Context, userID, startDate, endDate string) (*float64, error)
}
