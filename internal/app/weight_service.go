// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"time"

	"weightlog/internal/domain"
)

var (
	// ErrInvalidWeight indicates that the supplied weight was not a positive number.
	ErrInvalidWeight = errors.New("weight must be a positive number")
	// ErrInvalidUnit indicates an unrecognised weight unit.
	ErrInvalidUnit = errors.New(`unit must be "kg" or "lb"`)
	// ErrInvalidDate indicates that the entry date does not match YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid entryDate format (YYYY-MM-DD)")
	// ErrInvalidID indicates that the entry id is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid id format")
	// ErrDuplicateDate indicates that the user already has an entry for the date.
	ErrDuplicateDate = errors.New("weight entry already exists for this date")
	// ErrNotFound indicates that no entry matches the given id for the user.
	ErrNotFound = errors.New("weight entry not found")
)

// WeightService encapsulates the weight-tracking use cases.
type WeightService struct {
	repo domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// List returns all of the user's entries, most recent entry date first.
func (s *WeightService) List(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add validates and stores a new weight measurement. The unit defaults to
// kilograms and the entry date to today (UTC) when absent. All validation
// happens before the store is touched.
func (s *WeightService) Add(ctx context.Context, userID string, weight float64, unit, entryDate string, notes *string) (*domain.WeightEntry, error) {
	weightKg, entryDate, err := s.normalize(weight, unit, entryDate)
	if err != nil {
		return nil, err
	}
	entry, err := s.repo.Insert(ctx, userID, weightKg, entryDate, notes)
	if errors.Is(err, domain.ErrDuplicateEntry) {
		return nil, ErrDuplicateDate
	}
	return entry, err
}

// Update validates and rewrites an existing entry, scoped to (id, userID).
// Moving an entry onto a date that a different entry already occupies fails
// with ErrDuplicateDate; keeping its own date is always allowed.
func (s *WeightService) Update(ctx context.Context, userID, id string, weight float64, unit, entryDate string, notes *string) (*domain.WeightEntry, error) {
	if !domain.IsValidUUID(id) {
		return nil, ErrInvalidID
	}
	weightKg, entryDate, err := s.normalize(weight, unit, entryDate)
	if err != nil {
		return nil, err
	}
	entry, err := s.repo.UpdateByID(ctx, id, userID, weightKg, entryDate, notes)
	if errors.Is(err, domain.ErrDuplicateEntry) {
		return nil, ErrDuplicateDate
	}
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Delete removes the entry scoped to (id, userID) and returns its prior state.
func (s *WeightService) Delete(ctx context.Context, userID, id string) (*domain.WeightEntry, error) {
	if !domain.IsValidUUID(id) {
		return nil, ErrInvalidID
	}
	entry, err := s.repo.DeleteByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Summarize computes the rolling 7-day average, the average over the 7 days
// before that, and a trend classification. A single missing average cannot
// support a comparison, so the trend is no_data unless both windows have
// entries. The two reads need not be transactional; both are snapshots of
// slowly-changing data.
func (s *WeightService) Summarize(ctx context.Context, userID string) (*domain.WeightSummary, error) {
	today := time.Now().UTC()

	current, err := s.repo.AverageInWindow(ctx, userID, dayString(today.AddDate(0, 0, -6)), dayString(today))
	if err != nil {
		return nil, err
	}
	previous, err := s.repo.AverageInWindow(ctx, userID, dayString(today.AddDate(0, 0, -13)), dayString(today.AddDate(0, 0, -7)))
	if err != nil {
		return nil, err
	}

	trend := domain.TrendNoData
	if current != nil && previous != nil {
		switch {
		case *current > *previous:
			trend = domain.TrendUp
		case *current < *previous:
			trend = domain.TrendDown
		default:
			trend = domain.TrendSame
		}
	}
	return &domain.WeightSummary{
		CurrentAverageKg:  current,
		PreviousAverageKg: previous,
		Trend:             trend,
	}, nil
}

// normalize runs the shared Add/Update validation pipeline and returns the
// weight in kilograms plus the resolved entry date.
func (s *WeightService) normalize(weight float64, unit, entryDate string) (float64, string, error) {
	if weight <= 0 {
		return 0, "", ErrInvalidWeight
	}
	if unit == "" {
		unit = domain.UnitKg
	}
	if !domain.IsValidUnit(unit) {
		return 0, "", ErrInvalidUnit
	}
	if entryDate == "" {
		entryDate = dayString(time.Now().UTC())
	}
	if !domain.IsValidDateFormat(entryDate) {
		return 0, "", ErrInvalidDate
	}
	return domain.NormalizeToKg(weight, unit), entryDate, nil
}

func dayString(t time.Time) string {
	return t.Format("2006-01-02")
}
