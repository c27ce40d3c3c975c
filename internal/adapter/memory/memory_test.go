package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weightlog/internal/adapter/memory"
	"weightlog/internal/domain"
)

const userA = "00000000-0000-0000-0000-000000000001"
const userB = "00000000-0000-0000-0000-000000000002"

func strPtr(s string) *string { return &s }

func TestInsert_DuplicateDate(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	first, err := db.Insert(ctx, userA, 70, "2024-01-01", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == "" || !domain.IsValidUUID(first.ID) {
		t.Fatalf("expected generated UUID id, got %q", first.ID)
	}

	if _, err := db.Insert(ctx, userA, 71, "2024-01-01", nil); !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("got %v; want ErrDuplicateEntry", err)
	}

	// A different user may use the same date.
	if _, err := db.Insert(ctx, userB, 71, "2024-01-01", nil); err != nil {
		t.Fatalf("unexpected error for second user: %v", err)
	}
}

func TestListByUser_Ordering(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		if _, err := db.Insert(ctx, userA, 70, date, nil); err != nil {
			t.Fatalf("insert %s: %v", date, err)
		}
	}
	if _, err := db.Insert(ctx, userB, 99, "2024-01-04", nil); err != nil {
		t.Fatalf("insert other user: %v", err)
	}

	got, err := db.ListByUser(ctx, userA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries; want %d", len(got), len(want))
	}
	for i, date := range want {
		if got[i].EntryDate != date {
			t.Errorf("entry %d date = %s; want %s", i, got[i].EntryDate, date)
		}
	}
}

func TestUpdateByID(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	jan1, _ := db.Insert(ctx, userA, 70, "2024-01-01", nil)
	jan2, _ := db.Insert(ctx, userA, 71, "2024-01-02", nil)

	t.Run("not found", func(t *testing.T) {
		got, err := db.UpdateByID(ctx, "123e4567-e89b-12d3-a456-426614174000", userA, 72, "2024-01-05", nil)
		if err != nil || got != nil {
			t.Fatalf("got (%v, %v); want (nil, nil)", got, err)
		}
	})

	t.Run("wrong user", func(t *testing.T) {
		got, err := db.UpdateByID(ctx, jan1.ID, userB, 72, "2024-01-05", nil)
		if err != nil || got != nil {
			t.Fatalf("got (%v, %v); want (nil, nil)", got, err)
		}
	})

	t.Run("collision with different entry", func(t *testing.T) {
		_, err := db.UpdateByID(ctx, jan2.ID, userA, 72, "2024-01-01", nil)
		if !errors.Is(err, domain.ErrDuplicateEntry) {
			t.Fatalf("got %v; want ErrDuplicateEntry", err)
		}
	})

	t.Run("own date is not a collision", func(t *testing.T) {
		got, err := db.UpdateByID(ctx, jan2.ID, userA, 72.5, "2024-01-02", strPtr("after run"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WeightKg != 72.5 || got.Notes == nil || *got.Notes != "after run" {
			t.Fatalf("unexpected entry: %+v", got)
		}
		if got.UpdatedAt.Before(got.CreatedAt) {
			t.Error("updated_at should not precede created_at")
		}
	})
}

func TestDeleteByID(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	entry, _ := db.Insert(ctx, userA, 70, "2024-01-01", strPtr("rest day"))

	prior, err := db.DeleteByID(ctx, entry.ID, userA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prior == nil || prior.WeightKg != 70 || prior.Notes == nil || *prior.Notes != "rest day" {
		t.Fatalf("unexpected prior state: %+v", prior)
	}

	// Gone now.
	again, err := db.DeleteByID(ctx, entry.ID, userA)
	if err != nil || again != nil {
		t.Fatalf("second delete got (%v, %v); want (nil, nil)", again, err)
	}

	entries, _ := db.ListByUser(ctx, userA)
	if len(entries) != 0 {
		t.Fatalf("expected no entries left, got %d", len(entries))
	}
}

func TestAverageInWindow(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	today := time.Now().UTC()
	day := func(offset int) string { return today.AddDate(0, 0, offset).Format("2006-01-02") }

	// Current window: 74 and 76 -> 75. Previous window: 74. Outside: 100.
	for _, e := range []struct {
		offset int
		kg     float64
	}{
		{0, 74},
		{-3, 76},
		{-10, 74},
		{-20, 100},
	} {
		if _, err := db.Insert(ctx, userA, e.kg, day(e.offset), nil); err != nil {
			t.Fatalf("insert day %d: %v", e.offset, err)
		}
	}

	current, err := db.AverageInWindow(ctx, userA, day(-6), day(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current == nil || *current != 75 {
		t.Fatalf("current average = %v; want 75", current)
	}

	previous, err := db.AverageInWindow(ctx, userA, day(-13), day(-7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if previous == nil || *previous != 74 {
		t.Fatalf("previous average = %v; want 74", previous)
	}

	empty, err := db.AverageInWindow(ctx, userB, day(-6), day(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != nil {
		t.Fatalf("expected nil average for empty window, got %v", *empty)
	}
}
