package board

import (
	"reflect"
	"testing"
	"time"

	"github.com/cth1011/feedboard/internal/feedback"
)

var (
	t1 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 5, 5, 14, 30, 0, 0, time.UTC)
)

// seedRecords mirrors the default board content, raw order newest first.
func seedRecords() []feedback.Feedback {
	return []feedback.Feedback{
		{ID: 2, Title: "Improve mobile layout", Description: "Optimize the layout for smaller screens.", Category: feedback.CategoryUX, Rating: 3, CreatedAt: t2},
		{ID: 1, Title: "Add dark mode", Description: "Allow users to toggle dark mode for better accessibility at night.", Category: feedback.CategoryFeature, Rating: 4, CreatedAt: t1},
	}
}

func validInput() feedback.Input {
	return feedback.Input{
		Title:       "Hi there",
		Description: "This is long enough",
		Category:    feedback.CategoryUI,
		Rating:      5,
	}
}

func TestAddAssignsNextID(t *testing.T) {
	b := New(seedRecords()...)
	rec := b.Add(validInput())
	if rec.ID != 3 {
		t.Errorf("expected id 3, got %d", rec.ID)
	}
}

func TestAddEmptyBoardStartsAtOne(t *testing.T) {
	b := New()
	rec := b.Add(validInput())
	if rec.ID != 1 {
		t.Errorf("expected id 1 on empty board, got %d", rec.ID)
	}
}

func TestAddSkipsGapsInSeedIDs(t *testing.T) {
	b := New(
		feedback.Feedback{ID: 5, Title: "High id", Description: "Seeded with a gap", Rating: 2, CreatedAt: t1},
		feedback.Feedback{ID: 1, Title: "Low id", Description: "Seeded normally", Rating: 2, CreatedAt: t1},
	)
	rec := b.Add(validInput())
	if rec.ID != 6 {
		t.Errorf("expected max+1 = 6, got %d", rec.ID)
	}
}

func TestAddPrepends(t *testing.T) {
	b := New(seedRecords()...)
	b.Add(validInput())

	all := b.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].ID != 3 {
		t.Errorf("expected new record first, got id %d", all[0].ID)
	}
	if all[1].ID != 2 || all[2].ID != 1 {
		t.Errorf("expected existing records to keep raw order, got %d, %d", all[1].ID, all[2].ID)
	}
}

func TestAddStampsCreationTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	b := New(seedRecords()...)
	b.now = func() time.Time { return now }

	rec := b.Add(validInput())
	if !rec.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, rec.CreatedAt)
	}
}

func TestSetRating(t *testing.T) {
	b := New(seedRecords()...)
	b.SetRating(1, 5)

	all := b.All()
	if all[1].Rating != 5 {
		t.Errorf("expected rating 5, got %d", all[1].Rating)
	}
	// Everything else untouched.
	if all[1].Title != "Add dark mode" || !all[1].CreatedAt.Equal(t1) {
		t.Errorf("expected other fields unchanged, got %+v", all[1])
	}
	if all[0].Rating != 3 {
		t.Errorf("expected other records unchanged, got rating %d", all[0].Rating)
	}
}

func TestSetRatingIdempotent(t *testing.T) {
	b := New(seedRecords()...)
	b.SetRating(2, 5)
	once := b.All()
	b.SetRating(2, 5)
	twice := b.All()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected identical state after repeated update:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestSetRatingUnknownIDIsNoop(t *testing.T) {
	b := New(seedRecords()...)
	before := b.All()
	b.SetRating(99, 1)
	after := b.All()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("expected board unchanged for unknown id:\nbefore: %+v\nafter:  %+v", before, after)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	b := New(seedRecords()...)
	all := b.All()
	all[0].Rating = 1

	if b.All()[0].Rating != 3 {
		t.Error("mutating the returned slice must not touch the board")
	}
}

func TestLen(t *testing.T) {
	b := New(seedRecords()...)
	if b.Len() != 2 {
		t.Errorf("expected 2, got %d", b.Len())
	}
	b.Add(validInput())
	if b.Len() != 3 {
		t.Errorf("expected 3 after add, got %d", b.Len())
	}
}
