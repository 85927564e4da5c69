package board

import (
	"reflect"
	"testing"
	"time"

	"github.com/cth1011/feedboard/internal/feedback"
)

func ids(records []feedback.Feedback) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestDeriveDefaultIsNewestFirst(t *testing.T) {
	got := Derive(seedRecords(), Params{})
	if want := []int{2, 1}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestDeriveSearch(t *testing.T) {
	records := seedRecords()

	tests := []struct {
		search string
		want   []int
	}{
		{"dark", []int{1}},
		{"DARK", []int{1}},            // case-insensitive
		{"screens", []int{2}},         // matches description
		{"  dark  ", []int{1}},        // trimmed
		{"   ", []int{2, 1}},          // whitespace-only is a no-op
		{"", []int{2, 1}},             // empty is a no-op
		{"o", []int{2, 1}},            // substring, not token
		{"dark screens", nil},         // no cross-record match
		{"nonexistent", nil},
	}
	for _, tt := range tests {
		got := ids(Derive(records, Params{Search: tt.search}))
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Derive(search=%q) = %v, want %v", tt.search, got, tt.want)
		}
	}
}

func TestDeriveCategory(t *testing.T) {
	records := seedRecords()

	got := Derive(records, Params{Category: feedback.CategoryUX})
	if want := []int{2}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
	for _, r := range got {
		if r.Category != feedback.CategoryUX {
			t.Errorf("expected only UX records, got %s", r.Category)
		}
	}

	// Unset category never matches a concrete filter.
	withUnset := append(records, feedback.Feedback{ID: 3, Title: "No category", Description: "Seeded without one", Rating: 1, CreatedAt: t1})
	got = Derive(withUnset, Params{Category: feedback.CategoryUX})
	if len(got) != 1 {
		t.Errorf("expected unset-category record excluded, got %v", ids(got))
	}
}

func TestDeriveSearchThenCategory(t *testing.T) {
	records := seedRecords()
	got := Derive(records, Params{Search: "layout", Category: feedback.CategoryFeature})
	if len(got) != 0 {
		t.Errorf("expected no records to pass both filters, got %v", ids(got))
	}
}

func TestDeriveSortByRating(t *testing.T) {
	t3 := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	records := append(seedRecords(),
		feedback.Feedback{ID: 3, Title: "Another strong one", Description: "Same rating, newer", Category: feedback.CategoryOther, Rating: 4, CreatedAt: t3},
	)

	got := Derive(records, Params{Sort: SortByRating})
	if want := []int{3, 1, 2}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v (rating desc, ties newest first), got %v", want, ids(got))
	}

	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if a.Rating < b.Rating {
			t.Errorf("ratings out of order at %d: %d before %d", i, a.Rating, b.Rating)
		}
		if a.Rating == b.Rating && a.CreatedAt.Before(b.CreatedAt) {
			t.Errorf("tie-break out of order at %d", i)
		}
	}
}

func TestDeriveDeterministicOnFullTies(t *testing.T) {
	records := []feedback.Feedback{
		{ID: 1, Title: "First", Description: "Identical rating and time", Rating: 3, CreatedAt: t1},
		{ID: 2, Title: "Second", Description: "Identical rating and time", Rating: 3, CreatedAt: t1},
	}
	first := ids(Derive(records, Params{Sort: SortByRating}))
	second := ids(Derive(records, Params{Sort: SortByRating}))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected deterministic order, got %v then %v", first, second)
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	records := seedRecords()
	before := make([]feedback.Feedback, len(records))
	copy(before, records)

	Derive(records, Params{Sort: SortByRating, Search: "a"})

	if !reflect.DeepEqual(before, records) {
		t.Error("Derive must not reorder or modify its input")
	}
}

func TestDeriveScenarioAfterAdd(t *testing.T) {
	b := New(seedRecords()...)
	b.Add(feedback.Input{Title: "Hi there", Description: "This is long enough", Category: feedback.CategoryUI, Rating: 5})

	got := Derive(b.All(), Params{Sort: SortByRating})
	if got[0].ID != 3 || got[0].Rating != 5 {
		t.Errorf("expected new 5-star record first under rating sort, got %+v", got[0])
	}
}
