package board

import (
	"sort"
	"strings"

	"github.com/cth1011/feedboard/internal/feedback"
)

// SortKey selects the display order of the derived view.
type SortKey int

const (
	SortByDate SortKey = iota
	SortByRating
)

func (k SortKey) String() string {
	if k == SortByRating {
		return "rating"
	}
	return "date"
}

// Params are the transient search/filter/sort selections that shape what
// is displayed without altering stored data. Zero value = show everything,
// newest first.
type Params struct {
	Search   string
	Category feedback.Category
	Sort     SortKey
}

// Derive computes the display sequence from the raw records: search
// filter, then category filter, then sort. It is pure — the input slice
// is never modified — and is recomputed in full on every change.
func Derive(records []feedback.Feedback, p Params) []feedback.Feedback {
	search := strings.ToLower(strings.TrimSpace(p.Search))

	out := make([]feedback.Feedback, 0, len(records))
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Title), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		if p.Category != feedback.CategoryNone && r.Category != p.Category {
			continue
		}
		out = append(out, r)
	}

	// Stable, so records that tie on every key keep their filtered order.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if p.Sort == SortByRating && a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return out
}
