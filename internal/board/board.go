package board

import (
	"time"

	"github.com/cth1011/feedboard/internal/feedback"
)

// Board holds the authoritative set of feedback records. Raw order is
// insertion order, newest first. All mutation goes through Add and
// SetRating; records are never deleted. The board is not safe for
// concurrent use — the TUI event loop is its single writer.
type Board struct {
	records []feedback.Feedback
	now     func() time.Time
}

// New builds a board preloaded with seed records, given in raw order
// (newest insertion first). Seed records keep their ids and timestamps.
func New(seed ...feedback.Feedback) *Board {
	b := &Board{now: time.Now}
	b.records = append(b.records, seed...)
	return b
}

// Add creates a record from in, assigns the next id and the creation
// time, and inserts it at the front. Inputs are assumed already validated
// by the caller; Add itself does not re-check them.
func (b *Board) Add(in feedback.Input) feedback.Feedback {
	rec := feedback.Feedback{
		ID:          b.nextID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Rating:      in.Rating,
		CreatedAt:   b.now(),
	}
	b.records = append([]feedback.Feedback{rec}, b.records...)
	return rec
}

// nextID is one greater than the current maximum id, or 1 on an empty
// board. Ids are never reused even if the seed left gaps.
func (b *Board) nextID() int {
	maxID := 0
	for _, r := range b.records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// SetRating replaces the rating of the record with the given id, leaving
// every other field and its position untouched. Unknown ids are silently
// ignored. The rating is assumed already constrained to 1–5 by the caller.
func (b *Board) SetRating(id, rating int) {
	for i := range b.records {
		if b.records[i].ID == id {
			b.records[i].Rating = rating
			return
		}
	}
}

// All returns a copy of the raw sequence, newest insertion first. Display
// order is never the raw order; it is always the output of Derive.
func (b *Board) All() []feedback.Feedback {
	out := make([]feedback.Feedback, len(b.records))
	copy(out, b.records)
	return out
}

// Len returns the number of records on the board.
func (b *Board) Len() int {
	return len(b.records)
}
