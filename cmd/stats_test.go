package cmd

import (
	"testing"

	"github.com/cth1011/feedboard/internal/feedback"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"mixed", []int{4, 3}, 3.5},
		{"all fives", []int{5, 5, 5}, 5},
	}
	for _, tt := range tests {
		records := make([]feedback.Feedback, len(tt.ratings))
		for i, r := range tt.ratings {
			records[i] = feedback.Feedback{ID: i + 1, Rating: r}
		}
		if got := averageRating(records); got != tt.want {
			t.Errorf("%s: averageRating = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCountByCategory(t *testing.T) {
	records := []feedback.Feedback{
		{ID: 1, Category: feedback.CategoryUX},
		{ID: 2, Category: feedback.CategoryUX},
		{ID: 3, Category: feedback.CategoryFeature},
		{ID: 4}, // uncategorized seed record
	}
	counts := countByCategory(records)

	if counts[feedback.CategoryUX] != 2 {
		t.Errorf("expected 2 UX, got %d", counts[feedback.CategoryUX])
	}
	if counts[feedback.CategoryFeature] != 1 {
		t.Errorf("expected 1 Feature, got %d", counts[feedback.CategoryFeature])
	}
	if counts[feedback.CategoryNone] != 1 {
		t.Errorf("expected 1 uncategorized, got %d", counts[feedback.CategoryNone])
	}
	if counts[feedback.CategoryUI] != 0 {
		t.Errorf("expected 0 UI, got %d", counts[feedback.CategoryUI])
	}
}
