package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cth1011/feedboard/internal/config"
	"github.com/cth1011/feedboard/internal/feedback"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show board statistics",
	Long:  "Print record counts per category and the average rating for the configured board without entering the TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		records := cfg.SeedRecords()
		counts := countByCategory(records)

		fmt.Printf("Items: %d\n", len(records))
		for _, c := range feedback.FormCategories() {
			if counts[c] > 0 {
				fmt.Printf("  %-10s %d\n", c, counts[c])
			}
		}
		if n := counts[feedback.CategoryNone]; n > 0 {
			fmt.Printf("  %-10s %d\n", "(none)", n)
		}
		fmt.Printf("Average rating: %.1f\n", averageRating(records))
		return nil
	},
}

func countByCategory(records []feedback.Feedback) map[feedback.Category]int {
	counts := make(map[feedback.Category]int)
	for _, r := range records {
		counts[r.Category]++
	}
	return counts
}

func averageRating(records []feedback.Feedback) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Rating
	}
	return float64(sum) / float64(len(records))
}
