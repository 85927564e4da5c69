package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cth1011/feedboard/internal/board"
	"github.com/cth1011/feedboard/internal/config"
	"github.com/cth1011/feedboard/internal/tui"
)

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	b := board.New(cfg.SeedRecords()...)

	return tui.Run(tui.RunOpts{
		Board:      b,
		DateFormat: cfg.DateFormat,
	})
}
