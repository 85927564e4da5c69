package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(count int, filterLabel, sortLabel string, width int, searching bool) string {
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	left := fmt.Sprintf(" %d %s", count, noun)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	left += " · by " + sortLabel

	right := " a add  / search  tab filter  s sort  1-5 rate  ? help  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
