package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cth1011/feedboard/internal/feedback"
)

// filterOrder is the tab order of the category filter bar. CategoryNone is
// the "All" tab.
var filterOrder = []feedback.Category{
	feedback.CategoryNone,
	feedback.CategoryUX,
	feedback.CategoryUI,
	feedback.CategoryFeature,
	feedback.CategoryOther,
}

// cycleCategory advances the single-select filter to the next tab,
// wrapping from Other back to All.
func cycleCategory(current feedback.Category) feedback.Category {
	for i, c := range filterOrder {
		if c == current {
			return filterOrder[(i+1)%len(filterOrder)]
		}
	}
	return feedback.CategoryNone
}

// toggleCategory implements the click-the-badge behavior: picking the
// already-selected category clears the filter, anything else replaces it.
func toggleCategory(current, clicked feedback.Category) feedback.Category {
	if clicked == feedback.CategoryNone || current == clicked {
		return feedback.CategoryNone
	}
	return clicked
}

func filterLabel(selected feedback.Category) string {
	if selected == feedback.CategoryNone {
		return "All"
	}
	return string(selected)
}

func renderFilterBar(selected feedback.Category, width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	for _, c := range filterOrder {
		label := filterLabel(c)
		if c == feedback.CategoryNone {
			label = "All"
		}
		style := tabInactiveStyle
		if c == selected {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
