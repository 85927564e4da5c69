package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/cth1011/feedboard/internal/feedback"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// formatWhen renders a timestamp per the configured date format; empty or
// "relative" means relative times.
func formatWhen(t time.Time, layout string) string {
	if layout == "" || layout == "relative" {
		return relativeTime(t)
	}
	return t.Format(layout)
}

// stars renders a 5-slot star row, e.g. "★★★☆☆" for 3.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func styledStars(rating int) string {
	return starFilledStyle.Render(strings.Repeat("★", rating)) +
		starEmptyStyle.Render(strings.Repeat("☆", 5-rating))
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderListItem(r feedback.Feedback, selected bool, width int, dateFormat string) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(r.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(r.Title, width-4))
	}

	meta := "  " + styledStars(r.Rating)
	if r.Category != feedback.CategoryNone {
		meta += " " + itemCategoryStyle.Render(string(r.Category))
	}
	meta += " " + itemTimeStyle.Render("· "+formatWhen(r.CreatedAt, dateFormat))

	return title + "\n" + meta
}

func renderList(records []feedback.Feedback, cursor int, height int, width int, dateFormat string) string {
	if len(records) == 0 {
		return lipglossCenter("No feedback found", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(records) {
		end = len(records)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(records[i], i == cursor, width, dateFormat))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
