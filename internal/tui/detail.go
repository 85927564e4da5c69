package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cth1011/feedboard/internal/feedback"
)

func renderDetail(r *feedback.Feedback, width, height int, dateFormat string) string {
	if r == nil {
		return lipglossCenter("Select a feedback item", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := detailTitleStyle.Width(contentWidth).Render(r.Title)

	category := "Uncategorized"
	if r.Category != feedback.CategoryNone {
		category = string(r.Category)
	}
	meta := detailMetaStyle.Render(
		fmt.Sprintf("%s · %s · %s", category, stars(r.Rating), r.CreatedAt.Format("Jan 2, 2006")),
	)

	body := detailBodyStyle.Width(contentWidth).Render(wrapText(r.Description, contentWidth))
	when := itemTimeStyle.Width(contentWidth).Render("Submitted " + formatWhen(r.CreatedAt, dateFormat))

	content := lipgloss.JoinVertical(lipgloss.Left, title, meta, "", body, "", when)

	// Pad to fill height
	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
