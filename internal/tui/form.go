package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cth1011/feedboard/internal/feedback"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldCategory
	fieldRating
	fieldSubmit
	fieldCancel
)

// form is the modal add-feedback form. Values live here until a successful
// submit hands a validated Input to the board; cancelling throws the whole
// thing away.
type form struct {
	title textinput.Model
	desc  textarea.Model

	category feedback.Category // CategoryNone until picked
	catIndex int               // picker cursor within FormCategories

	rating     int // committed value, 0 = none yet
	starCursor int // 1..5 preview position while the star row is focused

	focus  formField
	errors map[string]string // field name -> user-facing message
}

func newForm() form {
	ti := textinput.New()
	ti.Placeholder = "Enter feedback title"
	ti.CharLimit = 100
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Describe your feedback in detail..."
	ta.CharLimit = 500
	ta.SetHeight(4)

	return form{
		title:      ti,
		desc:       ta,
		starCursor: 1,
		focus:      fieldTitle,
		errors:     map[string]string{},
	}
}

// input snapshots the current field values as a submission candidate.
func (f *form) input() feedback.Input {
	return feedback.Input{
		Title:       f.title.Value(),
		Description: f.desc.Value(),
		Category:    f.category,
		Rating:      f.rating,
	}
}

func (f *form) applyErrors(errs []feedback.FieldError) {
	f.errors = make(map[string]string, len(errs))
	for _, e := range errs {
		f.errors[e.Field] = e.Message
	}
}

func (f *form) nextField() {
	f.setFocus((f.focus + 1) % (fieldCancel + 1))
}

func (f *form) prevField() {
	f.setFocus((f.focus + fieldCancel) % (fieldCancel + 1))
}

func (f *form) setFocus(field formField) {
	f.focus = field
	f.title.Blur()
	f.desc.Blur()
	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.desc.Focus()
	case fieldRating:
		if f.rating > 0 {
			f.starCursor = f.rating
		}
	}
}

func (f *form) cycleCategory(delta int) {
	cats := feedback.FormCategories()
	if f.category == feedback.CategoryNone {
		f.catIndex = 0
	} else {
		f.catIndex = (f.catIndex + delta + len(cats)) % len(cats)
	}
	f.category = cats[f.catIndex]
}

// setRating commits a star value, exactly on keypress (no confirm step).
func (f *form) setRating(n int) {
	if n < 1 || n > 5 {
		return
	}
	f.rating = n
	f.starCursor = n
}

func (f *form) moveStarCursor(delta int) {
	f.starCursor += delta
	if f.starCursor < 1 {
		f.starCursor = 1
	}
	if f.starCursor > 5 {
		f.starCursor = 5
	}
}

func (f *form) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.desc, cmd = f.desc.Update(msg)
	}
	return cmd
}

func (f *form) label(field formField, text string) string {
	if f.focus == field {
		return formLabelFocusStyle.Render(text)
	}
	return formLabelStyle.Render(text)
}

func (f *form) errorLine(field string) string {
	if msg, ok := f.errors[field]; ok {
		return formErrorStyle.Render(msg)
	}
	return ""
}

func (f *form) renderCategoryPicker() string {
	var parts []string
	for _, c := range feedback.FormCategories() {
		style := tabInactiveStyle
		if c == f.category {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(string(c)))
	}
	row := strings.Join(parts, " ")
	if f.category == feedback.CategoryNone {
		row += "  " + formHintStyle.Render("Select a category")
	}
	return row
}

func (f *form) renderStarRow() string {
	shown := f.rating
	// Preview while focused, the hover analog: stars light up to the
	// cursor before the value is committed.
	if f.focus == fieldRating {
		shown = f.starCursor
	}
	row := styledStars(shown)
	if f.rating == 0 {
		row += "  " + formHintStyle.Render("Not rated yet")
	}
	return row
}

func (f *form) view(width int) string {
	var sections []string

	sections = append(sections, formTitleStyle.Render("New Feedback"))

	sections = append(sections, f.label(fieldTitle, "Title"))
	sections = append(sections, f.title.View())
	if e := f.errorLine("Title"); e != "" {
		sections = append(sections, e)
	}
	sections = append(sections, "")

	sections = append(sections, f.label(fieldDescription, "Description"))
	sections = append(sections, f.desc.View())
	if e := f.errorLine("Description"); e != "" {
		sections = append(sections, e)
	}
	sections = append(sections, "")

	sections = append(sections, f.label(fieldCategory, "Category"))
	sections = append(sections, f.renderCategoryPicker())
	if e := f.errorLine("Category"); e != "" {
		sections = append(sections, e)
	}
	sections = append(sections, "")

	sections = append(sections, f.label(fieldRating, "Rating"))
	sections = append(sections, f.renderStarRow())
	if e := f.errorLine("Rating"); e != "" {
		sections = append(sections, e)
	}
	sections = append(sections, "")

	submit := buttonStyle.Render("Add Feedback")
	if f.focus == fieldSubmit {
		submit = buttonFocusStyle.Render("Add Feedback")
	}
	cancel := buttonStyle.Render("Cancel")
	if f.focus == fieldCancel {
		cancel = buttonFocusStyle.Render("Cancel")
	}
	sections = append(sections, submit+"  "+cancel)
	sections = append(sections, "")
	sections = append(sections, formHintStyle.Render("tab next field · esc cancel"))

	card := lipgloss.JoinVertical(lipgloss.Left, sections...)

	maxWidth := width - 8
	if maxWidth > 64 {
		maxWidth = 64
	}
	if maxWidth > 0 {
		return formCardStyle.Width(maxWidth).Render(card)
	}
	return formCardStyle.Render(card)
}
