package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cth1011/feedboard/internal/board"
	"github.com/cth1011/feedboard/internal/feedback"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeHelp
)

type App struct {
	board   *board.Board
	params  board.Params
	visible []feedback.Feedback
	cursor  int
	mode    mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	form        form

	dateFormat  string
	currentDate string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Board      *board.Board
	DateFormat string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search feedback..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	a := &App{
		board:       opts.Board,
		searchInput: ti,
		form:        newForm(),
		dateFormat:  opts.DateFormat,
		currentDate: time.Now().Format("Jan 2"),
	}
	a.refresh()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// refresh re-derives the visible list from the store and the current view
// parameters. Recomputation is total and synchronous; nothing is cached
// between events.
func (a *App) refresh() {
	a.visible = board.Derive(a.board.All(), a.params)
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
}

// selected returns the record under the cursor, or nil when the view is
// empty.
func (a *App) selected() *feedback.Feedback {
	if len(a.visible) == 0 || a.cursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.cursor]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeForm:
		return a.handleFormKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeList
		}
		return a, nil
	}

	// List mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "a", "n":
		a.mode = modeForm
		a.form = newForm()
		return a, textinput.Blink
	case "s":
		if a.params.Sort == board.SortByDate {
			a.params.Sort = board.SortByRating
		} else {
			a.params.Sort = board.SortByDate
		}
		a.cursor = 0
		a.refresh()
		return a, nil
	case "tab":
		a.params.Category = cycleCategory(a.params.Category)
		a.cursor = 0
		a.refresh()
		return a, nil
	case "c":
		// The click-the-badge gesture: filter by the selected record's
		// category, or clear if it is already the active filter.
		if rec := a.selected(); rec != nil && rec.Category != feedback.CategoryNone {
			a.params.Category = toggleCategory(a.params.Category, rec.Category)
			a.cursor = 0
			a.refresh()
		}
		return a, nil
	case "C":
		a.params.Category = feedback.CategoryNone
		a.cursor = 0
		a.refresh()
		return a, nil
	case "1", "2", "3", "4", "5":
		if rec := a.selected(); rec != nil {
			a.board.SetRating(rec.ID, int(msg.String()[0]-'0'))
			a.refresh()
		}
		return a, nil
	case "esc":
		if a.params.Search != "" {
			a.params.Search = ""
			a.searchInput.SetValue("")
			a.refresh()
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeList
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.params.Search = ""
		a.refresh()
		return a, nil
	case "enter":
		a.mode = modeList
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Re-derive on every actual edit, not on cursor moves.
	if v := a.searchInput.Value(); v != before {
		a.params.Search = v
		a.cursor = 0
		a.refresh()
	}
	return a, cmd
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel closes without mutating the board.
		a.form = newForm()
		a.mode = modeList
		return a, nil
	case "tab":
		a.form.nextField()
		return a, nil
	case "shift+tab":
		a.form.prevField()
		return a, nil
	}

	switch a.form.focus {
	case fieldTitle:
		if msg.String() == "enter" {
			a.form.nextField()
			return a, nil
		}
	case fieldCategory:
		switch msg.String() {
		case "left", "h":
			a.form.cycleCategory(-1)
			return a, nil
		case "right", "l", " ":
			a.form.cycleCategory(1)
			return a, nil
		case "enter":
			a.form.nextField()
			return a, nil
		}
		return a, nil
	case fieldRating:
		switch msg.String() {
		case "left", "h":
			a.form.moveStarCursor(-1)
			return a, nil
		case "right", "l":
			a.form.moveStarCursor(1)
			return a, nil
		case "1", "2", "3", "4", "5":
			a.form.setRating(int(msg.String()[0] - '0'))
			return a, nil
		case "enter", " ":
			a.form.setRating(a.form.starCursor)
			return a, nil
		}
		return a, nil
	case fieldSubmit:
		if msg.String() == "enter" {
			return a.submitForm()
		}
		return a, nil
	case fieldCancel:
		if msg.String() == "enter" {
			a.form = newForm()
			a.mode = modeList
		}
		return a, nil
	}

	return a, a.form.updateInputs(msg)
}

// submitForm validates the form and, only when every field passes, adds
// the record and closes the modal. On failure the form stays open with
// per-field errors and the board is untouched.
func (a *App) submitForm() (tea.Model, tea.Cmd) {
	in := a.form.input()
	if errs := feedback.Validate(in); len(errs) > 0 {
		a.form.applyErrors(errs)
		return a, nil
	}

	a.board.Add(in)
	a.form = newForm()
	a.mode = modeList
	a.cursor = 0
	a.refresh()
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  feedboard")
	}

	if a.mode == modeHelp {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.renderHelp())
	}

	if a.mode == modeForm {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.form.view(a.width))
	}

	// Layout calculations
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.45)
	detailWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("feedboard")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Filter bar; the search input replaces it while searching
	filter := renderFilterBar(a.params.Category, a.width)
	if a.mode == modeSearch {
		filter = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(a.visible, a.cursor, contentHeight, innerListW, a.dateFormat)
	listPane := listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	// Detail pane
	innerDetailW := detailWidth - 4
	detailContent := renderDetail(a.selected(), innerDetailW, contentHeight, a.dateFormat)
	detailPane := detailPaneStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	status := renderStatusBar(
		len(a.visible),
		filterLabel(a.params.Category),
		a.params.Sort.String(),
		a.width,
		a.mode == modeSearch,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("feedboard")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the list\n\n" +
		dim.Render("Actions") + "\n" +
		"  a, n          Add feedback\n" +
		"  1-5           Rate the selected item\n" +
		"  /             Search title and description\n\n" +
		dim.Render("Filter & Sort") + "\n" +
		"  tab           Cycle category filter\n" +
		"  c             Filter by the selected item's category\n" +
		"  C             Clear the category filter\n" +
		"  s             Toggle sort (date / rating)\n\n" +
		dim.Render("General") + "\n" +
		"  esc           Clear search\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	return helpCardStyle.Render(help)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
