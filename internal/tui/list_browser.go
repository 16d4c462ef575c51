package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/readlog/internal/book"
)

// BookItem wraps a book record for the interactive list.
type BookItem struct {
	Book book.Book
}

// FilterValue returns a string used for filtering in the list
func (b BookItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s %s", b.Book.Title, b.Book.Author, b.Book.Genre, b.Book.Status)
}

// statusIcon is a one-glyph status marker.
func statusIcon(s book.Status) string {
	switch s {
	case book.StatusReading:
		return StyleRating.Render("◐")
	case book.StatusCompleted:
		return StyleCompleted.Render("✓")
	default:
		return StyleHelp.Render("·")
	}
}

// truncateTitle cuts a title to at most max runes, ending in an ellipsis.
// Cutting on runes keeps multibyte titles intact at the boundary.
func truncateTitle(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// ratingStars renders a 1-5 rating, or empty for unrated books.
func ratingStars(rating int) string {
	if rating <= 0 {
		return ""
	}
	return " " + StyleRating.Render(strings.Repeat("★", rating))
}

// Custom list item delegate for rendering books
type bookDelegate struct{}

func (d bookDelegate) Height() int  { return 1 }
func (d bookDelegate) Spacing() int { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}
	b := bookItem.Book

	title := truncateTitle(b.Title, 44)
	line := fmt.Sprintf("%s %-44s %-20s", statusIcon(b.Status), title, b.Author)

	if b.Genre != "" {
		line += " " + StyleGenre.Render("["+b.Genre+"]")
	}
	line += ratingStars(b.Rating)

	if b.Status == book.StatusReading && b.PageCount > 0 {
		line += " " + StyleHelp.Render(fmt.Sprintf("%d%%", b.ProgressPercent()))
	}

	if index == m.Index() {
		fmt.Fprint(w, StyleHighlight.Render("› ")+line)
		return
	}
	fmt.Fprint(w, "  "+line)
}

// keyMap defines keyboard shortcuts
type keyMap struct {
	quit   key.Binding
	enter  key.Binding
	start  key.Binding
	finish key.Binding
	delete key.Binding
	filter key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start reading"),
	),
	finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "mark completed"),
	),
	delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
}

// BrowserAction represents an action requested from the browser
type BrowserAction string

const (
	ActionNone        BrowserAction = ""
	ActionShowDetails BrowserAction = "details"
	ActionStart       BrowserAction = "start"
	ActionFinish      BrowserAction = "finish"
	ActionDelete      BrowserAction = "delete"
)

// BrowserResult is what the browser hands back to the command layer.
type BrowserResult struct {
	Action BrowserAction
	Book   book.Book
}

type browserModel struct {
	list   list.Model
	result BrowserResult
}

// NewBrowser builds the interactive book list.
func NewBrowser(books []book.Book, title string) browserModel {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = BookItem{Book: b}
	}

	l := list.New(items, bookDelegate{}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.enter, keys.start, keys.finish, keys.delete}
	}

	return browserModel{list: l}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		// While the filter prompt is open, keys belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit

		case key.Matches(msg, keys.enter):
			return m.requestAction(ActionShowDetails)

		case key.Matches(msg, keys.start):
			return m.requestAction(ActionStart)

		case key.Matches(msg, keys.finish):
			return m.requestAction(ActionFinish)

		case key.Matches(msg, keys.delete):
			return m.requestAction(ActionDelete)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) requestAction(action BrowserAction) (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(BookItem)
	if !ok {
		return m, nil
	}
	m.result = BrowserResult{Action: action, Book: item.Book}
	return m, tea.Quit
}

func (m browserModel) View() string {
	return m.list.View()
}

// RunBrowser shows the book list and returns the action the user chose.
// A plain quit returns ActionNone.
func RunBrowser(books []book.Book, title string) (BrowserResult, error) {
	p := tea.NewProgram(NewBrowser(books, title), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return BrowserResult{}, err
	}
	m, ok := final.(browserModel)
	if !ok {
		return BrowserResult{}, fmt.Errorf("unexpected model type")
	}
	return m.result, nil
}
