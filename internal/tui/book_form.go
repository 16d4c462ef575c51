package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/readlog/internal/book"
)

// BookFormData holds the metadata collected from the user.
type BookFormData struct {
	Title     string
	Author    string
	Status    book.Status
	Genre     string
	PageCount int
	Rating    int
	Notes     string
}

// BookFormDefaults pre-fills the form, for editing an existing record.
type BookFormDefaults struct {
	Heading string // "Add Book" or "Edit Book"
	Book    book.Book
}

type bookFormModel struct {
	inputs   []textinput.Model
	focused  int
	heading  string
	result   *BookFormData
	err      error
	canceled bool
	width    int
	height   int
}

const (
	formFieldTitle = iota
	formFieldAuthor
	formFieldStatus
	formFieldGenre
	formFieldPages
	formFieldRating
	formFieldNotes
	formFieldCount
)

var formLabels = []string{"Title", "Author", "Status", "Genre", "Pages", "Rating", "Notes"}

func newBookForm(defaults BookFormDefaults) bookFormModel {
	m := bookFormModel{
		inputs:  make([]textinput.Model, formFieldCount),
		heading: defaults.Heading,
	}
	b := defaults.Book

	const fieldWidth = 42

	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = fieldWidth
		m.inputs[i].Prompt = "│ "
	}

	m.inputs[formFieldTitle].Placeholder = "Book title"
	m.inputs[formFieldTitle].SetValue(b.Title)
	m.inputs[formFieldTitle].CharLimit = 200
	m.inputs[formFieldTitle].Focus()

	m.inputs[formFieldAuthor].Placeholder = "Author name"
	m.inputs[formFieldAuthor].SetValue(b.Author)
	m.inputs[formFieldAuthor].CharLimit = 100

	m.inputs[formFieldStatus].Placeholder = "To Read / Reading / Completed"
	if b.Status != "" {
		m.inputs[formFieldStatus].SetValue(string(b.Status))
	}
	m.inputs[formFieldStatus].CharLimit = 20

	m.inputs[formFieldGenre].Placeholder = "Genre (optional)"
	m.inputs[formFieldGenre].SetValue(b.Genre)
	m.inputs[formFieldGenre].CharLimit = 60

	m.inputs[formFieldPages].Placeholder = "Total pages (optional)"
	if b.PageCount > 0 {
		m.inputs[formFieldPages].SetValue(strconv.Itoa(b.PageCount))
	}
	m.inputs[formFieldPages].CharLimit = 6
	m.inputs[formFieldPages].Width = 10

	m.inputs[formFieldRating].Placeholder = "1-5 (optional)"
	if b.Rating > 0 {
		m.inputs[formFieldRating].SetValue(strconv.Itoa(b.Rating))
	}
	m.inputs[formFieldRating].CharLimit = 1
	m.inputs[formFieldRating].Width = 4

	m.inputs[formFieldNotes].Placeholder = "Notes (optional)"
	m.inputs[formFieldNotes].SetValue(b.Notes)
	m.inputs[formFieldNotes].CharLimit = 500

	return m
}

func (m bookFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// collect validates the field values and builds the result.
func (m *bookFormModel) collect() bool {
	title := strings.TrimSpace(m.inputs[formFieldTitle].Value())
	author := strings.TrimSpace(m.inputs[formFieldAuthor].Value())
	if title == "" || author == "" {
		m.err = fmt.Errorf("title and author are required")
		return false
	}

	status := book.StatusToRead
	if v := strings.TrimSpace(m.inputs[formFieldStatus].Value()); v != "" {
		status = book.Status(v)
		if !status.Valid() {
			m.err = fmt.Errorf("status must be one of: To Read, Reading, Completed")
			return false
		}
	}

	pages := 0
	if v := m.inputs[formFieldPages].Value(); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			m.err = fmt.Errorf("pages must be a positive number")
			return false
		}
		pages = n
	}

	rating := 0
	if v := m.inputs[formFieldRating].Value(); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			m.err = fmt.Errorf("rating must be between 1 and 5")
			return false
		}
		rating = n
	}

	m.result = &BookFormData{
		Title:     title,
		Author:    author,
		Status:    status,
		Genre:     strings.TrimSpace(m.inputs[formFieldGenre].Value()),
		PageCount: pages,
		Rating:    rating,
		Notes:     strings.TrimSpace(m.inputs[formFieldNotes].Value()),
	}
	return true
}

func (m bookFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			// Enter on any field but the last moves on; on the last it submits.
			if m.focused < formFieldCount-1 {
				return m.moveFocus(1)
			}
			m.err = nil
			if m.collect() {
				return m, tea.Quit
			}
			return m, nil

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m bookFormModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focused += delta
	if m.focused < 0 {
		m.focused = len(m.inputs) - 1
	} else if m.focused >= len(m.inputs) {
		m.focused = 0
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := 0; i < len(m.inputs); i++ {
		if i == m.focused {
			cmds[i] = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *bookFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m bookFormModel) View() string {
	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 54
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder

	b.WriteString(StyleHeader.Render(m.heading))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	for i, label := range formLabels {
		if i == m.focused {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render("  Tab/↑↓ navigate · enter submit · esc cancel"))
	b.WriteString("\n")

	return outerStyle.Render(b.String())
}

// RunBookForm launches the interactive add/edit form.
// Returns the filled form data, or an error if canceled.
func RunBookForm(defaults BookFormDefaults) (*BookFormData, error) {
	p := tea.NewProgram(newBookForm(defaults), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}

	fm, ok := finalModel.(bookFormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	if fm.canceled {
		return nil, fmt.Errorf("canceled")
	}
	if fm.result == nil {
		return nil, fmt.Errorf("no data collected")
	}
	return fm.result, nil
}
