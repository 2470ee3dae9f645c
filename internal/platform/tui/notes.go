package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/notes"
)

// NotesKeyMap defines the key bindings for the notes screen.
type NotesKeyMap struct {
	Save    key.Binding
	Newline key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k NotesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Newline, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k NotesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultNotesKeyMap returns default key bindings.
func DefaultNotesKeyMap() NotesKeyMap {
	return NotesKeyMap{
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save note"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "new line"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

var (
	notesTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d4a5a5"))
	noteTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e8d3d3"))
	noteTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	noteBoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6b4f4f")).
			Padding(0, 1)
	notesErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	notesHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NotesModel is the notes screen: an input area above the saved notes,
// newest first.
type NotesModel struct {
	book      *notes.Book
	limit     int
	input     textarea.Model
	help      help.Model
	keys      NotesKeyMap
	logger    *log.Logger
	err       error
	width     int
	quitting  bool
	goingBack bool
}

// NewNotesModel creates a notes screen over book. limit caps how many notes
// are listed; 0 lists all.
func NewNotesModel(book *notes.Book, limit int, logger *log.Logger) NotesModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultNotesKeyMap()

	ta := textarea.New()
	ta.Placeholder = "Write a note about your game..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline = keys.Newline
	ta.Focus()

	return NotesModel{
		book:   book,
		limit:  limit,
		input:  ta,
		help:   help.New(),
		keys:   keys,
		logger: logger,
	}
}

// Init starts the cursor blink.
func (m NotesModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the notes screen.
func (m NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(msg.Width-4, 10))
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// save adds the typed note. Blank input changes nothing.
func (m *NotesModel) save() {
	_, added, err := m.book.Add(m.input.Value())
	if err != nil {
		m.err = err
		m.logger.Error("could not save note", "error", err)
		return
	}
	if !added {
		return
	}
	m.err = nil
	m.input.Reset()
}

// View renders the notes screen.
func (m NotesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(notesTitleStyle.Render("Game Notes"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(notesErrStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	list := m.book.List()
	if m.limit > 0 && len(list) > m.limit {
		list = list[:m.limit]
	}
	if len(list) == 0 {
		b.WriteString(noteTimeStyle.Render("No notes yet."))
		b.WriteString("\n")
	}
	for _, n := range list {
		body := noteTextStyle.Render(n.Text) + "\n" + noteTimeStyle.Render(notes.FormatTimestamp(n.Timestamp))
		b.WriteString(noteBoxStyle.Render(body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(notesHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m NotesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m NotesModel) IsQuitting() bool {
	return m.quitting
}
