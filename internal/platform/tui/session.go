package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/notes"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// SessionOptions holds what a launcher session needs besides its size.
type SessionOptions struct {
	GameID string
	Store  *storage.Store // nil disables scores and notes

	NotesKey   string
	NotesLimit int

	Logger *log.Logger
}

// SessionModel manages the launcher flow: menu -> game/notes/scores -> menu.
// It is the top-level model for the menu command and for SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	config   core.RuntimeConfig
	logger   *log.Logger
	menu     MenuModel
	active   Destination
	game     *GameModel
	notes    *NotesModel
	scores   *ScoreboardModel
	status   string
	quitting bool
}

// NewSessionModel creates a session that opens on the launcher.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		opts:   opts,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case GoPlay:
		return m.updateGame(msg)
	case GoNotes:
		return m.updateNotes(msg)
	case GoScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Selected() {
	case GoQuit:
		m.quitting = true
		return m, tea.Quit

	case GoPlay:
		game, err := registry.Create(m.opts.GameID)
		if err != nil {
			m.logger.Error("cannot create game", "error", err)
			return m.backToMenu(err.Error())
		}
		gm := NewGameModel(game, m.opts.Store, m.logger, m.config)
		m.game = &gm
		m.active = GoPlay
		return m, gm.Init()

	case GoNotes:
		if m.opts.Store == nil {
			return m.backToMenu("Notes need a database; see --db.")
		}
		book, err := notes.Open(m.opts.Store, m.opts.NotesKey, notes.WithLogger(m.logger))
		if err != nil {
			m.logger.Error("cannot open notes", "error", err)
			return m.backToMenu(err.Error())
		}
		nm := NewNotesModel(book, m.opts.NotesLimit, m.logger)
		nextNotes, _ := nm.Update(tea.WindowSizeMsg{Width: m.config.ScreenW, Height: m.config.ScreenH})
		nm = nextNotes.(NotesModel)
		m.notes = &nm
		m.active = GoNotes
		return m, nm.Init()

	case GoScores:
		sm := NewScoreboardModel(m.opts.Store, m.opts.GameID, gameTitle(m.opts.GameID), m.config.ScreenW, m.config.ScreenH)
		m.scores = &sm
		m.active = GoScores
		return m, sm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	switch {
	case gm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case gm.BackToMenu():
		return m.backToMenu("")
	}
	return m, cmd
}

// updateNotes handles updates when on the notes screen.
func (m SessionModel) updateNotes(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.notes.Update(msg)
	nm := next.(NotesModel)
	m.notes = &nm

	switch {
	case nm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case nm.IsGoingBack():
		return m.backToMenu("")
	}
	return m, cmd
}

// updateScores handles updates when on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sm := next.(ScoreboardModel)
	m.scores = &sm

	switch {
	case sm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sm.IsGoingBack():
		return m.backToMenu("")
	}
	return m, cmd
}

// backToMenu drops the active screen and shows the launcher with an
// optional status line.
func (m SessionModel) backToMenu(status string) (tea.Model, tea.Cmd) {
	m.active = GoNone
	m.game, m.notes, m.scores = nil, nil, nil
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
	m.status = status
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case GoPlay:
		return m.game.View()
	case GoNotes:
		return m.notes.View()
	case GoScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(notesErrStyle.Render(m.status), m.config.ScreenW) + "\n"
	}
	return view
}

// gameTitle returns the registered title of id, or id itself.
func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

// RunSession runs the launcher full screen.
func RunSession(opts SessionOptions, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(opts, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
