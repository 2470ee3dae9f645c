package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

const gameHelp = "←/→ move · space/click start · r restart · b back · q quit"

// GameModel drives one game: it turns key and mouse messages into input
// frames, steps the game on every tick and draws it onto the terminal.
// Ticks stop once the game ends; r starts a fresh session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *core.Canvas
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	holds      *HoldTracker
	gameState  core.GameState
	keyMapper  *KeyMapper
	runID      uuid.UUID
	now        func() time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel resets game and wraps it in a model. store and logger may
// be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		now:        time.Now,
	}
	m.reset()
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// reset starts a fresh session under a new run id.
func (m *GameModel) reset() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.holds = NewHoldTracker(m.game.HoldTimeouts())
	m.inputFrame.Clear()
	m.runID = uuid.New()
	m.scoreSaved = false
	m.logger.Debug("session reset", "game", m.game.ID(), "run", m.runID)
}

// resize fits the arena to the terminal, keeping one row for the help line.
func (m *GameModel) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	w, h := m.game.Arena()
	if m.screen == nil {
		m.screen = core.NewScreen(max(width, 1), max(height-1, 1))
	} else {
		m.screen.Resize(max(width, 1), max(height-1, 1))
	}
	m.canvas = core.NewCanvas(m.screen, w, h)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.runID)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.keyMapper.IsActivateMouse(msg) {
			m.inputFrame.Activate()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Run != m.runID {
			return m, nil
		}
		return m.handleTick(msg.At)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapControl(msg) {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlBack:
		m.backToMenu = true
		return m, nil
	case ControlRestart:
		if !m.gameState.GameOver() {
			return m, nil
		}
		m.reset()
		return m, tickCmd(m.config.TickRate, m.runID)
	}

	if m.keyMapper.IsActivate(msg) {
		m.inputFrame.Activate()
		return m, nil
	}

	if key, ok := m.keyMapper.GameKey(msg); ok {
		pressed, released := m.holds.Press(key, m.now())
		for _, k := range released {
			m.inputFrame.Release(k)
		}
		if pressed {
			m.inputFrame.Press(key)
		}
	}
	return m, nil
}

// handleTick steps the game once and re-arms the timer while it runs.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver() {
		return m, nil
	}

	for _, k := range m.holds.Expire(now) {
		m.inputFrame.Release(k)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver() {
		m.finish()
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.runID)
}

// finish records the run once.
func (m *GameModel) finish() {
	st := m.gameState
	m.logger.Info("session ended",
		"game", m.game.ID(),
		"run", m.runID,
		"outcome", st.Outcome,
		"score", st.Score,
		"ticks", st.Ticks,
	)
	if m.scoreSaved || st.Score <= 0 || m.store == nil {
		return
	}
	m.scoreSaved = true

	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Score:   st.Score,
		Outcome: string(st.Outcome),
		Ticks:   st.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	if m.gameState.GameOver() {
		drawNotice(m.screen, m.gameState.Notice, "r: play again   b: back   q: quit")
	}
	return RenderScreen(m.screen) + "\n" + centerText(gameHelp, m.config.ScreenW)
}

// drawNotice draws a centered modal box with a message and a hint line.
func drawNotice(s *core.Screen, message, hint string) {
	w := max(len([]rune(message)), len([]rune(hint))) + 4
	h := 5
	x := core.Clamp((s.Width()-w)/2, 0, s.Width())
	y := core.Clamp((s.Height()-h)/2, 0, s.Height())
	s.DrawBox(x, y, w, h, core.ColorDefault)
	s.DrawTextCentered(y+1, message, core.ColorDefault)
	s.DrawTextCentered(y+3, hint, core.ColorDefault)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunID returns the id under which the current session will be recorded.
func (m GameModel) RunID() uuid.UUID {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame plays a single game full screen until the player quits or backs
// out.
func RunGame(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		gameOnly{NewGameModel(game, store, logger, cfg)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// gameOnly quits the program when the game asks to go back.
type gameOnly struct {
	GameModel
}

func (g gameOnly) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := g.GameModel.Update(msg)
	g.GameModel = next.(GameModel)
	if g.BackToMenu() {
		return g, tea.Quit
	}
	return g, cmd
}

func (g gameOnly) View() string {
	if g.BackToMenu() {
		return ""
	}
	return g.GameModel.View()
}
