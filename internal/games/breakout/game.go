package breakout

import (
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "breakout"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform's registry.Game interface. It owns
// the sampler so input survives between ticks.
type Game struct {
	cfg     config.BreakoutConfig
	theme   Theme
	session Session
	input   Sampler
}

// New creates a new brick breaker instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// Reset discards all state and starts a fresh NotStarted session.
func (g *Game) Reset(_ core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}

	g.cfg = cfg
	g.theme = ThemeFromConfig(cfg)
	g.session = NewSession(cfg)
	g.input = Sampler{}
}

// Step applies the frame's input events and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.input.Apply(in)
	g.session = Tick(g.session, g.input)
	return core.StepResult{State: g.State()}
}

// Render draws the current session.
func (g *Game) Render(dst core.Surface) {
	Render(g.session, dst, g.theme)
}

// Arena returns the logical drawing size.
func (g *Game) Arena() (float64, float64) {
	return g.cfg.Arena.Width, g.cfg.Arena.Height
}

// HoldTimeouts returns how long a key counts as held after its initial
// press and after each auto-repeat.
func (g *Game) HoldTimeouts() (first, repeat time.Duration) {
	return time.Duration(g.cfg.Input.FirstRepeatMS) * time.Millisecond,
		time.Duration(g.cfg.Input.RepeatMS) * time.Millisecond
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	return g.session.Clone()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score: g.session.Score,
		Phase: g.session.Phase.String(),
		Ticks: g.session.Tick,
	}
	switch g.session.Phase {
	case PhaseWon:
		st.Outcome = core.OutcomeWon
		st.Notice = g.cfg.Text.WonMessage
	case PhaseLost:
		st.Outcome = core.OutcomeLost
		st.Notice = g.cfg.Text.LostMessage
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
