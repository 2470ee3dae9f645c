package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Outcome is how a finished game ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int     // Current score
	Phase   string  // Lifecycle phase name, for display and logs
	Outcome Outcome // Set once the game has ended
	Ticks   int     // Simulation ticks run while in play
	Notice  string  // Session-end message for the player, empty while playing
}

// GameOver reports whether the game reached a terminal phase.
func (s GameState) GameOver() bool {
	return s.Outcome != OutcomeNone
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
