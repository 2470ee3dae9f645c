package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Phase is the top-level lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Scene drawn, waiting for the start gesture
	PhaseRunning                 // Ball in play
	PhaseWon                     // Every brick destroyed
	PhaseLost                    // Ball passed the paddle plane
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Ball is the ball state. Pos is the center.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec // Displacement per tick
	Radius float64
}

// Paddle is the player's paddle. It sits on the bottom edge of the arena.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Speed  float64 // Units per tick
}

// BrickStatus is the one-way brick lifecycle.
type BrickStatus int

const (
	BrickActive BrickStatus = iota
	BrickDestroyed
)

// Brick is one cell of the grid. X and Y are fixed when the session is built.
type Brick struct {
	X, Y   float64
	Status BrickStatus
}

// Active reports whether the brick can still be hit.
func (b Brick) Active() bool {
	return b.Status == BrickActive
}

// Layout holds the fixed dimensions of a session.
type Layout struct {
	ArenaW, ArenaH float64
	BrickW, BrickH float64
	Columns, Rows  int
}

// Session is the complete state of one game. Sessions are values: Tick
// returns a new Session and never mutates its argument.
type Session struct {
	Layout Layout
	Ball   Ball
	Paddle Paddle
	Bricks []Brick // Column-major: index = col*Rows + row
	Score  int
	Phase  Phase
	Tick   int // Ticks simulated while running
}

// NewSession builds a fresh NotStarted session from cfg. Brick positions
// are computed here, once, from their grid indices.
func NewSession(cfg config.BreakoutConfig) Session {
	b := cfg.Bricks
	s := Session{
		Layout: Layout{
			ArenaW:  cfg.Arena.Width,
			ArenaH:  cfg.Arena.Height,
			BrickW:  b.Width,
			BrickH:  b.Height,
			Columns: b.Columns,
			Rows:    b.Rows,
		},
		Ball: Ball{
			Pos:    core.Vec{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height - cfg.Ball.StartOffsetY},
			Vel:    core.Vec{X: cfg.Ball.DX, Y: cfg.Ball.DY},
			Radius: cfg.Ball.Radius,
		},
		Paddle: Paddle{
			X:      (cfg.Arena.Width - cfg.Paddle.Width) / 2,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Speed:  cfg.Paddle.Speed,
		},
		Bricks: make([]Brick, b.Columns*b.Rows),
		Phase:  PhaseNotStarted,
	}

	for col := range b.Columns {
		for row := range b.Rows {
			s.Bricks[s.BrickIndex(col, row)] = Brick{
				X: float64(col)*(b.Width+b.Padding) + b.OffsetLeft,
				Y: float64(row)*(b.Height+b.Padding) + b.OffsetTop,
			}
		}
	}
	return s
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	c := s
	c.Bricks = make([]Brick, len(s.Bricks))
	copy(c.Bricks, s.Bricks)
	return c
}

// TotalBricks returns rows x columns.
func (s Session) TotalBricks() int {
	return s.Layout.Columns * s.Layout.Rows
}

// BrickIndex maps grid coordinates to an index into Bricks.
func (s Session) BrickIndex(col, row int) int {
	return col*s.Layout.Rows + row
}

// PaddleRect returns the paddle bounds; the paddle sits on the arena floor.
func (s Session) PaddleRect() core.Rect {
	return core.NewRect(s.Paddle.X, s.Layout.ArenaH-s.Paddle.Height, s.Paddle.Width, s.Paddle.Height)
}

// BrickRect returns the bounds of a brick.
func (s Session) BrickRect(b Brick) core.Rect {
	return core.NewRect(b.X, b.Y, s.Layout.BrickW, s.Layout.BrickH)
}
