// Package config provides YAML-based configuration loading for the brick
// breaker and the notes widget.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the brick breaker.
type BreakoutConfig struct {
	Arena   BreakoutArena   `yaml:"arena"`
	Ball    BreakoutBall    `yaml:"ball"`
	Paddle  BreakoutPaddle  `yaml:"paddle"`
	Bricks  BreakoutBricks  `yaml:"bricks"`
	Palette BreakoutPalette `yaml:"palette"`
	Text    BreakoutText    `yaml:"text"`
	Input   BreakoutInput   `yaml:"input"`
}

// BreakoutArena is the logical play field size.
type BreakoutArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines the ball's start state. The ball starts centered
// horizontally, StartOffsetY above the bottom edge.
type BreakoutBall struct {
	Radius       float64 `yaml:"radius"`
	DX           float64 `yaml:"dx"`
	DY           float64 `yaml:"dy"`
	StartOffsetY float64 `yaml:"start_offset_y"`
}

// BreakoutPaddle defines paddle geometry and speed (units per tick).
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BreakoutBricks defines the fixed brick grid.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// BreakoutPalette holds hex colors for each scene element.
type BreakoutPalette struct {
	Ball   string `yaml:"ball"`
	Paddle string `yaml:"paddle"`
	Brick  string `yaml:"brick"`
	Text   string `yaml:"text"`
}

// BreakoutText holds HUD strings and font settings.
type BreakoutText struct {
	FontFamily  string `yaml:"font_family"`
	ScoreSize   int    `yaml:"score_size"`
	PromptSize  int    `yaml:"prompt_size"`
	Prompt      string `yaml:"prompt"`
	WonMessage  string `yaml:"won_message"`
	LostMessage string `yaml:"lost_message"`
}

// BreakoutInput tunes the terminal key-hold emulation. Terminals report
// presses only, so a key counts as released once it stops repeating.
// FirstRepeatMS bounds how far a single tap moves the paddle. When it is
// shorter than the OS repeat delay a held key nudges, pauses, then moves
// steadily, like a text cursor.
type BreakoutInput struct {
	FirstRepeatMS int `yaml:"first_repeat_ms"` // Wait after the initial press
	RepeatMS      int `yaml:"repeat_ms"`       // Wait after an auto-repeat
}

// NotesConfig contains configuration for the notes widget.
type NotesConfig struct {
	StorageKey string `yaml:"storage_key"`
	ListLimit  int    `yaml:"list_limit"` // Max notes shown in views, 0 = all
}

// BrickCount returns the number of bricks in the grid.
func (c BreakoutConfig) BrickCount() int {
	return c.Bricks.Rows * c.Bricks.Columns
}

// Validate reports every problem that would make the game unplayable.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Ball.DX == 0 && c.Ball.DY == 0 {
		errs = append(errs, errors.New("ball velocity must be non-zero"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("paddle width must be in (0, %v], got %v", c.Arena.Width, c.Paddle.Width))
	}
	if c.Paddle.Height <= 0 || c.Paddle.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddle height must be positive and speed non-negative, got %v/%v", c.Paddle.Height, c.Paddle.Speed))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	} else {
		// The last column may overhang the right wall;
		// every brick must at least start inside the arena.
		b := c.Bricks
		lastX := b.OffsetLeft + float64(b.Columns-1)*(b.Width+b.Padding)
		lastY := b.OffsetTop + float64(b.Rows-1)*(b.Height+b.Padding)
		if b.Width <= 0 || b.Height <= 0 || lastX >= c.Arena.Width || lastY >= c.Arena.Height {
			errs = append(errs, fmt.Errorf("brick grid does not fit the arena (last brick at %v,%v)", lastX, lastY))
		}
	}
	if c.Input.FirstRepeatMS <= 0 || c.Input.RepeatMS <= 0 {
		errs = append(errs, errors.New("input repeat timeouts must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks the notes configuration.
func (c NotesConfig) Validate() error {
	if c.StorageKey == "" {
		return errors.New("config: invalid notes config: storage_key is empty")
	}
	if c.ListLimit < 0 {
		return fmt.Errorf("config: invalid notes config: list_limit must be >= 0, got %d", c.ListLimit)
	}
	return nil
}
