package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Score overlay anchor, in arena units.
const (
	scoreX = 8
	scoreY = 20
)

// Theme holds the colors, fonts and strings used to draw a session.
type Theme struct {
	Ball, Paddle, Brick, Text core.Color
	ScoreFont                 core.Font
	PromptFont                core.Font
	Prompt                    string
}

// ThemeFromConfig builds a Theme from the palette and text settings.
func ThemeFromConfig(cfg config.BreakoutConfig) Theme {
	return Theme{
		Ball:       core.Color(cfg.Palette.Ball),
		Paddle:     core.Color(cfg.Palette.Paddle),
		Brick:      core.Color(cfg.Palette.Brick),
		Text:       core.Color(cfg.Palette.Text),
		ScoreFont:  core.Font{Size: cfg.Text.ScoreSize, Family: cfg.Text.FontFamily, Align: core.AlignLeft},
		PromptFont: core.Font{Size: cfg.Text.PromptSize, Family: cfg.Text.FontFamily, Align: core.AlignCenter},
		Prompt:     cfg.Text.Prompt,
	}
}

// Render redraws the whole scene from s. It has no effect on s.
func Render(s Session, dst core.Surface, theme Theme) {
	w, h := dst.Size()
	dst.ClearRect(0, 0, w, h)

	for _, b := range s.Bricks {
		if !b.Active() {
			continue
		}
		dst.FillRect(b.X, b.Y, s.Layout.BrickW, s.Layout.BrickH, theme.Brick)
	}

	dst.FillCircle(s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Radius, theme.Ball)
	paddle := s.PaddleRect()
	dst.FillRect(paddle.X, paddle.Y, paddle.W, paddle.H, theme.Paddle)
	dst.FillText(fmt.Sprintf("Score: %d", s.Score), scoreX, scoreY, theme.ScoreFont, theme.Text)

	if s.Phase == PhaseNotStarted {
		dst.FillText(theme.Prompt, s.Layout.ArenaW/2, s.Layout.ArenaH/2, theme.PromptFont, theme.Text)
	}
}
