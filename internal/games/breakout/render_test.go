package breakout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

type drawOp struct {
	kind       string
	x, y, w, h float64
	text       string
	font       core.Font
	color      core.Color
}

// recordingSurface logs every draw call.
type recordingSurface struct {
	w, h float64
	ops  []drawOp
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, drawOp{kind: "clear", x: x, y: y, w: w, h: h})
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (r *recordingSurface) FillCircle(x, y, radius float64, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "circle", x: x, y: y, w: radius, color: c})
}

func (r *recordingSurface) FillText(text string, x, y float64, font core.Font, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "text", x: x, y: y, text: text, font: font, color: c})
}

func (r *recordingSurface) count(kind string, color core.Color) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind && op.color == color {
			n++
		}
	}
	return n
}

func (r *recordingSurface) texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

func renderSession(t *testing.T, s Session) (*recordingSurface, Theme) {
	t.Helper()
	theme := ThemeFromConfig(config.DefaultBreakoutConfig())
	surf := &recordingSurface{w: s.Layout.ArenaW, h: s.Layout.ArenaH}
	Render(s, surf, theme)
	require.NotEmpty(t, surf.ops)
	return surf, theme
}

func TestRenderNotStarted(t *testing.T) {
	s := NewSession(config.DefaultBreakoutConfig())
	surf, theme := renderSession(t, s)

	assert.Equal(t, drawOp{kind: "clear", w: 480, h: 320}, surf.ops[0])
	assert.Equal(t, 40, surf.count("rect", theme.Brick))
	assert.Equal(t, []string{"Score: 0", "Click to Start"}, surf.texts())

	last := surf.ops[len(surf.ops)-1]
	assert.Equal(t, 240.0, last.x)
	assert.Equal(t, 160.0, last.y)
	assert.Equal(t, core.AlignCenter, last.font.Align)
	assert.Equal(t, 18, last.font.Size)
}

func TestRenderRunning(t *testing.T) {
	s := runningSession()
	s.Bricks[3].Status = BrickDestroyed
	s.Bricks[17].Status = BrickDestroyed
	s.Score = 2

	surf, theme := renderSession(t, s)

	assert.Equal(t, 38, surf.count("rect", theme.Brick))
	for _, op := range surf.ops {
		if op.kind == "rect" && op.color == theme.Brick {
			assert.False(t, op.x == s.Bricks[3].X && op.y == s.Bricks[3].Y, "destroyed brick drawn")
		}
	}
	assert.Equal(t, []string{fmt.Sprintf("Score: %d", 2)}, surf.texts(), "prompt only shows before start")
}

func TestRenderPaddleAndBall(t *testing.T) {
	s := runningSession()
	s.Paddle.X = 100
	s.Ball.Pos = core.Vec{X: 55, Y: 77}

	surf, theme := renderSession(t, s)

	var paddle, ball *drawOp
	for i := range surf.ops {
		switch {
		case surf.ops[i].kind == "rect" && surf.ops[i].color == theme.Paddle:
			paddle = &surf.ops[i]
		case surf.ops[i].kind == "circle":
			ball = &surf.ops[i]
		}
	}
	require.NotNil(t, paddle)
	require.NotNil(t, ball)

	assert.Equal(t, drawOp{kind: "rect", x: 100, y: 310, w: 75, h: 10, color: theme.Paddle}, *paddle)
	assert.Equal(t, drawOp{kind: "circle", x: 55, y: 77, w: 10, color: theme.Ball}, *ball)
}

func TestRenderScoreText(t *testing.T) {
	s := runningSession()
	s.Score = 12

	surf, theme := renderSession(t, s)

	var score drawOp
	for _, op := range surf.ops {
		if op.kind == "text" {
			score = op
		}
	}
	assert.Equal(t, "Score: 12", score.text)
	assert.Equal(t, 8.0, score.x)
	assert.Equal(t, 20.0, score.y)
	assert.Equal(t, core.AlignLeft, score.font.Align)
	assert.Equal(t, 16, score.font.Size)
	assert.Equal(t, theme.Text, score.color)
}

func TestRenderLeavesSessionUntouched(t *testing.T) {
	s := runningSession()
	before := s.Snapshot().Hash()
	renderSession(t, s)
	assert.Equal(t, before, s.Snapshot().Hash())
}
