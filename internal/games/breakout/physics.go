package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// MovePaddle moves the paddle one tick in the held direction, clamped to
// [0, arenaW-width]. Right wins when both keys are held.
func MovePaddle(p Paddle, in Sampler, arenaW float64) Paddle {
	switch {
	case in.RightHeld:
		p.X += p.Speed
	case in.LeftHeld:
		p.X -= p.Speed
	default:
		return p
	}
	p.X = core.ClampF(p.X, 0, arenaW-p.Width)
	return p
}

// Propose returns the ball center after one tick of Euler integration.
func Propose(b Ball) core.Vec {
	return b.Pos.Add(b.Vel)
}

// Speed returns the magnitude of the ball velocity.
func Speed(b Ball) float64 {
	return math.Hypot(b.Vel.X, b.Vel.Y)
}
