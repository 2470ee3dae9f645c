package breakout

import "math"

// Snapshot contains the complete session state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Phase   int
	Score   int
	PaddleX float64

	BallX, BallY   float64
	BallDX, BallDY float64

	// Brick states, column-major, 1 = active
	BrickData []int
}

// Snapshot returns the session state as a Snapshot.
func (s Session) Snapshot() Snapshot {
	bricks := make([]int, len(s.Bricks))
	for i, b := range s.Bricks {
		if b.Active() {
			bricks[i] = 1
		}
	}

	return Snapshot{
		Tick:      uint64(s.Tick), //#nosec G115 -- tick count is always positive
		Phase:     int(s.Phase),
		Score:     s.Score,
		PaddleX:   s.Paddle.X,
		BallX:     s.Ball.Pos.X,
		BallY:     s.Ball.Pos.Y,
		BallDX:    s.Ball.Vel.X,
		BallDY:    s.Ball.Vel.Y,
		BrickData: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
