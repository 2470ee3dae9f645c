package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// ResolveBounds applies wall and paddle bounces for the proposed position.
// Each check may flip one velocity component. A ball that crosses the
// paddle plane outside the paddle span ends the session as Lost, and
// ResolveBounds returns false.
func ResolveBounds(s *Session, next core.Vec) bool {
	b := &s.Ball
	w, h := s.Layout.ArenaW, s.Layout.ArenaH

	if next.X > w-b.Radius || next.X < b.Radius {
		b.Vel.X = -b.Vel.X
	}

	switch {
	case next.Y < b.Radius:
		b.Vel.Y = -b.Vel.Y
	case next.Y > h-b.Radius:
		if paddle := s.PaddleRect(); paddle.Contains(b.Pos.X, paddle.Y) {
			b.Vel.Y = -b.Vel.Y
		} else {
			s.Phase = PhaseLost
			return false
		}
	}
	return true
}

// ResolveBricks destroys the first active brick, in column-major scan
// order, whose rectangle strictly contains the ball center. At most one
// brick falls per tick. Returns the brick index or -1.
func ResolveBricks(s *Session) int {
	for i := range s.Bricks {
		brick := &s.Bricks[i]
		if !brick.Active() {
			continue
		}
		if !s.BrickRect(*brick).ContainsStrict(s.Ball.Pos.X, s.Ball.Pos.Y) {
			continue
		}

		s.Ball.Vel.Y = -s.Ball.Vel.Y
		brick.Status = BrickDestroyed
		s.Score++
		if s.Score == s.TotalBricks() {
			s.Phase = PhaseWon
		}
		return i
	}
	return -1
}
