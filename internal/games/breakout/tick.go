package breakout

// Tick advances a session by one step and returns the new session. The
// argument is left untouched.
//
// NotStarted sessions wait for the start latch; Won and Lost sessions are
// returned unchanged. A running tick moves the paddle, resolves walls and
// paddle against the proposed ball position, resolves bricks against the
// current center, then commits the ball position.
func Tick(s Session, in Sampler) Session {
	switch {
	case s.Phase.Terminal():
		return s
	case s.Phase == PhaseNotStarted && !in.Started:
		return s
	}

	next := s.Clone()
	next.Phase = PhaseRunning
	next.step(in)
	return next
}

func (s *Session) step(in Sampler) {
	s.Tick++
	s.Paddle = MovePaddle(s.Paddle, in, s.Layout.ArenaW)

	if !ResolveBounds(s, Propose(s.Ball)) {
		return
	}

	ResolveBricks(s)
	if s.Phase == PhaseWon {
		return
	}

	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel)
}
