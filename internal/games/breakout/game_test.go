package breakout

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

var started = Sampler{Started: true}

func runningSession() Session {
	s := NewSession(config.DefaultBreakoutConfig())
	s.Phase = PhaseRunning
	return s
}

func TestNewSessionLayout(t *testing.T) {
	s := NewSession(config.DefaultBreakoutConfig())

	if s.Phase != PhaseNotStarted {
		t.Errorf("new session phase = %s, expected not_started", s.Phase)
	}
	if len(s.Bricks) != 40 || s.TotalBricks() != 40 {
		t.Fatalf("expected 40 bricks, got len=%d", len(s.Bricks))
	}
	for i, b := range s.Bricks {
		if !b.Active() {
			t.Errorf("brick %d starts destroyed", i)
		}
	}

	first := s.Bricks[s.BrickIndex(0, 0)]
	if first.X != 25 || first.Y != 30 {
		t.Errorf("brick (0,0) at (%v,%v), expected (25,30)", first.X, first.Y)
	}
	second := s.Bricks[s.BrickIndex(0, 1)]
	if second.X != 25 || second.Y != 60 {
		t.Errorf("brick (0,1) at (%v,%v), expected (25,60)", second.X, second.Y)
	}
	last := s.Bricks[s.BrickIndex(7, 4)]
	if last.X != 445 || last.Y != 150 {
		t.Errorf("brick (7,4) at (%v,%v), expected (445,150)", last.X, last.Y)
	}

	if s.Ball.Pos != (core.Vec{X: 240, Y: 290}) || s.Ball.Vel != (core.Vec{X: 2, Y: -2}) {
		t.Errorf("ball = %+v", s.Ball)
	}
	if s.Paddle.X != 202.5 {
		t.Errorf("paddle x = %v, expected 202.5", s.Paddle.X)
	}
}

func TestTickWaitsForStart(t *testing.T) {
	s := NewSession(config.DefaultBreakoutConfig())

	next := Tick(s, Sampler{RightHeld: true})
	if next.Phase != PhaseNotStarted {
		t.Errorf("phase = %s, expected not_started", next.Phase)
	}
	if next.Ball.Pos != s.Ball.Pos || next.Paddle.X != s.Paddle.X || next.Tick != 0 {
		t.Error("a not-started session must not simulate")
	}

	next = Tick(s, started)
	if next.Phase != PhaseRunning {
		t.Fatalf("phase = %s, expected running after start", next.Phase)
	}
	if next.Ball.Pos != (core.Vec{X: 242, Y: 288}) {
		t.Errorf("ball should move on the first running tick, got %+v", next.Ball.Pos)
	}
}

func TestTickPaddleBounce(t *testing.T) {
	s := runningSession()
	s.Ball.Pos = core.Vec{X: 240, Y: 310}
	s.Ball.Vel = core.Vec{X: 2, Y: 2}
	s.Paddle.X = 202 // spans [202, 277]

	next := Tick(s, started)

	if next.Phase != PhaseRunning {
		t.Errorf("phase = %s, expected running", next.Phase)
	}
	if next.Ball.Vel.Y != -2 || next.Ball.Vel.X != 2 {
		t.Errorf("velocity = %+v, expected (2, -2)", next.Ball.Vel)
	}
	if next.Ball.Pos != (core.Vec{X: 242, Y: 308}) {
		t.Errorf("position = %+v, expected (242, 308)", next.Ball.Pos)
	}
}

func TestPaddleSpanIncludesEdges(t *testing.T) {
	tests := []struct {
		name    string
		paddleX float64
		bounce  bool
	}{
		{"left edge", 240, true},
		{"right edge", 165, true},
		{"just past right edge", 164.5, false},
		{"just past left edge", 240.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := runningSession()
			s.Ball.Pos = core.Vec{X: 240, Y: 310}
			s.Ball.Vel = core.Vec{X: 2, Y: 2}
			s.Paddle.X = tc.paddleX

			ok := ResolveBounds(&s, s.Ball.Pos.Add(s.Ball.Vel))
			if ok != tc.bounce {
				t.Errorf("ResolveBounds() = %v, expected %v", ok, tc.bounce)
			}
			if tc.bounce && s.Ball.Vel.Y != -2 {
				t.Errorf("velocity = %+v, expected upward bounce", s.Ball.Vel)
			}
			if !tc.bounce && s.Phase != PhaseLost {
				t.Errorf("phase = %s, expected lost", s.Phase)
			}
		})
	}
}

func TestTickLostWhenPaddleMisses(t *testing.T) {
	s := runningSession()
	s.Ball.Pos = core.Vec{X: 240, Y: 310}
	s.Ball.Vel = core.Vec{X: 2, Y: 2}
	s.Paddle.X = 0 // spans [0, 75]

	next := Tick(s, started)

	if next.Phase != PhaseLost {
		t.Fatalf("phase = %s, expected lost", next.Phase)
	}
	if next.Ball.Pos != (core.Vec{X: 240, Y: 310}) {
		t.Errorf("no position update expected on the losing tick, got %+v", next.Ball.Pos)
	}
}

func TestTickWonOnLastBrick(t *testing.T) {
	s := runningSession()
	for i := range s.Bricks {
		if i != 0 {
			s.Bricks[i].Status = BrickDestroyed
		}
	}
	s.Score = s.TotalBricks() - 1
	s.Ball.Pos = core.Vec{X: 40, Y: 35}
	s.Ball.Vel = core.Vec{X: 2, Y: -2}

	next := Tick(s, started)

	if next.Bricks[0].Active() {
		t.Error("last brick should be destroyed")
	}
	if next.Score != s.TotalBricks() {
		t.Errorf("score = %d, expected %d", next.Score, s.TotalBricks())
	}
	if next.Phase != PhaseWon {
		t.Errorf("phase = %s, expected won", next.Phase)
	}
}

func TestTickDoesNotMutateArgument(t *testing.T) {
	s := runningSession()
	s.Ball.Pos = core.Vec{X: 40, Y: 35}
	before := s.Snapshot()

	_ = Tick(s, started)

	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Tick mutated its input session")
	}
	if !s.Bricks[0].Active() {
		t.Error("Tick destroyed a brick in the caller's slice")
	}
}

func TestTerminalSessionsAreFrozen(t *testing.T) {
	for _, phase := range []Phase{PhaseWon, PhaseLost} {
		s := runningSession()
		s.Phase = phase
		s.Score = 7

		next := Tick(s, Sampler{Started: true, LeftHeld: true})
		if next.Phase != phase || next.Score != 7 || next.Ball.Pos != s.Ball.Pos || next.Paddle.X != s.Paddle.X {
			t.Errorf("%s session changed after Tick", phase)
		}
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec
		vel     core.Vec
		wantVel core.Vec
	}{
		{"right wall", core.Vec{X: 469, Y: 200}, core.Vec{X: 2, Y: 2}, core.Vec{X: -2, Y: 2}},
		{"left wall", core.Vec{X: 11, Y: 200}, core.Vec{X: -2, Y: 2}, core.Vec{X: 2, Y: 2}},
		{"top wall", core.Vec{X: 240, Y: 11}, core.Vec{X: 2, Y: -2}, core.Vec{X: 2, Y: 2}},
		{"top-left corner", core.Vec{X: 11, Y: 11}, core.Vec{X: -2, Y: -2}, core.Vec{X: 2, Y: 2}},
		{"open field", core.Vec{X: 240, Y: 200}, core.Vec{X: 2, Y: 2}, core.Vec{X: 2, Y: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := runningSession()
			s.Ball.Pos = tc.pos
			s.Ball.Vel = tc.vel

			next := Tick(s, started)
			if next.Ball.Vel != tc.wantVel {
				t.Errorf("velocity = %+v, expected %+v", next.Ball.Vel, tc.wantVel)
			}
			if next.Ball.Pos != tc.pos.Add(tc.wantVel) {
				t.Errorf("position = %+v, expected %+v", next.Ball.Pos, tc.pos.Add(tc.wantVel))
			}
		})
	}
}

func TestOneBrickPerTick(t *testing.T) {
	s := runningSession()
	// Stack brick 1 on top of brick 0 so the center lies in both.
	s.Bricks[1].X, s.Bricks[1].Y = s.Bricks[0].X, s.Bricks[0].Y
	s.Ball.Pos = core.Vec{X: 40, Y: 35}

	next := Tick(s, started)

	if next.Score != 1 {
		t.Errorf("score = %d, expected 1", next.Score)
	}
	if next.Bricks[0].Active() || !next.Bricks[1].Active() {
		t.Error("the first brick in scan order should win")
	}

	// The overlapping brick falls on a later tick once the ball is back inside.
	next.Ball.Pos = core.Vec{X: 40, Y: 35}
	next = Tick(next, started)
	if next.Score != 2 || next.Bricks[1].Active() {
		t.Errorf("second overlapping brick should fall next, score = %d", next.Score)
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	arenaW := 480.0
	p := Paddle{X: 2, Width: 75, Speed: 7}

	left := MovePaddle(p, Sampler{LeftHeld: true}, arenaW)
	if left.X != 0 {
		t.Errorf("paddle x = %v, expected clamp to 0", left.X)
	}

	p.X = 400
	right := MovePaddle(p, Sampler{RightHeld: true}, arenaW)
	if right.X != 405 {
		t.Errorf("paddle x = %v, expected clamp to 405", right.X)
	}

	p.X = 100
	both := MovePaddle(p, Sampler{LeftHeld: true, RightHeld: true}, arenaW)
	if both.X != 107 {
		t.Errorf("right should win when both keys are held, got %v", both.X)
	}

	idle := MovePaddle(p, Sampler{}, arenaW)
	if idle.X != 100 {
		t.Errorf("idle paddle moved to %v", idle.X)
	}
}

// trackingInput steers the paddle toward the ball with some noise.
func trackingInput(s Session, rng *rand.Rand) Sampler {
	in := Sampler{Started: true}
	center := s.Paddle.X + s.Paddle.Width/2
	switch {
	case rng.IntN(10) == 0:
		in.LeftHeld = rng.IntN(2) == 0
		in.RightHeld = !in.LeftHeld
	case center < s.Ball.Pos.X-5:
		in.RightHeld = true
	case center > s.Ball.Pos.X+5:
		in.LeftHeld = true
	}
	return in
}

func TestSimulationInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		s := NewSession(config.DefaultBreakoutConfig())
		speed := Speed(s.Ball)
		destroyed := make(map[int]bool)
		wonTransitions := 0

		for range 20000 {
			prev := s
			s = Tick(s, trackingInput(s, rng))

			if s.Paddle.X < 0 || s.Paddle.X > s.Layout.ArenaW-s.Paddle.Width {
				t.Fatalf("seed %d tick %d: paddle x %v out of bounds", seed, s.Tick, s.Paddle.X)
			}
			if got := Speed(s.Ball); math.Abs(got-speed) > 1e-12 {
				t.Fatalf("seed %d tick %d: speed changed %v -> %v", seed, s.Tick, speed, got)
			}
			if s.Score < prev.Score || s.Score-prev.Score > 1 {
				t.Fatalf("seed %d tick %d: score jumped %d -> %d", seed, s.Tick, prev.Score, s.Score)
			}
			for i, b := range s.Bricks {
				if !b.Active() {
					destroyed[i] = true
				} else if destroyed[i] {
					t.Fatalf("seed %d tick %d: brick %d came back", seed, s.Tick, i)
				}
			}
			if s.Score != len(destroyed) {
				t.Fatalf("seed %d tick %d: score %d != destroyed %d", seed, s.Tick, s.Score, len(destroyed))
			}
			if s.Phase == PhaseWon && prev.Phase != PhaseWon {
				wonTransitions++
			}
			if s.Phase.Terminal() {
				break
			}
		}

		if wonTransitions > 1 {
			t.Errorf("seed %d: %d won transitions", seed, wonTransitions)
		}
		if wonTransitions == 1 && s.Score != s.TotalBricks() {
			t.Errorf("seed %d: won with score %d", seed, s.Score)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputSequence[i].Activate()
		case i%40 == 15:
			inputSequence[i].Press("ArrowRight")
		case i%40 == 30:
			inputSequence[i].Release("ArrowRight")
			inputSequence[i].Press("Left")
		case i%40 == 38:
			inputSequence[i].Release("Left")
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			if result := g.Step(in); result.State.GameOver() {
				break
			}
		}
		return g.Session().Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick == 0 {
		t.Error("game never started")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Activate()
	in.Press("Right")
	for range 50 {
		g.Step(in)
		in.Clear()
	}
	if g.State().Phase != "running" {
		t.Fatalf("phase = %s, expected running", g.State().Phase)
	}

	g.Reset(core.DefaultConfig())

	st := g.State()
	if st.Score != 0 || st.Phase != "not_started" || st.Ticks != 0 || st.GameOver() {
		t.Errorf("Reset should restore a fresh session, got %+v", st)
	}
	if g.input != (Sampler{}) {
		t.Errorf("Reset should clear held keys and the start latch, got %+v", g.input)
	}
}

func TestGameStateNotice(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	g.session.Phase = PhaseLost
	st := g.State()
	if st.Outcome != core.OutcomeLost || st.Notice != "Game Over" {
		t.Errorf("lost state = %+v", st)
	}

	g.session.Phase = PhaseWon
	st = g.State()
	if st.Outcome != core.OutcomeWon || st.Notice != "Congratulations! You won!" {
		t.Errorf("won state = %+v", st)
	}
}

func TestSnapshotTracksDestroyedBricks(t *testing.T) {
	s := runningSession()
	s.Ball.Pos = core.Vec{X: 40, Y: 35}
	before := s.Snapshot()

	s = Tick(s, started)
	snap := s.Snapshot()

	if snap.BrickData[0] != 0 || before.BrickData[0] != 1 {
		t.Errorf("brick 0 state before=%d after=%d, expected 1 then 0", before.BrickData[0], snap.BrickData[0])
	}
	if snap.Score != 1 || snap.BallDY != 2 {
		t.Errorf("snapshot score=%d dy=%v, expected 1 and 2", snap.Score, snap.BallDY)
	}
	if snap.Hash() == before.Hash() {
		t.Error("hash should change after a brick falls")
	}
}
