package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// Sampler tracks directional key state and the one-shot start latch.
type Sampler struct {
	LeftHeld  bool
	RightHeld bool
	Started   bool // Latched by Activate, never cleared within a session
}

// direction maps a key name to -1 (left), +1 (right) or 0 (ignored).
// Each direction accepts a named key and its arrow-key alias.
func direction(key string) int {
	switch key {
	case "Left", "ArrowLeft":
		return -1
	case "Right", "ArrowRight":
		return 1
	}
	return 0
}

// Press marks a directional key as held.
func (s *Sampler) Press(key string) {
	s.set(key, true)
}

// Release marks a directional key as no longer held.
func (s *Sampler) Release(key string) {
	s.set(key, false)
}

func (s *Sampler) set(key string, held bool) {
	switch direction(key) {
	case -1:
		s.LeftHeld = held
	case 1:
		s.RightHeld = held
	}
}

// Activate latches the start trigger.
func (s *Sampler) Activate() {
	s.Started = true
}

// Apply replays a frame of host events in delivery order.
func (s *Sampler) Apply(frame core.InputFrame) {
	for _, ev := range frame.Events {
		switch ev.Kind {
		case core.EventPress:
			s.Press(ev.Key)
		case core.EventRelease:
			s.Release(ev.Key)
		case core.EventActivate:
			s.Activate()
		}
	}
}
