package core

// EventKind classifies a raw input notification from the host.
type EventKind int

const (
	EventPress    EventKind = iota // Key went down (or auto-repeated)
	EventRelease                   // Key went up
	EventActivate                  // Click/tap style activation gesture
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "Press"
	case EventRelease:
		return "Release"
	case EventActivate:
		return "Activate"
	default:
		return "Unknown"
	}
}

// InputEvent is a single host input notification. Key carries a logical key
// name ("ArrowLeft", "Right", ...) and is empty for activations.
type InputEvent struct {
	Kind EventKind
	Key  string
}

// InputFrame collects the events delivered by the host since the previous
// tick, in delivery order.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press queues a key press.
func (f *InputFrame) Press(key string) {
	f.Events = append(f.Events, InputEvent{Kind: EventPress, Key: key})
}

// Release queues a key release.
func (f *InputFrame) Release(key string) {
	f.Events = append(f.Events, InputEvent{Kind: EventRelease, Key: key})
}

// Activate queues an activation gesture.
func (f *InputFrame) Activate() {
	f.Events = append(f.Events, InputEvent{Kind: EventActivate})
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
