package tui

import (
	"sort"
	"time"
)

// HoldTracker turns a terminal's press/auto-repeat stream into press and
// release edges. Terminals never report key-up, so a key counts as released
// once no repeat arrives within its deadline: first after the initial
// press, repeat after each auto-repeat. Terminals only auto-repeat the most
// recent key, so a new key releases every other held key.
type HoldTracker struct {
	first    time.Duration
	repeat   time.Duration
	deadline map[string]time.Time
}

// NewHoldTracker creates a tracker with the given timeouts.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		first:    first,
		repeat:   repeat,
		deadline: make(map[string]time.Time),
	}
}

// Press records a key event at now. pressed is true for a new press and
// false for an auto-repeat of a held key. released lists the other keys
// this press ended.
func (h *HoldTracker) Press(key string, now time.Time) (pressed bool, released []string) {
	if _, held := h.deadline[key]; held {
		h.deadline[key] = now.Add(h.repeat)
		return false, nil
	}

	released = h.keys(func(string, time.Time) bool { return true })
	for _, k := range released {
		delete(h.deadline, k)
	}
	h.deadline[key] = now.Add(h.first)
	return true, released
}

// Expire releases and returns every key whose deadline is before now.
func (h *HoldTracker) Expire(now time.Time) []string {
	expired := h.keys(func(_ string, d time.Time) bool { return now.After(d) })
	for _, k := range expired {
		delete(h.deadline, k)
	}
	return expired
}

// Held reports whether key is currently held.
func (h *HoldTracker) Held(key string) bool {
	_, ok := h.deadline[key]
	return ok
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.deadline)
}

// keys returns matching keys in sorted order.
func (h *HoldTracker) keys(match func(string, time.Time) bool) []string {
	var out []string
	for k, d := range h.deadline {
		if match(k, d) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
