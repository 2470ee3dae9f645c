package tui

import (
	"reflect"
	"testing"
	"time"
)

var holdT0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := NewHoldTracker(550*time.Millisecond, 120*time.Millisecond)

	pressed, released := h.Press("ArrowLeft", holdT0)
	if !pressed || released != nil {
		t.Fatalf("first press = %v, %v", pressed, released)
	}

	pressed, _ = h.Press("ArrowLeft", holdT0.Add(500*time.Millisecond))
	if pressed {
		t.Error("auto-repeat should not count as a new press")
	}

	// Repeat deadline is 120ms after the last repeat.
	if got := h.Expire(holdT0.Add(600 * time.Millisecond)); len(got) != 0 {
		t.Errorf("expired too early: %v", got)
	}
	if got := h.Expire(holdT0.Add(621 * time.Millisecond)); !reflect.DeepEqual(got, []string{"ArrowLeft"}) {
		t.Errorf("Expire = %v, expected [ArrowLeft]", got)
	}
	if h.Held("ArrowLeft") {
		t.Error("key should no longer be held")
	}
}

func TestHoldTrackerFirstDelay(t *testing.T) {
	h := NewHoldTracker(550*time.Millisecond, 120*time.Millisecond)
	h.Press("Right", holdT0)

	if got := h.Expire(holdT0.Add(550 * time.Millisecond)); len(got) != 0 {
		t.Errorf("key released before the first-repeat delay: %v", got)
	}
	if got := h.Expire(holdT0.Add(551 * time.Millisecond)); len(got) != 1 {
		t.Errorf("key should be released after the first-repeat delay, got %v", got)
	}
}

func TestHoldTrackerNewKeyReleasesOthers(t *testing.T) {
	h := NewHoldTracker(time.Second, time.Second)
	h.Press("ArrowLeft", holdT0)

	pressed, released := h.Press("ArrowRight", holdT0.Add(10*time.Millisecond))
	if !pressed {
		t.Error("different key should be a new press")
	}
	if !reflect.DeepEqual(released, []string{"ArrowLeft"}) {
		t.Errorf("released = %v, expected [ArrowLeft]", released)
	}
	if h.Held("ArrowLeft") || !h.Held("ArrowRight") {
		t.Error("only ArrowRight should be held")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second, time.Second)
	h.Press("Left", holdT0)
	h.Reset()

	if h.Held("Left") {
		t.Error("Reset should forget held keys")
	}
	if pressed, _ := h.Press("Left", holdT0); !pressed {
		t.Error("press after Reset should be new")
	}
}
