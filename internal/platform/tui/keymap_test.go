package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapping(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, "ArrowLeft", true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, "ArrowRight", true},
		{"a", runeKey("a"), "Left", true},
		{"h", runeKey("h"), "Left", true},
		{"d", runeKey("d"), "Right", true},
		{"l", runeKey("l"), "Right", true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, "", false},
		{"x", runeKey("x"), "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.GameKey(tc.msg)
			if got != tc.want || ok != tc.ok {
				t.Errorf("GameKey = %q, %v; expected %q, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestControlMapping(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want Control
	}{
		{runeKey("q"), ControlQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ControlQuit},
		{runeKey("b"), ControlBack},
		{tea.KeyMsg{Type: tea.KeyEsc}, ControlBack},
		{runeKey("r"), ControlRestart},
		{tea.KeyMsg{Type: tea.KeyLeft}, ControlNone},
	}

	for _, tc := range tests {
		if got := km.MapControl(tc.msg); got != tc.want {
			t.Errorf("MapControl(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestActivation(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsActivate(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}) {
		t.Error("space should activate")
	}
	if !km.IsActivate(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Error("enter should activate")
	}
	if km.IsActivate(runeKey("x")) {
		t.Error("x should not activate")
	}

	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.IsActivateMouse(click) {
		t.Error("left click should activate")
	}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.IsActivateMouse(release) {
		t.Error("mouse release should not activate")
	}
	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.IsActivateMouse(right) {
		t.Error("right click should not activate")
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
