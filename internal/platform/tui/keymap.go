package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Control is a host command that never reaches the simulation.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlBack
	ControlRestart
)

// KeyMapper translates Bubble Tea key messages to game keys and host
// controls. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapControl returns the host command bound to msg, if any.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "b", "esc":
		return ControlBack
	case "r":
		return ControlRestart
	}
	return ControlNone
}

// GameKey returns the logical key name the simulation understands.
// Arrow keys map to "ArrowLeft"/"ArrowRight"; a/d and h/l map to the
// plain "Left"/"Right" names.
func (km *KeyMapper) GameKey(msg tea.KeyMsg) (string, bool) {
	switch msg.String() {
	case "left":
		return "ArrowLeft", true
	case "right":
		return "ArrowRight", true
	case "a", "h":
		return "Left", true
	case "d", "l":
		return "Right", true
	}
	return "", false
}

// IsActivate reports whether msg is the keyboard start gesture.
func (km *KeyMapper) IsActivate(msg tea.KeyMsg) bool {
	switch msg.String() {
	case " ", "enter":
		return true
	}
	return false
}

// IsActivateMouse reports whether msg is a left-button click.
func (km *KeyMapper) IsActivateMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
