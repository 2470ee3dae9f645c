// Package registry maps game IDs to factories. Game packages register
// themselves in init(), so hosts can create them by ID without importing
// their internals.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Game is what a host needs to drive a simulation.
// Implementations hold pure logic: no terminal, no timers, no I/O.
type Game interface {
	// ID returns the identifier used by the CLI and the score table.
	ID() string

	// Title returns a display name.
	Title() string

	// Reset discards all state and builds a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's input and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state onto dst.
	Render(dst core.Surface)

	// State reports score, phase and outcome.
	State() core.GameState

	// Arena returns the logical drawing size in surface units.
	Arena() (w, h float64)

	// HoldTimeouts returns how long a pressed key stays held without a
	// repeat, for hosts that never see key releases.
	HoldTimeouts() (first, repeat time.Duration)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a registered game.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
