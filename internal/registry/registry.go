// Package registry maps game IDs to factories. Games register themselves in
// init() so the CLI and the SSH server can create them by name without
// importing each game's API.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a game and the platform.
// Games hold pure simulation state and never import Bubble Tea; the platform
// owns input mapping, the frame clock and terminal output.
type Game interface {
	// ID returns the registry identifier (e.g. "tetris").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset puts the game in its initial state for the given screen size and
	// seed. Called once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame, applying the frame's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the status the platform reacts to (game over, pause).
	State() core.GameState
}

// Resizer is implemented by games that handle a terminal resize themselves
// instead of being reset by the platform.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
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
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
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
