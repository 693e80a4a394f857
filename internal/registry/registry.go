// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cozy-tetris/internal/core"
)

// Game is the interface every playable game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, RNG seed and the stored high score.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Returns the result of this tick including state and events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Paletted is implemented by games that draw with core.CustomColor cells.
// Palette returns hex colors indexed by core.Color.PaletteIndex.
type Paletted interface {
	Palette() []string
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting. The platform resets other games instead.
type Resizer interface {
	Resize(width, height int)
}

// Describer is implemented by games with a one-line description for menus.
type Describer interface {
	Description() string
}

// RoundEnder is implemented by games that can report the round in progress,
// so the platform can record it when the player leaves mid-round.
// ok is false when there is nothing worth recording.
type RoundEnder interface {
	EndRound() (ev core.Event, ok bool)
}

// Tuned is implemented by games that load their tuning from a config file.
// ConfigError reports why the file was rejected; the game then runs on
// built-in defaults. It is meaningful after Reset.
type Tuned interface {
	ConfigError() error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

type entry struct {
	factory Factory
	info    GameInfo
}

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Metadata comes from a throwaway instance.
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	games[id] = entry{factory: f, info: info}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, e := range games {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}

// unregister removes a game. Only used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(games, id)
}
