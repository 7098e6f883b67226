// Package registry keeps the global table of cartridge factories.
// Cartridges register themselves in init() functions, so the CLI and the
// hosts can discover and instantiate them without hardcoded imports.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// Cartridge is what a game supplies to the console: an update callback, a
// draw callback and a sprite table. Cartridges hold pure game logic; the
// engine owns timing, input latching and the pause menu.
type Cartridge interface {
	// ID returns a unique identifier (e.g., "flappy"), used on the CLI.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Sprites returns the sprite table rasterized into the sprite sheet.
	Sprites() core.SpriteTable

	// Reset initializes or restarts the game with the given config.
	Reset(cfg core.RuntimeConfig)

	// Update advances the game by one logical tick.
	Update(in core.Input)

	// Draw renders the current state. It runs once per rendered frame,
	// also while the engine is paused.
	Draw(dst *core.Screen)

	// State returns the current score and game-over flag.
	State() core.GameState
}

// Info describes a registered cartridge.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh cartridge instance.
type Factory func() Cartridge

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a cartridge factory. A duplicate ID panics; cartridges
// register from init, so it surfaces at startup.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: cartridge %q already registered", id))
	}
	entries[id] = entry{info: Info{ID: id, Title: f().Title()}, factory: f}
}

// List returns all registered cartridges sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]Info, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b Info) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create instantiates a cartridge by ID.
func Create(id string) (Cartridge, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown cartridge %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a cartridge with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
