// Package registry provides a global registry of the minigames reachable
// from the title screen. Minigames register themselves in init() functions,
// so the title text and the CLI discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/block-games/internal/core"
)

// Minigame describes a game selectable from the title screen.
type Minigame struct {
	// ID is a unique identifier (e.g., "blocks"), used for score storage.
	ID string

	// Title is a human-readable name for display (e.g., "Falling Blocks").
	Title string

	// SelectKey is the title-screen key that starts the game.
	SelectKey core.Key
}

var (
	games = make(map[string]Minigame)
	mu    sync.RWMutex
)

// Register adds a minigame to the registry.
// Panics if a game with the same ID or select key is already registered.
func Register(g Minigame) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[g.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", g.ID))
	}
	for _, other := range games {
		if other.SelectKey == g.SelectKey {
			panic(fmt.Sprintf("registry: key %s already selects %q", g.SelectKey, other.ID))
		}
	}

	games[g.ID] = g
}

// List returns all registered minigames, sorted by select key.
func List() []Minigame {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Minigame, 0, len(games))
	for _, g := range games {
		result = append(result, g)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SelectKey < result[j].SelectKey
	})

	return result
}

// Get returns the minigame with the given ID.
func Get(id string) (Minigame, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := games[id]
	if !ok {
		return Minigame{}, fmt.Errorf("registry: unknown game %q", id)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
