// Package registry provides a global registry of word packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load word lists without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownPack is returned when a pack ID has not been registered.
var ErrUnknownPack = errors.New("registry: unknown pack")

// Loader produces the words of a pack, one word per level.
type Loader func() ([]string, error)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

type entry struct {
	title string
	load  Loader
}

var (
	packs = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a word pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, load Loader) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}
	if load == nil {
		panic(fmt.Sprintf("registry: pack %q has nil loader", id))
	}

	packs[id] = entry{title: title, load: load}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, e := range packs {
		result = append(result, PackInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load returns the words of the pack with the given ID.
// Returns an error wrapping ErrUnknownPack if the ID is not registered.
func Load(id string) ([]string, error) {
	mu.RLock()
	e, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPack, id)
	}

	words, err := e.load()
	if err != nil {
		return nil, fmt.Errorf("registry: load pack %q: %w", id, err)
	}
	return words, nil
}

// Title returns the display title of a pack, or the ID itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := packs[id]; ok {
		return e.title
	}
	return id
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
