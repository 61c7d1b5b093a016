// Package maze provides a registry of named maze layouts.
// Built-in layouts register themselves in init(), and the platform looks
// them up by ID without knowing their shape.
package maze

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-chase/internal/chase"
)

// ErrUnknown is returned when a maze ID is not registered.
var ErrUnknown = errors.New("maze: unknown layout")

// Point is a tile coordinate.
type Point struct {
	Row int
	Col int
}

// Layout is a named maze with its default spawn tiles.
type Layout struct {
	// ID is the unique key used by the CLI and config files (e.g. "classic").
	ID string

	// Title is a human-readable name for menus.
	Title string

	// Rows uses the map notation: '#' wall, '.' collectible, ' ' empty.
	Rows []string

	// Player is the player's start tile.
	Player Point

	// Enemies holds start tiles in roster order. Configs with more enemies
	// than spawns must give the extra enemies explicit starts.
	Enemies []Point
}

// Map parses the layout into a fresh grid.
func (l Layout) Map() (*chase.Map, error) {
	m, err := chase.ParseMap(l.Rows)
	if err != nil {
		return nil, fmt.Errorf("maze %q: %w", l.ID, err)
	}
	return m, nil
}

// Size returns the layout dimensions.
func (l Layout) Size() (rows, cols int) {
	if len(l.Rows) == 0 {
		return 0, 0
	}
	return len(l.Rows), len(l.Rows[0])
}

// Info contains metadata about a registered layout.
type Info struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

var (
	layouts = make(map[string]Layout)
	mu      sync.RWMutex
)

// Register adds a layout to the registry.
// Panics if the ID is already taken or the layout does not parse.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[l.ID]; exists {
		panic(fmt.Sprintf("maze: layout %q already registered", l.ID))
	}
	if _, err := l.Map(); err != nil {
		panic(err)
	}

	layouts[l.ID] = l
}

// List returns information about all registered layouts, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(layouts))
	for id, l := range layouts {
		rows, cols := l.Size()
		result = append(result, Info{
			ID:    id,
			Title: l.Title,
			Rows:  rows,
			Cols:  cols,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the layout registered under id.
func Get(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := layouts[id]
	if !ok {
		return Layout{}, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return l, nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[id]
	return ok
}
