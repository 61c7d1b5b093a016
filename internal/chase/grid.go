// Package chase implements the maze-chase simulation engine: the tile grid,
// the motion model shared by all entities, the enemy pursuit policy, the
// per-tick simulation step and the fixed-timestep scheduler.
// It has no UI dependencies so the rules can be driven and tested headlessly.
package chase

import (
	"fmt"
	"strings"
)

// Cell classifies a single grid tile.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellCollectible
)

// String returns the layout rune for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return " "
	case CellWall:
		return "#"
	case CellCollectible:
		return "."
	default:
		return "?"
	}
}

// Walkable reports whether a tile may be occupied by an entity.
type Walkable interface {
	IsWalkable(row, col int) bool
}

// MapView is the read-only side of a Map handed to renderers.
type MapView interface {
	Walkable
	Rows() int
	Cols() int
	At(row, col int) Cell
	Remaining() int
}

// Map is the fixed-size tile grid. Cells are stored row-major.
// Border cells are always walls and wall cells never change.
type Map struct {
	rows  int
	cols  int
	cells []Cell
}

var _ MapView = (*Map)(nil)

// NewMap creates a rows x cols map with a wall border and a collectible interior.
func NewMap(rows, cols int) *Map {
	m := &Map{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := range rows {
		for c := range cols {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				m.cells[m.index(r, c)] = CellWall
			}
		}
	}
	m.Reset()
	return m
}

// ParseMap builds a map from text rows: '#' is a wall, '.' a collectible and
// ' ' an empty tile. Rows must have equal width and the border must be solid.
func ParseMap(layout []string) (*Map, error) {
	rows := len(layout)
	if rows < 3 {
		return nil, fmt.Errorf("chase: map needs at least 3 rows, got %d", rows)
	}
	cols := len([]rune(layout[0]))
	if cols < 3 {
		return nil, fmt.Errorf("chase: map needs at least 3 columns, got %d", cols)
	}

	m := &Map{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r, line := range layout {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("chase: row %d has width %d, expected %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			var cell Cell
			switch ch {
			case '#':
				cell = CellWall
			case '.':
				cell = CellCollectible
			case ' ':
				cell = CellEmpty
			default:
				return nil, fmt.Errorf("chase: unknown tile %q at (%d,%d)", ch, r, c)
			}
			onBorder := r == 0 || c == 0 || r == rows-1 || c == cols-1
			if onBorder && cell != CellWall {
				return nil, fmt.Errorf("chase: border tile (%d,%d) must be a wall", r, c)
			}
			m.cells[m.index(r, c)] = cell
		}
	}
	return m, nil
}

func (m *Map) index(row, col int) int {
	return row*m.cols + col
}

// InBounds returns true if the coordinate lies inside the grid.
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Rows returns the grid height.
func (m *Map) Rows() int { return m.rows }

// Cols returns the grid width.
func (m *Map) Cols() int { return m.cols }

// At returns the cell at the coordinate. Out-of-bounds reads as a wall.
func (m *Map) At(row, col int) Cell {
	if !m.InBounds(row, col) {
		return CellWall
	}
	return m.cells[m.index(row, col)]
}

// IsWalkable is false out of bounds and on walls, true otherwise.
func (m *Map) IsWalkable(row, col int) bool {
	return m.At(row, col) != CellWall
}

// Collect empties a collectible cell and reports whether one was taken.
func (m *Map) Collect(row, col int) bool {
	if m.At(row, col) != CellCollectible {
		return false
	}
	m.cells[m.index(row, col)] = CellEmpty
	return true
}

// Reset turns every non-wall cell back into a collectible.
func (m *Map) Reset() {
	for i, cell := range m.cells {
		if cell != CellWall {
			m.cells[i] = CellCollectible
		}
	}
}

// Remaining counts the collectibles left on the map.
func (m *Map) Remaining() int {
	n := 0
	for _, cell := range m.cells {
		if cell == CellCollectible {
			n++
		}
	}
	return n
}

// Cells returns a row-major copy of the grid as a 2D slice.
func (m *Map) Cells() [][]Cell {
	out := make([][]Cell, m.rows)
	for r := range m.rows {
		out[r] = make([]Cell, m.cols)
		copy(out[r], m.cells[r*m.cols:(r+1)*m.cols])
	}
	return out
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	cells := make([]Cell, len(m.cells))
	copy(cells, m.cells)
	return &Map{rows: m.rows, cols: m.cols, cells: cells}
}

// String renders the map in the same notation ParseMap accepts.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for r := range m.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range m.cols {
			sb.WriteString(m.At(r, c).String())
		}
	}
	return sb.String()
}
