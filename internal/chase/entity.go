package chase

import "math"

// PhaseStep is how far the player's animation phase advances per tick.
const PhaseStep = 0.2

// Mode tags an enemy's behavior.
type Mode string

// ModePursue is the only behavior currently driven by the policy.
const ModePursue Mode = "pursue"

// Entity is anything that moves tile by tile.
type Entity struct {
	Row, Col int
	Dir      Direction

	// Progress accumulates fractional tiles between steps.
	Progress float64

	// Rate is the movement speed in tiles per second.
	Rate float64

	StartRow, StartCol int
}

// NewEntity creates an entity parked at its start tile.
func NewEntity(row, col int, rate float64) Entity {
	return Entity{
		Row:      row,
		Col:      col,
		Rate:     rate,
		StartRow: row,
		StartCol: col,
	}
}

// Respawn returns the entity to its start tile and stops it.
func (e *Entity) Respawn() {
	e.Row = e.StartRow
	e.Col = e.StartCol
	e.Dir = DirNone
	e.Progress = 0
}

// SameTile returns true if both entities occupy the same tile.
func (e Entity) SameTile(other Entity) bool {
	return e.Row == other.Row && e.Col == other.Col
}

// Player is the user-controlled entity.
type Player struct {
	Entity

	// Phase is an opaque animation value for renderers, wrapped to [0, 2π).
	Phase float64
}

func (p *Player) animate() {
	p.Phase = math.Mod(p.Phase+PhaseStep, 2*math.Pi)
}

// Enemy is a pursuing entity.
type Enemy struct {
	Entity
	Mode  Mode
	Label string
}
