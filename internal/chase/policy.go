package chase

// DefaultChance is the per-tick probability that an enemy re-plans.
const DefaultChance = 0.3

// Rand is the random source the policy draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Policy picks an enemy's direction for the coming tick.
type Policy interface {
	Decide(rng Rand, grid Walkable, enemy *Enemy, player *Player) Direction
}

// PursuePolicy steers enemies toward the player without path search.
// Each tick it re-plans with probability Chance and otherwise keeps the
// enemy's current direction.
type PursuePolicy struct {
	Chance float64
}

// NewPursuePolicy returns a pursue policy with the given re-plan chance.
func NewPursuePolicy(chance float64) PursuePolicy {
	return PursuePolicy{Chance: chance}
}

// Decide implements Policy.
func (p PursuePolicy) Decide(rng Rand, grid Walkable, enemy *Enemy, player *Player) Direction {
	if rng.Float64() >= p.Chance {
		return enemy.Dir
	}
	return Pursue(rng, grid, enemy.Row, enemy.Col, player.Row, player.Col)
}

// Pursue chooses a step from (fromRow, fromCol) toward (toRow, toCol).
//
// Candidates are tried in order: toward along rows, toward along columns,
// both at once, away along rows, away along columns. The first walkable
// cardinal candidate wins; the zero step and diagonals never qualify.
// Failing that, a walkable cardinal is drawn uniformly at random, and an
// enclosed position yields DirNone.
func Pursue(rng Rand, grid Walkable, fromRow, fromCol, toRow, toCol int) Direction {
	dr := sign(toRow - fromRow)
	dc := sign(toCol - fromCol)

	candidates := [5]Direction{
		{DR: dr},
		{DC: dc},
		{DR: dr, DC: dc},
		{DR: -dr},
		{DC: -dc},
	}
	for _, d := range candidates {
		if !d.IsCardinal() {
			continue
		}
		if grid.IsWalkable(fromRow+d.DR, fromCol+d.DC) {
			return d
		}
	}

	open := make([]Direction, 0, len(Cardinals))
	for _, d := range Cardinals {
		if grid.IsWalkable(fromRow+d.DR, fromCol+d.DC) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return DirNone
	}
	return open[rng.Intn(len(open))]
}
