package chase

import (
	"errors"
	"fmt"
)

// DefaultReward is the score for one collectible.
const DefaultReward = 10

// Spawn places an entity at session start.
type Spawn struct {
	Row  int
	Col  int
	Rate float64
}

// EnemySpawn places an enemy at session start.
type EnemySpawn struct {
	Spawn
	Label string
	Mode  Mode
}

// Config describes a session: who starts where and how the rules are tuned.
type Config struct {
	Player  Spawn
	Enemies []EnemySpawn

	// Reward per collectible. Zero means DefaultReward.
	Reward int

	// Policy drives enemies. Nil means PursuePolicy{DefaultChance}.
	Policy Policy

	// Rand feeds the policy. Required.
	Rand Rand
}

// TickResult reports what happened during one simulation step.
type TickResult struct {
	Collected bool

	// Captured is set when an enemy reached the player; the state has
	// already been reset by the time the result is returned.
	Captured   bool
	CapturedBy string

	// LifeScore is the score the life ended with when Captured is set.
	LifeScore int

	// Score after the tick.
	Score int
}

// State is the simulation aggregate. It owns the map, the entities and the
// score; all mutation goes through Tick, Reset and SetDirection.
type State struct {
	grid    *Map
	player  Player
	enemies []Enemy
	score   int
	reward  int
	policy  Policy
	rng     Rand
	ticks   uint64
}

// NewState creates a session on grid. Every spawn must be walkable.
func NewState(grid *Map, cfg Config) (*State, error) {
	if grid == nil {
		return nil, errors.New("chase: nil map")
	}
	if cfg.Rand == nil {
		return nil, errors.New("chase: random source is required")
	}
	if !grid.IsWalkable(cfg.Player.Row, cfg.Player.Col) {
		return nil, fmt.Errorf("chase: player spawn (%d,%d) is not walkable", cfg.Player.Row, cfg.Player.Col)
	}

	s := &State{
		grid:   grid,
		player: Player{Entity: NewEntity(cfg.Player.Row, cfg.Player.Col, cfg.Player.Rate)},
		reward: cfg.Reward,
		policy: cfg.Policy,
		rng:    cfg.Rand,
	}
	if s.reward == 0 {
		s.reward = DefaultReward
	}
	if s.policy == nil {
		s.policy = NewPursuePolicy(DefaultChance)
	}

	s.enemies = make([]Enemy, 0, len(cfg.Enemies))
	for i, es := range cfg.Enemies {
		if !grid.IsWalkable(es.Row, es.Col) {
			return nil, fmt.Errorf("chase: enemy %d spawn (%d,%d) is not walkable", i, es.Row, es.Col)
		}
		mode := es.Mode
		if mode == "" {
			mode = ModePursue
		}
		s.enemies = append(s.enemies, Enemy{
			Entity: NewEntity(es.Row, es.Col, es.Rate),
			Mode:   mode,
			Label:  es.Label,
		})
	}

	return s, nil
}

// Tick advances the simulation by dt seconds. The order is fixed: player
// motion, enemy decisions and motion, capture check, then collection.
func (s *State) Tick(dt float64) TickResult {
	s.ticks++

	Advance(&s.player.Entity, s.grid, dt)
	s.player.animate()

	for i := range s.enemies {
		e := &s.enemies[i]
		e.Dir = s.policy.Decide(s.rng, s.grid, e, &s.player)
		Advance(&e.Entity, s.grid, dt)
	}

	for i := range s.enemies {
		if s.enemies[i].SameTile(s.player.Entity) {
			result := TickResult{
				Captured:   true,
				CapturedBy: s.enemies[i].Label,
				LifeScore:  s.score,
			}
			s.Reset()
			result.Score = s.score
			return result
		}
	}

	var result TickResult
	if s.grid.Collect(s.player.Row, s.player.Col) {
		s.score += s.reward
		result.Collected = true
	}
	result.Score = s.score
	return result
}

// Reset restores the collectibles, returns every entity to its start tile
// and zeroes the score. Entities are mutated in place.
func (s *State) Reset() {
	s.grid.Reset()
	s.player.Respawn()
	s.player.Phase = 0
	for i := range s.enemies {
		s.enemies[i].Respawn()
	}
	s.score = 0
}

// SetDirection overwrites the player's direction. Only the four cardinal
// directions are accepted; anything else is ignored and reports false.
// Walkability is checked by the motion model, not here.
func (s *State) SetDirection(d Direction) bool {
	if !d.IsCardinal() {
		return false
	}
	s.player.Dir = d
	return true
}

// Map returns a read-only view of the grid.
func (s *State) Map() MapView {
	return s.grid
}

// Cells returns a copy of the grid cells.
func (s *State) Cells() [][]Cell {
	return s.grid.Cells()
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Enemies returns a copy of the enemy roster.
func (s *State) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Ticks returns how many simulation steps have run.
func (s *State) Ticks() uint64 {
	return s.ticks
}
