package chase

// EnemySnapshot is the observable state of one enemy.
type EnemySnapshot struct {
	Label    string
	Row, Col int
	Dir      Direction
}

// Snapshot captures the observable simulation state for determinism
// checks and replay comparison.
type Snapshot struct {
	Tick      uint64
	Score     int
	Remaining int
	PlayerRow int
	PlayerCol int
	PlayerDir Direction
	Enemies   []EnemySnapshot
}

// Snapshot returns the current state snapshot.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.ticks,
		Score:     s.score,
		Remaining: s.grid.Remaining(),
		PlayerRow: s.player.Row,
		PlayerCol: s.player.Col,
		PlayerDir: s.player.Dir,
		Enemies:   make([]EnemySnapshot, len(s.enemies)),
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = EnemySnapshot{Label: e.Label, Row: e.Row, Col: e.Col, Dir: e.Dir}
	}
	return snap
}

// Equal returns true if both snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Tick != other.Tick || s.Score != other.Score || s.Remaining != other.Remaining ||
		s.PlayerRow != other.PlayerRow || s.PlayerCol != other.PlayerCol || s.PlayerDir != other.PlayerDir ||
		len(s.Enemies) != len(other.Enemies) {
		return false
	}
	for i := range s.Enemies {
		if s.Enemies[i] != other.Enemies[i] {
			return false
		}
	}
	return true
}
