package chase

import "testing"

// scriptedRand replays fixed values; when a script runs out it keeps
// returning its last value (or zero).
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

// keepPolicy never changes an enemy's direction.
type keepPolicy struct{}

func (keepPolicy) Decide(_ Rand, _ Walkable, enemy *Enemy, _ *Player) Direction {
	return enemy.Dir
}

// walkFunc adapts a function to Walkable.
type walkFunc func(row, col int) bool

func (f walkFunc) IsWalkable(row, col int) bool { return f(row, col) }

func mustParse(t *testing.T, layout ...string) *Map {
	t.Helper()
	m, err := ParseMap(layout)
	if err != nil {
		t.Fatalf("ParseMap() failed: %v", err)
	}
	return m
}

// openLayout is an 11x11 bordered map with an empty interior.
func openLayout() []string {
	return []string{
		"###########",
		"#         #",
		"#         #",
		"#         #",
		"#         #",
		"#         #",
		"#         #",
		"#         #",
		"#         #",
		"#         #",
		"###########",
	}
}
