package chase

import "testing"

func TestPursuePolicyKeepsDirectionWithoutReplan(t *testing.T) {
	m := mustParse(t, openLayout()...)
	enemy := &Enemy{Entity: NewEntity(5, 5, 8)}
	enemy.Dir = DirLeft
	player := &Player{Entity: NewEntity(1, 9, 8)}

	rng := &scriptedRand{floats: []float64{0.9}}
	got := NewPursuePolicy(0.3).Decide(rng, m, enemy, player)

	if got != DirLeft {
		t.Errorf("Decide() = %v, expected the previous direction left", got)
	}
}

func TestPursueCandidateOrder(t *testing.T) {
	tests := []struct {
		name     string
		layout   []string
		from     [2]int
		to       [2]int
		expected Direction
	}{
		{
			name:     "row step first",
			layout:   openLayout(),
			from:     [2]int{5, 5},
			to:       [2]int{8, 8},
			expected: DirDown,
		},
		{
			name: "column step when row blocked",
			layout: []string{
				"#######",
				"#     #",
				"#     #",
				"#  #  #",
				"#     #",
				"#######",
			},
			from:     [2]int{2, 3},
			to:       [2]int{4, 5},
			expected: DirRight,
		},
		{
			name: "away along rows when both toward steps blocked",
			layout: []string{
				"#######",
				"#     #",
				"#  #  #",
				"# ##  #",
				"#     #",
				"#######",
			},
			from:     [2]int{2, 2},
			to:       [2]int{4, 5},
			expected: DirUp,
		},
		{
			name: "away along columns last",
			layout: []string{
				"#######",
				"#######",
				"#  #  #",
				"# ##  #",
				"#     #",
				"#######",
			},
			from:     [2]int{2, 2},
			to:       [2]int{4, 5},
			expected: DirLeft,
		},
		{
			name:     "aligned on row moves along columns",
			layout:   openLayout(),
			from:     [2]int{5, 6},
			to:       [2]int{5, 5},
			expected: DirLeft,
		},
		{
			name:     "aligned on column moves along rows",
			layout:   openLayout(),
			from:     [2]int{2, 4},
			to:       [2]int{7, 4},
			expected: DirDown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustParse(t, tc.layout...)
			got := Pursue(&scriptedRand{}, m, tc.from[0], tc.from[1], tc.to[0], tc.to[1])
			if got != tc.expected {
				t.Errorf("Pursue() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPursueFallsBackToRandomCardinal(t *testing.T) {
	m := mustParse(t, openLayout()...)

	// Same tile: every preferred candidate is the zero step, so the choice
	// comes from the fallback list (down, up, right, left).
	tests := []struct {
		pick     int
		expected Direction
	}{
		{0, DirDown},
		{1, DirUp},
		{2, DirRight},
		{3, DirLeft},
	}

	for _, tc := range tests {
		rng := &scriptedRand{ints: []int{tc.pick}}
		if got := Pursue(rng, m, 5, 5, 5, 5); got != tc.expected {
			t.Errorf("pick %d: Pursue() = %v, expected %v", tc.pick, got, tc.expected)
		}
	}
}

func TestPursueFallbackFiltersBlocked(t *testing.T) {
	// Aligned on a row with both column steps blocked: only up/down remain.
	m := mustParse(t,
		"#####",
		"## ##",
		"## ##",
		"## ##",
		"#####",
	)

	first := Pursue(&scriptedRand{ints: []int{0}}, m, 2, 2, 2, 2)
	second := Pursue(&scriptedRand{ints: []int{1}}, m, 2, 2, 2, 2)

	if first != DirDown || second != DirUp {
		t.Errorf("fallback picks = %v, %v; expected down, up", first, second)
	}
}

func TestPursueEnclosedReturnsNone(t *testing.T) {
	m := mustParse(t,
		"###",
		"# #",
		"###",
	)

	if got := Pursue(&scriptedRand{}, m, 1, 1, 5, 5); got != DirNone {
		t.Errorf("Pursue() in an enclosed cell = %v, expected none", got)
	}
}

func TestPursueNeverReturnsDiagonal(t *testing.T) {
	m := NewMap(12, 12)
	rng := &scriptedRand{ints: []int{3, 1, 2, 0}}

	for fr := 1; fr < 11; fr++ {
		for fc := 1; fc < 11; fc++ {
			d := Pursue(rng, m, fr, fc, 6, 6)
			if !d.Valid() {
				t.Fatalf("Pursue(%d,%d) returned %v", fr, fc, d)
			}
			if !m.IsWalkable(fr+d.DR, fc+d.DC) {
				t.Fatalf("Pursue(%d,%d) returned a blocked step %v", fr, fc, d)
			}
		}
	}
}
