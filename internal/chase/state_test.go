package chase

import (
	"math"
	"math/rand"
	"testing"
)

// classicLayout mirrors the default maze: a 31x28 box with one wall block.
func classicLayout() []string {
	m := NewMap(31, 28)
	for r := 4; r < 8; r++ {
		for c := 6; c < 22; c++ {
			m.cells[m.index(r, c)] = CellWall
		}
	}
	return splitLines(m.String())
}

func newClassicState(t *testing.T, seed int64) *State {
	t.Helper()
	s, err := NewState(mustParse(t, classicLayout()...), Config{
		Player: Spawn{Row: 15, Col: 12, Rate: 8},
		Enemies: []EnemySpawn{
			{Spawn: Spawn{Row: 13, Col: 14, Rate: 8}, Label: "red"},
			{Spawn: Spawn{Row: 13, Col: 12, Rate: 8}, Label: "pink"},
		},
		Rand: rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	return s
}

func TestTickCollectsUnderPlayer(t *testing.T) {
	layout := openLayout()
	layout[5] = "#    .    #"
	s, err := NewState(mustParse(t, layout...), Config{
		Player: Spawn{Row: 5, Col: 5, Rate: 8},
		Rand:   &scriptedRand{},
	})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	result := s.Tick(DefaultStep.Seconds())

	if s.Score() != 10 || result.Score != 10 {
		t.Errorf("score = %d (result %d), expected 10", s.Score(), result.Score)
	}
	if !result.Collected {
		t.Error("result should report a collection")
	}
	if s.Map().At(5, 5) != CellEmpty {
		t.Errorf("cell (5,5) = %v, expected empty", s.Map().At(5, 5))
	}

	again := s.Tick(DefaultStep.Seconds())
	if again.Collected || s.Score() != 10 {
		t.Errorf("standing still should not collect twice, score %d", s.Score())
	}
}

func TestTickCaptureResets(t *testing.T) {
	m := NewMap(11, 11)
	s, err := NewState(m, Config{
		Player: Spawn{Row: 5, Col: 4, Rate: 10},
		Enemies: []EnemySpawn{
			{Spawn: Spawn{Row: 5, Col: 6, Rate: 10}, Label: "red"},
		},
		Policy: keepPolicy{},
		Rand:   &scriptedRand{},
	})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	s.score = 50
	m.Collect(2, 2)
	m.Collect(3, 3)
	s.SetDirection(DirRight)
	s.enemies[0].Dir = DirLeft

	result := s.Tick(0.1)

	if !result.Captured || result.CapturedBy != "red" {
		t.Fatalf("expected capture by red, got %+v", result)
	}
	if result.LifeScore != 50 {
		t.Errorf("LifeScore = %d, expected 50", result.LifeScore)
	}
	if s.Score() != 0 {
		t.Errorf("score after capture = %d, expected 0", s.Score())
	}

	p := s.Player()
	if p.Row != 5 || p.Col != 4 || p.Dir != DirNone {
		t.Errorf("player at (%d,%d) dir %v, expected start (5,4) none", p.Row, p.Col, p.Dir)
	}
	e := s.Enemies()[0]
	if e.Row != 5 || e.Col != 6 || e.Dir != DirNone {
		t.Errorf("enemy at (%d,%d) dir %v, expected start (5,6) none", e.Row, e.Col, e.Dir)
	}
	if m.Remaining() != 9*9 {
		t.Errorf("Remaining() = %d, expected all 81 collectibles restored", m.Remaining())
	}
	// The capture ends the tick before collection runs.
	if m.At(5, 4) != CellCollectible {
		t.Error("player start tile should still hold its collectible")
	}
}

func TestTickCaptureStopsAtFirstEnemy(t *testing.T) {
	s, err := NewState(NewMap(11, 11), Config{
		Player: Spawn{Row: 5, Col: 5, Rate: 10},
		Enemies: []EnemySpawn{
			{Spawn: Spawn{Row: 5, Col: 6, Rate: 10}, Label: "red"},
			{Spawn: Spawn{Row: 5, Col: 4, Rate: 10}, Label: "pink"},
		},
		Policy: keepPolicy{},
		Rand:   &scriptedRand{},
	})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	s.enemies[0].Dir = DirLeft
	s.enemies[1].Dir = DirRight

	result := s.Tick(0.1)

	if result.CapturedBy != "red" {
		t.Errorf("CapturedBy = %q, expected the first enemy in roster order", result.CapturedBy)
	}
}

func TestSetDirectionRejectsNonCardinal(t *testing.T) {
	s := newClassicState(t, 1)

	if !s.SetDirection(DirLeft) {
		t.Fatal("SetDirection(left) should be accepted")
	}

	for _, d := range []Direction{DirNone, {DR: 1, DC: 1}, {DR: 2}, {DC: -3}} {
		if s.SetDirection(d) {
			t.Errorf("SetDirection(%+v) should be rejected", d)
		}
		if s.Player().Dir != DirLeft {
			t.Errorf("rejected input changed direction to %v", s.Player().Dir)
		}
	}
}

func TestSetDirectionIntoWallIsAcceptedThenStopped(t *testing.T) {
	s, err := NewState(NewMap(5, 5), Config{
		Player: Spawn{Row: 1, Col: 1, Rate: 30},
		Rand:   &scriptedRand{},
	})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	if !s.SetDirection(DirUp) {
		t.Fatal("input is not validated against walkability")
	}
	s.Tick(0.1)

	p := s.Player()
	if p.Row != 1 || p.Col != 1 || p.Dir != DirNone {
		t.Errorf("player at (%d,%d) dir %v, expected (1,1) none", p.Row, p.Col, p.Dir)
	}
}

func TestNewStateValidatesSpawns(t *testing.T) {
	m := NewMap(5, 5)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"player on wall", Config{Player: Spawn{Row: 0, Col: 0}, Rand: &scriptedRand{}}},
		{"player off grid", Config{Player: Spawn{Row: 9, Col: 9}, Rand: &scriptedRand{}}},
		{"enemy on wall", Config{
			Player:  Spawn{Row: 1, Col: 1},
			Enemies: []EnemySpawn{{Spawn: Spawn{Row: 4, Col: 2}}},
			Rand:    &scriptedRand{},
		}},
		{"missing rand", Config{Player: Spawn{Row: 1, Col: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewState(m, tc.cfg); err == nil {
				t.Error("NewState() should fail")
			}
		})
	}

	if _, err := NewState(nil, Config{Rand: &scriptedRand{}}); err == nil {
		t.Error("NewState(nil) should fail")
	}
}

func TestNewStateDefaults(t *testing.T) {
	s, err := NewState(NewMap(5, 5), Config{
		Player:  Spawn{Row: 1, Col: 1, Rate: 8},
		Enemies: []EnemySpawn{{Spawn: Spawn{Row: 3, Col: 3, Rate: 8}, Label: "red"}},
		Rand:    &scriptedRand{},
	})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	if s.reward != DefaultReward {
		t.Errorf("reward = %d, expected %d", s.reward, DefaultReward)
	}
	if s.Enemies()[0].Mode != ModePursue {
		t.Errorf("mode = %q, expected %q", s.Enemies()[0].Mode, ModePursue)
	}
	if s.Player().Progress != 0 || s.Enemies()[0].Progress != 0 {
		t.Error("progress should start at zero")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newClassicState(t, 3)

	p := s.Player()
	p.Row = 1
	enemies := s.Enemies()
	enemies[0].Row = 1
	cells := s.Cells()
	cells[15][12] = CellWall

	if s.Player().Row == 1 || s.Enemies()[0].Row == 1 {
		t.Error("mutating accessor results changed the state")
	}
	if !s.Map().IsWalkable(15, 12) {
		t.Error("mutating Cells() changed the map")
	}
}

func TestPhaseWraps(t *testing.T) {
	s := newClassicState(t, 5)

	for range 200 {
		s.Tick(DefaultStep.Seconds())
		if ph := s.Player().Phase; ph < 0 || ph >= 2*math.Pi {
			t.Fatalf("phase %f outside [0, 2π)", ph)
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	s := newClassicState(t, 42)
	input := rand.New(rand.NewSource(99))
	dt := DefaultStep.Seconds()
	m := s.Map()

	prevScore := 0
	for i := range 3000 {
		if input.Intn(10) == 0 {
			s.SetDirection(Cardinals[input.Intn(len(Cardinals))])
		}
		result := s.Tick(dt)

		p := s.Player()
		if !m.IsWalkable(p.Row, p.Col) {
			t.Fatalf("tick %d: player on wall at (%d,%d)", i, p.Row, p.Col)
		}
		for _, e := range s.Enemies() {
			if !m.IsWalkable(e.Row, e.Col) {
				t.Fatalf("tick %d: enemy %s on wall at (%d,%d)", i, e.Label, e.Row, e.Col)
			}
		}

		if result.Captured {
			if s.Score() != 0 {
				t.Fatalf("tick %d: score %d after capture", i, s.Score())
			}
		} else if s.Score() < prevScore {
			t.Fatalf("tick %d: score dropped from %d to %d without a reset", i, prevScore, s.Score())
		}
		prevScore = s.Score()
	}
}

func TestDeterminism(t *testing.T) {
	s1 := newClassicState(t, 12345)
	s2 := newClassicState(t, 12345)
	dt := DefaultStep.Seconds()

	for i := range 600 {
		switch i {
		case 10:
			s1.SetDirection(DirLeft)
			s2.SetDirection(DirLeft)
		case 120:
			s1.SetDirection(DirDown)
			s2.SetDirection(DirDown)
		case 300:
			s1.SetDirection(DirRight)
			s2.SetDirection(DirRight)
		}
		s1.Tick(dt)
		s2.Tick(dt)
	}

	if !s1.Snapshot().Equal(s2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1.Snapshot(), s2.Snapshot())
	}
}

func TestExplicitReset(t *testing.T) {
	s := newClassicState(t, 8)
	s.SetDirection(DirLeft)
	for range 60 {
		s.Tick(DefaultStep.Seconds())
	}

	s.Reset()

	snap := s.Snapshot()
	if snap.Score != 0 || snap.PlayerRow != 15 || snap.PlayerCol != 12 || snap.PlayerDir != DirNone {
		t.Errorf("after Reset: %+v", snap)
	}
	if snap.Enemies[0].Row != 13 || snap.Enemies[0].Col != 14 || snap.Enemies[1].Col != 12 {
		t.Errorf("enemies not at start tiles: %+v", snap.Enemies)
	}
	if snap.Remaining != 31*28-(2*31+2*26)-4*16 {
		t.Errorf("Remaining = %d after reset", snap.Remaining)
	}
}
