package maze

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-chase/internal/chase"
)

func TestBuiltinLayouts(t *testing.T) {
	for _, info := range List() {
		t.Run(info.ID, func(t *testing.T) {
			l, err := Get(info.ID)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", info.ID, err)
			}
			m, err := l.Map()
			if err != nil {
				t.Fatalf("Map() failed: %v", err)
			}
			if m.Rows() != info.Rows || m.Cols() != info.Cols {
				t.Errorf("size %dx%d, info says %dx%d", m.Rows(), m.Cols(), info.Rows, info.Cols)
			}

			if !m.IsWalkable(l.Player.Row, l.Player.Col) {
				t.Errorf("player spawn %+v is not walkable", l.Player)
			}
			for i, p := range l.Enemies {
				if !m.IsWalkable(p.Row, p.Col) {
					t.Errorf("enemy %d spawn %+v is not walkable", i, p)
				}
			}
		})
	}
}

func TestClassicShape(t *testing.T) {
	l, err := Get(DefaultID)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", DefaultID, err)
	}
	m, err := l.Map()
	if err != nil {
		t.Fatalf("Map() failed: %v", err)
	}

	if m.Rows() != 31 || m.Cols() != 28 {
		t.Fatalf("classic is %dx%d, expected 31x28", m.Rows(), m.Cols())
	}

	tests := []struct {
		row, col int
		cell     chase.Cell
	}{
		{0, 0, chase.CellWall},
		{30, 27, chase.CellWall},
		{4, 6, chase.CellWall},
		{7, 21, chase.CellWall},
		{3, 6, chase.CellCollectible},
		{8, 21, chase.CellCollectible},
		{4, 22, chase.CellCollectible},
		{15, 12, chase.CellCollectible},
	}
	for _, tc := range tests {
		if got := m.At(tc.row, tc.col); got != tc.cell {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.row, tc.col, got, tc.cell)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("labyrinth")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Get(unknown) error = %v, expected ErrUnknown", err)
	}
	if Exists("labyrinth") {
		t.Error("Exists(unknown) should be false")
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if len(list) < 3 {
		t.Fatalf("expected at least 3 layouts, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate ID")
		}
	}()
	Register(Layout{ID: DefaultID, Rows: classicRows()})
}

func TestRegisterRejectsBrokenLayout(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on an open border")
		}
	}()
	Register(Layout{ID: "broken", Rows: []string{"###", "#. ", "###"}})
}
