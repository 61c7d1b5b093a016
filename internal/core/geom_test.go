package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCenteredIn(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.CenteredIn(30, 6)

	if inner != NewRect(25, 9, 30, 6) {
		t.Errorf("CenteredIn() = %+v", inner)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestColorByName(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		ok    bool
	}{
		{"red", ColorRed, true},
		{"Pink", ColorMagenta, true},
		{" cyan ", ColorCyan, true},
		{"ultraviolet", ColorDefault, false},
	}

	for _, tc := range tests {
		c, ok := ColorByName(tc.name)
		if c != tc.color || ok != tc.ok {
			t.Errorf("ColorByName(%q) = %v, %v; expected %v, %v", tc.name, c, ok, tc.color, tc.ok)
		}
	}
}
