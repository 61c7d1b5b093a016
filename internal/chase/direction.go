package chase

// Direction is a unit step on the grid. DR moves rows (down is positive),
// DC moves columns (right is positive). Only the four cardinal steps and
// the zero step are valid.
type Direction struct {
	DR int
	DC int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{DR: -1}
	DirDown  = Direction{DR: 1}
	DirLeft  = Direction{DC: -1}
	DirRight = Direction{DC: 1}
)

// Cardinals lists the four movement directions in fallback priority order.
var Cardinals = [4]Direction{DirDown, DirUp, DirRight, DirLeft}

// IsNone returns true for the zero step.
func (d Direction) IsNone() bool {
	return d == DirNone
}

// IsCardinal returns true for exactly one unit step along one axis.
func (d Direction) IsCardinal() bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}

// Valid returns true for the cardinal steps and none.
func (d Direction) Valid() bool {
	return d.IsNone() || d.IsCardinal()
}

// Opposite returns the reverse step.
func (d Direction) Opposite() Direction {
	return Direction{DR: -d.DR, DC: -d.DC}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
