package chase

import "math"

// Advance moves e along its direction for dt seconds and returns the number
// of tiles it actually travelled.
//
// Speed accumulates in e.Progress; every whole tile of progress is one step
// attempt. A step into a non-walkable tile clears the direction and drops the
// remaining steps of this call. The whole units are always consumed, so an
// entity facing none drains its accumulator without moving.
func Advance(e *Entity, grid Walkable, dt float64) int {
	if dt <= 0 || e.Rate <= 0 {
		return 0
	}

	e.Progress += dt * e.Rate
	whole := math.Floor(e.Progress)
	if whole < 1 {
		return 0
	}

	moved := 0
	for range int(whole) {
		if !e.Dir.Valid() {
			e.Dir = DirNone
			break
		}
		if e.Dir.IsNone() {
			continue
		}
		nextRow, nextCol := e.Row+e.Dir.DR, e.Col+e.Dir.DC
		if !grid.IsWalkable(nextRow, nextCol) {
			e.Dir = DirNone
			break
		}
		e.Row, e.Col = nextRow, nextCol
		moved++
	}

	e.Progress -= whole
	return moved
}
