package maze

import "strings"

// DefaultID is the layout used when nothing else is configured.
const DefaultID = "classic"

func init() {
	Register(Layout{
		ID:      "classic",
		Title:   "Classic",
		Rows:    classicRows(),
		Player:  Point{Row: 15, Col: 12},
		Enemies: []Point{{Row: 13, Col: 14}, {Row: 13, Col: 12}},
	})
	Register(Layout{
		ID:      "open",
		Title:   "Open Field",
		Rows:    boxRows(15, 21, nil),
		Player:  Point{Row: 7, Col: 10},
		Enemies: []Point{{Row: 1, Col: 1}, {Row: 1, Col: 19}, {Row: 13, Col: 1}, {Row: 13, Col: 19}},
	})
	Register(Layout{
		ID:    "pillars",
		Title: "Pillars",
		Rows: boxRows(15, 21, func(r, c int) bool {
			return r%2 == 0 && c%2 == 0
		}),
		Player:  Point{Row: 7, Col: 9},
		Enemies: []Point{{Row: 1, Col: 1}, {Row: 1, Col: 19}, {Row: 13, Col: 1}, {Row: 13, Col: 19}},
	})
}

// classicRows is a 31x28 box with one wall block across rows 4-7.
func classicRows() []string {
	return boxRows(31, 28, func(r, c int) bool {
		return r >= 4 && r <= 7 && c >= 6 && c <= 21
	})
}

// boxRows builds a bordered layout filled with collectibles. wall marks
// extra interior walls and may be nil.
func boxRows(rows, cols int, wall func(r, c int) bool) []string {
	out := make([]string, rows)
	var sb strings.Builder
	for r := range rows {
		sb.Reset()
		for c := range cols {
			switch {
			case r == 0 || r == rows-1 || c == 0 || c == cols-1:
				sb.WriteByte('#')
			case wall != nil && wall(r, c):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		out[r] = sb.String()
	}
	return out
}
