package calc

// Grid is the button layout shared by the front ends. Empty strings are gaps.
var Grid = [][]string{
	{"Cls", "Bck", "", "Close", "√"},
	{"7", "8", "9", "/", "log"},
	{"4", "5", "6", "*", ""},
	{"1", "2", "3", "-", ""},
	{"0", ".", "=", "+", ""},
}

// Cell is a position in Grid.
type Cell struct{ Row, Col int }

// LabelAt returns the label at c, or "" for gaps and positions off the grid.
func LabelAt(c Cell) string {
	if c.Row < 0 || c.Row >= len(Grid) || c.Col < 0 || c.Col >= len(Grid[c.Row]) {
		return ""
	}
	return Grid[c.Row][c.Col]
}

// Find returns the cell holding label.
func Find(label string) (Cell, bool) {
	for r, row := range Grid {
		for col, l := range row {
			if l != "" && l == label {
				return Cell{r, col}, true
			}
		}
	}
	return Cell{}, false
}

// Step moves from c by (dr, dc), jumping over gaps. It stays put when the
// edge of the grid comes first.
func Step(c Cell, dr, dc int) Cell {
	next := Cell{c.Row + dr, c.Col + dc}
	for next.Row >= 0 && next.Row < len(Grid) && next.Col >= 0 && next.Col < len(Grid[next.Row]) {
		if LabelAt(next) != "" {
			return next
		}
		next = Cell{next.Row + dr, next.Col + dc}
	}
	return c
}
