package domain

import "iter"

// Position addresses a single cell.
type Position struct {
	Row, Col int
}

// Window is ToWin consecutive cells of a line.
type Window [ToWin]Cell

// Count returns how many cells of the window hold c.
func (w Window) Count(c Cell) int {
	n := 0
	for _, cell := range w {
		if cell == c {
			n++
		}
	}
	return n
}

// Owner returns the player holding all cells of the window, if any.
func (w Window) Owner() (Cell, bool) {
	if w[0] == Empty {
		return Empty, false
	}
	for _, cell := range w[1:] {
		if cell != w[0] {
			return Empty, false
		}
	}
	return w[0], true
}

// lines holds every row, column and diagonal long enough to contain a window.
// The board size is fixed so they are computed once.
var lines = buildLines()

func buildLines() [][]Position {
	var all [][]Position

	for r := 0; r < Rows; r++ {
		line := make([]Position, 0, Columns)
		for c := 0; c < Columns; c++ {
			line = append(line, Position{r, c})
		}
		all = append(all, line)
	}

	for c := 0; c < Columns; c++ {
		line := make([]Position, 0, Rows)
		for r := 0; r < Rows; r++ {
			line = append(line, Position{r, c})
		}
		all = append(all, line)
	}

	// Every diagonal starts on the top row or on the edge column it moves away
	// from. Walking from each start cell until leaving the grid visits each
	// diagonal exactly once.
	all = append(all, diagonals(1)...)
	all = append(all, diagonals(-1)...)

	return all
}

// diagonals walks down the board moving dCol columns per row.
func diagonals(dCol int) [][]Position {
	edge := 0
	if dCol < 0 {
		edge = Columns - 1
	}

	var starts []Position
	for c := 0; c < Columns; c++ {
		starts = append(starts, Position{0, c})
	}
	for r := 1; r < Rows; r++ {
		starts = append(starts, Position{r, edge})
	}

	var out [][]Position
	for _, start := range starts {
		var line []Position
		for r, c := start.Row, start.Col; r < Rows && c >= 0 && c < Columns; r, c = r+1, c+dCol {
			line = append(line, Position{r, c})
		}
		if len(line) >= ToWin {
			out = append(out, line)
		}
	}
	return out
}

// Lines returns the cells of every row, column and diagonal of length ToWin or more.
func (b *Board) Lines() [][]Cell {
	out := make([][]Cell, 0, len(lines))
	for _, line := range lines {
		cells := make([]Cell, len(line))
		for i, p := range line {
			cells[i] = b.grid[p.Row][p.Col]
		}
		out = append(out, cells)
	}
	return out
}

// Windows yields every window of every line.
func (b *Board) Windows() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for _, line := range lines {
			for start := 0; start+ToWin <= len(line); start++ {
				var w Window
				for i := range w {
					p := line[start+i]
					w[i] = b.grid[p.Row][p.Col]
				}
				if !yield(w) {
					return
				}
			}
		}
	}
}

// Winner returns the player owning four in a row, if any.
func (b *Board) Winner() (Cell, bool) {
	for w := range b.Windows() {
		if owner, ok := w.Owner(); ok {
			return owner, true
		}
	}
	return Empty, false
}
