package domain

import "fmt"

// Board is a fixed Rows x Columns grid. Row 0 is the top row.
// The zero value is an empty board.
type Board struct {
	grid [Rows][Columns]Cell
}

func NewBoard() Board {
	return Board{}
}

// FromGrid builds a board from a row-major grid (row 0 at the top), as sent by
// API clients. The grid must have the exact dimensions, contain only known
// cells and respect gravity.
func FromGrid(grid [][]int) (Board, error) {
	var b Board

	if len(grid) != Rows {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Rows, len(grid))
	}

	for r, row := range grid {
		if len(row) != Columns {
			return b, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidBoard, r, len(row), Columns)
		}
		for c, v := range row {
			if v != int(Empty) && v != int(PlayerOne) && v != int(PlayerTwo) {
				return b, fmt.Errorf("%w: unknown cell value %d at (%d,%d)", ErrInvalidBoard, v, r, c)
			}
			b.grid[r][c] = Cell(v)
		}
	}

	// a disk can only rest on the bottom row or on another disk
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows-1; r++ {
			if b.grid[r][c] != Empty && b.grid[r+1][c] == Empty {
				return b, fmt.Errorf("%w: floating disk at (%d,%d)", ErrInvalidBoard, r, c)
			}
		}
	}

	return b, nil
}

// Drop places player's disk in the lowest empty row of column. It returns
// false and leaves the board untouched when the column is out of range or full.
func (b *Board) Drop(column int, player Cell) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here grid[0] represents the top row (0 -> top and 5 -> bottom)
	if b.grid[0][column] != Empty {
		return false
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			b.grid[row][column] = player
			return true
		}
	}

	return false
}

// LegalMoves returns every column that can still take a disk, ascending.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.grid[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	return len(b.LegalMoves()) == 0
}

// Height is the number of disks stacked in column, 0 for an out of range column.
func (b *Board) Height(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}

	height := 0
	for row := Rows - 1; row >= 0 && b.grid[row][column] != Empty; row-- {
		height++
	}
	return height
}

// Cell returns the content at (row, column). Out of range positions read as Empty.
func (b *Board) Cell(row, column int) Cell {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Empty
	}
	return b.grid[row][column]
}

// Count returns how many cells hold c.
func (b *Board) Count(c Cell) int {
	n := 0
	for r := range b.grid {
		for _, cell := range b.grid[r] {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() Board {
	return Board{grid: b.grid}
}

// Grid returns the board as a row-major [][]int, the shape used on the wire.
func (b *Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for r := range grid {
		grid[r] = make([]int, Columns)
		for c := range grid[r] {
			grid[r][c] = int(b.grid[r][c])
		}
	}
	return grid
}
