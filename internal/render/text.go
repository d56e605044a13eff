// Package render turns boards into text and images for the drivers.
package render

import (
	"strconv"
	"strings"

	"github.com/iamasit07/connectfour/internal/domain"
)

// Symbol returns the single character used for c in text output.
func Symbol(c domain.Cell) string {
	switch c {
	case domain.PlayerOne:
		return "X"
	case domain.PlayerTwo:
		return "O"
	}
	return "."
}

// Text renders board top row first, followed by a column legend. There is
// no trailing newline.
func Text(board domain.Board) string {
	var sb strings.Builder

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Symbol(board.Cell(row, col)))
		}
		sb.WriteByte('\n')
	}

	for col := 0; col < domain.Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(col))
	}

	return sb.String()
}
