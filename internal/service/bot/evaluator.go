package bot

import (
	"github.com/iamasit07/connectfour/internal/domain"
)

const (
	// Window weights, from the engine's point of view.
	SCORE_FOUR        = 1000 // four own disks
	SCORE_THREE_OPEN  = 5    // three own disks and one empty cell
	SCORE_TWO_OPEN    = 2    // two own disks and two empty cells
	SCORE_BLOCK_THREE = -4   // three opponent disks and one empty cell
	SCORE_CENTER      = 3    // per own disk in the center column
)

// evaluateBoard scores a position statically for botPlayer.
func evaluateBoard(board *domain.Board, botPlayer domain.Cell) int {
	score := 0

	// Center column preference
	centerCol := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		if board.Cell(row, centerCol) == botPlayer {
			score += SCORE_CENTER
		}
	}

	opponent := botPlayer.Opponent()
	for w := range board.Windows() {
		score += evaluateWindow(w, botPlayer, opponent)
	}

	return score
}

func evaluateWindow(w domain.Window, player, opponent domain.Cell) int {
	own := w.Count(player)
	opp := w.Count(opponent)
	empty := w.Count(domain.Empty)

	switch {
	case own == 4:
		return SCORE_FOUR
	case own == 3 && empty == 1:
		return SCORE_THREE_OPEN
	case own == 2 && empty == 2:
		return SCORE_TWO_OPEN
	case opp == 3 && empty == 1:
		return SCORE_BLOCK_THREE
	}
	return 0
}
