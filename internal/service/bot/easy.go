package bot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connectfour/internal/domain"
)

// EasyBot wins when it can, blocks an immediate loss, and otherwise plays a
// random legal column.
type EasyBot struct {
	player domain.Cell

	mu  sync.Mutex
	rng *rand.Rand
}

func NewEasy(player domain.Cell, rng *rand.Rand) *EasyBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &EasyBot{player: player, rng: rng}
}

func (b *EasyBot) Cell() domain.Cell { return b.player }

func (b *EasyBot) BestMove(board domain.Board) (int, error) {
	validColumns := board.LegalMoves()
	if len(validColumns) == 0 {
		return noMove, domain.ErrNoLegalMoves
	}

	if col, ok := winningColumn(board, validColumns, b.player); ok {
		return col, nil
	}

	if col, ok := winningColumn(board, validColumns, b.player.Opponent()); ok {
		return col, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return validColumns[b.rng.Intn(len(validColumns))], nil
}

// winningColumn finds the first column where player connects four right away.
// A board that is already decided has no winning column.
func winningColumn(board domain.Board, columns []int, player domain.Cell) (int, bool) {
	if _, decided := board.Winner(); decided {
		return noMove, false
	}
	for _, col := range columns {
		testBoard := board.Copy()
		testBoard.Drop(col, player)
		if winner, won := testBoard.Winner(); won && winner == player {
			return col, true
		}
	}
	return noMove, false
}
