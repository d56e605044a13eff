package bot

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/connectfour/internal/domain"
)

const (
	DefaultDepth = 4
	MINIMAX_WIN  = 10000
	MINIMAX_LOSS = -10000

	noMove = -1
)

// Engine picks moves with depth-limited minimax and alpha-beta pruning.
// It keeps no board state between calls.
type Engine struct {
	player   domain.Cell
	depth    int
	parallel bool

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

type Option func(*Engine)

// WithRand sets the source used for the random fallback move.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithParallel searches every root move in its own goroutine. The chosen
// column is the same as with the sequential search.
func WithParallel() Option {
	return func(e *Engine) {
		e.parallel = true
	}
}

// NewEngine creates an engine playing as player, searching depth plies.
// Negative depths are treated as 0.
func NewEngine(player domain.Cell, depth int, opts ...Option) *Engine {
	e := &Engine{
		player: player,
		depth:  max(depth, 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

func (e *Engine) Cell() domain.Cell { return e.player }
func (e *Engine) Depth() int        { return e.depth }

// Evaluate returns the static heuristic score of board for the engine's player.
func (e *Engine) Evaluate(board domain.Board) int {
	return evaluateBoard(&board, e.player)
}

// BestMove returns the column the engine plays on board.
func (e *Engine) BestMove(board domain.Board) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return noMove, domain.ErrNoLegalMoves
	}

	// A depth of 0 has no lookahead: pick the move whose resulting position
	// scores best.
	if e.depth == 0 {
		return e.greedyMove(board, moves), nil
	}

	var col int
	if e.parallel {
		if _, decided := board.Winner(); decided {
			col = noMove
		} else {
			var err error
			if col, err = e.parallelRoot(board, moves); err != nil {
				return noMove, err
			}
		}
	} else {
		_, col = e.minimax(board, e.depth, math.MinInt, math.MaxInt, true)
	}

	if col == noMove {
		return e.randomMove(moves), nil
	}
	return col, nil
}

func (e *Engine) greedyMove(board domain.Board, moves []int) int {
	bestCol := noMove
	bestScore := math.MinInt
	for _, col := range moves {
		child := board.Copy()
		child.Drop(col, e.player)
		if score := evaluateBoard(&child, e.player); score > bestScore {
			bestScore = score
			bestCol = col
		}
	}
	return bestCol
}

func (e *Engine) randomMove(moves []int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return moves[e.rng.Intn(len(moves))]
}

// parallelRoot evaluates each root move with a full window on its own copy
// and keeps the first best in column order.
func (e *Engine) parallelRoot(board domain.Board, moves []int) (int, error) {
	scores := make([]int, len(moves))

	var g errgroup.Group
	for i, col := range moves {
		g.Go(func() error {
			child := board.Copy()
			if !child.Drop(col, e.player) {
				return fmt.Errorf("root move %d: %w", col, domain.ErrColumnFull)
			}
			scores[i], _ = e.minimax(child, e.depth-1, math.MinInt, math.MaxInt, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return noMove, err
	}

	bestCol := noMove
	bestScore := math.MinInt
	for i, score := range scores {
		if score > bestScore {
			bestScore = score
			bestCol = moves[i]
		}
	}
	return bestCol, nil
}

// minimax implements the minimax algorithm with alpha-beta pruning. It returns
// the score of board and the column that achieves it, or noMove at a leaf.
func (e *Engine) minimax(board domain.Board, depth int, alpha, beta int, isMaximizing bool) (int, int) {
	// Terminal conditions
	if winner, ok := board.Winner(); ok {
		if winner == e.player {
			return MINIMAX_WIN + depth, noMove // Prefer quicker wins
		}
		return MINIMAX_LOSS - depth, noMove // Prefer delaying losses
	}

	if depth == 0 || board.IsFull() {
		return evaluateBoard(&board, e.player), noMove
	}

	bestCol := noMove

	if isMaximizing {
		maxEval := math.MinInt
		for _, col := range board.LegalMoves() {
			child := board.Copy()
			child.Drop(col, e.player)

			eval, _ := e.minimax(child, depth-1, alpha, beta, false)
			if eval > maxEval {
				maxEval = eval
				bestCol = col
			}
			alpha = max(alpha, eval)

			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval, bestCol
	}

	minEval := math.MaxInt
	opponent := e.player.Opponent()
	for _, col := range board.LegalMoves() {
		child := board.Copy()
		child.Drop(col, opponent)

		eval, _ := e.minimax(child, depth-1, alpha, beta, true)
		if eval < minEval {
			minEval = eval
			bestCol = col
		}
		beta = min(beta, eval)

		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval, bestCol
}
