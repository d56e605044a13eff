package bot

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/iamasit07/connectfour/internal/domain"
)

type drop struct {
	col    int
	player domain.Cell
}

func boardFromDrops(t *testing.T, drops ...drop) domain.Board {
	t.Helper()
	b := domain.NewBoard()
	for _, d := range drops {
		if !b.Drop(d.col, d.player) {
			t.Fatalf("setup drop into column %d failed", d.col)
		}
	}
	return b
}

// randomPosition plays n random moves, stopping early if someone wins.
func randomPosition(rng *rand.Rand, n int) (domain.Board, domain.Cell) {
	b := domain.NewBoard()
	player := domain.PlayerOne
	for i := 0; i < n; i++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		next := b.Copy()
		next.Drop(moves[rng.Intn(len(moves))], player)
		if _, won := next.Winner(); won {
			break
		}
		b = next
		player = player.Opponent()
	}
	return b, player
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(domain.PlayerTwo, DefaultDepth)
	if e.Cell() != domain.PlayerTwo || e.Depth() != 4 {
		t.Errorf("engine = %v depth %d", e.Cell(), e.Depth())
	}
	if NewEngine(domain.PlayerOne, -3).Depth() != 0 {
		t.Errorf("negative depth was not clamped to 0")
	}
}

func TestBestMoveBlocksImmediateWin(t *testing.T) {
	b := boardFromDrops(t, drop{0, domain.PlayerOne}, drop{1, domain.PlayerOne}, drop{2, domain.PlayerOne})

	for _, depth := range []int{4, 5} {
		for _, parallel := range []bool{false, true} {
			var opts []Option
			if parallel {
				opts = append(opts, WithParallel())
			}
			e := NewEngine(domain.PlayerTwo, depth, opts...)

			col, err := e.BestMove(b)
			if err != nil {
				t.Fatalf("BestMove: %v", err)
			}
			if col != 3 {
				t.Errorf("depth %d parallel=%v: got column %d, want 3", depth, parallel, col)
			}
		}
	}
}

func TestBestMoveTakesWin(t *testing.T) {
	// PlayerTwo holds the bottom of columns 0-2, PlayerOne sits on top of them.
	b := boardFromDrops(t,
		drop{0, domain.PlayerTwo}, drop{0, domain.PlayerOne},
		drop{1, domain.PlayerTwo}, drop{1, domain.PlayerOne},
		drop{2, domain.PlayerTwo}, drop{2, domain.PlayerOne},
	)

	for depth := 1; depth <= 5; depth++ {
		col, err := NewEngine(domain.PlayerTwo, depth).BestMove(b)
		if err != nil {
			t.Fatalf("BestMove: %v", err)
		}
		if col != 3 {
			t.Errorf("depth %d: got column %d, want the winning column 3", depth, col)
		}
	}
}

func TestDepthZeroIsGreedy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		b, player := randomPosition(rng, rng.Intn(30))
		e := NewEngine(player, 0)

		want, bestScore := -1, 0
		for _, col := range b.LegalMoves() {
			child := b.Copy()
			child.Drop(col, player)
			if score := e.Evaluate(child); want == -1 || score > bestScore {
				want, bestScore = col, score
			}
		}

		got, err := e.BestMove(b)
		if err != nil {
			t.Fatalf("BestMove: %v", err)
		}
		if got != want {
			t.Fatalf("position %d: depth 0 chose %d, greedy choice is %d", i, got, want)
		}
	}
}

func TestBestMoveIsAlwaysLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for game := 0; game < 10; game++ {
		b := domain.NewBoard()
		engines := map[domain.Cell]*Engine{
			domain.PlayerOne: NewEngine(domain.PlayerOne, 2, WithRand(rng)),
			domain.PlayerTwo: NewEngine(domain.PlayerTwo, 3, WithRand(rng)),
		}
		player := domain.PlayerOne
		for {
			if _, won := b.Winner(); won || b.IsFull() {
				break
			}
			col, err := engines[player].BestMove(b)
			if err != nil {
				t.Fatalf("BestMove: %v", err)
			}
			if !slices.Contains(b.LegalMoves(), col) {
				t.Fatalf("engine returned illegal column %d, legal: %v", col, b.LegalMoves())
			}
			b.Drop(col, player)
			player = player.Opponent()
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 60; i++ {
		b, player := randomPosition(rng, rng.Intn(20))
		for depth := 1; depth <= 4; depth++ {
			seq, err := NewEngine(player, depth).BestMove(b)
			if err != nil {
				t.Fatalf("sequential: %v", err)
			}
			par, err := NewEngine(player, depth, WithParallel()).BestMove(b)
			if err != nil {
				t.Fatalf("parallel: %v", err)
			}
			if seq != par {
				t.Fatalf("position %d depth %d: sequential %d, parallel %d", i, depth, seq, par)
			}
		}
	}
}

func TestBestMoveWithoutLegalMoves(t *testing.T) {
	g := domain.NewGame()
	for _, col := range []int{
		0, 1, 5, 5, 0, 2, 3, 2, 0, 3, 4, 5, 3, 6, 4, 3, 5, 6, 2, 2, 2,
		2, 3, 0, 4, 1, 6, 1, 0, 4, 5, 0, 1, 1, 1, 4, 4, 3, 5, 6, 6, 6,
	} {
		if _, err := g.MakeMove(g.CurrentPlayer, col); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	if _, err := NewEngine(domain.PlayerOne, 4).BestMove(g.Board); !errors.Is(err, domain.ErrNoLegalMoves) {
		t.Errorf("error = %v, want ErrNoLegalMoves", err)
	}
}

func TestBestMoveFallsBackOnDecidedBoard(t *testing.T) {
	b := boardFromDrops(t,
		drop{0, domain.PlayerOne}, drop{1, domain.PlayerOne},
		drop{2, domain.PlayerOne}, drop{3, domain.PlayerOne},
	)

	for _, opts := range [][]Option{nil, {WithParallel()}} {
		e := NewEngine(domain.PlayerTwo, 3, append(opts, WithRand(rand.New(rand.NewSource(1))))...)
		col, err := e.BestMove(b)
		if err != nil {
			t.Fatalf("BestMove: %v", err)
		}
		if !slices.Contains(b.LegalMoves(), col) {
			t.Errorf("fallback column %d is not legal", col)
		}
	}
}

func TestEvaluate(t *testing.T) {
	empty := domain.NewBoard()
	if got := NewEngine(domain.PlayerOne, 4).Evaluate(empty); got != 0 {
		t.Errorf("empty board score = %d, want 0", got)
	}

	three := boardFromDrops(t, drop{0, domain.PlayerOne}, drop{1, domain.PlayerOne}, drop{2, domain.PlayerOne})
	tests := []struct {
		name  string
		board domain.Board
		self  domain.Cell
		want  int
	}{
		// window 0-3: three own + empty (5), window 1-4: two own + two empty (2)
		{"own open three", three, domain.PlayerOne, 7},
		// window 0-3: three opponent + empty
		{"opponent open three", three, domain.PlayerTwo, -4},
		// center 3*3, vertical windows 5 + 2
		{"center stack", boardFromDrops(t, drop{3, domain.PlayerOne}, drop{3, domain.PlayerOne}, drop{3, domain.PlayerOne}), domain.PlayerOne, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.self, 4)
			first := e.Evaluate(tt.board)
			if first != tt.want {
				t.Errorf("score = %d, want %d", first, tt.want)
			}
			if second := e.Evaluate(tt.board); second != first {
				t.Errorf("second evaluation %d differs from first %d", second, first)
			}
		})
	}
}

func TestTerminalScoresPreferFasterWins(t *testing.T) {
	b := boardFromDrops(t,
		drop{0, domain.PlayerOne}, drop{1, domain.PlayerOne},
		drop{2, domain.PlayerOne}, drop{3, domain.PlayerOne},
	)
	e := NewEngine(domain.PlayerOne, 4)

	shallow, _ := e.minimax(b, 1, -1<<62, 1<<62, true)
	deep, _ := e.minimax(b, 3, -1<<62, 1<<62, true)
	if shallow != MINIMAX_WIN+1 || deep != MINIMAX_WIN+3 {
		t.Errorf("win scores = %d, %d", shallow, deep)
	}

	loser := NewEngine(domain.PlayerTwo, 4)
	if got, col := loser.minimax(b, 2, -1<<62, 1<<62, true); got != MINIMAX_LOSS-2 || col != noMove {
		t.Errorf("loss score = %d, column %d", got, col)
	}
}

func TestParallelRootReportsIllegalMove(t *testing.T) {
	b := domain.NewBoard()
	for i := 0; i < domain.Rows; i++ {
		b.Drop(0, domain.Cell(1+i%2))
	}

	e := NewEngine(domain.PlayerOne, 2, WithParallel())
	if _, err := e.parallelRoot(b, []int{0, 1}); !errors.Is(err, domain.ErrColumnFull) {
		t.Errorf("error = %v, want ErrColumnFull", err)
	}
	col, err := e.parallelRoot(b, b.LegalMoves())
	if err != nil || !slices.Contains(b.LegalMoves(), col) {
		t.Errorf("parallelRoot = %d, %v", col, err)
	}
}
