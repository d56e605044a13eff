package domain

// Move records a single disk placement.
type Move struct {
	Player Cell `json:"player"`
	Column int  `json:"column"`
	Row    int  `json:"row"`
}

// Game is a single live game: the board plus whose turn it is and how it ended.
type Game struct {
	Board         Board
	CurrentPlayer Cell
	Status        GameStatus
	Winner        Cell
	MoveCount     int
	History       []Move
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: PlayerOne,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

// MakeMove drops the current player's disk in column and updates the status.
// The winner is checked before fullness since a winning move may fill the board.
func (g *Game) MakeMove(player Cell, column int) (Move, error) {
	if g.Status != StatusActive {
		return Move{}, ErrGameOver
	}

	if player != g.CurrentPlayer {
		return Move{}, ErrNotYourTurn
	}

	if column < 0 || column >= Columns {
		return Move{}, ErrInvalidMove
	}

	row := Rows - 1 - g.Board.Height(column)
	if !g.Board.Drop(column, player) {
		return Move{}, ErrColumnFull
	}

	move := Move{Player: player, Column: column, Row: row}
	g.History = append(g.History, move)
	g.MoveCount++

	if winner, ok := g.Board.Winner(); ok {
		g.Status = StatusWon
		g.Winner = winner
		return move, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return move, nil
	}

	g.CurrentPlayer = player.Opponent()

	return move, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
