package domain

// Cell is the content of a single board square.
type Cell int8

const (
	Empty     Cell = 0
	PlayerOne Cell = 1
	PlayerTwo Cell = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// IsPlayer reports whether c is one of the two players.
func (c Cell) IsPlayer() bool {
	return c == PlayerOne || c == PlayerTwo
}

// Opponent returns the other player. Empty has no opponent and is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "PlayerOne"
	case PlayerTwo:
		return "PlayerTwo"
	case Empty:
		return "Empty"
	}
	return "Cell(?)"
}

// ParsePlayer converts the wire/flag representation (1 or 2) into a player cell.
func ParsePlayer(v int) (Cell, error) {
	if v != int(PlayerOne) && v != int(PlayerTwo) {
		return Empty, ErrInvalidPlayer
	}
	return Cell(v), nil
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrNotYourTurn   Error = "not your turn"
	ErrGameOver      Error = "game is over"
	ErrNoLegalMoves  Error = "no legal moves"
	ErrInvalidBoard  Error = "invalid board"
	ErrInvalidPlayer Error = "invalid player"
)
