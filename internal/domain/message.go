package domain

// Message types exchanged over the play socket.
const (
	MsgNewGame  = "new_game"
	MsgMakeMove = "make_move"
	MsgResign   = "resign"

	MsgGameStart = "game_start"
	MsgMove      = "move"
	MsgGameOver  = "game_over"
	MsgError     = "error"
)

// Reasons a game ended.
const (
	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
	ReasonResign      = "resign"
	ReasonError       = "error"
)

type ClientMessage struct {
	Type        string `json:"type"`
	Column      int    `json:"column"`
	HumanPlayer int    `json:"humanPlayer,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
}

type ServerMessage struct {
	Type       string  `json:"type"`
	Message    string  `json:"message,omitempty"`
	GameID     string  `json:"gameId,omitempty"`
	YourPlayer int     `json:"yourPlayer,omitempty"`
	Difficulty string  `json:"difficulty,omitempty"`
	Column     *int    `json:"column,omitempty"` // column 0 is valid, so nil means absent
	Row        *int    `json:"row,omitempty"`
	Player     int     `json:"player,omitempty"`
	Board      [][]int `json:"board,omitempty"`
	NextTurn   int     `json:"nextTurn,omitempty"`
	Winner     int     `json:"winner,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

// MoveMessage describes move m applied to g.
func MoveMessage(g *Game, m Move) ServerMessage {
	column, row := m.Column, m.Row
	msg := ServerMessage{
		Type:   MsgMove,
		Column: &column,
		Row:    &row,
		Player: int(m.Player),
		Board:  g.Board.Grid(),
	}
	if !g.IsFinished() {
		msg.NextTurn = int(g.CurrentPlayer)
	}
	return msg
}

func ErrorMessage(err error) ServerMessage {
	return ServerMessage{Type: MsgError, Message: err.Error()}
}
