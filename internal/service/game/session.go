package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/bot"
)

// Session is one human playing the computer.
type Session struct {
	ID           string
	Game         *domain.Game
	Human        domain.Cell
	Bot          bot.Player
	Difficulty   string
	Reason       string
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time
	mu           sync.Mutex
}

func NewSession(human domain.Cell, b bot.Player, difficulty string) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.NewString(),
		Game:         domain.NewGame(),
		Human:        human,
		Bot:          b,
		Difficulty:   difficulty,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Start announces the game and, when the computer holds PlayerOne, plays its
// opening move.
func (s *Session) Start() ([]domain.ServerMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := []domain.ServerMessage{{
		Type:       domain.MsgGameStart,
		GameID:     s.ID,
		YourPlayer: int(s.Human),
		Difficulty: s.Difficulty,
		Board:      s.Game.Board.Grid(),
		NextTurn:   int(s.Game.CurrentPlayer),
	}}

	if s.Game.CurrentPlayer == s.Bot.Cell() {
		botMsgs, err := s.botMoveLocked()
		msgs = append(msgs, botMsgs...)
		if err != nil {
			return msgs, err
		}
	}

	return msgs, nil
}

// HandleMove plays the human's column and the computer's reply. It returns
// every message produced, in order.
func (s *Session) HandleMove(column int) ([]domain.ServerMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LastActivity = time.Now()

	if s.finishedLocked() {
		return nil, domain.ErrGameOver
	}

	move, err := s.Game.MakeMove(s.Human, column)
	if err != nil {
		return nil, err
	}

	msgs := []domain.ServerMessage{domain.MoveMessage(s.Game, move)}
	if s.Game.IsFinished() {
		return append(msgs, s.finishLocked()), nil
	}

	botMsgs, err := s.botMoveLocked()
	return append(msgs, botMsgs...), err
}

// Resign ends the game in the computer's favour.
func (s *Session) Resign() (domain.ServerMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finishedLocked() {
		return domain.ServerMessage{}, domain.ErrGameOver
	}

	s.Game.Status = domain.StatusWon
	s.Game.Winner = s.Bot.Cell()
	s.Reason = domain.ReasonResign
	s.FinishedAt = time.Now()

	log.Printf("[SESSION] Game %s resigned after %d moves", s.ID, s.Game.MoveCount)

	return domain.ServerMessage{
		Type:   domain.MsgGameOver,
		GameID: s.ID,
		Winner: int(s.Game.Winner),
		Reason: s.Reason,
		Board:  s.Game.Board.Grid(),
	}, nil
}

func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finishedLocked()
}

// finishedLocked reports whether the session has ended, including games
// aborted by a computer failure. Caller must hold s.mu.
func (s *Session) finishedLocked() bool {
	return !s.FinishedAt.IsZero()
}

// botMoveLocked lets the computer reply. Caller must hold s.mu.
func (s *Session) botMoveLocked() ([]domain.ServerMessage, error) {
	column, err := s.Bot.BestMove(s.Game.Board)
	if err != nil {
		return s.abortLocked(fmt.Errorf("computer move: %w", err))
	}

	move, err := s.Game.MakeMove(s.Bot.Cell(), column)
	if err != nil {
		return s.abortLocked(fmt.Errorf("computer move %d: %w", column, err))
	}

	msgs := []domain.ServerMessage{domain.MoveMessage(s.Game, move)}
	if s.Game.IsFinished() {
		msgs = append(msgs, s.finishLocked())
	}
	return msgs, nil
}

// abortLocked ends a game the computer could not continue, so the session
// never waits on a turn that will not come. Caller must hold s.mu.
func (s *Session) abortLocked(err error) ([]domain.ServerMessage, error) {
	s.FinishedAt = time.Now()
	s.Reason = domain.ReasonError

	log.Printf("[SESSION] Game %s aborted after %d moves: %v", s.ID, s.Game.MoveCount, err)

	return []domain.ServerMessage{{
		Type:    domain.MsgGameOver,
		Message: err.Error(),
		GameID:  s.ID,
		Reason:  s.Reason,
		Board:   s.Game.Board.Grid(),
	}}, err
}

// finishLocked records how the game ended. Caller must hold s.mu.
func (s *Session) finishLocked() domain.ServerMessage {
	s.FinishedAt = time.Now()
	s.Reason = domain.ReasonConnectFour
	if s.Game.Status == domain.StatusDraw {
		s.Reason = domain.ReasonDraw
	}

	log.Printf("[SESSION] Game %s finished (%s) after %d moves", s.ID, s.Reason, s.Game.MoveCount)

	return domain.ServerMessage{
		Type:   domain.MsgGameOver,
		GameID: s.ID,
		Winner: int(s.Game.Winner),
		Reason: s.Reason,
		Board:  s.Game.Board.Grid(),
	}
}
