package game

import (
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/bot"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Sessions *SessionManager
	Settings bot.Settings // defaults for the computer player
}

func NewService(sessions *SessionManager, settings bot.Settings) *Service {
	return &Service{
		Sessions: sessions,
		Settings: settings,
	}
}

// NewGame creates a session where the human plays human and the computer the
// other side. An empty difficulty uses the configured default.
func (s *Service) NewGame(human domain.Cell, difficulty string) (*Session, []domain.ServerMessage, error) {
	if !human.IsPlayer() {
		return nil, nil, domain.ErrInvalidPlayer
	}

	settings := s.Settings
	if difficulty != "" {
		d, err := bot.ParseDifficulty(difficulty)
		if err != nil {
			return nil, nil, err
		}
		settings.Difficulty = d
		settings.Depth = nil
	}
	if settings.Difficulty == "" {
		settings.Difficulty = bot.Default
	}

	computer, err := bot.New(human.Opponent(), settings)
	if err != nil {
		return nil, nil, err
	}

	session := s.Sessions.CreateSession(human, computer, string(settings.Difficulty))
	msgs, err := session.Start()
	if err != nil {
		s.Sessions.RemoveSession(session.ID)
		return nil, nil, err
	}
	return session, msgs, nil
}
