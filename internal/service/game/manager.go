package game

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/bot"
)

// SessionManager manages active game sessions
type SessionManager struct {
	sessions    map[string]*Session // gameID → Session
	mu          sync.RWMutex
	idleTimeout time.Duration
}

func NewSessionManager(idleTimeout time.Duration) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
	}
}

func (sm *SessionManager) CreateSession(human domain.Cell, b bot.Player, difficulty string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session := NewSession(human, b, difficulty)
	sm.sessions[session.ID] = session

	log.Printf("[SESSION] Created session %s: human plays %s against %s", session.ID, human, difficulty)
	return session
}

func (sm *SessionManager) GetSession(gameID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[gameID]; !exists {
		return fmt.Errorf("session %s not found", gameID)
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	delete(sm.sessions, gameID)
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Summary is the public view of a session.
type Summary struct {
	GameID      string `json:"gameId"`
	HumanPlayer int    `json:"humanPlayer"`
	Difficulty  string `json:"difficulty"`
	Status      string `json:"status"`
	MoveCount   int    `json:"moveCount"`
	StartedAt   string `json:"startedAt"`
}

// Active lists sessions whose game is still being played, oldest first.
func (sm *SessionManager) Active() []Summary {
	sm.mu.RLock()
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	summaries := make([]Summary, 0, len(sessions))
	for _, s := range sessions {
		s.mu.Lock()
		if !s.finishedLocked() {
			summaries = append(summaries, Summary{
				GameID:      s.ID,
				HumanPlayer: int(s.Human),
				Difficulty:  s.Difficulty,
				Status:      string(s.Game.Status),
				MoveCount:   s.Game.MoveCount,
				StartedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		s.mu.Unlock()
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].StartedAt != summaries[j].StartedAt {
			return summaries[i].StartedAt < summaries[j].StartedAt
		}
		return summaries[i].GameID < summaries[j].GameID
	})
	return summaries
}

// CleanupIdle removes finished sessions and sessions with no activity for
// longer than the idle timeout. It returns how many were removed.
func (sm *SessionManager) CleanupIdle(now time.Time) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	for gameID, session := range sm.sessions {
		session.mu.Lock()
		stale := session.finishedLocked() || now.Sub(session.LastActivity) > sm.idleTimeout
		session.mu.Unlock()

		if stale {
			delete(sm.sessions, gameID)
			count++
		}
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", count)
	}
	return count
}
