package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/game"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	GameService *game.Service
	Upgrader    websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. Origins are checked by the CORS
// middleware in front of it.
func NewHandler(cm *ConnectionManager, gs *game.Service) *Handler {
	return &Handler{
		ConnManager: cm,
		GameService: gs,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the request and serves one play connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// connState is what a single connection is currently playing.
type connState struct {
	id      string
	session *game.Session
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	state := &connState{id: uuid.NewString()}
	h.ConnManager.AddConnection(state.id, conn)
	log.Printf("[WS] Connection %s opened", state.id)

	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := h.ConnManager.Ping(state.id); err != nil {
					return
				}
			}
		}
	}()

	// Cleanup on exit
	defer func() {
		close(done)
		h.endSession(state)
		h.ConnManager.RemoveConnection(state.id)
		log.Printf("[WS] Connection %s closed", state.id)
	}()

	// Main Message Loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Connection %s dropped unexpectedly: %v", state.id, err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.send(state.id, domain.ServerMessage{Type: domain.MsgError, Message: "invalid message format"})
			continue
		}

		h.processMessage(state, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(state *connState, msg domain.ClientMessage) {
	switch msg.Type {
	case domain.MsgNewGame:
		human := domain.PlayerOne
		if msg.HumanPlayer != 0 {
			p, err := domain.ParsePlayer(msg.HumanPlayer)
			if err != nil {
				h.send(state.id, domain.ErrorMessage(err))
				return
			}
			human = p
		}

		// A new game replaces whatever this connection was playing.
		h.endSession(state)

		session, msgs, err := h.GameService.NewGame(human, msg.Difficulty)
		if err != nil {
			h.send(state.id, domain.ErrorMessage(err))
			return
		}
		state.session = session
		h.send(state.id, msgs...)

	case domain.MsgMakeMove:
		if state.session == nil {
			h.send(state.id, domain.ServerMessage{Type: domain.MsgError, Message: "Game not found"})
			return
		}

		msgs, err := state.session.HandleMove(msg.Column)
		h.send(state.id, msgs...)
		if err != nil {
			h.send(state.id, domain.ErrorMessage(err))
		}

	case domain.MsgResign:
		if state.session == nil {
			h.send(state.id, domain.ServerMessage{Type: domain.MsgError, Message: "Game not found"})
			return
		}

		over, err := state.session.Resign()
		if err != nil {
			h.send(state.id, domain.ErrorMessage(err))
			return
		}
		h.send(state.id, over)

	default:
		h.send(state.id, domain.ServerMessage{Type: domain.MsgError, Message: "unknown message type " + msg.Type})
	}
}

func (h *Handler) send(connID string, msgs ...domain.ServerMessage) {
	for _, m := range msgs {
		if err := h.ConnManager.SendMessage(connID, m); err != nil {
			log.Printf("[WS] Write to %s failed: %v", connID, err)
			return
		}
	}
}

func (h *Handler) endSession(state *connState) {
	if state.session == nil {
		return
	}
	_ = h.GameService.Sessions.RemoveSession(state.session.ID)
	state.session = nil
}
