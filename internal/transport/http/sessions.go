package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connectfour/internal/service/game"
)

type SessionsHandler struct {
	SessionManager *game.SessionManager
}

func NewSessionsHandler(sm *game.SessionManager) *SessionsHandler {
	return &SessionsHandler{SessionManager: sm}
}

// GetActiveSessions returns all games currently being played against the computer
func (h *SessionsHandler) GetActiveSessions(c *gin.Context) {
	c.JSON(http.StatusOK, h.SessionManager.Active())
}
