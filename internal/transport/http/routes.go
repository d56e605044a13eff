package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the health check and the JSON API on router.
func RegisterRoutes(router gin.IRouter, engine *EngineHandler, sessions *SessionsHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := router.Group("/api")
	{
		api.POST("/move", engine.Move)
		api.POST("/analyze", engine.Analyze)
		api.POST("/render", engine.Render)
		api.GET("/sessions", sessions.GetActiveSessions)
	}
}
