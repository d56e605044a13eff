package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iamasit07/connectfour/internal/config"
	"github.com/iamasit07/connectfour/internal/service/cleanup"
	"github.com/iamasit07/connectfour/internal/service/game"
	transportHttp "github.com/iamasit07/connectfour/internal/transport/http"
	"github.com/iamasit07/connectfour/internal/transport/http/middleware"
	"github.com/iamasit07/connectfour/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	settings, err := cfg.BotSettings()
	if err != nil {
		log.Fatalf("Invalid bot settings: %v", err)
	}

	// 1. Initialize Services (Business Logic Layer)
	sessionManager := game.NewSessionManager(cfg.SessionIdleTimeout)
	gameService := game.NewService(sessionManager, settings)
	connManager := websocket.NewConnectionManager()

	// 2. Initialize Background Workers
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval)
	go cleanupWorker.Start(ctx)

	// 3. Initialize HTTP Handlers (API Layer)
	engineHandler := transportHttp.NewEngineHandler(settings, cfg.MaxDepth)
	sessionsHandler := transportHttp.NewSessionsHandler(sessionManager)
	wsHandler := websocket.NewHandler(connManager, gameService)

	// 4. Setup Gin Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	transportHttp.RegisterRoutes(router, engineHandler, sessionsHandler)

	// WebSocket Route
	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[SERVER] Starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[SERVER] Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[SERVER] Shutting down...")

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("[SERVER] Forced to shutdown: %v", err)
	}

	log.Println("[SERVER] Exited gracefully")
}
