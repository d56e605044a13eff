package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connectfour/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
}

func NewWorker(sm *game.SessionManager, interval time.Duration) *Worker {
	return &Worker{SessionManager: sm, Interval: interval}
}

// Start runs a cleanup right away and then on every tick until ctx is done.
// It blocks, so callers usually run it in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	log.Println("[CLEANUP] Background worker started")
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	if removed := w.SessionManager.CleanupIdle(time.Now()); removed > 0 {
		log.Printf("[CLEANUP] Removed %d idle or finished sessions", removed)
	}
}
