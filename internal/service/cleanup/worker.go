package cleanup

import (
	"context"
	"log"
	"sync"
	"time"
)

// IdleSessionRemover is implemented by game.SessionManager.
type IdleSessionRemover interface {
	CleanupIdleSessions(ctx context.Context) int
}

type Worker struct {
	Sessions IdleSessionRemover
	Interval time.Duration

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// DefaultInterval replaces a non-positive interval passed to NewWorker.
const DefaultInterval = 5 * time.Minute

func NewWorker(sessions IdleSessionRemover, interval time.Duration) *Worker {
	if interval <= 0 {
		log.Printf("[CLEANUP] Invalid interval %v, using %v", interval, DefaultInterval)
		interval = DefaultInterval
	}
	return &Worker{Sessions: sessions, Interval: interval, stop: make(chan struct{})}
}

// Start initiates the background ticker
func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.RunOnce()
			case <-w.stop:
				return
			}
		}
	}()
	log.Printf("[CLEANUP] Background worker started (every %v)", w.Interval)
}

// Stop halts the ticker and waits for a running pass to finish.
func (w *Worker) Stop() {
	w.once.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Worker) RunOnce() int {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	removed := w.Sessions.CleanupIdleSessions(ctx)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d idle sessions", removed)
	}
	return removed
}
