package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-minimax/internal/config"
	"github.com/iamasit07/connect4-minimax/internal/repository/redis"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
	"github.com/iamasit07/connect4-minimax/internal/service/cleanup"
	"github.com/iamasit07/connect4-minimax/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-minimax/internal/transport/http"
	"github.com/iamasit07/connect4-minimax/internal/transport/websocket"
	"github.com/iamasit07/connect4-minimax/pkg/auth"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()

	// 1. Session cache (optional)
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache game.Cache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	// 2. Services
	searchCfg := searchConfig(cfg)
	log.Printf("Search depth %d, scores black=%d white=%d draw=%d, parallel=%t",
		searchCfg.Depth, searchCfg.BlackWinScore, searchCfg.WhiteWinScore, searchCfg.DrawScore, searchCfg.Parallel)

	sessionManager := game.NewSessionManager(searchCfg, cache, cfg.SessionTTL)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.GameTokenTTL)

	// 3. Background workers
	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval)
	cleanupWorker.Start()
	defer cleanupWorker.Stop()

	// 4. Handlers
	gameHandler := transportHttp.NewGameHandler(sessionManager, issuer)
	wsHandler := websocket.NewHandler(websocket.NewConnectionManager(), sessionManager, issuer)

	router := transportHttp.NewRouter(gameHandler, wsHandler.Serve, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

// searchConfig builds the engine configuration from the loaded settings.
func searchConfig(cfg *config.Config) bot.Config {
	return bot.Config{
		Depth:             cfg.SearchDepth,
		BlackWinScore:     cfg.BlackWinScore,
		WhiteWinScore:     cfg.WhiteWinScore,
		DrawScore:         cfg.DrawScore,
		UndeterminedScore: cfg.UndeterminedScore,
		Parallel:          cfg.SearchParallel,
		Verbose:           cfg.SearchVerbose,
	}
}
