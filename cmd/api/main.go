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

	"github.com/joho/godotenv"

	"github.com/zhouzirui/solace/backend/internal/config"
	"github.com/zhouzirui/solace/backend/internal/handler"
	trackerModel "github.com/zhouzirui/solace/backend/internal/model/tracker"
	"github.com/zhouzirui/solace/backend/internal/repository"
	"github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/support"
	"github.com/zhouzirui/solace/backend/internal/service/tracker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	engine, err := support.NewService(ctx, support.Config{
		SentimentRefinement:     cfg.Engine.SentimentRefinement,
		NegativeThreshold:       cfg.Engine.NegativeThreshold,
		PositiveThreshold:       cfg.Engine.PositiveThreshold,
		CrisisOverridesExplicit: cfg.Engine.CrisisOverridesExplicit,
	})
	if err != nil {
		log.Fatalf("failed to initialize support engine: %v", err)
	}
	if engine.SentimentRefinement() {
		log.Printf("sentiment refinement enabled (thresholds %d/%d)", cfg.Engine.NegativeThreshold, cfg.Engine.PositiveThreshold)
	} else {
		log.Println("sentiment refinement disabled, keyword rules only")
	}

	chatService := chat.NewService()

	var moodStore trackerModel.Store
	if cfg.Tracker.PersistentStore() {
		store, err := repository.NewStore(ctx, cfg.Tracker.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect mood database: %v", err)
		}
		defer store.Close()
		moodStore = store.MoodEntry
		log.Println("mood tracker using PostgreSQL store")
	} else {
		moodStore = trackerModel.NewMemoryStore()
		log.Println("DATABASE_URL 未配置，情绪记录仅保存在内存中")
	}

	trackerService := tracker.NewService(moodStore, tracker.Config{
		HistoryLimit: cfg.Tracker.HistoryLimit,
		StatsWindow:  cfg.Tracker.StatsWindow,
	})

	router := handler.NewRouter(engine, chatService, trackerService, cfg.Server.StaticDir)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Solace backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Printf("server error: %v", err)
	}
}

// runServer blocks until ctx is cancelled or the listener fails.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
