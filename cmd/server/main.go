package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blog-platform-api/internal/api"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting blog platform API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = logger.FromConfig(cfg.Log.Level, cfg.Log.Format)

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Ensure indexes (slug uniqueness lives at the store level)
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.EnsureIndexes(indexCtx)
	cancelIndex()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database indexes")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize services
	services := service.NewServices(repos, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, db, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if err := db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}

	log.Info().Msg("Server exited gracefully")
}
