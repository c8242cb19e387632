package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/maxviazov/football-stats-service/internal/config"
	"github.com/maxviazov/football-stats-service/internal/handler"
	"github.com/maxviazov/football-stats-service/internal/logger"
	"github.com/maxviazov/football-stats-service/internal/metrics"
	"github.com/maxviazov/football-stats-service/internal/mockaroo"
	"github.com/maxviazov/football-stats-service/internal/repository"
	"github.com/maxviazov/football-stats-service/internal/repository/postgres"
	"github.com/maxviazov/football-stats-service/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	repo, err := repository.New(context.Background(), cfg, &appLogger)
	if err != nil {
		log.Fatalf("❌ Postgres connection failed: %v", err)
	}
	defer repo.Close()

	if err := repository.Migrate(cfg, &appLogger); err != nil {
		log.Fatalf("❌ Migrations failed: %v", err)
	}

	pool := repo.Pool()
	games := postgres.NewGameRepository(pool)
	players := postgres.NewPlayerRepository(pool)
	admin := postgres.NewAdminRepository(pool)
	pinger := postgres.NewPinger(pool)
	tx := postgres.NewTxManager(pool)

	source := mockaroo.NewClient(
		cfg.Mockaroo.BaseURL,
		cfg.Mockaroo.APIKey,
		time.Duration(cfg.Mockaroo.Timeout)*time.Second,
		appLogger,
	)

	gameSvc := service.NewGameService(games, players, tx, appLogger)
	playerSvc := service.NewPlayerService(players, games, appLogger)
	seedSvc := service.NewSeedService(source, games, players, admin, pinger, tx, appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	m := metrics.New()
	engine.Use(m.Middleware())
	engine.GET("/metrics", m.Handler())

	handler.Register(engine, pinger, gameSvc, playerSvc, seedSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		appLogger.Info().Int("port", cfg.Server.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("server stopped")
}
