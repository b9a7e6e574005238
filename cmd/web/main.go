package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/synergyvets/careers-site/internal/api"
	"github.com/synergyvets/careers-site/internal/core/service"
	"github.com/synergyvets/careers-site/internal/infrastructure/backend"
	"github.com/synergyvets/careers-site/internal/infrastructure/config"
	redisdb "github.com/synergyvets/careers-site/internal/infrastructure/db/redis"
	"github.com/synergyvets/careers-site/pkg/logger"
)

const shutdownGrace = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	apiClient := backend.NewClient(cfg.APIBaseURL(), logger.Component("backend"))
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL, logger.Component("sessions"))
	jobsCache := redisdb.NewJobsCache(rdb, cfg.JobsCacheTTL, logger.Component("jobs_cache"))

	sessions := service.NewSessionManager(sessionStore, apiClient, logger.Component("session_manager"))
	go sessions.Run(ctx)

	board := service.NewJobBoard(apiClient, jobsCache, cfg.PageSize, logger.Component("job_board"))

	e, err := api.NewRouter(sessions, board, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("api", cfg.APIBaseURL()).Msg("careers site listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
