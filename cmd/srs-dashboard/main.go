package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/config"
	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/dataset"
	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/observability"
	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.AppEnv)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := dataset.Load(cfg.RatingsCSV, cfg.TeamMetadataCSV)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load dataset")
	}
	observability.DatasetRows.Set(float64(store.Len()))
	logger.Info().
		Int("ratings", store.Len()).
		Int("conferences", len(store.Conferences())).
		Int("seasons", len(store.Seasons())).
		Msg("dataset loaded")

	srv := server.New(cfg, store, logger)
	logger.Info().Str("addr", cfg.ListenAddr()).Msg("dashboard listening")

	if err := srv.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
