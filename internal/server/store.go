package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/league-stats-service/internal/app/games"
	"github.com/preston-bernstein/league-stats-service/internal/app/leaderboards"
	"github.com/preston-bernstein/league-stats-service/internal/app/players"
	"github.com/preston-bernstein/league-stats-service/internal/app/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/app/teams"
	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

// LeagueStore is every read and write the services need, plus lifecycle.
type LeagueStore interface {
	seasons.Store
	teams.Store
	games.Store
	players.Store
	leaderboards.Store
	awards.Store
	Ping(ctx context.Context) error
	Close()
}

var openPostgres = func(ctx context.Context, cfg config.DatabaseConfig, recorder *metrics.Recorder) (LeagueStore, error) {
	return store.NewPostgres(ctx, cfg, recorder)
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (LeagueStore, error) {
	if cfg.Database.URL == "" {
		logging.Info(logger, "DATABASE_URL not set, serving fixture league", logging.FieldSource, "fixture")
		return store.NewFixtureStore(), nil
	}
	st, err := openPostgres(ctx, cfg.Database, recorder)
	if err != nil {
		return nil, err
	}
	logging.Info(logger, "connected to postgres", logging.FieldSource, "postgres")
	return st, nil
}
