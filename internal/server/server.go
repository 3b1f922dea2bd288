package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/app/games"
	"github.com/preston-bernstein/league-stats-service/internal/app/leaderboards"
	"github.com/preston-bernstein/league-stats-service/internal/app/players"
	"github.com/preston-bernstein/league-stats-service/internal/app/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/app/teams"
	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/config"
	httpserver "github.com/preston-bernstein/league-stats-service/internal/http"
	"github.com/preston-bernstein/league-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/poller"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         LeagueStore
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New connects the configured store and wires services, the award sweeper
// and the HTTP server. Without DATABASE_URL the fixture league is served.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)
	st, err := openStore(ctx, cfg, logger, recorder)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, err
	}
	srv := newServerWithStore(cfg, logger, st, recorder)
	srv.metricsServer = metricsSrv
	srv.metricsStop = metricsShutdown
	return srv, nil
}

func newServerWithStore(cfg config.Config, logger *slog.Logger, st LeagueStore, recorder *metrics.Recorder) *Server {
	evaluator := badges.NewEvaluator(badges.Config{PerfectGameMinAttempts: cfg.Awards.PerfectGameMinAttempts})
	awardSvc := awards.NewService(st, evaluator, cfg.Awards.BatchSize, logger, recorder)

	var plr Poller
	if cfg.Awards.SweepEnabled {
		plr = poller.New(awardSvc, logger, recorder, cfg.Awards.Interval)
	}

	return &Server{
		cfg:        cfg,
		logger:     logger,
		metrics:    recorder,
		store:      st,
		httpServer: buildHTTPServer(cfg, st, evaluator, awardSvc, logger, recorder, plr),
		poller:     plr,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, st LeagueStore, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      st,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildServices(cfg config.Config, st LeagueStore, evaluator badges.Evaluator) handlers.Services {
	boards := leaderboards.Config{
		MinGames: cfg.League.MinGamesForLeaderboard,
		Limit:    cfg.League.LeaderboardLimit,
	}
	return handlers.Services{
		Seasons:      seasons.NewService(st),
		Teams:        teams.NewService(st),
		Games:        games.NewService(st, evaluator),
		Players:      players.NewService(st),
		Leaderboards: leaderboards.NewService(st, boards),
	}
}

func buildHTTPServer(cfg config.Config, st LeagueStore, evaluator badges.Evaluator, awardSvc *awards.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(buildServices(cfg, st, evaluator), handlers.Badges{
		Evaluator: evaluator,
		Catalog:   badges.DefaultCatalog(),
		Palette:   badges.DefaultPalette(),
	}, logger, statusFn)

	opts := httpserver.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
		Recorder:       recorder,
	}
	if cfg.Awards.AdminToken != "" {
		opts.Admin = handlers.NewAdminHandler(awardSvc, cfg.Awards.AdminToken, logger)
	}

	return newNetHTTPServer(cfg.Port, httpserver.NewRouter(handler, opts), cfg.HTTP)
}

// Run starts the sweeper and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.poller != nil {
		s.poller.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop award sweep", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// The store closes once the award sweep and HTTP server have drained.
	if s.store != nil {
		s.store.Close()
	}

	logging.Info(s.logger, "shutdown complete")
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.HTTP.ShutdownTimeout > 0 {
		return s.cfg.HTTP.ShutdownTimeout
	}
	return config.Defaults().HTTP.ShutdownTimeout
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler, cfg.HTTP)
	}

	return rec, metricsSrv, shutdown
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
