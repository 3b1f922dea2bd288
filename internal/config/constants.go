package config

import "time"

const (
	defaultPort     = "4000"
	defaultLogLevel = "info"
	defaultLogFmt   = "text"

	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	defaultMetricsPort    = "9090"
	defaultMetricsService = "league-stats-service"

	defaultDBMaxConns     = int32(10)
	defaultDBMinConns     = int32(2)
	defaultDBQueryTimeout = 5 * time.Second

	// Final games are entered by hand after tip-off; a few minutes of lag is fine.
	defaultAwardInterval  = 5 * time.Minute
	defaultAwardBatchSize = 25
	defaultPerfectGameMin = 5

	defaultLeagueName             = "Malton Basketball League"
	defaultMinGamesForLeaderboard = 3
	defaultLeaderboardLimit       = 10
)
