package config

import "time"

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Log      LogConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
	Awards   AwardsConfig
	League   LeagueConfig
	CORS     CORSConfig
	HTTP     HTTPConfig
}

type serverSection struct {
	Port string `env:"PORT"`
}

// LogConfig selects log level and handler format.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
}

// DatabaseConfig points at the league Postgres database. An empty URL runs
// the service against the in-memory fixture league.
type DatabaseConfig struct {
	URL          string        `env:"DATABASE_URL"`
	MaxConns     int32         `env:"DATABASE_MAX_CONNS"`
	MinConns     int32         `env:"DATABASE_MIN_CONNS"`
	QueryTimeout time.Duration `env:"DATABASE_QUERY_TIMEOUT"`
}

// AwardsConfig controls the background badge sweep. AdminToken guards the
// manual award endpoints, which stay unmounted while it is empty.
type AwardsConfig struct {
	SweepEnabled           bool          `env:"AWARD_SWEEP_ENABLED"`
	Interval               time.Duration `env:"AWARD_INTERVAL"`
	BatchSize              int           `env:"AWARD_BATCH_SIZE"`
	PerfectGameMinAttempts int           `env:"PERFECT_GAME_MIN_ATTEMPTS"`
	AdminToken             string        `env:"ADMIN_TOKEN"`
}

// LeagueConfig carries league-wide display settings.
type LeagueConfig struct {
	Name                   string `env:"LEAGUE_NAME"`
	MinGamesForLeaderboard int    `env:"MIN_GAMES_FOR_LEADERBOARD"`
	LeaderboardLimit       int    `env:"LEADERBOARD_LIMIT"`
}

// HTTPConfig bounds request handling and graceful shutdown.
type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Defaults returns the configuration used when no environment is set.
func Defaults() Config {
	return Config{
		Port: defaultPort,
		Log:  LogConfig{Level: defaultLogLevel, Format: defaultLogFmt},
		Database: DatabaseConfig{
			MaxConns:     defaultDBMaxConns,
			MinConns:     defaultDBMinConns,
			QueryTimeout: defaultDBQueryTimeout,
		},
		Metrics: loadMetricsDefaults(),
		Awards: AwardsConfig{
			SweepEnabled:           true,
			Interval:               defaultAwardInterval,
			BatchSize:              defaultAwardBatchSize,
			PerfectGameMinAttempts: defaultPerfectGameMin,
		},
		League: LeagueConfig{
			Name:                   defaultLeagueName,
			MinGamesForLeaderboard: defaultMinGamesForLeaderboard,
			LeaderboardLimit:       defaultLeaderboardLimit,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		HTTP: HTTPConfig{
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}

// Load reads configuration from environment variables with sensible defaults.
// A malformed variable resets only its own section to defaults.
func Load() Config {
	d := Defaults()
	cfg := Config{
		Port:     parseSection(serverSection{Port: d.Port}).Port,
		Log:      parseSection(d.Log),
		Database: parseSection(d.Database),
		Metrics:  parseSection(d.Metrics),
		Awards:   parseSection(d.Awards),
		League:   parseSection(d.League),
		CORS:     parseSection(d.CORS),
		HTTP:     parseSection(d.HTTP),
	}
	cfg.normalize(d)
	return cfg
}
