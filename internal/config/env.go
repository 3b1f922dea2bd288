package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// parseSection overlays environment values onto defaults. Unset variables
// keep their default; a parse failure discards the whole section.
func parseSection[T any](defaults T) T {
	section := defaults
	if err := env.Parse(&section); err != nil {
		return defaults
	}
	return section
}

// normalize replaces non-positive numbers and blank strings with defaults.
func (c *Config) normalize(d Config) {
	c.Port = stringOr(c.Port, d.Port)
	c.Metrics.Port = stringOr(c.Metrics.Port, d.Metrics.Port)
	c.Metrics.ServiceName = stringOr(c.Metrics.ServiceName, d.Metrics.ServiceName)
	c.League.Name = stringOr(c.League.Name, d.League.Name)

	if c.Database.MaxConns <= 0 {
		c.Database.MaxConns = d.Database.MaxConns
	}
	if c.Database.MinConns <= 0 || c.Database.MinConns > c.Database.MaxConns {
		c.Database.MinConns = min(d.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.QueryTimeout <= 0 {
		c.Database.QueryTimeout = d.Database.QueryTimeout
	}
	positive := []struct {
		val      *time.Duration
		fallback time.Duration
	}{
		{&c.HTTP.ReadTimeout, d.HTTP.ReadTimeout},
		{&c.HTTP.WriteTimeout, d.HTTP.WriteTimeout},
		{&c.HTTP.IdleTimeout, d.HTTP.IdleTimeout},
		{&c.HTTP.ShutdownTimeout, d.HTTP.ShutdownTimeout},
	}
	for _, p := range positive {
		if *p.val <= 0 {
			*p.val = p.fallback
		}
	}
	if c.Awards.Interval <= 0 {
		c.Awards.Interval = d.Awards.Interval
	}
	if c.Awards.BatchSize <= 0 {
		c.Awards.BatchSize = d.Awards.BatchSize
	}
	if c.Awards.PerfectGameMinAttempts <= 0 {
		c.Awards.PerfectGameMinAttempts = d.Awards.PerfectGameMinAttempts
	}
	if c.League.MinGamesForLeaderboard <= 0 {
		c.League.MinGamesForLeaderboard = d.League.MinGamesForLeaderboard
	}
	if c.League.LeaderboardLimit <= 0 {
		c.League.LeaderboardLimit = d.League.LeaderboardLimit
	}

	origins := make([]string, 0, len(c.CORS.AllowedOrigins))
	for _, o := range c.CORS.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = d.CORS.AllowedOrigins
	}
	c.CORS.AllowedOrigins = origins
}

func stringOr(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
