// Package leaderboards ranks a season's players by category.
package leaderboards

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

// Store defines the leaderboard read the service needs.
type Store interface {
	Leaderboard(ctx context.Context, q store.LeaderboardQuery) ([]players.LeaderboardEntry, error)
}

// Config holds the league's leaderboard rules.
type Config struct {
	// MinGames keeps players with few games off the board.
	MinGames int
	// Limit is used when a request does not name one.
	Limit int
}

// Service coordinates leaderboard reads using a Store.
type Service struct {
	store Store
	cfg   Config
}

// NewService constructs a Service. Non-positive config values fall back to
// one game and app.DefaultLimit.
func NewService(s Store, cfg Config) *Service {
	if cfg.MinGames <= 0 {
		cfg.MinGames = 1
	}
	if cfg.Limit <= 0 || cfg.Limit > app.MaxLimit {
		cfg.Limit = app.DefaultLimit
	}
	return &Service{store: s, cfg: cfg}
}

// Board is one ranked category of a season.
type Board struct {
	SeasonID string                      `json:"seasonId"`
	Category players.LeaderboardCategory `json:"category"`
	Label    string                      `json:"label"`
	Short    string                      `json:"shortLabel"`
	MinGames int                         `json:"minGames"`
	Entries  []players.LeaderboardEntry  `json:"entries"`
}

// Leaderboard returns entries ranked within limit in category. A zero limit
// uses the configured default.
func (s *Service) Leaderboard(ctx context.Context, seasonID string, category players.LeaderboardCategory, limit int) (Board, error) {
	if err := app.ValidateID("season", seasonID); err != nil {
		return Board{}, err
	}
	if !category.Valid() {
		return Board{}, eris.Wrapf(app.ErrInvalidArgument, "unknown leaderboard category %q", category)
	}
	if limit == 0 {
		limit = s.cfg.Limit
	}
	limit, err := app.Limit(limit)
	if err != nil {
		return Board{}, err
	}

	entries, err := s.store.Leaderboard(ctx, store.LeaderboardQuery{
		SeasonID: seasonID,
		Category: category,
		Limit:    limit,
		MinGames: s.cfg.MinGames,
	})
	if err != nil {
		return Board{}, err
	}
	if entries == nil {
		entries = []players.LeaderboardEntry{}
	}
	label, short := category.Label()
	return Board{
		SeasonID: seasonID,
		Category: category,
		Label:    label,
		Short:    short,
		MinGames: s.cfg.MinGames,
		Entries:  entries,
	}, nil
}
