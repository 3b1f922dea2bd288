package players

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
)

// ProfileRecentGames is how many recent games a profile carries.
const ProfileRecentGames = 5

// Store defines the player reads the service needs.
type Store interface {
	Player(ctx context.Context, id string) (players.Player, error)
	ActiveSeason(ctx context.Context) (seasons.Season, error)
	Season(ctx context.Context, id string) (seasons.Season, error)
	PlayerSeasonStats(ctx context.Context, playerID, seasonID string) (players.SeasonStats, error)
	PlayerCareerStats(ctx context.Context, playerID string) (players.CareerStats, error)
	PlayerBadges(ctx context.Context, playerID string) ([]players.EarnedBadge, error)
	PlayerRecentGames(ctx context.Context, playerID string, limit int) ([]games.PlayerStatLine, error)
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// PlayerByID returns a single player.
func (s *Service) PlayerByID(ctx context.Context, id string) (players.Player, error) {
	if err := app.ValidateID("player", id); err != nil {
		return players.Player{}, err
	}
	return s.store.Player(ctx, id)
}

// Badges returns the player's earned badges, newest first.
func (s *Service) Badges(ctx context.Context, id string) ([]players.EarnedBadge, error) {
	if _, err := s.PlayerByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.PlayerBadges(ctx, id)
}

// RecentGames returns the player's latest stat lines with games joined.
func (s *Service) RecentGames(ctx context.Context, id string, limit int) ([]games.PlayerStatLine, error) {
	limit, err := app.Limit(limit)
	if err != nil {
		return nil, err
	}
	if _, err := s.PlayerByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.PlayerRecentGames(ctx, id, limit)
}

// Profile is everything the player page shows. Stats are nil when the
// player has no final games in scope.
type Profile struct {
	Player      players.Player         `json:"player"`
	Season      *seasons.Ref           `json:"season,omitempty"`
	SeasonStats *players.SeasonStats   `json:"seasonStats"`
	CareerStats *players.CareerStats   `json:"careerStats"`
	Badges      []players.EarnedBadge  `json:"badges"`
	RecentGames []games.PlayerStatLine `json:"recentGames"`
}

// Profile loads a player's page. Season stats use seasonID, or the active
// season when it is empty; a league with no active season yields no
// season stats rather than an error.
func (s *Service) Profile(ctx context.Context, id, seasonID string) (Profile, error) {
	if seasonID != "" {
		if err := app.ValidateID("season", seasonID); err != nil {
			return Profile{}, err
		}
	}
	player, err := s.PlayerByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	profile := Profile{Player: player}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		season, err := s.resolveSeason(gctx, seasonID)
		if err != nil || season == nil {
			return err
		}
		profile.Season = season
		st, err := s.store.PlayerSeasonStats(gctx, id, season.ID)
		if errors.Is(err, app.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		profile.SeasonStats = &st
		return nil
	})
	g.Go(func() error {
		career, err := s.store.PlayerCareerStats(gctx, id)
		if errors.Is(err, app.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		profile.CareerStats = &career
		return nil
	})
	g.Go(func() error {
		earned, err := s.store.PlayerBadges(gctx, id)
		profile.Badges = earned
		return err
	})
	g.Go(func() error {
		recent, err := s.store.PlayerRecentGames(gctx, id, ProfileRecentGames)
		profile.RecentGames = recent
		return err
	})
	if err := g.Wait(); err != nil {
		return Profile{}, err
	}
	if profile.Badges == nil {
		profile.Badges = []players.EarnedBadge{}
	}
	if profile.RecentGames == nil {
		profile.RecentGames = []games.PlayerStatLine{}
	}
	return profile, nil
}

func (s *Service) resolveSeason(ctx context.Context, seasonID string) (*seasons.Ref, error) {
	var (
		season seasons.Season
		err    error
	)
	if seasonID == "" {
		season, err = s.store.ActiveSeason(ctx)
		if errors.Is(err, app.ErrNotFound) {
			return nil, nil
		}
	} else {
		season, err = s.store.Season(ctx, seasonID)
	}
	if err != nil {
		return nil, err
	}
	ref := season.Ref()
	return &ref, nil
}
