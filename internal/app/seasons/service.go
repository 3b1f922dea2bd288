package seasons

import (
	"context"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
)

// Store defines the season reads the service needs.
type Store interface {
	ListSeasons(ctx context.Context) ([]seasons.Season, error)
	ActiveSeason(ctx context.Context) (seasons.Season, error)
	Season(ctx context.Context, id string) (seasons.Season, error)
}

// Service coordinates season lookups using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Seasons returns every season, newest first.
func (s *Service) Seasons(ctx context.Context) ([]seasons.Season, error) {
	return s.store.ListSeasons(ctx)
}

// Active returns the current season; app.ErrNotFound when none is active.
func (s *Service) Active(ctx context.Context) (seasons.Season, error) {
	return s.store.ActiveSeason(ctx)
}

// SeasonByID returns a single season.
func (s *Service) SeasonByID(ctx context.Context, id string) (seasons.Season, error) {
	if err := app.ValidateID("season", id); err != nil {
		return seasons.Season{}, err
	}
	return s.store.Season(ctx, id)
}
