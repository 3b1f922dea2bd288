package teams

import (
	"context"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// Store defines the team reads the service needs.
type Store interface {
	TeamsBySeason(ctx context.Context, seasonID string) ([]teams.Team, error)
	Team(ctx context.Context, id string) (teams.Team, error)
	TeamRoster(ctx context.Context, teamID string) ([]teams.RosterEntry, error)
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns a season's teams by name.
func (s *Service) Teams(ctx context.Context, seasonID string) ([]teams.Team, error) {
	if err := app.ValidateID("season", seasonID); err != nil {
		return nil, err
	}
	return s.store.TeamsBySeason(ctx, seasonID)
}

// TeamByID returns a single team.
func (s *Service) TeamByID(ctx context.Context, id string) (teams.Team, error) {
	if err := app.ValidateID("team", id); err != nil {
		return teams.Team{}, err
	}
	return s.store.Team(ctx, id)
}

// Roster returns the team's players. Unknown teams are app.ErrNotFound
// rather than an empty roster.
func (s *Service) Roster(ctx context.Context, teamID string) ([]teams.RosterEntry, error) {
	if _, err := s.TeamByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.store.TeamRoster(ctx, teamID)
}
