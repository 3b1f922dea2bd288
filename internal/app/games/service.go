package games

import (
	"context"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

// Store defines the game reads the service needs.
type Store interface {
	ListGames(ctx context.Context, f games.Filter) ([]games.Game, error)
	Game(ctx context.Context, id string) (games.Game, error)
	GameStatLines(ctx context.Context, gameID string) ([]games.PlayerStatLine, error)
}

// Service coordinates game operations using a Store.
type Service struct {
	store     Store
	evaluator badges.Evaluator
}

// NewService constructs a Service with the provided Store and badge rules.
func NewService(store Store, evaluator badges.Evaluator) *Service {
	return &Service{store: store, evaluator: evaluator}
}

// Games lists games matching f. A zero limit returns every match.
func (s *Service) Games(ctx context.Context, f games.Filter) ([]games.Game, error) {
	if f.SeasonID != "" {
		if err := app.ValidateID("season", f.SeasonID); err != nil {
			return nil, err
		}
	}
	if f.Limit != 0 {
		limit, err := app.Limit(f.Limit)
		if err != nil {
			return nil, err
		}
		f.Limit = limit
	}
	return s.store.ListGames(ctx, f)
}

// GameByID returns a single game with its teams and season.
func (s *Service) GameByID(ctx context.Context, id string) (games.Game, error) {
	if err := app.ValidateID("game", id); err != nil {
		return games.Game{}, err
	}
	return s.store.Game(ctx, id)
}

// BoxScoreLine is a stat line with its shooting splits and the badges it
// qualifies for. Badges here are display only; awarding is separate.
type BoxScoreLine struct {
	games.PlayerStatLine
	Splits stats.Splits `json:"splits"`
	Badges []badges.ID  `json:"badges"`
}

// TeamBox is one side of a box score.
type TeamBox struct {
	Team   *teams.Ref     `json:"team"`
	Lines  []BoxScoreLine `json:"lines"`
	Totals games.StatLine `json:"totals"`
	Splits stats.Splits   `json:"splits"`
}

// BoxScore is a game and both teams' stat lines.
type BoxScore struct {
	Game games.Game `json:"game"`
	Home TeamBox    `json:"home"`
	Away TeamBox    `json:"away"`
}

// BoxScore loads a game and splits its stat lines by team, top scorers first.
func (s *Service) BoxScore(ctx context.Context, id string) (BoxScore, error) {
	game, err := s.GameByID(ctx, id)
	if err != nil {
		return BoxScore{}, err
	}
	lines, err := s.store.GameStatLines(ctx, id)
	if err != nil {
		return BoxScore{}, err
	}

	box := BoxScore{
		Game: game,
		Home: TeamBox{Team: game.HomeTeam, Lines: []BoxScoreLine{}},
		Away: TeamBox{Team: game.AwayTeam, Lines: []BoxScoreLine{}},
	}
	for _, line := range lines {
		annotated := BoxScoreLine{
			PlayerStatLine: line,
			Splits:         stats.SplitsOf(line.StatLine),
			Badges:         s.evaluator.Evaluate(line.StatLine),
		}
		switch line.TeamID {
		case game.HomeTeamID:
			box.Home.add(annotated)
		case game.AwayTeamID:
			box.Away.add(annotated)
		}
	}
	box.Home.Splits = stats.SplitsOf(box.Home.Totals)
	box.Away.Splits = stats.SplitsOf(box.Away.Totals)
	return box, nil
}

func (b *TeamBox) add(line BoxScoreLine) {
	b.Lines = append(b.Lines, line)
	b.Totals = stats.Sum(b.Totals, line.StatLine)
}
