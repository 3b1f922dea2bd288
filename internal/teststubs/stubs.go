package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

// StubAwarder is a test double for poller.Awarder. A non-nil Release blocks
// every sweep until it is closed.
type StubAwarder struct {
	Summary awards.Summary
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
	Release chan struct{}
}

// AwardPending returns the configured summary and error while tracking calls.
func (s *StubAwarder) AwardPending(ctx context.Context) (awards.Summary, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if s.Release != nil {
		<-s.Release
	}
	s.Calls.Add(1)
	return s.Summary, s.Err
}

// FailingStore fails every read and write with Err.
type FailingStore struct {
	Err error
}

func (f FailingStore) Ping(context.Context) error { return f.Err }

func (f FailingStore) Close() {}

func (f FailingStore) ListSeasons(context.Context) ([]seasons.Season, error) { return nil, f.Err }

func (f FailingStore) ActiveSeason(context.Context) (seasons.Season, error) {
	return seasons.Season{}, f.Err
}

func (f FailingStore) Season(context.Context, string) (seasons.Season, error) {
	return seasons.Season{}, f.Err
}

func (f FailingStore) TeamsBySeason(context.Context, string) ([]teams.Team, error) {
	return nil, f.Err
}

func (f FailingStore) Team(context.Context, string) (teams.Team, error) { return teams.Team{}, f.Err }

func (f FailingStore) TeamRoster(context.Context, string) ([]teams.RosterEntry, error) {
	return nil, f.Err
}

func (f FailingStore) ListGames(context.Context, games.Filter) ([]games.Game, error) {
	return nil, f.Err
}

func (f FailingStore) Game(context.Context, string) (games.Game, error) { return games.Game{}, f.Err }

func (f FailingStore) GameStatLines(context.Context, string) ([]games.PlayerStatLine, error) {
	return nil, f.Err
}

func (f FailingStore) Player(context.Context, string) (players.Player, error) {
	return players.Player{}, f.Err
}

func (f FailingStore) PlayerSeasonStats(context.Context, string, string) (players.SeasonStats, error) {
	return players.SeasonStats{}, f.Err
}

func (f FailingStore) PlayerCareerStats(context.Context, string) (players.CareerStats, error) {
	return players.CareerStats{}, f.Err
}

func (f FailingStore) PlayerBadges(context.Context, string) ([]players.EarnedBadge, error) {
	return nil, f.Err
}

func (f FailingStore) PlayerRecentGames(context.Context, string, int) ([]games.PlayerStatLine, error) {
	return nil, f.Err
}

func (f FailingStore) Leaderboard(context.Context, store.LeaderboardQuery) ([]players.LeaderboardEntry, error) {
	return nil, f.Err
}

func (f FailingStore) PendingAwardGames(context.Context, int) ([]games.Game, error) {
	return nil, f.Err
}

func (f FailingStore) AwardedBadgeIDs(context.Context, string, string) ([]string, error) {
	return nil, f.Err
}

func (f FailingStore) RecordGameAwards(context.Context, store.GameAwards) (int, error) {
	return 0, f.Err
}
