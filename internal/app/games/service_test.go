package games

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

type stubStore struct {
	games      []games.Game
	lines      []games.PlayerStatLine
	lastFilter games.Filter
	linesErr   error
}

func (s *stubStore) ListGames(_ context.Context, f games.Filter) ([]games.Game, error) {
	s.lastFilter = f
	return s.games, nil
}

func (s *stubStore) Game(_ context.Context, id string) (games.Game, error) {
	for _, g := range s.games {
		if g.ID == id {
			return g, nil
		}
	}
	return games.Game{}, app.ErrNotFound
}

func (s *stubStore) GameStatLines(context.Context, string) ([]games.PlayerStatLine, error) {
	return s.lines, s.linesErr
}

func newService(store *stubStore) *Service {
	return NewService(store, badges.NewEvaluator(badges.DefaultConfig()))
}

func TestServiceGamesValidatesFilter(t *testing.T) {
	store := &stubStore{games: []games.Game{{ID: "g1"}}}
	svc := newService(store)

	if _, err := svc.Games(context.Background(), games.Filter{SeasonID: "Bad Season"}); !errors.Is(err, app.ErrInvalidArgument) {
		t.Fatalf("expected invalid season, got %v", err)
	}
	if _, err := svc.Games(context.Background(), games.Filter{Limit: 1000}); !errors.Is(err, app.ErrInvalidArgument) {
		t.Fatalf("expected invalid limit, got %v", err)
	}

	got, err := svc.Games(context.Background(), games.Filter{SeasonID: "s1", Limit: 5})
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected games %+v err=%v", got, err)
	}
	if store.lastFilter.Limit != 5 || store.lastFilter.SeasonID != "s1" {
		t.Fatalf("unexpected filter passed to store: %+v", store.lastFilter)
	}

	_, _ = svc.Games(context.Background(), games.Filter{})
	if store.lastFilter.Limit != 0 {
		t.Fatalf("expected zero limit to mean no limit, got %d", store.lastFilter.Limit)
	}
}

func TestServiceBoxScoreSplitsTeamsAndAnnotates(t *testing.T) {
	store := &stubStore{
		games: []games.Game{{
			ID:         "g1",
			HomeTeamID: "home",
			AwayTeamID: "away",
			HomeTeam:   &teams.Ref{ID: "home", Name: "Hawks"},
			AwayTeam:   &teams.Ref{ID: "away", Name: "Runners"},
		}},
		lines: []games.PlayerStatLine{
			{PlayerID: "p1", TeamID: "home", StatLine: games.StatLine{Points: 31, Rebounds: 12, FieldGoalsMade: 10, FieldGoalsAttempted: 20}},
			{PlayerID: "p2", TeamID: "away", StatLine: games.StatLine{Points: 4}},
			{PlayerID: "p3", TeamID: "home", StatLine: games.StatLine{Points: 12, FieldGoalsMade: 6, FieldGoalsAttempted: 6}},
		},
	}
	svc := newService(store)

	box, err := svc.BoxScore(context.Background(), "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(box.Home.Lines) != 2 || len(box.Away.Lines) != 1 {
		t.Fatalf("unexpected split: home=%d away=%d", len(box.Home.Lines), len(box.Away.Lines))
	}
	if box.Home.Totals.Points != 43 || box.Home.Team.Name != "Hawks" {
		t.Fatalf("unexpected home box %+v", box.Home)
	}

	first := box.Home.Lines[0]
	if len(first.Badges) != 2 || first.Badges[0] != badges.ThirtyPointGame || first.Badges[1] != badges.DoubleDouble {
		t.Fatalf("unexpected badges %v", first.Badges)
	}
	if first.Splits.FieldGoalPct == nil || *first.Splits.FieldGoalPct != 50 {
		t.Fatalf("unexpected fg pct %v", first.Splits.FieldGoalPct)
	}
	if box.Home.Lines[1].Badges[0] != badges.PerfectGame {
		t.Fatalf("expected perfect game, got %v", box.Home.Lines[1].Badges)
	}

	away := box.Away.Lines[0]
	if away.Splits.FieldGoalPct != nil {
		t.Fatalf("expected no fg pct without attempts")
	}
	if away.Badges == nil || len(away.Badges) != 0 {
		t.Fatalf("expected empty badge list, got %v", away.Badges)
	}
}

func TestServiceBoxScoreErrors(t *testing.T) {
	store := &stubStore{games: []games.Game{{ID: "g1"}}, linesErr: errors.New("db down")}
	svc := newService(store)

	if _, err := svc.BoxScore(context.Background(), "missing"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.BoxScore(context.Background(), "g1"); err == nil || err.Error() != "db down" {
		t.Fatalf("expected store error, got %v", err)
	}
}
