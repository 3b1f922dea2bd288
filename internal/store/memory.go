package store

import (
	"context"
	"math"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

// MemoryStore serves a Seed from memory. Reads return copies; aggregate
// views are computed from final games on each call.
type MemoryStore struct {
	mu        sync.RWMutex
	seasons   []seasons.Season
	teams     map[string]teams.Team
	players   map[string]players.Player
	rosters   []teams.RosterEntry
	games     []games.Game
	lines     []games.PlayerStatLine
	badges    map[string]players.BadgeInfo
	earned    []players.EarnedBadge
	evaluated map[string]time.Time

	now   func() time.Time
	newID func() string
}

// NewMemoryStore copies seed into a new store.
func NewMemoryStore(seed Seed) *MemoryStore {
	s := &MemoryStore{
		seasons:   slices.Clone(seed.Seasons),
		teams:     make(map[string]teams.Team, len(seed.Teams)),
		players:   make(map[string]players.Player, len(seed.Players)),
		rosters:   slices.Clone(seed.Rosters),
		games:     make([]games.Game, 0, len(seed.Games)),
		lines:     make([]games.PlayerStatLine, 0, len(seed.Lines)),
		badges:    make(map[string]players.BadgeInfo, len(seed.Badges)),
		earned:    slices.Clone(seed.Earned),
		evaluated: make(map[string]time.Time, len(seed.Evaluated)),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.NewString() },
	}
	for _, t := range seed.Teams {
		s.teams[t.ID] = t
	}
	for _, p := range seed.Players {
		s.players[p.ID] = p
	}
	for _, g := range seed.Games {
		g.HomeTeam, g.AwayTeam, g.Season = nil, nil, nil
		g.HomeScore, g.AwayScore = cloneInt(g.HomeScore), cloneInt(g.AwayScore)
		s.games = append(s.games, g)
	}
	for _, l := range seed.Lines {
		l.Player, l.Team, l.Game = nil, nil, nil
		s.lines = append(s.lines, l)
	}
	for _, b := range seed.Badges {
		s.badges[b.ID] = b
	}
	for _, id := range seed.Evaluated {
		s.evaluated[id] = time.Time{}
	}
	return s
}

// NewFixtureStore returns a MemoryStore seeded with FixtureSeed.
func NewFixtureStore() *MemoryStore {
	return NewMemoryStore(FixtureSeed(time.Now()))
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() {}

func (s *MemoryStore) ListSeasons(context.Context) ([]seasons.Season, error) {
	s.mu.RLock()
	out := slices.Clone(s.seasons)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return nonNil(out), nil
}

func (s *MemoryStore) ActiveSeason(ctx context.Context) (seasons.Season, error) {
	all, _ := s.ListSeasons(ctx)
	for _, season := range all {
		if season.IsActive {
			return season, nil
		}
	}
	return seasons.Season{}, ErrNotFound
}

func (s *MemoryStore) Season(_ context.Context, id string) (seasons.Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seasonLocked(id)
}

func (s *MemoryStore) seasonLocked(id string) (seasons.Season, error) {
	for _, season := range s.seasons {
		if season.ID == id {
			return season, nil
		}
	}
	return seasons.Season{}, ErrNotFound
}

func (s *MemoryStore) TeamsBySeason(_ context.Context, seasonID string) ([]teams.Team, error) {
	s.mu.RLock()
	out := make([]teams.Team, 0)
	for _, t := range s.teams {
		if t.SeasonID == seasonID {
			out = append(out, t)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) Team(_ context.Context, id string) (teams.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return teams.Team{}, ErrNotFound
	}
	return t, nil
}

func (s *MemoryStore) TeamRoster(_ context.Context, teamID string) ([]teams.RosterEntry, error) {
	s.mu.RLock()
	out := make([]teams.RosterEntry, 0)
	for _, r := range s.rosters {
		if r.TeamID != teamID {
			continue
		}
		r.Player = s.players[r.PlayerID]
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Player.LastName != out[j].Player.LastName {
			return out[i].Player.LastName < out[j].Player.LastName
		}
		return out[i].Player.FirstName < out[j].Player.FirstName
	})
	return out, nil
}

func (s *MemoryStore) ListGames(_ context.Context, f games.Filter) ([]games.Game, error) {
	s.mu.RLock()
	out := make([]games.Game, 0)
	for _, g := range s.games {
		if f.SeasonID != "" && g.SeasonID != f.SeasonID {
			continue
		}
		if f.IsFinal != nil && g.IsFinal != *f.IsFinal {
			continue
		}
		out = append(out, s.decorateGameLocked(g))
	}
	s.mu.RUnlock()

	sortGames(out, f.Descending())
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *MemoryStore) Game(_ context.Context, id string) (games.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gameLocked(id)
	if !ok {
		return games.Game{}, ErrNotFound
	}
	return s.decorateGameLocked(g), nil
}

func (s *MemoryStore) GameStatLines(_ context.Context, gameID string) ([]games.PlayerStatLine, error) {
	s.mu.RLock()
	out := make([]games.PlayerStatLine, 0)
	for _, l := range s.lines {
		if l.GameID != gameID {
			continue
		}
		p := s.players[l.PlayerID].Ref()
		t := s.teams[l.TeamID].Ref()
		l.Player, l.Team = &p, &t
		out = append(out, l)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out, nil
}

func (s *MemoryStore) Player(_ context.Context, id string) (players.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return players.Player{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) PlayerSeasonStats(_ context.Context, playerID, seasonID string) (players.SeasonStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.seasonStatsLocked(seasonID)
	for _, st := range all {
		if st.PlayerID == playerID {
			return st, nil
		}
	}
	return players.SeasonStats{}, ErrNotFound
}

func (s *MemoryStore) PlayerCareerStats(_ context.Context, playerID string) (players.CareerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[playerID]
	if !ok {
		return players.CareerStats{}, ErrNotFound
	}
	var t totals
	for _, l := range s.finalLinesLocked("") {
		if l.PlayerID == playerID {
			t.add(l.StatLine)
		}
	}
	if t.games == 0 {
		return players.CareerStats{}, ErrNotFound
	}
	return players.CareerStats{
		PlayerID:          p.ID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		PhotoURL:          p.PhotoURL,
		CareerGames:       t.games,
		CareerPPG:         t.avg(t.line.Points),
		CareerRPG:         t.avg(t.line.Rebounds),
		CareerAPG:         t.avg(t.line.Assists),
		CareerFGPct:       pct(t.line.FieldGoalsMade, t.line.FieldGoalsAttempted),
		CareerTotalPoints: t.line.Points,
	}, nil
}

func (s *MemoryStore) PlayerBadges(_ context.Context, playerID string) ([]players.EarnedBadge, error) {
	s.mu.RLock()
	out := make([]players.EarnedBadge, 0)
	for _, b := range s.earned {
		if b.PlayerID == playerID {
			b.Badge = s.badges[b.BadgeID]
			out = append(out, b)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].EarnedAt.After(out[j].EarnedAt) })
	return out, nil
}

func (s *MemoryStore) PlayerRecentGames(_ context.Context, playerID string, limit int) ([]games.PlayerStatLine, error) {
	s.mu.RLock()
	out := make([]games.PlayerStatLine, 0)
	for _, l := range s.lines {
		if l.PlayerID != playerID {
			continue
		}
		if g, ok := s.gameLocked(l.GameID); ok {
			decorated := s.decorateGameLocked(g)
			l.Game = &decorated
		}
		out = append(out, l)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Leaderboard ranks every player with final games in the season, then keeps
// entries ranked within the limit that meet the games minimum.
func (s *MemoryStore) Leaderboard(_ context.Context, q LeaderboardQuery) ([]players.LeaderboardEntry, error) {
	if !q.Category.Valid() {
		return nil, eris.Errorf("memory: unknown leaderboard category %q", q.Category)
	}
	s.mu.RLock()
	all := s.seasonStatsLocked(q.SeasonID)
	s.mu.RUnlock()

	entries := rankEntries(all)
	out := make([]players.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if q.Limit > 0 && e.Rank(q.Category) > q.Limit {
			continue
		}
		if e.GamesPlayed < q.MinGames {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Rank(q.Category), out[j].Rank(q.Category)
		if ri != rj {
			return ri < rj
		}
		return out[i].LastName < out[j].LastName
	})
	return out, nil
}

func (s *MemoryStore) PendingAwardGames(_ context.Context, limit int) ([]games.Game, error) {
	s.mu.RLock()
	out := make([]games.Game, 0)
	for _, g := range s.games {
		if !g.IsFinal {
			continue
		}
		if _, done := s.evaluated[g.ID]; done {
			continue
		}
		out = append(out, s.decorateGameLocked(g))
	}
	s.mu.RUnlock()

	sortGames(out, false)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) AwardedBadgeIDs(_ context.Context, playerID, gameID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0)
	for _, b := range s.earned {
		if b.PlayerID == playerID && b.GameID == gameID {
			out = append(out, b.BadgeID)
		}
	}
	return out, nil
}

// RecordGameAwards stores badges not already held for the game and marks
// the game evaluated.
func (s *MemoryStore) RecordGameAwards(_ context.Context, awards GameAwards) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, b := range awards.Badges {
		if s.holdsLocked(b.PlayerID, b.BadgeID, awards.GameID) {
			continue
		}
		if b.ID == "" {
			b.ID = s.newID()
		}
		if b.EarnedAt.IsZero() {
			b.EarnedAt = s.now()
		}
		b.GameID = awards.GameID
		b.SeasonID = awards.SeasonID
		b.Badge = players.BadgeInfo{}
		s.earned = append(s.earned, b)
		inserted++
	}
	s.evaluated[awards.GameID] = s.now()
	return inserted, nil
}

func (s *MemoryStore) holdsLocked(playerID, badgeID, gameID string) bool {
	for _, b := range s.earned {
		if b.PlayerID == playerID && b.BadgeID == badgeID && b.GameID == gameID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) gameLocked(id string) (games.Game, bool) {
	for _, g := range s.games {
		if g.ID == id {
			return g, true
		}
	}
	return games.Game{}, false
}

func (s *MemoryStore) decorateGameLocked(g games.Game) games.Game {
	home := s.teams[g.HomeTeamID].Ref()
	away := s.teams[g.AwayTeamID].Ref()
	g.HomeTeam, g.AwayTeam = &home, &away
	if season, err := s.seasonLocked(g.SeasonID); err == nil {
		ref := season.Ref()
		g.Season = &ref
	}
	g.HomeScore, g.AwayScore = cloneInt(g.HomeScore), cloneInt(g.AwayScore)
	return g
}

// finalLinesLocked returns stat lines of final games, optionally within one season.
func (s *MemoryStore) finalLinesLocked(seasonID string) []games.PlayerStatLine {
	final := make(map[string]bool, len(s.games))
	for _, g := range s.games {
		if g.IsFinal && (seasonID == "" || g.SeasonID == seasonID) {
			final[g.ID] = true
		}
	}
	out := make([]games.PlayerStatLine, 0, len(s.lines))
	for _, l := range s.lines {
		if final[l.GameID] {
			out = append(out, l)
		}
	}
	return out
}

func (s *MemoryStore) seasonStatsLocked(seasonID string) []players.SeasonStats {
	byPlayer := make(map[string]*totals)
	var order []string
	for _, l := range s.finalLinesLocked(seasonID) {
		t, ok := byPlayer[l.PlayerID]
		if !ok {
			t = &totals{}
			byPlayer[l.PlayerID] = t
			order = append(order, l.PlayerID)
		}
		t.add(l.StatLine)
	}

	out := make([]players.SeasonStats, 0, len(order))
	for _, id := range order {
		t := byPlayer[id]
		p := s.players[id]
		out = append(out, players.SeasonStats{
			PlayerID:      id,
			SeasonID:      seasonID,
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			PhotoURL:      p.PhotoURL,
			GamesPlayed:   t.games,
			PPG:           t.avg(t.line.Points),
			RPG:           t.avg(t.line.Rebounds),
			APG:           t.avg(t.line.Assists),
			SPG:           t.avg(t.line.Steals),
			BPG:           t.avg(t.line.Blocks),
			TPG:           t.avg(t.line.Turnovers),
			FGPct:         pct(t.line.FieldGoalsMade, t.line.FieldGoalsAttempted),
			ThreePtPct:    pct(t.line.ThreePointersMade, t.line.ThreePointersAttempted),
			FTPct:         pct(t.line.FreeThrowsMade, t.line.FreeThrowsAttempted),
			TotalPoints:   t.line.Points,
			TotalRebounds: t.line.Rebounds,
			TotalAssists:  t.line.Assists,
		})
	}
	return out
}

type totals struct {
	games int
	line  games.StatLine
}

func (t *totals) add(l games.StatLine) {
	t.games++
	t.line = stats.Sum(t.line, l)
}

func (t *totals) avg(total int) float64 {
	if t.games == 0 {
		return 0
	}
	return round1(float64(total) / float64(t.games))
}

func pct(made, attempted int) *float64 {
	p, ok := stats.Percentage(made, attempted)
	if !ok {
		return nil
	}
	p = round1(p)
	return &p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// rankEntries assigns competition ranks (1, 2, 2, 4) per category. Players
// with no field goal attempts share the last field goal rank.
func rankEntries(all []players.SeasonStats) []players.LeaderboardEntry {
	entries := make([]players.LeaderboardEntry, len(all))
	for i, st := range all {
		entries[i].SeasonStats = st
	}
	assignRanks(entries, func(e players.LeaderboardEntry) (float64, bool) { return e.PPG, true },
		func(e *players.LeaderboardEntry, r int) { e.PPGRank = r })
	assignRanks(entries, func(e players.LeaderboardEntry) (float64, bool) { return e.RPG, true },
		func(e *players.LeaderboardEntry, r int) { e.RPGRank = r })
	assignRanks(entries, func(e players.LeaderboardEntry) (float64, bool) { return e.APG, true },
		func(e *players.LeaderboardEntry, r int) { e.APGRank = r })
	assignRanks(entries, func(e players.LeaderboardEntry) (float64, bool) {
		if e.FGPct == nil {
			return 0, false
		}
		return *e.FGPct, true
	}, func(e *players.LeaderboardEntry, r int) { e.FGPctRank = r })
	return entries
}

func assignRanks(entries []players.LeaderboardEntry, value func(players.LeaderboardEntry) (float64, bool), set func(*players.LeaderboardEntry, int)) {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	// Missing values sort after every present value.
	less := func(a, b int) bool {
		va, oka := value(entries[a])
		vb, okb := value(entries[b])
		if oka != okb {
			return oka
		}
		return va > vb
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(idx[i], idx[j]) })
	ranks := make([]int, len(entries))
	for pos, i := range idx {
		rank := pos + 1
		if pos > 0 && !less(idx[pos-1], i) {
			rank = ranks[idx[pos-1]]
		}
		ranks[i] = rank
		set(&entries[i], rank)
	}
}

func sortGames(gs []games.Game, descending bool) {
	sort.SliceStable(gs, func(i, j int) bool {
		if descending {
			return gs[i].ScheduledAt.After(gs[j].ScheduledAt)
		}
		return gs[i].ScheduledAt.Before(gs[j].ScheduledAt)
	})
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
