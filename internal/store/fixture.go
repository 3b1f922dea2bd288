package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// Seed is the record set a MemoryStore serves.
type Seed struct {
	Seasons []seasons.Season
	Teams   []teams.Team
	Players []players.Player
	Rosters []teams.RosterEntry
	Games   []games.Game
	Lines   []games.PlayerStatLine
	Badges  []players.BadgeInfo
	Earned  []players.EarnedBadge
	// Evaluated lists games whose badges were already awarded.
	Evaluated []string
}

// Fixture IDs referenced by tests and local tooling.
const (
	FixtureActiveSeasonID = "season-winter-2024"
	FixturePastSeasonID   = "season-fall-2023"
	FixtureHawksID        = "team-w24-hawks"
	FixtureJordanReyesID  = "player-jordan-reyes"
	FixtureOpeningGameID  = "game-w24-01"
	FixtureUpcomingGameID = "game-w24-07"
)

type fixtureLine struct {
	game, player string
	// points, rebounds, assists, steals, blocks, turnovers, fgm, fga, 3pm, 3pa, ftm, fta
	v [12]int
}

var fixtureLines = []fixtureLine{
	{"game-w24-01", "player-jordan-reyes", [12]int{31, 12, 4, 2, 1, 3, 11, 20, 3, 7, 6, 7}},
	{"game-w24-01", "player-sam-okafor", [12]int{14, 9, 1, 0, 2, 1, 6, 6, 0, 0, 2, 4}},
	{"game-w24-01", "player-priya-natarajan", [12]int{16, 11, 10, 1, 0, 2, 6, 13, 1, 3, 3, 4}},
	{"game-w24-01", "player-marcus-chen", [12]int{19, 3, 2, 1, 0, 2, 6, 14, 5, 9, 2, 2}},

	{"game-w24-02", "player-ali-haddad", [12]int{12, 13, 1, 3, 3, 2, 5, 9, 0, 0, 2, 3}},
	{"game-w24-02", "player-dana-brooks", [12]int{18, 4, 6, 2, 0, 3, 7, 15, 2, 6, 2, 2}},
	{"game-w24-02", "player-leo-moreau", [12]int{22, 8, 3, 1, 1, 2, 9, 17, 1, 4, 3, 4}},
	{"game-w24-02", "player-tess-whitaker", [12]int{10, 2, 7, 2, 0, 4, 4, 11, 2, 5, 0, 0}},

	{"game-w24-03", "player-jordan-reyes", [12]int{24, 7, 6, 1, 0, 2, 9, 18, 2, 6, 4, 5}},
	{"game-w24-03", "player-sam-okafor", [12]int{11, 10, 2, 1, 1, 1, 5, 8, 0, 0, 1, 2}},
	{"game-w24-03", "player-ali-haddad", [12]int{9, 11, 2, 2, 4, 1, 4, 7, 0, 0, 1, 2}},
	{"game-w24-03", "player-dana-brooks", [12]int{21, 3, 5, 1, 0, 2, 7, 14, 3, 7, 4, 4}},

	{"game-w24-04", "player-priya-natarajan", [12]int{18, 9, 8, 2, 1, 3, 7, 14, 1, 2, 3, 4}},
	{"game-w24-04", "player-marcus-chen", [12]int{15, 2, 3, 0, 0, 1, 5, 12, 3, 8, 2, 2}},
	{"game-w24-04", "player-leo-moreau", [12]int{17, 10, 2, 1, 0, 2, 7, 13, 0, 1, 3, 5}},
	{"game-w24-04", "player-tess-whitaker", [12]int{12, 1, 9, 3, 0, 2, 5, 10, 2, 4, 0, 0}},

	{"game-w24-05", "player-leo-moreau", [12]int{14, 6, 4, 0, 1, 1, 6, 12, 0, 2, 2, 2}},
	{"game-w24-05", "player-tess-whitaker", [12]int{8, 3, 6, 1, 0, 3, 3, 9, 2, 6, 0, 0}},
	{"game-w24-05", "player-jordan-reyes", [12]int{27, 6, 5, 2, 0, 2, 10, 19, 3, 8, 4, 4}},
	{"game-w24-05", "player-sam-okafor", [12]int{8, 8, 1, 0, 3, 0, 4, 5, 0, 0, 0, 1}},

	{"game-w24-06", "player-ali-haddad", [12]int{10, 9, 0, 1, 2, 2, 4, 8, 0, 0, 2, 4}},
	{"game-w24-06", "player-dana-brooks", [12]int{16, 2, 4, 1, 0, 1, 5, 12, 3, 7, 3, 3}},
	{"game-w24-06", "player-priya-natarajan", [12]int{20, 12, 6, 2, 0, 2, 8, 15, 1, 3, 3, 5}},
	{"game-w24-06", "player-marcus-chen", [12]int{21, 1, 3, 1, 0, 2, 7, 15, 5, 10, 2, 2}},

	{"game-f23-01", "player-jordan-reyes", [12]int{18, 5, 3, 1, 0, 2, 7, 16, 2, 5, 2, 2}},
	{"game-f23-01", "player-priya-natarajan", [12]int{12, 8, 5, 0, 0, 1, 5, 11, 0, 1, 2, 2}},
}

// FixtureSeed builds a small deterministic league around now: a past season
// with one completed game and an active season with six completed games and
// one upcoming. Scores are derived from the stat lines.
func FixtureSeed(now time.Time) Seed {
	now = now.UTC().Truncate(time.Hour)
	day := 24 * time.Hour
	winterStart := now.Add(-45 * day)
	fallStart := winterStart.AddDate(0, -4, 0)

	seed := Seed{
		Seasons: []seasons.Season{
			{ID: FixturePastSeasonID, Name: "Fall 2023", StartDate: fallStart, EndDate: fallStart.AddDate(0, 3, 0), CreatedAt: fallStart},
			{ID: FixtureActiveSeasonID, Name: "Winter 2024", StartDate: winterStart, EndDate: winterStart.AddDate(0, 3, 0), IsActive: true, CreatedAt: winterStart},
		},
		Teams: []teams.Team{
			{ID: "team-f23-hawks", SeasonID: FixturePastSeasonID, Name: "Malton Hawks", CreatedAt: fallStart},
			{ID: "team-f23-runners", SeasonID: FixturePastSeasonID, Name: "Riverside Runners", CreatedAt: fallStart},
			{ID: FixtureHawksID, SeasonID: FixtureActiveSeasonID, Name: "Malton Hawks", CreatedAt: winterStart},
			{ID: "team-w24-runners", SeasonID: FixtureActiveSeasonID, Name: "Riverside Runners", CreatedAt: winterStart},
			{ID: "team-w24-giants", SeasonID: FixtureActiveSeasonID, Name: "Eastgate Giants", CreatedAt: winterStart},
			{ID: "team-w24-knights", SeasonID: FixtureActiveSeasonID, Name: "Northside Knights", CreatedAt: winterStart},
		},
		Players: []players.Player{
			{ID: FixtureJordanReyesID, FirstName: "Jordan", LastName: "Reyes", Position: "G", CreatedAt: fallStart},
			{ID: "player-sam-okafor", FirstName: "Sam", LastName: "Okafor", Position: "C", CreatedAt: winterStart},
			{ID: "player-priya-natarajan", FirstName: "Priya", LastName: "Natarajan", Position: "F", CreatedAt: fallStart},
			{ID: "player-marcus-chen", FirstName: "Marcus", LastName: "Chen", Position: "G", CreatedAt: winterStart},
			{ID: "player-ali-haddad", FirstName: "Ali", LastName: "Haddad", Position: "C", CreatedAt: winterStart},
			{ID: "player-dana-brooks", FirstName: "Dana", LastName: "Brooks", Position: "G", CreatedAt: winterStart},
			{ID: "player-leo-moreau", FirstName: "Leo", LastName: "Moreau", Position: "F", CreatedAt: winterStart},
			{ID: "player-tess-whitaker", FirstName: "Tess", LastName: "Whitaker", CreatedAt: winterStart},
		},
		Games: []games.Game{
			{ID: "game-f23-01", SeasonID: FixturePastSeasonID, HomeTeamID: "team-f23-hawks", AwayTeamID: "team-f23-runners", ScheduledAt: fallStart.Add(14 * day), Location: "Malton Community Centre", IsFinal: true},
			{ID: FixtureOpeningGameID, SeasonID: FixtureActiveSeasonID, HomeTeamID: FixtureHawksID, AwayTeamID: "team-w24-runners", ScheduledAt: now.Add(-35 * day), Location: "Malton Community Centre", IsFinal: true},
			{ID: "game-w24-02", SeasonID: FixtureActiveSeasonID, HomeTeamID: "team-w24-giants", AwayTeamID: "team-w24-knights", ScheduledAt: now.Add(-35*day + 2*time.Hour), Location: "Malton Community Centre", IsFinal: true},
			{ID: "game-w24-03", SeasonID: FixtureActiveSeasonID, HomeTeamID: FixtureHawksID, AwayTeamID: "team-w24-giants", ScheduledAt: now.Add(-28 * day), Location: "Eastgate Secondary", IsFinal: true},
			{ID: "game-w24-04", SeasonID: FixtureActiveSeasonID, HomeTeamID: "team-w24-runners", AwayTeamID: "team-w24-knights", ScheduledAt: now.Add(-28*day + 2*time.Hour), Location: "Eastgate Secondary", IsFinal: true},
			{ID: "game-w24-05", SeasonID: FixtureActiveSeasonID, HomeTeamID: "team-w24-knights", AwayTeamID: FixtureHawksID, ScheduledAt: now.Add(-21 * day), Location: "Northside Arena", IsFinal: true},
			{ID: "game-w24-06", SeasonID: FixtureActiveSeasonID, HomeTeamID: "team-w24-giants", AwayTeamID: "team-w24-runners", ScheduledAt: now.Add(-21*day + 2*time.Hour), Location: "Northside Arena", IsFinal: true},
			{ID: FixtureUpcomingGameID, SeasonID: FixtureActiveSeasonID, HomeTeamID: FixtureHawksID, AwayTeamID: "team-w24-runners", ScheduledAt: now.Add(5 * day), Location: "Malton Community Centre"},
		},
		Evaluated: []string{"game-f23-01"},
	}

	rosterTeam := map[string]string{
		FixtureJordanReyesID:     FixtureHawksID,
		"player-sam-okafor":      FixtureHawksID,
		"player-priya-natarajan": "team-w24-runners",
		"player-marcus-chen":     "team-w24-runners",
		"player-ali-haddad":      "team-w24-giants",
		"player-dana-brooks":     "team-w24-giants",
		"player-leo-moreau":      "team-w24-knights",
		"player-tess-whitaker":   "team-w24-knights",
	}
	pastTeam := map[string]string{
		FixtureJordanReyesID:     "team-f23-hawks",
		"player-priya-natarajan": "team-f23-runners",
	}
	for i, p := range seed.Players {
		seed.Rosters = append(seed.Rosters, teams.RosterEntry{
			ID:           "roster-" + p.ID,
			TeamID:       rosterTeam[p.ID],
			PlayerID:     p.ID,
			JerseyNumber: strconv.Itoa(i*3 + 1),
			JoinedAt:     winterStart,
		})
	}

	gameByID := make(map[string]*games.Game, len(seed.Games))
	for i := range seed.Games {
		g := &seed.Games[i]
		g.CreatedAt = g.ScheduledAt.Add(-7 * day)
		if g.IsFinal {
			home, away := 0, 0
			g.HomeScore, g.AwayScore = &home, &away
		}
		gameByID[g.ID] = g
	}

	for i, fl := range fixtureLines {
		g := gameByID[fl.game]
		teamID := rosterTeam[fl.player]
		if g.SeasonID == FixturePastSeasonID {
			teamID = pastTeam[fl.player]
		}
		v := fl.v
		recorded := g.ScheduledAt.Add(2 * time.Hour)
		seed.Lines = append(seed.Lines, games.PlayerStatLine{
			ID:            fmt.Sprintf("line-%02d", i+1),
			GameID:        fl.game,
			PlayerID:      fl.player,
			TeamID:        teamID,
			MinutesPlayed: 28 + i%12,
			StatLine: games.StatLine{
				Points: v[0], Rebounds: v[1], Assists: v[2], Steals: v[3], Blocks: v[4], Turnovers: v[5],
				FieldGoalsMade: v[6], FieldGoalsAttempted: v[7],
				ThreePointersMade: v[8], ThreePointersAttempted: v[9],
				FreeThrowsMade: v[10], FreeThrowsAttempted: v[11],
			},
			CreatedAt: recorded,
			UpdatedAt: recorded,
		})
		if teamID == g.HomeTeamID {
			*g.HomeScore += v[0]
		} else {
			*g.AwayScore += v[0]
		}
	}

	for _, def := range badges.DefaultCatalog().Definitions() {
		seed.Badges = append(seed.Badges, players.BadgeInfo{
			ID:          string(def.ID),
			Name:        def.Name,
			Description: def.Description,
			Category:    def.Category,
			Rarity:      string(def.Rarity),
		})
	}
	return seed
}
