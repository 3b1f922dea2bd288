package store

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
)

const seasonColumns = `id, name, start_date, end_date, is_active, created_at`

const (
	listSeasonsSQL  = `SELECT ` + seasonColumns + ` FROM seasons ORDER BY start_date DESC`
	activeSeasonSQL = `SELECT ` + seasonColumns + ` FROM seasons WHERE is_active = true ORDER BY start_date DESC LIMIT 1`
	seasonSQL       = `SELECT ` + seasonColumns + ` FROM seasons WHERE id = $1`
)

const teamColumns = `id, season_id, name, logo_url, created_at`

const (
	teamsBySeasonSQL = `SELECT ` + teamColumns + ` FROM teams WHERE season_id = $1 ORDER BY name`
	teamSQL          = `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	teamRosterSQL    = `SELECT r.id, r.team_id, r.player_id, r.jersey_number, r.joined_at,
	p.id, p.first_name, p.last_name, p.email, p.phone, p.photo_url, p.position, p.created_at
FROM team_rosters r
JOIN players p ON p.id = r.player_id
WHERE r.team_id = $1
ORDER BY p.last_name, p.first_name`
)

const gameSelect = `SELECT g.id, g.season_id, g.home_team_id, g.away_team_id, g.scheduled_at, g.location,
	g.home_score, g.away_score, g.is_final, g.created_at,
	ht.name, ht.logo_url, awt.name, awt.logo_url, s.name
FROM games g
JOIN teams ht ON ht.id = g.home_team_id
JOIN teams awt ON awt.id = g.away_team_id
JOIN seasons s ON s.id = g.season_id`

const gameSQL = gameSelect + ` WHERE g.id = $1`

// Absent counters are zeroed here so stat lines always carry all eleven values.
const lineColumns = `l.id, l.game_id, l.player_id, l.team_id, COALESCE(l.minutes_played, 0),
	COALESCE(l.points, 0), COALESCE(l.rebounds, 0), COALESCE(l.assists, 0),
	COALESCE(l.steals, 0), COALESCE(l.blocks, 0), COALESCE(l.turnovers, 0),
	COALESCE(l.field_goals_made, 0), COALESCE(l.field_goals_attempted, 0),
	COALESCE(l.three_pointers_made, 0), COALESCE(l.three_pointers_attempted, 0),
	COALESCE(l.free_throws_made, 0), COALESCE(l.free_throws_attempted, 0),
	l.created_at, l.updated_at`

const gameStatLinesSQL = `SELECT ` + lineColumns + `,
	p.first_name, p.last_name, p.position, t.name, t.logo_url
FROM game_stat_lines l
JOIN players p ON p.id = l.player_id
JOIN teams t ON t.id = l.team_id
WHERE l.game_id = $1
ORDER BY l.points DESC NULLS LAST`

const playerRecentGamesSQL = `SELECT ` + lineColumns + `,
	g.id, g.season_id, g.home_team_id, g.away_team_id, g.scheduled_at, g.location,
	g.home_score, g.away_score, g.is_final, g.created_at,
	ht.name, ht.logo_url, awt.name, awt.logo_url, s.name
FROM game_stat_lines l
JOIN games g ON g.id = l.game_id
JOIN teams ht ON ht.id = g.home_team_id
JOIN teams awt ON awt.id = g.away_team_id
JOIN seasons s ON s.id = g.season_id
WHERE l.player_id = $1
ORDER BY l.created_at DESC
LIMIT $2`

const playerColumns = `id, first_name, last_name, email, phone, photo_url, position, created_at`

const playerSQL = `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

const seasonStatsColumns = `player_id, season_id, first_name, last_name, photo_url, games_played,
	ppg, rpg, apg, spg, bpg, tpg, fg_pct, three_pt_pct, ft_pct,
	total_points, total_rebounds, total_assists`

const playerSeasonStatsSQL = `SELECT ` + seasonStatsColumns + `
FROM player_season_stats WHERE player_id = $1 AND season_id = $2`

const playerCareerStatsSQL = `SELECT player_id, first_name, last_name, photo_url, career_games,
	career_ppg, career_rpg, career_apg, career_fg_pct, career_total_points
FROM player_career_stats WHERE player_id = $1`

const playerBadgesSQL = `SELECT pb.id, pb.player_id, pb.badge_id, pb.game_id, pb.season_id, pb.earned_at,
	b.id, b.name, b.description, b.icon_url, b.category, b.rarity
FROM player_badges pb
JOIN badges b ON b.id = pb.badge_id
WHERE pb.player_id = $1
ORDER BY pb.earned_at DESC`

// rankColumns whitelists the view columns a leaderboard may order by.
var rankColumns = map[players.LeaderboardCategory]string{
	players.CategoryPoints:     "ppg_rank",
	players.CategoryRebounds:   "rpg_rank",
	players.CategoryAssists:    "apg_rank",
	players.CategoryFieldGoals: "fg_pct_rank",
}

func leaderboardSQL(rankColumn string) string {
	return `SELECT ` + seasonStatsColumns + `, ppg_rank, rpg_rank, apg_rank, fg_pct_rank
FROM season_leaderboards
WHERE season_id = $1 AND ` + rankColumn + ` <= $2 AND games_played >= $3
ORDER BY ` + rankColumn
}

const pendingAwardGamesSQL = gameSelect + `
LEFT JOIN badge_evaluations be ON be.game_id = g.id
WHERE g.is_final = true AND be.game_id IS NULL
ORDER BY g.scheduled_at
LIMIT $1`

const awardedBadgeIDsSQL = `SELECT badge_id FROM player_badges WHERE player_id = $1 AND game_id = $2 ORDER BY earned_at`

const insertPlayerBadgeSQL = `INSERT INTO player_badges (id, player_id, badge_id, game_id, season_id, earned_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (player_id, badge_id, game_id) DO NOTHING`

const markGameEvaluatedSQL = `INSERT INTO badge_evaluations (game_id, evaluated_at)
VALUES ($1, $2)
ON CONFLICT (game_id) DO UPDATE SET evaluated_at = EXCLUDED.evaluated_at`

// listGamesSQL builds the filtered game listing. Only placeholders are
// interpolated; values travel as args.
func listGamesSQL(f games.Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.SeasonID != "" {
		args = append(args, f.SeasonID)
		where = append(where, fmt.Sprintf("g.season_id = $%d", len(args)))
	}
	if f.IsFinal != nil {
		args = append(args, *f.IsFinal)
		where = append(where, fmt.Sprintf("g.is_final = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(gameSelect)
	if len(where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	if f.Descending() {
		b.WriteString("\nORDER BY g.scheduled_at DESC")
	} else {
		b.WriteString("\nORDER BY g.scheduled_at ASC")
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, "\nLIMIT $%d", len(args))
	}
	return b.String(), args
}
