package games

import (
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// Game is a scheduled or completed matchup. Scores are nil until entered.
type Game struct {
	ID          string       `json:"id"`
	SeasonID    string       `json:"seasonId"`
	HomeTeamID  string       `json:"homeTeamId"`
	AwayTeamID  string       `json:"awayTeamId"`
	ScheduledAt time.Time    `json:"scheduledAt"`
	Location    string       `json:"location,omitempty"`
	HomeScore   *int         `json:"homeScore"`
	AwayScore   *int         `json:"awayScore"`
	IsFinal     bool         `json:"isFinal"`
	CreatedAt   time.Time    `json:"createdAt"`
	HomeTeam    *teams.Ref   `json:"homeTeam,omitempty"`
	AwayTeam    *teams.Ref   `json:"awayTeam,omitempty"`
	Season      *seasons.Ref `json:"season,omitempty"`
}

// StatLine holds one player's counting stats for one game. Upstream data
// entry guarantees made <= attempted; nothing here enforces it.
type StatLine struct {
	Points                 int `json:"points"`
	Rebounds               int `json:"rebounds"`
	Assists                int `json:"assists"`
	Steals                 int `json:"steals"`
	Blocks                 int `json:"blocks"`
	Turnovers              int `json:"turnovers"`
	FieldGoalsMade         int `json:"fieldGoalsMade"`
	FieldGoalsAttempted    int `json:"fieldGoalsAttempted"`
	ThreePointersMade      int `json:"threePointersMade"`
	ThreePointersAttempted int `json:"threePointersAttempted"`
	FreeThrowsMade         int `json:"freeThrowsMade"`
	FreeThrowsAttempted    int `json:"freeThrowsAttempted"`
}

// PlayerStatLine is a game_stat_lines row: a StatLine plus the keys and
// joined relations the box score and player pages need.
type PlayerStatLine struct {
	ID            string `json:"id"`
	GameID        string `json:"gameId"`
	PlayerID      string `json:"playerId"`
	TeamID        string `json:"teamId"`
	MinutesPlayed int    `json:"minutesPlayed"`
	StatLine
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Player    *players.Ref `json:"player,omitempty"`
	Team      *teams.Ref   `json:"team,omitempty"`
	Game      *Game        `json:"game,omitempty"`
}

// Filter narrows game listings. A nil IsFinal matches every game; Limit <= 0
// means no limit.
type Filter struct {
	SeasonID string
	IsFinal  *bool
	Limit    int
}

// Descending reports whether listings should run newest first. Completed
// games read as results (latest first); everything else reads as a schedule.
func (f Filter) Descending() bool {
	return f.IsFinal != nil && *f.IsFinal
}
