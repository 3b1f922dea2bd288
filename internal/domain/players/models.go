package players

import (
	"strings"
	"time"
)

// Player is a league member. Contact fields are optional.
type Player struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Position  string    `json:"position,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ref is the trimmed player shape joined onto stat lines and rosters.
type Ref struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position,omitempty"`
}

// Ref returns the joined shape for p.
func (p Player) Ref() Ref {
	return Ref{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Position: p.Position}
}

// FullName joins first and last name, skipping blanks.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SeasonStats mirrors the player_season_stats view. Shooting percentages are
// nil when the player attempted no shots of that kind.
type SeasonStats struct {
	PlayerID      string   `json:"playerId"`
	SeasonID      string   `json:"seasonId"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	PhotoURL      string   `json:"photoUrl,omitempty"`
	GamesPlayed   int      `json:"gamesPlayed"`
	PPG           float64  `json:"ppg"`
	RPG           float64  `json:"rpg"`
	APG           float64  `json:"apg"`
	SPG           float64  `json:"spg"`
	BPG           float64  `json:"bpg"`
	TPG           float64  `json:"tpg"`
	FGPct         *float64 `json:"fgPct"`
	ThreePtPct    *float64 `json:"threePtPct"`
	FTPct         *float64 `json:"ftPct"`
	TotalPoints   int      `json:"totalPoints"`
	TotalRebounds int      `json:"totalRebounds"`
	TotalAssists  int      `json:"totalAssists"`
}

// CareerStats mirrors the player_career_stats view.
type CareerStats struct {
	PlayerID          string   `json:"playerId"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	PhotoURL          string   `json:"photoUrl,omitempty"`
	CareerGames       int      `json:"careerGames"`
	CareerPPG         float64  `json:"careerPpg"`
	CareerRPG         float64  `json:"careerRpg"`
	CareerAPG         float64  `json:"careerApg"`
	CareerFGPct       *float64 `json:"careerFgPct"`
	CareerTotalPoints int      `json:"careerTotalPoints"`
}

// LeaderboardCategory names a ranked column of the season_leaderboards view.
type LeaderboardCategory string

const (
	CategoryPoints     LeaderboardCategory = "ppg"
	CategoryRebounds   LeaderboardCategory = "rpg"
	CategoryAssists    LeaderboardCategory = "apg"
	CategoryFieldGoals LeaderboardCategory = "fg_pct"
)

// LeaderboardCategories lists the ranked categories in display order.
var LeaderboardCategories = []LeaderboardCategory{
	CategoryPoints,
	CategoryRebounds,
	CategoryAssists,
	CategoryFieldGoals,
}

// Valid reports whether c is one of the ranked categories.
func (c LeaderboardCategory) Valid() bool {
	for _, known := range LeaderboardCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display name and short label of c.
func (c LeaderboardCategory) Label() (name, short string) {
	switch c {
	case CategoryPoints:
		return "Points", "PPG"
	case CategoryRebounds:
		return "Rebounds", "RPG"
	case CategoryAssists:
		return "Assists", "APG"
	case CategoryFieldGoals:
		return "Field Goal %", "FG%"
	default:
		return string(c), string(c)
	}
}

// LeaderboardEntry is one row of season_leaderboards: season stats plus ranks.
type LeaderboardEntry struct {
	SeasonStats
	PPGRank   int `json:"ppgRank"`
	RPGRank   int `json:"rpgRank"`
	APGRank   int `json:"apgRank"`
	FGPctRank int `json:"fgPctRank"`
}

// Rank returns the entry's rank in category c, or 0 for unknown categories.
func (e LeaderboardEntry) Rank(c LeaderboardCategory) int {
	switch c {
	case CategoryPoints:
		return e.PPGRank
	case CategoryRebounds:
		return e.RPGRank
	case CategoryAssists:
		return e.APGRank
	case CategoryFieldGoals:
		return e.FGPctRank
	default:
		return 0
	}
}

// BadgeInfo is a row of the badges table.
type BadgeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Rarity      string `json:"rarity"`
}

// EarnedBadge is a badge recorded for a player, optionally tied to a game and season.
type EarnedBadge struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	BadgeID  string    `json:"badgeId"`
	GameID   string    `json:"gameId,omitempty"`
	SeasonID string    `json:"seasonId,omitempty"`
	EarnedAt time.Time `json:"earnedAt"`
	Badge    BadgeInfo `json:"badge"`
}
