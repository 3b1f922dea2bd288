package teams

import (
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
)

// Team belongs to exactly one season; a franchise returning next season is a new row.
type Team struct {
	ID        string    `json:"id"`
	SeasonID  string    `json:"seasonId"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ref is the trimmed team shape joined onto games and stat lines.
type Ref struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Ref returns the joined shape for t.
func (t Team) Ref() Ref {
	return Ref{ID: t.ID, Name: t.Name, LogoURL: t.LogoURL}
}

// RosterEntry links a player to a team.
type RosterEntry struct {
	ID           string         `json:"id"`
	TeamID       string         `json:"teamId"`
	PlayerID     string         `json:"playerId"`
	JerseyNumber string         `json:"jerseyNumber,omitempty"`
	JoinedAt     time.Time      `json:"joinedAt"`
	Player       players.Player `json:"player"`
}
