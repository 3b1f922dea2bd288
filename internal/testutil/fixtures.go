package testutil

import (
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
)

// SampleStatLine returns a double-double line: 24 points, 11 rebounds.
func SampleStatLine() games.StatLine {
	return games.StatLine{
		Points:                 24,
		Rebounds:               11,
		Assists:                4,
		Steals:                 1,
		Blocks:                 2,
		Turnovers:              3,
		FieldGoalsMade:         9,
		FieldGoalsAttempted:    18,
		ThreePointersMade:      2,
		ThreePointersAttempted: 5,
		FreeThrowsMade:         4,
		FreeThrowsAttempted:    6,
	}
}

// SampleGame returns a final game between two placeholder teams.
func SampleGame(id string) games.Game {
	home, away := 61, 55
	return games.Game{
		ID:          id,
		SeasonID:    "season-test",
		HomeTeamID:  "team-home",
		AwayTeamID:  "team-away",
		ScheduledAt: time.Date(2024, 1, 10, 19, 30, 0, 0, time.UTC),
		HomeScore:   &home,
		AwayScore:   &away,
		IsFinal:     true,
	}
}
