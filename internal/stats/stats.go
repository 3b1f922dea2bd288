// Package stats holds the statistical predicates and percentages shared by
// badge evaluation and box-score display.
package stats

import "github.com/preston-bernstein/league-stats-service/internal/domain/games"

// DoubleFigures is the per-category threshold for double- and triple-doubles.
const DoubleFigures = 10

// DefaultPerfectShootingMinAttempts keeps a 1-for-1 night from counting as perfect.
const DefaultPerfectShootingMinAttempts = 5

// Categories are the five counting stats a double-double is measured on.
// Turnovers and shooting numbers never count.
type Categories struct {
	Points   int
	Rebounds int
	Assists  int
	Steals   int
	Blocks   int
}

// CategoriesOf extracts the counted categories from a stat line.
func CategoriesOf(line games.StatLine) Categories {
	return Categories{
		Points:   line.Points,
		Rebounds: line.Rebounds,
		Assists:  line.Assists,
		Steals:   line.Steals,
		Blocks:   line.Blocks,
	}
}

// CountAtLeast returns how many categories reach threshold.
func CountAtLeast(c Categories, threshold int) int {
	count := 0
	for _, v := range [...]int{c.Points, c.Rebounds, c.Assists, c.Steals, c.Blocks} {
		if v >= threshold {
			count++
		}
	}
	return count
}

// IsDoubleDouble reports double figures in at least two categories.
func IsDoubleDouble(c Categories) bool {
	return CountAtLeast(c, DoubleFigures) >= 2
}

// IsTripleDouble reports double figures in at least three categories.
func IsTripleDouble(c Categories) bool {
	return CountAtLeast(c, DoubleFigures) >= 3
}

// IsPerfectShooting reports a miss-free night on at least minAttempts shots.
func IsPerfectShooting(made, attempted, minAttempts int) bool {
	return attempted >= minAttempts && made == attempted
}

// Sum adds two stat lines counter by counter.
func Sum(a, b games.StatLine) games.StatLine {
	return games.StatLine{
		Points:                 a.Points + b.Points,
		Rebounds:               a.Rebounds + b.Rebounds,
		Assists:                a.Assists + b.Assists,
		Steals:                 a.Steals + b.Steals,
		Blocks:                 a.Blocks + b.Blocks,
		Turnovers:              a.Turnovers + b.Turnovers,
		FieldGoalsMade:         a.FieldGoalsMade + b.FieldGoalsMade,
		FieldGoalsAttempted:    a.FieldGoalsAttempted + b.FieldGoalsAttempted,
		ThreePointersMade:      a.ThreePointersMade + b.ThreePointersMade,
		ThreePointersAttempted: a.ThreePointersAttempted + b.ThreePointersAttempted,
		FreeThrowsMade:         a.FreeThrowsMade + b.FreeThrowsMade,
		FreeThrowsAttempted:    a.FreeThrowsAttempted + b.FreeThrowsAttempted,
	}
}
