package stats

import "github.com/preston-bernstein/league-stats-service/internal/domain/games"

// Percentage returns made/attempted on a 0-100 scale. ok is false when
// nothing was attempted: the percentage is undefined, not zero.
func Percentage(made, attempted int) (pct float64, ok bool) {
	if attempted == 0 {
		return 0, false
	}
	return float64(made) / float64(attempted) * 100, true
}

// PercentagePtr is Percentage for JSON payloads; nil means no value.
func PercentagePtr(made, attempted int) *float64 {
	pct, ok := Percentage(made, attempted)
	if !ok {
		return nil
	}
	return &pct
}

// Splits are the three shooting percentages of one stat line.
type Splits struct {
	FieldGoalPct  *float64 `json:"fgPct"`
	ThreePointPct *float64 `json:"threePtPct"`
	FreeThrowPct  *float64 `json:"ftPct"`
}

// SplitsOf computes the shooting splits of a stat line.
func SplitsOf(line games.StatLine) Splits {
	return Splits{
		FieldGoalPct:  PercentagePtr(line.FieldGoalsMade, line.FieldGoalsAttempted),
		ThreePointPct: PercentagePtr(line.ThreePointersMade, line.ThreePointersAttempted),
		FreeThrowPct:  PercentagePtr(line.FreeThrowsMade, line.FreeThrowsAttempted),
	}
}
