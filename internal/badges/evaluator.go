// Package badges classifies a single game performance into achievement badges.
package badges

import (
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

// ID identifies a badge. The set is closed: see Order.
type ID string

const (
	ThirtyPointGame ID = "thirty_point_game"
	TripleDouble    ID = "triple_double"
	DoubleDouble    ID = "double_double"
	Sharpshooter    ID = "sharpshooter"
	DefensiveAnchor ID = "defensive_anchor"
	PerfectGame     ID = "perfect_game"
)

// Order lists every badge in evaluation order. Evaluate output follows it.
var Order = []ID{
	ThirtyPointGame,
	TripleDouble,
	DoubleDouble,
	Sharpshooter,
	DefensiveAnchor,
	PerfectGame,
}

// ParseID returns the badge named by s.
func ParseID(s string) (ID, bool) {
	for _, id := range Order {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

const (
	thirtyPointThreshold  = 30
	sharpshooterThrees    = 5
	defensiveAnchorStocks = 5
)

// Config tunes the rules that take a parameter.
type Config struct {
	// PerfectGameMinAttempts is the field-goal volume a perfect game needs.
	PerfectGameMinAttempts int
}

// DefaultConfig returns the league's standard rule parameters.
func DefaultConfig() Config {
	return Config{PerfectGameMinAttempts: stats.DefaultPerfectShootingMinAttempts}
}

// Evaluator applies the badge rules. The zero value uses DefaultConfig.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	cfg Config
}

// NewEvaluator builds an Evaluator. A non-positive minimum falls back to the default.
func NewEvaluator(cfg Config) Evaluator {
	if cfg.PerfectGameMinAttempts <= 0 {
		cfg.PerfectGameMinAttempts = stats.DefaultPerfectShootingMinAttempts
	}
	return Evaluator{cfg: cfg}
}

// Config returns the effective rule parameters.
func (e Evaluator) Config() Config {
	if e.cfg.PerfectGameMinAttempts <= 0 {
		return DefaultConfig()
	}
	return e.cfg
}

// Evaluate returns every badge line earns, in Order. Badges are independent:
// a triple-double also earns double_double. Input is never validated.
func (e Evaluator) Evaluate(line games.StatLine) []ID {
	earned := make([]ID, 0, len(Order))
	for _, id := range Order {
		if e.Earned(id, line) {
			earned = append(earned, id)
		}
	}
	return earned
}

// Earned checks a single rule. Unknown IDs are never earned.
func (e Evaluator) Earned(id ID, line games.StatLine) bool {
	switch id {
	case ThirtyPointGame:
		return line.Points >= thirtyPointThreshold
	case TripleDouble:
		return stats.IsTripleDouble(stats.CategoriesOf(line))
	case DoubleDouble:
		return stats.IsDoubleDouble(stats.CategoriesOf(line))
	case Sharpshooter:
		return line.ThreePointersMade >= sharpshooterThrees
	case DefensiveAnchor:
		return line.Steals+line.Blocks >= defensiveAnchorStocks
	case PerfectGame:
		return stats.IsPerfectShooting(line.FieldGoalsMade, line.FieldGoalsAttempted, e.Config().PerfectGameMinAttempts)
	default:
		return false
	}
}

// Evaluate applies the default rules to line.
func Evaluate(line games.StatLine) []ID {
	return Evaluator{}.Evaluate(line)
}
