package badges

import (
	"reflect"
	"sync"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
)

func contains(ids []ID, want ID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestEvaluateZeroLineEarnsNothing(t *testing.T) {
	got := Evaluate(games.StatLine{})
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no badges, got %v", got)
	}
}

func TestEvaluateThresholds(t *testing.T) {
	cases := []struct {
		name string
		line games.StatLine
		id   ID
		want bool
	}{
		{"30 points", games.StatLine{Points: 30}, ThirtyPointGame, true},
		{"29 points", games.StatLine{Points: 29}, ThirtyPointGame, false},
		{"double-double", games.StatLine{Points: 10, Rebounds: 10, Assists: 9}, DoubleDouble, true},
		{"double-double is not triple", games.StatLine{Points: 10, Rebounds: 10, Assists: 9}, TripleDouble, false},
		{"five threes", games.StatLine{ThreePointersMade: 5, ThreePointersAttempted: 9}, Sharpshooter, true},
		{"four threes", games.StatLine{ThreePointersMade: 4, ThreePointersAttempted: 4}, Sharpshooter, false},
		{"steals and blocks sum", games.StatLine{Steals: 3, Blocks: 2}, DefensiveAnchor, true},
		{"all blocks", games.StatLine{Blocks: 5}, DefensiveAnchor, true},
		{"four stocks", games.StatLine{Steals: 2, Blocks: 2}, DefensiveAnchor, false},
		{"perfect on five", games.StatLine{FieldGoalsMade: 5, FieldGoalsAttempted: 5}, PerfectGame, true},
		{"perfect below minimum", games.StatLine{FieldGoalsMade: 4, FieldGoalsAttempted: 4}, PerfectGame, false},
		{"one miss", games.StatLine{FieldGoalsMade: 8, FieldGoalsAttempted: 9}, PerfectGame, false},
		{"turnovers never count", games.StatLine{Points: 10, Turnovers: 10}, DoubleDouble, false},
	}
	for _, tc := range cases {
		got := Evaluate(tc.line)
		if contains(got, tc.id) != tc.want {
			t.Fatalf("%s: expected %s present=%v, got %v", tc.name, tc.id, tc.want, got)
		}
	}
}

func TestTripleDoubleAlsoEarnsDoubleDouble(t *testing.T) {
	got := Evaluate(games.StatLine{Points: 10, Rebounds: 10, Assists: 10})
	want := []ID{TripleDouble, DoubleDouble}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEvaluateFollowsRuleOrder(t *testing.T) {
	line := games.StatLine{
		Points:                 34,
		Rebounds:               11,
		Assists:                10,
		Steals:                 3,
		Blocks:                 2,
		FieldGoalsMade:         12,
		FieldGoalsAttempted:    12,
		ThreePointersMade:      5,
		ThreePointersAttempted: 5,
	}
	want := []ID{ThirtyPointGame, TripleDouble, DoubleDouble, Sharpshooter, DefensiveAnchor, PerfectGame}
	if got := Evaluate(line); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	line := games.StatLine{Points: 31, Rebounds: 12, Steals: 4, Blocks: 1}
	first := Evaluate(line)
	second := Evaluate(line)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %v then %v", first, second)
	}
}

func TestEvaluateToleratesMalformedInput(t *testing.T) {
	// made > attempted and negative counts are evaluated mechanically.
	line := games.StatLine{
		Points:              -4,
		Steals:              -1,
		Blocks:              6,
		FieldGoalsMade:      9,
		FieldGoalsAttempted: 5,
	}
	got := Evaluate(line)
	want := []ID{DefensiveAnchor}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPerfectGameMinimumIsConfigurable(t *testing.T) {
	line := games.StatLine{FieldGoalsMade: 3, FieldGoalsAttempted: 3}

	if contains(Evaluate(line), PerfectGame) {
		t.Fatalf("expected default minimum to reject 3 attempts")
	}
	lenient := NewEvaluator(Config{PerfectGameMinAttempts: 3})
	if !contains(lenient.Evaluate(line), PerfectGame) {
		t.Fatalf("expected minimum of 3 to award perfect game")
	}
	strict := NewEvaluator(Config{PerfectGameMinAttempts: 10})
	if strict.Earned(PerfectGame, games.StatLine{FieldGoalsMade: 9, FieldGoalsAttempted: 9}) {
		t.Fatalf("expected minimum of 10 to reject 9 attempts")
	}
}

func TestNewEvaluatorDefaultsNonPositiveMinimum(t *testing.T) {
	for _, min := range []int{0, -3} {
		e := NewEvaluator(Config{PerfectGameMinAttempts: min})
		if got := e.Config().PerfectGameMinAttempts; got != 5 {
			t.Fatalf("min=%d: expected default 5, got %d", min, got)
		}
		if len(e.Evaluate(games.StatLine{})) != 0 {
			t.Fatalf("min=%d: expected zero line to earn nothing", min)
		}
	}
	if got := (Evaluator{}).Config().PerfectGameMinAttempts; got != 5 {
		t.Fatalf("expected zero evaluator to use default, got %d", got)
	}
}

func TestEarnedUnknownID(t *testing.T) {
	if (Evaluator{}).Earned("most_improved", games.StatLine{Points: 50}) {
		t.Fatalf("expected unknown badge to never be earned")
	}
}

func TestParseID(t *testing.T) {
	for _, id := range Order {
		got, ok := ParseID(string(id))
		if !ok || got != id {
			t.Fatalf("expected %s to parse, got %q ok=%v", id, got, ok)
		}
	}
	if _, ok := ParseID("quadruple_double"); ok {
		t.Fatalf("expected unknown id to fail")
	}
}

func TestEvaluateConcurrentCallers(t *testing.T) {
	line := games.StatLine{Points: 30, Rebounds: 10, Steals: 5}
	want := Evaluate(line)
	e := NewEvaluator(DefaultConfig())

	var wg sync.WaitGroup
	errs := make(chan []ID, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.Evaluate(line); !reflect.DeepEqual(got, want) {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("expected %v from every caller, got %v", want, got)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	line := games.StatLine{Points: 24, Rebounds: 11, Assists: 7, Steals: 2, Blocks: 3, FieldGoalsMade: 9, FieldGoalsAttempted: 15}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(line)
	}
}
