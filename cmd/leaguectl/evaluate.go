package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
)

type evaluateOutput struct {
	Badges []badges.ID `json:"badges"`
}

func newEvaluateCmd() *cobra.Command {
	var (
		line       games.StatLine
		perfectMin int
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Print the badges a stat line earns",
		Example: "  leaguectl evaluate --points 31 --rebounds 12 --fgm 12 --fga 20\n" +
			"  leaguectl evaluate --fgm 4 --fga 4 --perfect-min 4",
		RunE: func(cmd *cobra.Command, _ []string) error {
			evaluator := badges.NewEvaluator(badges.Config{PerfectGameMinAttempts: perfectMin})
			out := evaluateOutput{Badges: evaluator.Evaluate(line)}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	f := cmd.Flags()
	f.IntVar(&line.Points, "points", 0, "points scored")
	f.IntVar(&line.Rebounds, "rebounds", 0, "rebounds")
	f.IntVar(&line.Assists, "assists", 0, "assists")
	f.IntVar(&line.Steals, "steals", 0, "steals")
	f.IntVar(&line.Blocks, "blocks", 0, "blocks")
	f.IntVar(&line.Turnovers, "turnovers", 0, "turnovers")
	f.IntVar(&line.FieldGoalsMade, "fgm", 0, "field goals made")
	f.IntVar(&line.FieldGoalsAttempted, "fga", 0, "field goals attempted")
	f.IntVar(&line.ThreePointersMade, "3pm", 0, "three pointers made")
	f.IntVar(&line.ThreePointersAttempted, "3pa", 0, "three pointers attempted")
	f.IntVar(&line.FreeThrowsMade, "ftm", 0, "free throws made")
	f.IntVar(&line.FreeThrowsAttempted, "fta", 0, "free throws attempted")
	f.IntVar(&perfectMin, "perfect-min", badges.DefaultConfig().PerfectGameMinAttempts, "field goal attempts required for a perfect game")
	return cmd
}
