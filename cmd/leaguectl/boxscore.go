package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-stats-service/internal/app/games"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/format"
)

func newBoxScoreCmd(c *cli) *cobra.Command {
	var (
		gameID string
		tz     string
	)
	cmd := &cobra.Command{
		Use:   "boxscore",
		Short: "Print a game's box score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if gameID == "" {
				return eris.New("--game is required")
			}
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return eris.Wrapf(err, "load location %s", tz)
			}
			ctx := cmd.Context()

			st, err := openStore(ctx, c.cfg, c.logger)
			if err != nil {
				return eris.Wrap(err, "open league store")
			}
			defer st.Close()

			evaluator := badges.NewEvaluator(badges.Config{PerfectGameMinAttempts: c.cfg.Awards.PerfectGameMinAttempts})
			box, err := games.NewService(st, evaluator).BoxScore(ctx, gameID)
			if err != nil {
				return eris.Wrapf(err, "box score %s", gameID)
			}
			return writeBoxScore(cmd.OutOrStdout(), box, loc)
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "id of the game")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone for the tip-off time")
	return cmd
}

func writeBoxScore(w io.Writer, box games.BoxScore, loc *time.Location) error {
	g := box.Game
	fmt.Fprintf(w, "%s vs %s\n", teamName(box.Home), teamName(box.Away))
	fmt.Fprintf(w, "%s", format.DateTime(g.ScheduledAt.In(loc)))
	if g.Location != "" {
		fmt.Fprintf(w, " at %s", g.Location)
	}
	fmt.Fprintln(w)
	status := "Scheduled"
	if g.IsFinal {
		status = "Final"
	}
	fmt.Fprintf(w, "%s: %s\n", status, format.GameScore(g.HomeScore, g.AwayScore))

	for _, side := range []games.TeamBox{box.Home, box.Away} {
		fmt.Fprintf(w, "\n%s\n", teamName(side))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PLAYER\tMIN\tPTS\tREB\tAST\tSTL\tBLK\tTO\tFG\tFG%\t3P%\tFT%\tBADGES")
		for _, line := range side.Lines {
			name := line.PlayerID
			if line.Player != nil {
				name = format.PlayerName(line.Player.FirstName, line.Player.LastName)
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", name, line.MinutesPlayed,
				countingStats(line.Points, line.Rebounds, line.Assists, line.Steals, line.Blocks, line.Turnovers),
				shooting(line.FieldGoalsMade, line.FieldGoalsAttempted, line.Splits.FieldGoalPct, line.Splits.ThreePointPct, line.Splits.FreeThrowPct),
				badgeList(line.Badges))
		}
		t := side.Totals
		fmt.Fprintf(tw, "TOTAL\t\t%s\t%s\t\n",
			countingStats(t.Points, t.Rebounds, t.Assists, t.Steals, t.Blocks, t.Turnovers),
			shooting(t.FieldGoalsMade, t.FieldGoalsAttempted, side.Splits.FieldGoalPct, side.Splits.ThreePointPct, side.Splits.FreeThrowPct))
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func teamName(side games.TeamBox) string {
	if side.Team == nil {
		return format.Missing
	}
	return side.Team.Name
}

func countingStats(pts, reb, ast, stl, blk, to int) string {
	return fmt.Sprintf("%d\t%d\t%d\t%d\t%d\t%d", pts, reb, ast, stl, blk, to)
}

func shooting(made, attempted int, fg, three, ft *float64) string {
	return fmt.Sprintf("%d-%d\t%s\t%s\t%s", made, attempted, format.Percentage(fg), format.Percentage(three), format.Percentage(ft))
}

func badgeList(ids []badges.ID) string {
	if len(ids) == 0 {
		return format.Missing
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ",")
}
