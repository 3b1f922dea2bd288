package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
)

func newAwardCmd(c *cli) *cobra.Command {
	var (
		gameID  string
		pending bool
	)
	cmd := &cobra.Command{
		Use:   "award",
		Short: "Record the badges earned in final games",
		Long:  "Awards one game with --game, or sweeps one batch of final games not yet evaluated with --pending. Badges already held for a game are never recorded twice.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (gameID == "") == !pending {
				return eris.New("exactly one of --game or --pending is required")
			}
			ctx := cmd.Context()

			st, err := openStore(ctx, c.cfg, c.logger)
			if err != nil {
				return eris.Wrap(err, "open league store")
			}
			defer st.Close()

			evaluator := badges.NewEvaluator(badges.Config{PerfectGameMinAttempts: c.cfg.Awards.PerfectGameMinAttempts})
			svc := awards.NewService(st, evaluator, c.cfg.Awards.BatchSize, c.logger, metrics.NewRecorder())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if pending {
				summary, err := svc.AwardPending(ctx)
				if encErr := enc.Encode(summary); encErr != nil {
					return encErr
				}
				if err != nil {
					return eris.Wrap(err, "award pending games")
				}
				logging.Info(c.logger, "award sweep complete", "games", summary.Games, logging.FieldCount, len(summary.Awards))
				return nil
			}

			awarded, err := svc.AwardGame(ctx, gameID)
			if err != nil {
				return eris.Wrapf(err, "award game %s", gameID)
			}
			if awarded == nil {
				awarded = []awards.Award{}
			}
			return enc.Encode(awarded)
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "id of the final game to award")
	cmd.Flags().BoolVar(&pending, "pending", false, "award one batch of pending final games")
	return cmd
}
