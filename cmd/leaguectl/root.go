package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-stats-service/internal/app/games"
	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

const appVersion = "dev"

// leagueStore is the slice of the league store the commands drive.
type leagueStore interface {
	awards.Store
	games.Store
	Close()
}

var openStore = func(ctx context.Context, cfg config.Config, logger *slog.Logger) (leagueStore, error) {
	if cfg.Database.URL == "" {
		logging.Warn(logger, "DATABASE_URL not set, using the fixture league", logging.FieldSource, "fixture")
		return store.NewFixtureStore(), nil
	}
	return store.NewPostgres(ctx, cfg.Database, metrics.NewRecorder())
}

type cli struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "leaguectl",
		Short: "Operate the league stats database",
		Long:  "Evaluates stat lines against the badge rules, runs badge awarding against the league database, prints box scores, and prints the schema.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c.cfg = config.Load()
			c.logger = logging.NewLogger(logging.Config{
				Level:   c.cfg.Log.Level,
				Format:  c.cfg.Log.Format,
				Service: "leaguectl",
				Version: appVersion,
				Output:  cmd.ErrOrStderr(),
			})
			return nil
		},
		SilenceUsage: true,
	}
	root.AddCommand(newEvaluateCmd(), newAwardCmd(c), newBoxScoreCmd(c), newSchemaCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
