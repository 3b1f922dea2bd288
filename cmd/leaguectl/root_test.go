package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range newRootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"evaluate", "award", "boxscore", "schema"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestEvaluateCommand_PrintsBadges(t *testing.T) {
	out, err := execute(t, "evaluate", "--points", "31", "--rebounds", "12", "--fgm", "12", "--fga", "20")
	require.NoError(t, err)

	var got evaluateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []badges.ID{badges.ThirtyPointGame, badges.DoubleDouble}, got.Badges)
}

func TestEvaluateCommand_PerfectMinFlag(t *testing.T) {
	flag := newEvaluateCmd().Flags().Lookup("perfect-min")
	require.NotNil(t, flag)
	assert.Equal(t, "5", flag.DefValue)

	out, err := execute(t, "evaluate", "--fgm", "4", "--fga", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"badges": []`)

	out, err = execute(t, "evaluate", "--fgm", "4", "--fga", "4", "--perfect-min", "4")
	require.NoError(t, err)
	assert.Contains(t, out, string(badges.PerfectGame))
}

func TestSchemaCommand_PrintsDDL(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Equal(t, store.Schema, out)
	assert.Contains(t, out, "CREATE TABLE IF NOT EXISTS seasons")
}

func TestAwardCommand_RequiresExactlyOneMode(t *testing.T) {
	_, err := execute(t, "award")
	require.Error(t, err)

	_, err = execute(t, "award", "--game", store.FixtureOpeningGameID, "--pending")
	require.Error(t, err)
}

func TestAwardCommand_GameAgainstFixture(t *testing.T) {
	out, err := execute(t, "award", "--game", store.FixtureOpeningGameID)
	require.NoError(t, err)

	var got []awards.Award
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 6)
	for _, a := range got {
		assert.Equal(t, store.FixtureOpeningGameID, a.GameID)
	}
}

func TestAwardCommand_UpcomingGameFails(t *testing.T) {
	_, err := execute(t, "award", "--game", store.FixtureUpcomingGameID)
	require.Error(t, err)
	assert.ErrorIs(t, err, awards.ErrGameNotFinal)
}

func TestAwardCommand_PendingSweep(t *testing.T) {
	out, err := execute(t, "award", "--pending")
	require.NoError(t, err)

	var got awards.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 6, got.Games)
	assert.Zero(t, got.Failed)
	assert.NotEmpty(t, got.Awards)
}

func TestAwardCommand_StoreOpenError(t *testing.T) {
	orig := openStore
	defer func() { openStore = orig }()
	openStore = func(context.Context, config.Config, *slog.Logger) (leagueStore, error) {
		return nil, errors.New("connection refused")
	}

	_, err := execute(t, "award", "--pending")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open league store")
}

func TestBoxScoreCommand_PrintsFinalGame(t *testing.T) {
	out, err := execute(t, "boxscore", "--game", store.FixtureOpeningGameID)
	require.NoError(t, err)

	assert.Contains(t, out, "Malton Hawks vs Riverside Runners")
	assert.Contains(t, out, "Final: ")
	assert.Contains(t, out, "Jordan Reyes")
	assert.Contains(t, out, string(badges.ThirtyPointGame))
	assert.Equal(t, 2, strings.Count(out, "TOTAL"))
}

func TestBoxScoreCommand_UpcomingGameIsUnscored(t *testing.T) {
	out, err := execute(t, "boxscore", "--game", store.FixtureUpcomingGameID)
	require.NoError(t, err)
	assert.Contains(t, out, "Scheduled: TBD")
}

func TestBoxScoreCommand_Errors(t *testing.T) {
	_, err := execute(t, "boxscore")
	require.Error(t, err)

	_, err = execute(t, "boxscore", "--game", store.FixtureOpeningGameID, "--tz", "Mars/Olympus")
	require.Error(t, err)

	_, err = execute(t, "boxscore", "--game", "game-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
