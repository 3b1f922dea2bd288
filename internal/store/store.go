// Package store reads league records and records earned badges.
package store

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Pool is the subset of pgxpool.Pool the Postgres store uses.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// LeaderboardQuery selects one ranked category of a season.
type LeaderboardQuery struct {
	SeasonID string
	Category players.LeaderboardCategory
	// Limit keeps entries ranked at or above it.
	Limit int
	// MinGames drops players with fewer games played.
	MinGames int
}

// GameAwards is the outcome of evaluating one game: the badges to record and
// the game they belong to.
type GameAwards struct {
	GameID   string
	SeasonID string
	Badges   []players.EarnedBadge
}

// Schema is the reference DDL of the league database.
//
//go:embed schema.sql
var Schema string
