package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
)

// PostgresStore reads the league schema through a pgx pool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
	metrics *metrics.Recorder
	timeout time.Duration
	now     func() time.Time
	newID   func() string
}

// NewPostgres connects a pool and verifies it with a ping.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig, recorder *metrics.Recorder) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	if cfg.MaxConns > 0 {
		pgxCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pgxCfg.MinConns = cfg.MinConns
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	if err := recorder.ObservePool(poolStats(pool)); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: observe pool")
	}
	return newPostgresStore(pool, recorder, cfg.QueryTimeout), nil
}

func poolStats(pool *pgxpool.Pool) func() metrics.PoolStats {
	return func() metrics.PoolStats {
		st := pool.Stat()
		return metrics.PoolStats{
			Total:    st.TotalConns(),
			Idle:     st.IdleConns(),
			Acquired: st.AcquiredConns(),
		}
	}
}

func newPostgresStore(pool Pool, recorder *metrics.Recorder, timeout time.Duration) *PostgresStore {
	return &PostgresStore{
		pool:    pool,
		closeFn: pool.Close,
		metrics: recorder,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.NewString() },
	}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.run(ctx, "ping", func(ctx context.Context) error {
		return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
	})
}

// Close releases the pool.
func (s *PostgresStore) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// run applies the query timeout and records the call. Missing rows are not
// counted as failures.
func (s *PostgresStore) run(ctx context.Context, name string, fn func(context.Context) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	start := time.Now()
	err := fn(ctx)
	recorded := err
	if errors.Is(err, ErrNotFound) {
		recorded = nil
	}
	s.metrics.RecordQuery(name, time.Since(start), recorded)
	return err
}

func queryOne[T any](s *PostgresStore, ctx context.Context, name, sql string, scan func(pgx.Row) (T, error), args ...any) (T, error) {
	var out T
	err := s.run(ctx, name, func(ctx context.Context) error {
		v, err := scan(s.pool.QueryRow(ctx, sql, args...))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return eris.Wrapf(err, "postgres: %s", name)
		}
		out = v
		return nil
	})
	return out, err
}

func queryAll[T any](s *PostgresStore, ctx context.Context, name, sql string, scan func(pgx.Row) (T, error), args ...any) ([]T, error) {
	var out []T
	err := s.run(ctx, name, func(ctx context.Context) error {
		rows, err := s.pool.Query(ctx, sql, args...)
		if err != nil {
			return eris.Wrapf(err, "postgres: %s", name)
		}
		items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
			return scan(row)
		})
		if err != nil {
			return eris.Wrapf(err, "postgres: scan %s", name)
		}
		out = items
		return nil
	})
	if out == nil && err == nil {
		out = []T{}
	}
	return out, err
}

// ListSeasons returns every season, newest first.
func (s *PostgresStore) ListSeasons(ctx context.Context) ([]seasons.Season, error) {
	return queryAll(s, ctx, "list seasons", listSeasonsSQL, scanSeason)
}

// ActiveSeason returns the current season or ErrNotFound when none is active.
func (s *PostgresStore) ActiveSeason(ctx context.Context) (seasons.Season, error) {
	return queryOne(s, ctx, "active season", activeSeasonSQL, scanSeason)
}

func (s *PostgresStore) Season(ctx context.Context, id string) (seasons.Season, error) {
	return queryOne(s, ctx, "get season", seasonSQL, scanSeason, id)
}

func (s *PostgresStore) TeamsBySeason(ctx context.Context, seasonID string) ([]teams.Team, error) {
	return queryAll(s, ctx, "list teams", teamsBySeasonSQL, scanTeam, seasonID)
}

func (s *PostgresStore) Team(ctx context.Context, id string) (teams.Team, error) {
	return queryOne(s, ctx, "get team", teamSQL, scanTeam, id)
}

func (s *PostgresStore) TeamRoster(ctx context.Context, teamID string) ([]teams.RosterEntry, error) {
	return queryAll(s, ctx, "team roster", teamRosterSQL, scanRosterEntry, teamID)
}

// ListGames returns games matching the filter with teams and season joined.
func (s *PostgresStore) ListGames(ctx context.Context, f games.Filter) ([]games.Game, error) {
	sql, args := listGamesSQL(f)
	return queryAll(s, ctx, "list games", sql, scanGame, args...)
}

func (s *PostgresStore) Game(ctx context.Context, id string) (games.Game, error) {
	return queryOne(s, ctx, "get game", gameSQL, scanGame, id)
}

// GameStatLines returns the box score of a game, top scorers first.
func (s *PostgresStore) GameStatLines(ctx context.Context, gameID string) ([]games.PlayerStatLine, error) {
	return queryAll(s, ctx, "game stat lines", gameStatLinesSQL, scanBoxScoreLine, gameID)
}

func (s *PostgresStore) Player(ctx context.Context, id string) (players.Player, error) {
	return queryOne(s, ctx, "get player", playerSQL, scanPlayer, id)
}

func (s *PostgresStore) PlayerSeasonStats(ctx context.Context, playerID, seasonID string) (players.SeasonStats, error) {
	return queryOne(s, ctx, "player season stats", playerSeasonStatsSQL, scanSeasonStats, playerID, seasonID)
}

func (s *PostgresStore) PlayerCareerStats(ctx context.Context, playerID string) (players.CareerStats, error) {
	return queryOne(s, ctx, "player career stats", playerCareerStatsSQL, scanCareerStats, playerID)
}

func (s *PostgresStore) PlayerBadges(ctx context.Context, playerID string) ([]players.EarnedBadge, error) {
	return queryAll(s, ctx, "player badges", playerBadgesSQL, scanEarnedBadge, playerID)
}

func (s *PostgresStore) PlayerRecentGames(ctx context.Context, playerID string, limit int) ([]games.PlayerStatLine, error) {
	return queryAll(s, ctx, "player recent games", playerRecentGamesSQL, scanPlayerGameLine, playerID, limit)
}

// Leaderboard reads one ranked category from the season_leaderboards view.
func (s *PostgresStore) Leaderboard(ctx context.Context, q LeaderboardQuery) ([]players.LeaderboardEntry, error) {
	column, ok := rankColumns[q.Category]
	if !ok {
		return nil, eris.Errorf("postgres: unknown leaderboard category %q", q.Category)
	}
	return queryAll(s, ctx, "leaderboard", leaderboardSQL(column), scanLeaderboardEntry, q.SeasonID, q.Limit, q.MinGames)
}

// PendingAwardGames returns final games whose badges have not been evaluated.
func (s *PostgresStore) PendingAwardGames(ctx context.Context, limit int) ([]games.Game, error) {
	return queryAll(s, ctx, "pending award games", pendingAwardGamesSQL, scanGame, limit)
}

// AwardedBadgeIDs lists the badges a player already holds for a game.
func (s *PostgresStore) AwardedBadgeIDs(ctx context.Context, playerID, gameID string) ([]string, error) {
	return queryAll(s, ctx, "awarded badges", awardedBadgeIDsSQL, func(row pgx.Row) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	}, playerID, gameID)
}

// RecordGameAwards inserts the badges and marks the game evaluated in one
// transaction. It returns how many badges were newly stored.
func (s *PostgresStore) RecordGameAwards(ctx context.Context, awards GameAwards) (int, error) {
	var inserted int
	err := s.run(ctx, "record game awards", func(ctx context.Context) error {
		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return eris.Wrap(err, "postgres: begin awards")
		}
		n, err := s.insertAwards(ctx, tx, awards)
		if err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return eris.Wrap(err, "postgres: commit awards")
		}
		inserted = n
		return nil
	})
	return inserted, err
}

func (s *PostgresStore) insertAwards(ctx context.Context, tx pgx.Tx, awards GameAwards) (int, error) {
	inserted := 0
	for _, b := range awards.Badges {
		id := b.ID
		if id == "" {
			id = s.newID()
		}
		earnedAt := b.EarnedAt
		if earnedAt.IsZero() {
			earnedAt = s.now()
		}
		tag, err := tx.Exec(ctx, insertPlayerBadgeSQL, id, b.PlayerID, b.BadgeID, nullable(awards.GameID), nullable(awards.SeasonID), earnedAt)
		if err != nil {
			return 0, eris.Wrapf(err, "postgres: insert badge %s for player %s", b.BadgeID, b.PlayerID)
		}
		inserted += int(tag.RowsAffected())
	}
	if _, err := tx.Exec(ctx, markGameEvaluatedSQL, awards.GameID, s.now()); err != nil {
		return 0, eris.Wrapf(err, "postgres: mark game %s evaluated", awards.GameID)
	}
	return inserted, nil
}
