// Package awards records the badges players earn in completed games.
package awards

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

const defaultBatchSize = 25

// ErrGameNotFinal is returned when badges are requested for an unfinished game.
var ErrGameNotFinal = errors.New("game is not final")

// Store defines what awarding reads and writes.
type Store interface {
	Game(ctx context.Context, id string) (games.Game, error)
	GameStatLines(ctx context.Context, gameID string) ([]games.PlayerStatLine, error)
	PendingAwardGames(ctx context.Context, limit int) ([]games.Game, error)
	AwardedBadgeIDs(ctx context.Context, playerID, gameID string) ([]string, error)
	RecordGameAwards(ctx context.Context, awards store.GameAwards) (int, error)
}

// Award is one badge newly recorded for a player.
type Award struct {
	PlayerID string    `json:"playerId"`
	GameID   string    `json:"gameId"`
	SeasonID string    `json:"seasonId"`
	Badge    badges.ID `json:"badge"`
}

// Summary reports one pass over pending games.
type Summary struct {
	Games  int     `json:"games"`
	Awards []Award `json:"awards"`
	Failed int     `json:"failed"`
}

// Service evaluates final games and records badges not yet held.
type Service struct {
	store     Store
	evaluator badges.Evaluator
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewService constructs a Service. A non-positive batchSize uses the default.
func NewService(s Store, evaluator badges.Evaluator, batchSize int, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Service{
		store:     s,
		evaluator: evaluator,
		batchSize: batchSize,
		logger:    logger,
		metrics:   recorder,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// AwardGame evaluates every stat line of a final game and records the
// badges each player does not already hold for it. Running it again awards
// nothing.
func (s *Service) AwardGame(ctx context.Context, gameID string) ([]Award, error) {
	if err := app.ValidateID("game", gameID); err != nil {
		return nil, err
	}
	game, err := s.store.Game(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsFinal {
		return nil, eris.Wrapf(ErrGameNotFinal, "award game %s", gameID)
	}
	return s.award(ctx, game)
}

// AwardPending processes one batch of final games that have not been
// evaluated. A failing game is logged and skipped; the joined error reports
// every failure.
func (s *Service) AwardPending(ctx context.Context) (Summary, error) {
	pending, err := s.store.PendingAwardGames(ctx, s.batchSize)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Awards: []Award{}}
	var errs []error
	for _, game := range pending {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		awarded, err := s.award(ctx, game)
		if err != nil {
			summary.Failed++
			errs = append(errs, err)
			logging.Error(s.logger, "award game failed", err, logging.FieldGameID, game.ID)
			continue
		}
		summary.Games++
		summary.Awards = append(summary.Awards, awarded...)
	}
	return summary, errors.Join(errs...)
}

func (s *Service) award(ctx context.Context, game games.Game) ([]Award, error) {
	lines, err := s.store.GameStatLines(ctx, game.ID)
	if err != nil {
		return nil, eris.Wrapf(err, "load stat lines for game %s", game.ID)
	}

	earnedAt := s.now()
	awards := []Award{}
	var earned []players.EarnedBadge
	for _, line := range lines {
		ids := s.evaluator.Evaluate(line.StatLine)
		if len(ids) == 0 {
			continue
		}
		held, err := s.store.AwardedBadgeIDs(ctx, line.PlayerID, game.ID)
		if err != nil {
			return nil, eris.Wrapf(err, "load awarded badges for player %s", line.PlayerID)
		}
		for _, id := range newBadges(ids, held) {
			awards = append(awards, Award{PlayerID: line.PlayerID, GameID: game.ID, SeasonID: game.SeasonID, Badge: id})
			earned = append(earned, players.EarnedBadge{
				PlayerID: line.PlayerID,
				BadgeID:  string(id),
				GameID:   game.ID,
				SeasonID: game.SeasonID,
				EarnedAt: earnedAt,
			})
		}
	}

	inserted, err := s.store.RecordGameAwards(ctx, store.GameAwards{GameID: game.ID, SeasonID: game.SeasonID, Badges: earned})
	if err != nil {
		return nil, eris.Wrapf(err, "record awards for game %s", game.ID)
	}
	for _, a := range awards {
		s.metrics.RecordBadgeAwarded(string(a.Badge))
	}
	if inserted != len(awards) {
		logging.Warn(s.logger, "award count mismatch",
			logging.FieldGameID, game.ID,
			logging.FieldCount, inserted,
			"expected", len(awards),
		)
	}
	logging.Info(s.logger, "game badges awarded",
		logging.FieldGameID, game.ID,
		logging.FieldSeasonID, game.SeasonID,
		logging.FieldCount, len(awards),
	)
	return awards, nil
}

// newBadges keeps the evaluated ids not already held, in evaluation order.
func newBadges(evaluated []badges.ID, held []string) []badges.ID {
	have := make(map[string]bool, len(held))
	for _, h := range held {
		have[h] = true
	}
	out := make([]badges.ID, 0, len(evaluated))
	for _, id := range evaluated {
		if !have[string(id)] {
			out = append(out, id)
		}
	}
	return out
}
