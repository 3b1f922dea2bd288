package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
)

// Awarder records badges for completed games.
type Awarder interface {
	AwardGame(ctx context.Context, gameID string) ([]awards.Award, error)
	AwardPending(ctx context.Context) (awards.Summary, error)
}

// AdminHandler exposes admin-only endpoints that trigger badge awarding.
type AdminHandler struct {
	awarder Awarder
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. Without a token every request
// is rejected.
func NewAdminHandler(awarder Awarder, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		awarder: awarder,
		token:   token,
		logger:  logger,
	}
}

// AwardGame records the badges earned in one final game.
func (h *AdminHandler) AwardGame(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	gameID := chi.URLParam(r, "gameID")

	awarded, err := h.awarder.AwardGame(r.Context(), gameID)
	if err != nil {
		writeServiceError(w, r, err, "game not found", logger)
		return
	}
	logging.Info(logger, "admin awarded game",
		slog.String(logging.FieldGameID, gameID),
		slog.Int(logging.FieldCount, len(awarded)),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"gameId": gameID,
		"awards": awarded,
	}, logger)
}

// AwardPending sweeps one batch of final games not yet evaluated. Partial
// failures still return the summary, with 207 so callers notice.
func (h *AdminHandler) AwardPending(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	summary, err := h.awarder.AwardPending(r.Context())
	status := http.StatusOK
	if err != nil {
		if summary.Games == 0 && summary.Failed == 0 {
			writeServiceError(w, r, err, "", logger)
			return
		}
		logging.Warn(logger, "admin award sweep partially failed", slog.Any("err", err))
		status = http.StatusMultiStatus
	}
	logging.Info(logger, "admin award sweep complete",
		slog.Int("games", summary.Games),
		slog.Int(logging.FieldCount, len(summary.Awards)),
		slog.Int("failed", summary.Failed),
	)
	writeJSON(w, status, summary, logger)
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	got, ok := requestutil.BearerToken(r)
	if ok && h.token != "" && subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1 {
		return true
	}
	logger := loggerFromContext(r, h.logger)
	logging.Warn(logger, "admin unauthorized",
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
	writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
	return false
}
