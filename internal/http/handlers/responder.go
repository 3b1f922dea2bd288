package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a service error to its status. Caller mistakes echo
// the validation message; store failures are logged and reported generically.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)
	switch {
	case errors.Is(err, app.ErrInvalidArgument):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, app.ErrNotFound):
		writeError(w, r, http.StatusNotFound, notFound, logger)
	case errors.Is(err, awards.ErrGameNotFinal):
		writeError(w, r, http.StatusConflict, "game is not final", logger)
	case r.Context().Err() != nil:
		writeError(w, r, http.StatusServiceUnavailable, "request cancelled", logger)
	default:
		logging.Error(logger, "store request failed", err)
		writeError(w, r, http.StatusBadGateway, "league data unavailable", logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
