package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/league-stats-service/internal/app"
	"github.com/preston-bernstein/league-stats-service/internal/app/games"
	"github.com/preston-bernstein/league-stats-service/internal/app/leaderboards"
	"github.com/preston-bernstein/league-stats-service/internal/app/players"
	"github.com/preston-bernstein/league-stats-service/internal/app/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/app/teams"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/poller"
)

// Services are the league read services the API serves from.
type Services struct {
	Seasons      *seasons.Service
	Teams        *teams.Service
	Games        *games.Service
	Players      *players.Service
	Leaderboards *leaderboards.Service
}

// Badges carries the evaluator rules and presentation data for /badges.
type Badges struct {
	Evaluator badges.Evaluator
	Catalog   badges.Catalog
	Palette   badges.Palette
}

// Handler wires HTTP routes to the league services.
type Handler struct {
	svc      Services
	badges   Badges
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. A nil statusFn reports ready whenever the
// process is up, which is the case when the award sweep is disabled.
func NewHandler(svc Services, b Badges, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	if b.Catalog == nil {
		b.Catalog = badges.DefaultCatalog()
	}
	if b.Palette == nil {
		b.Palette = badges.DefaultPalette()
	}
	return &Handler{
		svc:      svc,
		badges:   b,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers routes chi does not know.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// queryLimit reads ?limit=. A missing value is zero, letting the service
// pick its default.
func queryLimit(r *nethttp.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, eris.Wrapf(app.ErrInvalidArgument, "invalid limit %q", raw)
	}
	return limit, nil
}

// queryBool reads an optional boolean parameter; nil means unset.
func queryBool(r *nethttp.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, eris.Wrapf(app.ErrInvalidArgument, "invalid %s %q", name, raw)
	}
	return &v, nil
}
