package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/league-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/league-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
)

// RouterOptions carries the cross-cutting pieces of the router. A nil Admin
// leaves the award endpoints unmounted.
type RouterOptions struct {
	Admin          *handlers.AdminHandler
	AllowedOrigins []string
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
}

// NewRouter registers the API routes on a chi router.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Logger, opts.Recorder))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/seasons", h.Seasons)
		r.Get("/seasons/active", h.ActiveSeason)
		r.Get("/seasons/{seasonID}", h.Season)
		r.Get("/seasons/{seasonID}/teams", h.SeasonTeams)
		r.Get("/seasons/{seasonID}/leaderboards/{category}", h.Leaderboard)

		r.Get("/teams/{teamID}", h.Team)
		r.Get("/teams/{teamID}/roster", h.Roster)

		r.Get("/games", h.Games)
		r.Get("/games/{gameID}", h.Game)
		r.Get("/games/{gameID}/boxscore", h.BoxScore)

		r.Get("/players/{playerID}", h.Player)
		r.Get("/players/{playerID}/profile", h.PlayerProfile)
		r.Get("/players/{playerID}/badges", h.PlayerBadges)
		r.Get("/players/{playerID}/games", h.PlayerGames)

		r.Get("/badges", h.BadgeCatalog)
		r.Post("/badges/evaluate", h.EvaluateBadges)

		if opts.Admin != nil {
			r.Route("/admin/awards", func(r chi.Router) {
				r.Post("/pending", opts.Admin.AwardPending)
				r.Post("/games/{gameID}", opts.Admin.AwardGame)
			})
		}
	})
	return r
}
