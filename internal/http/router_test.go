package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/app/games"
	"github.com/preston-bernstein/league-stats-service/internal/app/leaderboards"
	"github.com/preston-bernstein/league-stats-service/internal/app/players"
	"github.com/preston-bernstein/league-stats-service/internal/app/seasons"
	"github.com/preston-bernstein/league-stats-service/internal/app/teams"
	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/store"
	"github.com/preston-bernstein/league-stats-service/internal/testutil"
)

func newFixtureRouter(opts RouterOptions) http.Handler {
	st := store.NewFixtureStore()
	evaluator := badges.NewEvaluator(badges.DefaultConfig())
	h := handlers.NewHandler(handlers.Services{
		Seasons:      seasons.NewService(st),
		Teams:        teams.NewService(st),
		Games:        games.NewService(st, evaluator),
		Players:      players.NewService(st),
		Leaderboards: leaderboards.NewService(st, leaderboards.Config{MinGames: 3}),
	}, handlers.Badges{Evaluator: evaluator}, nil, nil)
	return NewRouter(h, opts)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newFixtureRouter(RouterOptions{})

	active := "/api/v1/seasons/" + store.FixtureActiveSeasonID
	hawks := "/api/v1/teams/" + store.FixtureHawksID
	game := "/api/v1/games/" + store.FixtureOpeningGameID
	jordan := "/api/v1/players/" + store.FixtureJordanReyesID

	cases := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/v1/seasons", http.StatusOK},
		{"/api/v1/seasons/active", http.StatusOK},
		{active, http.StatusOK},
		{active + "/teams", http.StatusOK},
		{active + "/leaderboards/rpg", http.StatusOK},
		{hawks, http.StatusOK},
		{hawks + "/roster", http.StatusOK},
		{"/api/v1/games", http.StatusOK},
		{game, http.StatusOK},
		{game + "/boxscore", http.StatusOK},
		{jordan, http.StatusOK},
		{jordan + "/profile", http.StatusOK},
		{jordan + "/badges", http.StatusOK},
		{jordan + "/games", http.StatusOK},
		{"/api/v1/badges", http.StatusOK},
		{"/api/v1/games/game-missing", http.StatusNotFound},
		{"/api/v1/players/player-missing", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, http.MethodGet, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("route %s expected status %d, got %d", tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newFixtureRouter(RouterOptions{})

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if _, reqID := testutil.DecodeError(t, rr); reqID == "" {
		t.Fatalf("expected request id in error body")
	}

	rr = testutil.Serve(router, http.MethodGet, "/api/v1/nothing-here", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	router := newFixtureRouter(RouterOptions{})

	rr := testutil.Serve(router, http.MethodPost, "/api/v1/seasons", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)

	rr = testutil.Serve(router, http.MethodGet, "/api/v1/badges/evaluate", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterEvaluatesPostedLine(t *testing.T) {
	router := newFixtureRouter(RouterOptions{})

	rr := testutil.Serve(router, http.MethodPost, "/api/v1/badges/evaluate", strings.NewReader(`{"steals":3,"blocks":2}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"defensive_anchor"`) {
		t.Fatalf("expected defensive_anchor, got %s", rr.Body.String())
	}
}

func TestRouterCORS(t *testing.T) {
	router := newFixtureRouter(RouterOptions{AllowedOrigins: []string{"https://league.example"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/seasons", nil)
	req.Header.Set("Origin", "https://league.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://league.example" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/seasons", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rr = testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestRouterAdminRoutesMountedOnlyWithHandler(t *testing.T) {
	router := newFixtureRouter(RouterOptions{})
	rr := testutil.Serve(router, http.MethodPost, "/api/v1/admin/awards/pending", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	st := store.NewFixtureStore()
	svc := awards.NewService(st, badges.NewEvaluator(badges.DefaultConfig()), 0, nil, nil)
	router = newFixtureRouter(RouterOptions{Admin: handlers.NewAdminHandler(svc, "s3cret", nil)})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/awards/pending", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rr = testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"games":6`) {
		t.Fatalf("expected the six pending fixture games swept, got %s", rr.Body.String())
	}
}

func TestRouterRecordsRequestMetrics(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	router := newFixtureRouter(RouterOptions{Logger: logger, Recorder: metrics.NewRecorder()})

	testutil.Serve(router, http.MethodGet, "/api/v1/games/"+store.FixtureOpeningGameID, nil)
	if !strings.Contains(buf.String(), "route=/api/v1/games/{gameID}") {
		t.Fatalf("expected templated route in request log, got %s", buf.String())
	}
}
