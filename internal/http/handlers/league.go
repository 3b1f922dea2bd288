package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domaingames "github.com/preston-bernstein/league-stats-service/internal/domain/games"
	domainplayers "github.com/preston-bernstein/league-stats-service/internal/domain/players"
)

// Seasons lists every season, newest first.
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Seasons.Seasons(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "season not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, list, h.logger)
}

// ActiveSeason returns the season currently in play.
func (h *Handler) ActiveSeason(w http.ResponseWriter, r *http.Request) {
	season, err := h.svc.Seasons.Active(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "no active season", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, season, h.logger)
}

// Season returns one season.
func (h *Handler) Season(w http.ResponseWriter, r *http.Request) {
	season, err := h.svc.Seasons.SeasonByID(r.Context(), chi.URLParam(r, "seasonID"))
	if err != nil {
		writeServiceError(w, r, err, "season not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, season, h.logger)
}

// SeasonTeams lists a season's teams by name.
func (h *Handler) SeasonTeams(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Teams.Teams(r.Context(), chi.URLParam(r, "seasonID"))
	if err != nil {
		writeServiceError(w, r, err, "season not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, list, h.logger)
}

// Leaderboard returns one ranked category of a season.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeServiceError(w, r, err, "", h.logger)
		return
	}
	category := domainplayers.LeaderboardCategory(chi.URLParam(r, "category"))
	board, err := h.svc.Leaderboards.Leaderboard(r.Context(), chi.URLParam(r, "seasonID"), category, limit)
	if err != nil {
		writeServiceError(w, r, err, "season not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, board, h.logger)
}

// Team returns one team.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	team, err := h.svc.Teams.TeamByID(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		writeServiceError(w, r, err, "team not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, team, h.logger)
}

// Roster lists a team's players with jersey numbers.
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.svc.Teams.Roster(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		writeServiceError(w, r, err, "team not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, roster, h.logger)
}

// Games lists games, optionally narrowed by ?season=, ?final= and ?limit=.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	final, err := queryBool(r, "final")
	if err != nil {
		writeServiceError(w, r, err, "", h.logger)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		writeServiceError(w, r, err, "", h.logger)
		return
	}
	list, err := h.svc.Games.Games(r.Context(), domaingames.Filter{
		SeasonID: r.URL.Query().Get("season"),
		IsFinal:  final,
		Limit:    limit,
	})
	if err != nil {
		writeServiceError(w, r, err, "season not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, list, h.logger)
}

// Game returns one game with its teams and season.
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	game, err := h.svc.Games.GameByID(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeServiceError(w, r, err, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}

// BoxScore returns a game's stat lines split by team.
func (h *Handler) BoxScore(w http.ResponseWriter, r *http.Request) {
	box, err := h.svc.Games.BoxScore(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeServiceError(w, r, err, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, box, h.logger)
}

// Player returns one player.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	player, err := h.svc.Players.PlayerByID(r.Context(), chi.URLParam(r, "playerID"))
	if err != nil {
		writeServiceError(w, r, err, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, player, h.logger)
}

// PlayerProfile returns the player page; ?season= overrides the active season.
func (h *Handler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Players.Profile(r.Context(), chi.URLParam(r, "playerID"), r.URL.Query().Get("season"))
	if err != nil {
		writeServiceError(w, r, err, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, profile, h.logger)
}

// PlayerBadges lists a player's earned badges, newest first.
func (h *Handler) PlayerBadges(w http.ResponseWriter, r *http.Request) {
	earned, err := h.svc.Players.Badges(r.Context(), chi.URLParam(r, "playerID"))
	if err != nil {
		writeServiceError(w, r, err, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, earned, h.logger)
}

// PlayerGames lists a player's most recent final games.
func (h *Handler) PlayerGames(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeServiceError(w, r, err, "", h.logger)
		return
	}
	recent, err := h.svc.Players.RecentGames(r.Context(), chi.URLParam(r, "playerID"), limit)
	if err != nil {
		writeServiceError(w, r, err, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, recent, h.logger)
}
