package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/preston-bernstein/league-stats-service/internal/badges"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
)

const maxEvaluateBody = 4 << 10

type catalogEntry struct {
	badges.Definition
	Tier badges.Tier `json:"tier"`
}

type catalogResponse struct {
	Badges                 []catalogEntry `json:"badges"`
	Palette                badges.Palette `json:"palette"`
	PerfectGameMinAttempts int            `json:"perfectGameMinAttempts"`
}

type evaluateResponse struct {
	Badges      []badges.ID         `json:"badges"`
	Definitions []badges.Definition `json:"definitions"`
}

// BadgeCatalog lists every badge with its rarity tier.
func (h *Handler) BadgeCatalog(w http.ResponseWriter, r *http.Request) {
	defs := h.badges.Catalog.Definitions()
	entries := make([]catalogEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, catalogEntry{Definition: def, Tier: h.badges.Palette[def.Rarity]})
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		Badges:                 entries,
		Palette:                h.badges.Palette,
		PerfectGameMinAttempts: h.badges.Evaluator.Config().PerfectGameMinAttempts,
	}, h.logger)
}

// EvaluateBadges classifies a posted stat line. Nothing is recorded.
func (h *Handler) EvaluateBadges(w http.ResponseWriter, r *http.Request) {
	var line games.StatLine
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEvaluateBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&line); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid stat line", loggerFromContext(r, h.logger))
		return
	}

	ids := h.badges.Evaluator.Evaluate(line)
	defs := make([]badges.Definition, 0, len(ids))
	for _, id := range ids {
		if def, ok := h.badges.Catalog.Lookup(id); ok {
			defs = append(defs, def)
		}
	}
	writeJSON(w, http.StatusOK, evaluateResponse{Badges: ids, Definitions: defs}, h.logger)
}
