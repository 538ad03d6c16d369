package handlers

import (
	nethttp "net/http"

	"football-data-service/internal/domain/players"
)

type playerSearchResponse struct {
	Query   string           `json:"query"`
	Count   int              `json:"count"`
	Players []players.Player `json:"players"`
}

// PlayerSearch handles GET /players/search.
func (h *Handler) PlayerSearch(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query().Get("q")
	league, ok := queryInt(r, "league", 0)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league", h.logger)
		return
	}

	results, err := h.players.Search(r.Context(), query, league)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if results == nil {
		results = []players.Player{}
	}
	writeJSON(w, nethttp.StatusOK, playerSearchResponse{Query: query, Count: len(results), Players: results}, h.logger)
}

// PlayerByID handles GET /players/{id}.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	playerID, ok := pathInt(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	league, ok := queryInt(r, "league", 0)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league", h.logger)
		return
	}
	season, ok := queryInt(r, "season", h.defaultSeason())
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
		return
	}

	player, err := h.players.Details(r.Context(), playerID, league, season)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}
