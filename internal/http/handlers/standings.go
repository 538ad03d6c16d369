package handlers

import (
	nethttp "net/http"
)

// Standings handles GET /standings/{league}.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	league, ok := pathInt(r, "league")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league id", h.logger)
		return
	}
	season, ok := queryInt(r, "season", h.defaultSeason())
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
		return
	}

	table, err := h.standings.Table(r.Context(), league, season)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, table, h.logger)
}

// StandingsSummary handles GET /standings/{league}/summary.
func (h *Handler) StandingsSummary(w nethttp.ResponseWriter, r *nethttp.Request) {
	league, ok := pathInt(r, "league")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league id", h.logger)
		return
	}
	season, ok := queryInt(r, "season", h.defaultSeason())
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
		return
	}

	summary, err := h.standings.Summary(r.Context(), league, season)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, summary, h.logger)
}
