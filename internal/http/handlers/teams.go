package handlers

import (
	nethttp "net/http"

	"football-data-service/internal/domain/teams"
)

type teamSearchResponse struct {
	Query string       `json:"query"`
	Count int          `json:"count"`
	Teams []teams.Team `json:"teams"`
}

// TeamSearch handles GET /teams/search.
func (h *Handler) TeamSearch(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query().Get("q")
	country := r.URL.Query().Get("country")

	results, err := h.teams.Search(r.Context(), query, country)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if results == nil {
		results = []teams.Team{}
	}
	writeJSON(w, nethttp.StatusOK, teamSearchResponse{Query: query, Count: len(results), Teams: results}, h.logger)
}

// TeamByID handles GET /teams/{id}.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := pathInt(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	detail, err := h.teams.Detail(r.Context(), teamID)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

// TeamProfile handles GET /teams/{id}/profile.
func (h *Handler) TeamProfile(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := pathInt(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	league, season, ok := h.seasonScope(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league or season", h.logger)
		return
	}

	profile, err := h.teams.Profile(r.Context(), teamID, league, season)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, profile, h.logger)
}

// TeamStatistics handles GET /teams/{id}/statistics.
func (h *Handler) TeamStatistics(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := pathInt(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	league, season, ok := h.seasonScope(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league or season", h.logger)
		return
	}

	report, err := h.teams.StatsReport(r.Context(), teamID, league, season)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, h.logger)
}

type transfersResponse struct {
	TeamID    int              `json:"teamId"`
	Count     int              `json:"count"`
	Transfers []teams.Transfer `json:"transfers"`
}

// TeamTransfers handles GET /teams/{id}/transfers.
func (h *Handler) TeamTransfers(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := pathInt(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	transfers, err := h.teams.Transfers(r.Context(), teamID)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if transfers == nil {
		transfers = []teams.Transfer{}
	}
	writeJSON(w, nethttp.StatusOK, transfersResponse{TeamID: teamID, Count: len(transfers), Transfers: transfers}, h.logger)
}
