package handlers

import (
	nethttp "net/http"

	"football-data-service/internal/domain/fixtures"
	"football-data-service/internal/timeutil"
)

type fixturesResponse struct {
	Date     string             `json:"date"`
	Count    int                `json:"count"`
	Fixtures []fixtures.Preview `json:"fixtures"`
}

// FixturesByDate handles GET /fixtures. Without a date parameter it serves
// today's fixtures.
func (h *Handler) FixturesByDate(w nethttp.ResponseWriter, r *nethttp.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeutil.FormatDate(h.now().UTC())
	}

	matches, err := h.fixtures.ByDate(r.Context(), date)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if matches == nil {
		matches = []fixtures.Preview{}
	}
	writeJSON(w, nethttp.StatusOK, fixturesResponse{Date: date, Count: len(matches), Fixtures: matches}, h.logger)
}

type classifiedResponse struct {
	League  int              `json:"league"`
	Season  int              `json:"season"`
	Buckets fixtures.Buckets `json:"buckets"`
}

// FixturesClassified handles GET /fixtures/classified.
func (h *Handler) FixturesClassified(w nethttp.ResponseWriter, r *nethttp.Request) {
	league, season, ok := h.seasonScope(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league or season", h.logger)
		return
	}

	buckets, err := h.fixtures.Classified(r.Context(), league, season)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, classifiedResponse{League: league, Season: season, Buckets: buckets}, h.logger)
}

// FixtureByID handles GET /fixtures/{id}, serving the full match composite.
func (h *Handler) FixtureByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	fixtureID, ok := pathInt(r, "id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid fixture id", h.logger)
		return
	}

	detail, err := h.fixtures.MatchDetail(r.Context(), fixtureID)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}
