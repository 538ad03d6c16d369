// Package handlers wires HTTP routes to the application services.
package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	fixturesapp "football-data-service/internal/app/fixtures"
	playersapp "football-data-service/internal/app/players"
	standingsapp "football-data-service/internal/app/standings"
	teamsapp "football-data-service/internal/app/teams"
	"football-data-service/internal/timeutil"
)

// defaultLeague scopes composite endpoints when the caller does not pick a
// league. 39 is the Premier League upstream id.
const defaultLeague = 39

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	teams     *teamsapp.Service
	fixtures  *fixturesapp.Service
	standings *standingsapp.Service
	players   *playersapp.Service
	logger    *slog.Logger
	now       nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(
	teams *teamsapp.Service,
	fixtures *fixturesapp.Service,
	standings *standingsapp.Service,
	players *playersapp.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		teams:     teams,
		fixtures:  fixtures,
		standings: standings,
		players:   players,
		logger:    logger,
		now:       time.Now,
	}
}

// defaultSeason resolves the season in play at request time.
func (h *Handler) defaultSeason() int {
	return timeutil.SeasonYear(h.now().UTC())
}

// seasonScope reads the league/season query pair with service defaults.
func (h *Handler) seasonScope(r *nethttp.Request) (league, season int, ok bool) {
	league, ok = queryInt(r, "league", defaultLeague)
	if !ok {
		return 0, 0, false
	}
	season, ok = queryInt(r, "season", h.defaultSeason())
	if !ok {
		return 0, 0, false
	}
	return league, season, true
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
	if h.teams == nil || h.fixtures == nil || h.standings == nil || h.players == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
