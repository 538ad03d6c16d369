// Package http assembles the service's HTTP surface.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/rs/cors"

	"football-data-service/internal/http/handlers"
	"football-data-service/internal/http/middleware"
	"football-data-service/internal/metrics"
)

// NewRouter registers HTTP routes and wraps them with CORS, request logging
// and metrics.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder, allowedOrigins []string) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)

	mux.HandleFunc("GET /teams/search", handler.TeamSearch)
	mux.HandleFunc("GET /teams/{id}", handler.TeamByID)
	mux.HandleFunc("GET /teams/{id}/profile", handler.TeamProfile)
	mux.HandleFunc("GET /teams/{id}/statistics", handler.TeamStatistics)
	mux.HandleFunc("GET /teams/{id}/transfers", handler.TeamTransfers)

	mux.HandleFunc("GET /players/search", handler.PlayerSearch)
	mux.HandleFunc("GET /players/{id}", handler.PlayerByID)

	mux.HandleFunc("GET /fixtures", handler.FixturesByDate)
	mux.HandleFunc("GET /fixtures/classified", handler.FixturesClassified)
	mux.HandleFunc("GET /fixtures/{id}", handler.FixtureByID)

	mux.HandleFunc("GET /standings/{league}", handler.Standings)
	mux.HandleFunc("GET /standings/{league}/summary", handler.StandingsSummary)

	origins := allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet},
		AllowedHeaders: []string{"*"},
	}).Handler(mux)

	return middleware.Logging(logger, recorder, corsHandler)
}
