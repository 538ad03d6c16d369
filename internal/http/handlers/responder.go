package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"

	"football-data-service/internal/app/params"
	"football-data-service/internal/http/middleware"
	"football-data-service/internal/http/requestutil"
	"football-data-service/internal/logging"
	"football-data-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// respondError translates a service error into the matching HTTP status.
func respondError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if rlErr, ok := providers.AsRateLimitError(err); ok {
		if rlErr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
		}
		writeError(w, r, http.StatusTooManyRequests, "upstream rate limit reached, try again later", logger)
		return
	}

	switch {
	case errors.Is(err, params.ErrValidation):
		writeError(w, r, http.StatusBadRequest, "invalid parameters", logger)
	case errors.Is(err, providers.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found", logger)
	case errors.Is(err, providers.ErrMalformed):
		writeError(w, r, http.StatusBadGateway, "upstream returned malformed data", logger)
	case errors.Is(err, providers.ErrUnavailable):
		writeError(w, r, http.StatusGatewayTimeout, "upstream unavailable", logger)
	default:
		logging.Error(loggerFromRequest(r, logger), "request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}

func loggerFromRequest(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

func queryInt(r *http.Request, name string, fallback int) (int, bool) {
	return requestutil.QueryInt(r, name, fallback)
}

func pathInt(r *http.Request, name string) (int, bool) {
	return requestutil.PathInt(r, name)
}
