package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"football-data-service/internal/app/params"
	"football-data-service/internal/providers"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errors.Mark(errors.New("bad field"), params.ErrValidation), http.StatusBadRequest},
		{"not found", errors.Wrap(providers.ErrNotFound, "team 42"), http.StatusNotFound},
		{"malformed", errors.Wrap(providers.ErrMalformed, "teams response"), http.StatusBadGateway},
		{"unavailable", providers.ErrUnavailable, http.StatusGatewayTimeout},
		{"upstream status", &providers.UpstreamError{Endpoint: "teams", StatusCode: 500}, http.StatusGatewayTimeout},
		{"rate limited", &providers.RateLimitError{StatusCode: 429}, http.StatusTooManyRequests},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, httptest.NewRequest("GET", "/teams/42", nil), tc.err, nil)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected json content type, got %s", ct)
			}
		})
	}
}

func TestRespondErrorSetsRetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &providers.RateLimitError{StatusCode: 429, RetryAfter: 30 * time.Second}
	respondError(rec, httptest.NewRequest("GET", "/teams/42", nil), err, nil)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Fatalf("expected Retry-After 30, got %q", got)
	}
}

func TestWriteErrorEchoesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/teams/42", nil)
	req.Header.Set("X-Request-ID", "req-7")

	writeError(rec, req, http.StatusBadRequest, "invalid team id", nil)
	body := rec.Body.String()
	if !strings.Contains(body, `"error":"invalid team id"`) || !strings.Contains(body, `"requestId":"req-7"`) {
		t.Fatalf("unexpected body %s", body)
	}
}
