package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"football-data-service/internal/metrics"
)

func TestLoggingSetsRequestIDHeader(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Logging(nil, nil, next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	header := rec.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatal("expected request id header")
	}
	if seen != header {
		t.Fatalf("expected context id %q to match header %q", seen, header)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status passthrough, got %d", rec.Code)
	}
}

func TestLoggingKeepsValidIncomingRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Logging(nil, nil, next)

	req := httptest.NewRequest("GET", "/teams/33", nil)
	req.Header.Set("X-Request-ID", "incoming-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "incoming-42" {
		t.Fatalf("expected incoming id preserved, got %s", got)
	}
}

func TestLoggingRecordsHTTPMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := Logging(nil, recorder, next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/teams/33/profile", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rec.Code)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/health", "/health"},
		{"/teams/33", "/teams/:id"},
		{"/teams/33/profile", "/teams/:id/profile"},
		{"/teams/search", "/teams/search"},
		{"/fixtures/classified", "/fixtures/classified"},
		{"/fixtures/9001", "/fixtures/:id"},
		{"/standings/39/summary", "/standings/:id/summary"},
		{"/players/909", "/players/:id"},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}
}
