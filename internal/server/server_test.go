package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"football-data-service/internal/config"
	"football-data-service/internal/logging"
	"football-data-service/internal/metrics"
)

func testConfig() config.Config {
	cfg := config.Config{
		Port:           "0",
		Provider:       "fixture",
		AllowedOrigins: []string{"*"},
	}
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNewWiresFixtureProvider(t *testing.T) {
	srv := New(testConfig(), logging.NewLogger(logging.Config{}))

	if srv.provider == nil {
		t.Fatal("expected provider to be wired")
	}
	if srv.httpServer == nil {
		t.Fatal("expected http server to be wired")
	}
	if srv.metricsServer != nil {
		t.Fatal("expected no metrics server when telemetry disabled")
	}
}

func TestHandlerServesHealth(t *testing.T) {
	srv := New(testConfig(), logging.NewLogger(logging.Config{}))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
}

func TestHandlerServesTeamFromFixture(t *testing.T) {
	srv := New(testConfig(), logging.NewLogger(logging.Config{}))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/85", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /teams/85, got %d", rec.Code)
	}
}

type fakeHTTPServer struct {
	listenErr error
	started   atomic.Bool
	stopped   atomic.Bool
	block     chan struct{}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	f.started.Store(true)
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.block
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(context.Context) error {
	f.stopped.Store(true)
	if f.block != nil {
		close(f.block)
	}
	return nil
}

func (f *fakeHTTPServer) Addr() string          { return ":0" }
func (f *fakeHTTPServer) Handler() http.Handler { return http.NewServeMux() }

func TestRunShutsDownOnContextCancel(t *testing.T) {
	fake := &fakeHTTPServer{block: make(chan struct{})}
	srv := &Server{
		cfg:        testConfig(),
		logger:     logging.NewLogger(logging.Config{}),
		metrics:    metrics.NewRecorder(),
		httpServer: fake,
	}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}

	if !fake.started.Load() {
		t.Fatal("expected http server to start")
	}
	if !fake.stopped.Load() {
		t.Fatal("expected http server to be shut down")
	}
}

func TestRunStopsWhenListenFails(t *testing.T) {
	fake := &fakeHTTPServer{listenErr: http.ErrAbortHandler}
	srv := &Server{
		cfg:        testConfig(),
		logger:     logging.NewLogger(logging.Config{}),
		httpServer: fake,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after listen failure")
	}
}
