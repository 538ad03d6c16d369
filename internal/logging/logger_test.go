package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("level %q: expected %v, got %v", raw, want, got)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatal("expected logger")
	}
	if NewLogger(Config{Format: "json", Service: "svc", Version: "dev"}) == nil {
		t.Fatal("expected json logger")
	}
}

func TestContextRoundTrip(t *testing.T) {
	base := NewLogger(Config{})
	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx, nil); got != base {
		t.Fatal("expected stored logger from context")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := NewLogger(Config{})
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger when none stored")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck // nil context is the case under test
		t.Fatal("expected fallback logger for nil context")
	}
}

func TestHelpersNilSafe(t *testing.T) {
	// Must not panic without a logger.
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)
}
