package server

import (
	"log/slog"

	"football-data-service/internal/config"
	"football-data-service/internal/metrics"
	"football-data-service/internal/providers"
	"football-data-service/internal/providers/apifootball"
	"football-data-service/internal/providers/fixture"
)

// providerFactory builds the upstream data provider from configuration.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "apifootball":
		if cfg.Upstream.APIKey == "" {
			if f.logger != nil {
				f.logger.Warn("no upstream api key configured, falling back to fixture provider")
			}
			return fixture.New()
		}
		return apifootball.NewClient(apifootball.Config{
			BaseURL:  cfg.Upstream.BaseURL,
			APIKey:   cfg.Upstream.APIKey,
			Timeout:  cfg.Upstream.Timeout,
			Logger:   f.logger,
			Recorder: f.metrics,
		})
	default:
		if f.logger != nil {
			f.logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
