package config

import "time"

const (
	envUpstreamBaseURL = "UPSTREAM_BASE_URL"
	envUpstreamAPIKey  = "UPSTREAM_API_KEY"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"

	defaultUpstreamBaseURL = "https://v3.football.api-sports.io"
)

// UpstreamConfig controls how we talk to the football data API.
type UpstreamConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		BaseURL: envOrDefault(envUpstreamBaseURL, defaultUpstreamBaseURL),
		APIKey:  envOrDefault(envUpstreamAPIKey, ""),
		Timeout: durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
	}
}
