package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envAllowedOrigins = "ALLOWED_ORIGINS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8000"
	defaultProvider    = "apifootball"
	defaultMetricsPort = "9090"

	// Upstream plans without server-side last/next filtering force client-side
	// windowing; these bounds and the per-bucket cap stay configurable.
	defaultClassifyDaysBack    = 30
	defaultClassifyDaysForward = 30
	defaultBucketCap           = 10

	defaultUpstreamTimeout = 30 * time.Second
)
