package config

import "time"

const (
	envDesktop       = "GRIDIRON_DESKTOP"
	envBaseURL       = "GRIDIRON_BASE_URL"
	envWatchInterval = "WATCH_INTERVAL"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDotEnvFile = ".env"
	// Watch mode re-fetches every resource on each tick; keep it gentle on the local backend.
	defaultWatchInterval  = 5 * Duration(time.Second)
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultMetricsEnabled = false
	defaultMetricsPort    = "9090"
	defaultServiceName    = "gridiron-gm"
)
