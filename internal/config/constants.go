package config

import "time"

const (
	envPort              = "PORT"
	envProvider          = "PROVIDER"
	envProviderRateLimit = "PROVIDER_RATE_LIMIT"
	envConfigFile        = "CONFIG_FILE"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// No client-side throttle by default; page loads fetch on demand.
	defaultProviderRateLimit = 0 * Duration(time.Second)
	defaultMetricsPort       = "9090"
	defaultServiceName       = "hockey-odds-service"
)
