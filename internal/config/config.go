package config

// Config holds runtime configuration for the server.
type Config struct {
	Port              string        `yaml:"port"`
	Provider          string        `yaml:"provider"`
	ProviderRateLimit Duration      `yaml:"provider_rate_limit"`
	OddsAPI           OddsAPIConfig `yaml:"odds_api"`
	Metrics           MetricsConfig `yaml:"metrics"`
}

// Load reads configuration from environment variables with sensible
// defaults, then applies overrides from the optional YAML file named by
// CONFIG_FILE.
func Load() Config {
	cfg := Config{
		Port:              envOrDefault(envPort, defaultPort),
		Provider:          envOrDefault(envProvider, defaultProvider),
		ProviderRateLimit: durationEnvOrDefault(envProviderRateLimit, defaultProviderRateLimit),
		OddsAPI:           loadOddsAPI(),
		Metrics:           loadMetrics(),
	}
	return applyFileOverrides(cfg)
}
