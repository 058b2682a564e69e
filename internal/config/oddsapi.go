package config

import "time"

const (
	envOddsBaseURL = "ODDS_API_BASE_URL"
	envOddsAPIKey  = "ODDS_API_KEY"
	envOddsTimeout = "ODDS_API_TIMEOUT"

	defaultOddsBaseURL = "http://localhost:8000"
	defaultOddsTimeout = 10 * time.Second
)

// OddsAPIConfig controls how we talk to the upstream prediction service.
type OddsAPIConfig struct {
	BaseURL string   `yaml:"base_url"`
	APIKey  string   `yaml:"api_key"`
	Timeout Duration `yaml:"timeout"`
}

func loadOddsAPI() OddsAPIConfig {
	return OddsAPIConfig{
		BaseURL: envOrDefault(envOddsBaseURL, defaultOddsBaseURL),
		APIKey:  envOrDefault(envOddsAPIKey, ""),
		Timeout: durationEnvOrDefault(envOddsTimeout, defaultOddsTimeout),
	}
}
