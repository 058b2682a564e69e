package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for the optional YAML file. Durations are
// strings ("30s", "2m") so the file reads like the env values do.
type fileConfig struct {
	Port              string `yaml:"port"`
	Provider          string `yaml:"provider"`
	ProviderRateLimit string `yaml:"provider_rate_limit"`
	OddsAPI           struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Timeout string `yaml:"timeout"`
	} `yaml:"odds_api"`
	Metrics struct {
		Enabled      *bool  `yaml:"enabled"`
		Port         string `yaml:"port"`
		OtlpEndpoint string `yaml:"otlp_endpoint"`
		ServiceName  string `yaml:"service_name"`
		OtlpInsecure *bool  `yaml:"otlp_insecure"`
	} `yaml:"metrics"`
}

// applyFileOverrides layers CONFIG_FILE values over the env-derived config.
// A missing or unparsable file leaves the env values in place.
func applyFileOverrides(cfg Config) Config {
	path := os.Getenv(envConfigFile)
	if path == "" {
		return cfg
	}
	loaded, err := parseFile(path)
	if err != nil {
		return cfg
	}
	return merge(cfg, loaded)
}

func parseFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

func merge(cfg Config, fc fileConfig) Config {
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.Provider != "" {
		cfg.Provider = fc.Provider
	}
	if d, ok := parseFileDuration(fc.ProviderRateLimit); ok {
		cfg.ProviderRateLimit = d
	}
	if fc.OddsAPI.BaseURL != "" {
		cfg.OddsAPI.BaseURL = fc.OddsAPI.BaseURL
	}
	if fc.OddsAPI.APIKey != "" {
		cfg.OddsAPI.APIKey = fc.OddsAPI.APIKey
	}
	if d, ok := parseFileDuration(fc.OddsAPI.Timeout); ok {
		cfg.OddsAPI.Timeout = d
	}
	if fc.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *fc.Metrics.Enabled
	}
	if fc.Metrics.Port != "" {
		cfg.Metrics.Port = fc.Metrics.Port
	}
	if fc.Metrics.OtlpEndpoint != "" {
		cfg.Metrics.OtlpEndpoint = fc.Metrics.OtlpEndpoint
	}
	if fc.Metrics.ServiceName != "" {
		cfg.Metrics.ServiceName = fc.Metrics.ServiceName
	}
	if fc.Metrics.OtlpInsecure != nil {
		cfg.Metrics.OtlpInsecure = *fc.Metrics.OtlpInsecure
	}
	return cfg
}

func parseFileDuration(raw string) (time.Duration, bool) {
	if raw == "" {
		return 0, false
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
