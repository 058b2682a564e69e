package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadWithFileOverrides(t *testing.T) {
	path := writeTempConfig(t, `
port: "9999"
provider: oddsapi
provider_rate_limit: 1m
odds_api:
  base_url: https://predictions.internal
  timeout: 5s
metrics:
  enabled: false
  service_name: odds-staging
`)
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "8080")

	cfg := Load()

	// File wins over env.
	if cfg.Port != "9999" {
		t.Fatalf("expected file port, got %s", cfg.Port)
	}
	if cfg.Provider != "oddsapi" {
		t.Fatalf("expected provider oddsapi, got %s", cfg.Provider)
	}
	if cfg.ProviderRateLimit != time.Minute {
		t.Fatalf("expected 1m rate limit, got %v", cfg.ProviderRateLimit)
	}
	if cfg.OddsAPI.BaseURL != "https://predictions.internal" {
		t.Fatalf("unexpected base URL %s", cfg.OddsAPI.BaseURL)
	}
	if cfg.OddsAPI.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.OddsAPI.Timeout)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled via file")
	}
	if cfg.Metrics.ServiceName != "odds-staging" {
		t.Fatalf("unexpected service name %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadWithPartialFileKeepsEnv(t *testing.T) {
	path := writeTempConfig(t, "provider: oddsapi\n")
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "8080")

	cfg := Load()

	if cfg.Provider != "oddsapi" {
		t.Fatalf("expected provider override, got %s", cfg.Provider)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unset file fields should keep env values, got %s", cfg.Port)
	}
}

func TestLoadIgnoresMissingOrBrokenFile(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(envPort, "8080")
	if cfg := Load(); cfg.Port != "8080" {
		t.Fatalf("missing file should fall back to env, got %s", cfg.Port)
	}

	broken := writeTempConfig(t, "port: [not, a, string\n")
	t.Setenv(envConfigFile, broken)
	if cfg := Load(); cfg.Port != "8080" {
		t.Fatalf("broken file should fall back to env, got %s", cfg.Port)
	}
}
