package server

import (
	"log/slog"
	"strings"

	"hockey-odds-service/internal/config"
	"hockey-odds-service/internal/metrics"
	"hockey-odds-service/internal/providers"
	"hockey-odds-service/internal/providers/fixture"
	"hockey-odds-service/internal/providers/oddsapi"
)

// buildProvider selects and decorates the configured prediction provider.
// The returned close func releases any resources held by the decorators.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.PredictionProvider, func()) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	var base providers.PredictionProvider
	switch name {
	case "oddsapi":
		base = oddsapi.NewClient(oddsapi.Config{
			BaseURL: cfg.OddsAPI.BaseURL,
			APIKey:  cfg.OddsAPI.APIKey,
			Timeout: cfg.OddsAPI.Timeout,
		})
	default:
		name = "fixture"
		base = fixture.New()
	}

	provider := providers.NewInstrumentedProvider(base, name, logger, recorder)

	closeFn := func() {}
	if cfg.ProviderRateLimit > 0 {
		limited := providers.NewRateLimitedProvider(provider, cfg.ProviderRateLimit, logger)
		if closer, ok := limited.(interface{ Close() }); ok {
			closeFn = closer.Close
		}
		provider = limited
	}

	return provider, closeFn
}
