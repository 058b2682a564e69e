package providers

import (
	"context"
	"log/slog"
	"time"

	"hockey-odds-service/internal/domain"
)

// rateLimitedProvider wraps a PredictionProvider and enforces a minimum
// interval between upstream calls. It spaces calls out; it never re-issues a
// failed one.
type rateLimitedProvider struct {
	next     PredictionProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a PredictionProvider that limits calls to
// the given interval. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
func NewRateLimitedProvider(next PredictionProvider, interval time.Duration, logger *slog.Logger) PredictionProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchPredictions(ctx context.Context, date string) (domain.Snapshot, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return domain.Snapshot{}, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return domain.Snapshot{}, ctx.Err()
	case <-p.ticker.C:
	}
	if p.logger != nil {
		p.logger.Info("rate-limited provider fetch", slog.String("provider", "rate-limited"), slog.String("date", date))
	}
	return p.next.FetchPredictions(ctx, date)
}

// Close stops the interval ticker to avoid leaks on shutdown.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
