package providers

import (
	"context"
	"log/slog"
	"time"

	"hockey-odds-service/internal/domain"
	"hockey-odds-service/internal/logging"
	"hockey-odds-service/internal/metrics"
)

// logWithProvider emits a log entry if logger is non-nil and always includes
// the provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}

// instrumentedProvider wraps a PredictionProvider with per-call logging and
// metrics. Failures are reported, never retried.
type instrumentedProvider struct {
	inner   PredictionProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider decorates the given provider with logging and
// metrics under the supplied provider name.
func NewInstrumentedProvider(inner PredictionProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) PredictionProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) FetchPredictions(ctx context.Context, date string) (domain.Snapshot, error) {
	if p.inner == nil {
		return domain.Snapshot{}, ErrProviderUnavailable
	}

	start := time.Now()
	snap, err := p.inner.FetchPredictions(ctx, date)
	elapsed := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	}

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider fetch failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			"error", err,
		)
		return domain.Snapshot{}, err
	}

	logWithProvider(ctx, logger, slog.LevelInfo, p.name, "provider fetch complete",
		slog.Int(logging.FieldCount, len(snap.Matchups)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return snap, nil
}
