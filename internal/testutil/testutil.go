// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"hockey-odds-service/internal/domain"
)

// StubProvider is a configurable PredictionProvider for tests. It records
// calls and can delay, fail, or honor context cancellation.
type StubProvider struct {
	Snapshot domain.Snapshot
	Err      error
	Delay    time.Duration

	mu    sync.Mutex
	calls int
	dates []string
}

func (s *StubProvider) FetchPredictions(ctx context.Context, date string) (domain.Snapshot, error) {
	s.mu.Lock()
	s.calls++
	s.dates = append(s.dates, date)
	s.mu.Unlock()

	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Snapshot{}, ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	if s.Err != nil {
		return domain.Snapshot{}, s.Err
	}
	return s.Snapshot, nil
}

// Calls reports how many fetches were attempted.
func (s *StubProvider) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Dates reports the date argument of each fetch, in order.
func (s *StubProvider) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dates...)
}

// DiscardLogger returns a logger that drops all output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FloatPtr is a convenience for optional numeric fields in fixtures.
func FloatPtr(v float64) *float64 {
	return &v
}
