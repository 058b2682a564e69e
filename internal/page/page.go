// Package page owns the per-view fetch lifecycle: a Page is created when a
// view mounts, performs exactly one asynchronous snapshot fetch, and is
// discarded with the view. There is no process-wide snapshot state and no
// retry; a failed fetch is terminal for the page instance.
package page

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"hockey-odds-service/internal/domain"
	"hockey-odds-service/internal/logging"
	"hockey-odds-service/internal/metrics"
	"hockey-odds-service/internal/providers"
)

// View names for metrics/log attribution.
const (
	ViewToday = "today"
	ViewGame  = "game"
)

// ErrNotFound reports that a requested gameId has no entry in the page's
// snapshot. Distinct from a fetch failure.
var ErrNotFound = errors.New("matchup not found")

// ErrNotLoaded reports access to snapshot data before the fetch completed.
var ErrNotLoaded = errors.New("page not loaded")

// Status is the discriminant of a page load outcome.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

// Result is the discriminated outcome of the page's single fetch: pending
// until the fetch completes, then ready with a snapshot or failed with the
// fetch error.
type Result struct {
	Status   Status
	Snapshot domain.Snapshot
	Err      error
}

// Page holds the state for one mounted view. All state is owned by the page
// and replaced wholesale when the fetch completes.
type Page struct {
	provider providers.PredictionProvider
	view     string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	loadOnce sync.Once
	done     chan struct{}

	mu     sync.RWMutex
	result Result
}

// Mount creates a page bound to the given provider. Nothing is fetched until
// Load is called.
func Mount(provider providers.PredictionProvider, view string, logger *slog.Logger, recorder *metrics.Recorder) *Page {
	return &Page{
		provider: provider,
		view:     view,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		done:     make(chan struct{}),
		result:   Result{Status: StatusPending},
	}
}

// Load starts the page's single snapshot fetch. Subsequent calls are no-ops;
// the page never refetches.
func (p *Page) Load(ctx context.Context) {
	p.loadOnce.Do(func() {
		go p.fetch(ctx)
	})
}

func (p *Page) fetch(ctx context.Context) {
	defer close(p.done)

	start := p.now()
	if p.provider == nil {
		p.complete(Result{Status: StatusFailed, Err: providers.ErrProviderUnavailable}, time.Since(start))
		return
	}

	snap, err := p.provider.FetchPredictions(ctx, "")
	if err != nil {
		p.complete(Result{Status: StatusFailed, Err: err}, time.Since(start))
		return
	}
	p.complete(Result{Status: StatusReady, Snapshot: snap}, time.Since(start))
}

func (p *Page) complete(res Result, elapsed time.Duration) {
	p.mu.Lock()
	p.result = res
	p.mu.Unlock()

	if p.metrics != nil {
		p.metrics.RecordPageLoad(p.view, elapsed, res.Err)
	}
	if res.Err != nil {
		logging.Error(p.logger, "page load failed", res.Err,
			slog.String("view", p.view),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return
	}
	logging.Info(p.logger, "page loaded",
		slog.String("view", p.view),
		slog.String(logging.FieldDate, res.Snapshot.Date),
		slog.Int(logging.FieldCount, len(res.Snapshot.Matchups)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}

// Result returns the page's current state without blocking.
func (p *Page) Result() Result {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.result
}

// Wait blocks until the fetch completes or the context is done. On context
// cancellation the pending result is returned along with the context error.
func (p *Page) Wait(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return p.Result(), ctx.Err()
	case <-p.done:
		return p.Result(), nil
	}
}

// Matchup resolves one game from the loaded snapshot by its id (linear scan,
// string-compared). Returns the fetch error for failed pages, ErrNotLoaded
// before completion, and ErrNotFound for an unknown id.
func (p *Page) Matchup(id string) (domain.Matchup, error) {
	res := p.Result()
	switch res.Status {
	case StatusPending:
		return domain.Matchup{}, ErrNotLoaded
	case StatusFailed:
		return domain.Matchup{}, res.Err
	}

	m, ok := res.Snapshot.Matchup(id)
	if !ok {
		return domain.Matchup{}, ErrNotFound
	}
	return m, nil
}
