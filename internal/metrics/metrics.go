package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastCallLatency time.Duration
}

type pageStats struct {
	loads    int
	failures int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// page loads. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	pages map[string]*pageStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		pages: make(map[string]*pageStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider call was held by the client-side
// rate limiter.
func (r *Recorder) RecordRateLimit(provider string) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if r.otel != nil {
		r.otel.recordRateLimit(provider)
	}
}

// RecordPageLoad tracks one page-mount fetch and its outcome.
func (r *Recorder) RecordPageLoad(view string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensurePages(view)
	stats.loads++
	if err != nil {
		stats.failures++
	}
	if r.otel != nil {
		r.otel.recordPageLoad(view, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit holds seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// PageLoads returns the total page-mount fetches recorded for a view.
func (r *Recorder) PageLoads(view string) int {
	loads, _ := r.pageSnapshot(view)
	return loads
}

// PageLoadFailures returns the failed page-mount fetches recorded for a view.
func (r *Recorder) PageLoadFailures(view string) int {
	_, failures := r.pageSnapshot(view)
	return failures
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) ensurePages(view string) *pageStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.pages[view]
	if !ok {
		stats = &pageStats{}
		r.pages[view] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}

func (r *Recorder) pageSnapshot(view string) (int, int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.pages[view]; ok && stats != nil {
		return stats.loads, stats.failures
	}
	return 0, 0
}
