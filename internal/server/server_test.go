package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hockey-odds-service/internal/config"
	"hockey-odds-service/internal/metrics"
	"hockey-odds-service/internal/testutil"
)

type fakeHTTPServer struct {
	addr      string
	listenErr error

	mu       sync.Mutex
	stopped  bool
	stopCh   chan struct{}
	shutdown bool
}

func newFakeHTTPServer(addr string, listenErr error) *fakeHTTPServer {
	return &fakeHTTPServer{addr: addr, listenErr: listenErr, stopCh: make(chan struct{})}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stopCh
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdown = true
	if !f.stopped {
		f.stopped = true
		close(f.stopCh)
	}
	return nil
}

func (f *fakeHTTPServer) wasShutdown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown
}

func withFakeServers(t *testing.T, listenErr error) func() []*fakeHTTPServer {
	t.Helper()
	var mu sync.Mutex
	var fakes []*fakeHTTPServer

	orig := newHTTPServer
	newHTTPServer = func(addr string, handler http.Handler) httpServer {
		mu.Lock()
		defer mu.Unlock()
		f := newFakeHTTPServer(addr, listenErr)
		fakes = append(fakes, f)
		return f
	}
	t.Cleanup(func() { newHTTPServer = orig })

	return func() []*fakeHTTPServer {
		mu.Lock()
		defer mu.Unlock()
		return append([]*fakeHTTPServer(nil), fakes...)
	}
}

func testConfig() config.Config {
	cfg := config.Config{
		Port:     "4000",
		Provider: "fixture",
	}
	cfg.Metrics.Enabled = false
	cfg.Metrics.Port = "9464"
	return cfg
}

func TestRunStopsOnContextCancel(t *testing.T) {
	getFakes := withFakeServers(t, nil)

	srv := New(testConfig(), testutil.DiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not stop after cancel")
	}

	fakes := getFakes()
	if len(fakes) != 1 {
		t.Fatalf("expected 1 server (metrics disabled), got %d", len(fakes))
	}
	if !fakes[0].wasShutdown() {
		t.Fatal("api server was not shut down")
	}
}

func TestRunStartsMetricsServer(t *testing.T) {
	getFakes := withFakeServers(t, nil)

	origSetup := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		return metrics.NewRecorder(), handler, func(context.Context) error { return nil }, nil
	}
	t.Cleanup(func() { metricsSetup = origSetup })

	cfg := testConfig()
	cfg.Metrics.Enabled = true

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(cfg, testutil.DiscardLogger()).Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not stop after cancel")
	}

	fakes := getFakes()
	if len(fakes) != 2 {
		t.Fatalf("expected api and metrics servers, got %d", len(fakes))
	}
	for _, f := range fakes {
		if !f.wasShutdown() {
			t.Fatalf("server %s was not shut down", f.addr)
		}
	}
}

func TestRunReturnsListenError(t *testing.T) {
	listenErr := errors.New("address in use")
	withFakeServers(t, listenErr)

	err := New(testConfig(), testutil.DiscardLogger()).Run(context.Background())
	if err == nil || !errors.Is(err, listenErr) {
		t.Fatalf("expected listen error, got %v", err)
	}
}

func TestBuildProviderDefaultsToFixture(t *testing.T) {
	rec := metrics.NewRecorder()
	provider, closeFn := buildProvider(testConfig(), testutil.DiscardLogger(), rec)
	defer closeFn()

	snap, err := provider.FetchPredictions(context.Background(), "")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(snap.Matchups) == 0 {
		t.Fatal("expected fixture matchups")
	}
	if rec.ProviderCalls("fixture") != 1 {
		t.Fatalf("expected instrumented fixture call, got %d", rec.ProviderCalls("fixture"))
	}
}

func TestBuildProviderOddsAPI(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2025-01-15","matchups":[{"gameId":101,"homeTeam":"BOS","awayTeam":"MTL","probability":{"home":0.6,"away":0.4}}]}`))
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.Provider = "oddsapi"
	cfg.OddsAPI.BaseURL = upstream.URL
	cfg.OddsAPI.Timeout = time.Second

	rec := metrics.NewRecorder()
	provider, closeFn := buildProvider(cfg, testutil.DiscardLogger(), rec)
	defer closeFn()

	snap, err := provider.FetchPredictions(context.Background(), "")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if snap.Date != "2025-01-15" || len(snap.Matchups) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if rec.ProviderCalls("oddsapi") != 1 {
		t.Fatalf("expected instrumented oddsapi call, got %d", rec.ProviderCalls("oddsapi"))
	}
}

func TestBuildProviderRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.ProviderRateLimit = 5 * time.Millisecond

	provider, closeFn := buildProvider(cfg, testutil.DiscardLogger(), metrics.NewRecorder())
	defer closeFn()

	if _, err := provider.FetchPredictions(context.Background(), ""); err != nil {
		t.Fatalf("rate-limited fetch failed: %v", err)
	}
}
