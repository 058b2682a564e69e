package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"hockey-odds-service/internal/domain"
	"hockey-odds-service/internal/metrics"
	"hockey-odds-service/internal/providers"
	"hockey-odds-service/internal/testutil"
)

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Date: "2025-01-15",
		Matchups: []domain.Matchup{
			{GameID: "101", HomeTeam: "BOS", AwayTeam: "MTL", Probability: domain.Probability{Home: 0.56, Away: 0.44}},
			{GameID: "102", HomeTeam: "TOR", AwayTeam: "NYR", Probability: domain.Probability{Home: 0.5, Away: 0.5}},
		},
	}
}

func TestLoadFetchesOnce(t *testing.T) {
	provider := &testutil.StubProvider{Snapshot: testSnapshot()}
	rec := metrics.NewRecorder()
	p := Mount(provider, ViewToday, testutil.DiscardLogger(), rec)

	p.Load(context.Background())
	p.Load(context.Background())

	res, err := p.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if res.Status != StatusReady {
		t.Fatalf("expected ready, got %v (err=%v)", res.Status, res.Err)
	}
	if res.Snapshot.Date != "2025-01-15" || len(res.Snapshot.Matchups) != 2 {
		t.Fatalf("unexpected snapshot %+v", res.Snapshot)
	}
	if provider.Calls() != 1 {
		t.Fatalf("expected exactly one fetch, got %d", provider.Calls())
	}
	if rec.PageLoads(ViewToday) != 1 || rec.PageLoadFailures(ViewToday) != 0 {
		t.Fatalf("unexpected page metrics: loads=%d failures=%d", rec.PageLoads(ViewToday), rec.PageLoadFailures(ViewToday))
	}
}

func TestLoadFailureIsTerminal(t *testing.T) {
	fetchErr := &providers.StatusError{Provider: "oddsapi", StatusCode: 503}
	provider := &testutil.StubProvider{Err: fetchErr}
	rec := metrics.NewRecorder()
	p := Mount(provider, ViewToday, testutil.DiscardLogger(), rec)

	p.Load(context.Background())
	res, err := p.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if res.Status != StatusFailed {
		t.Fatalf("expected failed, got %v", res.Status)
	}
	if _, ok := providers.AsStatusError(res.Err); !ok {
		t.Fatalf("expected status error, got %v", res.Err)
	}

	// No retry: a second Load does not fetch again.
	p.Load(context.Background())
	if provider.Calls() != 1 {
		t.Fatalf("expected no refetch after failure, got %d calls", provider.Calls())
	}
	if rec.PageLoadFailures(ViewToday) != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", rec.PageLoadFailures(ViewToday))
	}
}

func TestResultIsPendingBeforeCompletion(t *testing.T) {
	provider := &testutil.StubProvider{Snapshot: testSnapshot(), Delay: 50 * time.Millisecond}
	p := Mount(provider, ViewToday, testutil.DiscardLogger(), nil)

	if res := p.Result(); res.Status != StatusPending {
		t.Fatalf("expected pending before load, got %v", res.Status)
	}
	p.Load(context.Background())
	if res := p.Result(); res.Status != StatusPending {
		t.Fatalf("expected pending during fetch, got %v", res.Status)
	}
	if _, err := p.Wait(context.Background()); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if res := p.Result(); res.Status != StatusReady {
		t.Fatalf("expected ready after wait, got %v", res.Status)
	}
}

func TestWaitHonorsContext(t *testing.T) {
	provider := &testutil.StubProvider{Snapshot: testSnapshot(), Delay: time.Second}
	p := Mount(provider, ViewToday, testutil.DiscardLogger(), nil)
	p.Load(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res, err := p.Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if res.Status != StatusPending {
		t.Fatalf("expected pending result on timeout, got %v", res.Status)
	}
}

func TestMatchupLookup(t *testing.T) {
	provider := &testutil.StubProvider{Snapshot: testSnapshot()}
	p := Mount(provider, ViewGame, testutil.DiscardLogger(), nil)
	p.Load(context.Background())
	if _, err := p.Wait(context.Background()); err != nil {
		t.Fatalf("wait failed: %v", err)
	}

	m, err := p.Matchup("102")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if m.HomeTeam != "TOR" {
		t.Fatalf("unexpected matchup %+v", m)
	}

	if _, err := p.Matchup("999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchupBeforeLoad(t *testing.T) {
	p := Mount(&testutil.StubProvider{}, ViewGame, testutil.DiscardLogger(), nil)
	if _, err := p.Matchup("101"); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestMatchupSurfacesFetchError(t *testing.T) {
	fetchErr := errors.New("upstream down")
	p := Mount(&testutil.StubProvider{Err: fetchErr}, ViewGame, testutil.DiscardLogger(), nil)
	p.Load(context.Background())
	if _, err := p.Wait(context.Background()); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if _, err := p.Matchup("101"); !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestNilProviderFails(t *testing.T) {
	p := Mount(nil, ViewToday, testutil.DiscardLogger(), nil)
	p.Load(context.Background())
	res, err := p.Wait(context.Background())
	if err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if res.Status != StatusFailed || !errors.Is(res.Err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %+v", res)
	}
}
