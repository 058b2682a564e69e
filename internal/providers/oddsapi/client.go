package oddsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"hockey-odds-service/internal/domain"
	"hockey-odds-service/internal/providers"
	"hockey-odds-service/internal/timeutil"
)

// Config controls how the client reaches the upstream prediction service.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches prediction snapshots from the upstream odds API and maps
// them to domain models. It issues exactly one request per fetch; a failure
// is returned to the caller, never retried here.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an odds API client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil && cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(httpClient),
		now:        time.Now,
	}
}

// FetchPredictions retrieves the current prediction snapshot. The upstream
// service is keyed implicitly by "today"; the date parameter is forwarded as
// a query hint when set.
func (c *Client) FetchPredictions(ctx context.Context, date string) (domain.Snapshot, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return domain.Snapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Snapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return domain.Snapshot{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload todayResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return domain.Snapshot{}, decodeErr
	}

	snap := mapSnapshot(payload)
	if snap.Date == "" {
		snap.Date = c.resolveDate(date)
	}
	return snap, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/today", nil)
	if err != nil {
		return nil, err
	}

	if date != "" {
		q := req.URL.Query()
		q.Set("date", date)
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := timeutil.ParseDate(date); err == nil {
			return date
		}
	}
	return timeutil.FormatDate(c.now().UTC())
}
