package oddsapi

import "time"

const providerName = "oddsapi"

const (
	defaultBaseURL     = "http://localhost:8000"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)
