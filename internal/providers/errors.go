package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no usable provider is wired up.
var ErrProviderUnavailable = errors.New("prediction provider unavailable")

// StatusError captures a non-success response from the upstream prediction
// service. It marks the fetch as failed for the page that issued it; nothing
// in this layer retries.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
