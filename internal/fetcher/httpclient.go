package fetcher

import (
	"time"

	"resty.dev/v3"
)

const (
	// defaultTimeout bounds a single request; a timed-out request is a
	// terminal RemoteAPIError for the fetch call, never retried.
	defaultTimeout = 30 * time.Second
)

// NewHTTPClient creates an HTTP client for a remote source.
// There is deliberately no retry configuration: a chunk that fails aborts
// its whole fetch call, and any retry policy belongs to the caller.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout)
}
