package fetcher

import (
	"fmt"
)

// RemoteAPIError represents a failed interaction with a remote source:
// a non-success HTTP status, a source-reported failure, a transport
// error, or a timeout. It is terminal for the fetch call that raised it;
// no retry policy exists in this pipeline.
type RemoteAPIError struct {
	Status  int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *RemoteAPIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("remote API error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote API error: %s", e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *RemoteAPIError) Unwrap() error {
	return e.Cause
}

// NewRemoteAPIError creates an error for a source-reported failure
func NewRemoteAPIError(status int, message string) *RemoteAPIError {
	return &RemoteAPIError{
		Status:  status,
		Message: message,
	}
}

// NewTransportError creates an error for a failed or timed-out request
func NewTransportError(cause error) *RemoteAPIError {
	return &RemoteAPIError{
		Message: "request failed",
		Cause:   cause,
	}
}

// ClassifyStatus maps a non-success HTTP status code to a RemoteAPIError
func ClassifyStatus(status int) *RemoteAPIError {
	switch {
	case status == 429:
		return NewRemoteAPIError(status, "rate limit exceeded")
	case status >= 500:
		return NewRemoteAPIError(status, "server returned an error")
	case status >= 400:
		return NewRemoteAPIError(status, "request rejected by server")
	default:
		return NewRemoteAPIError(status, "unexpected status code")
	}
}
