package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the client. API and service code wraps
// these with %w so callers can branch with errors.Is.
var (
	// ErrMissingToken gates every remote operation: no configured token
	// means no HTTP call is ever attempted.
	ErrMissingToken = errors.New("no API token configured")

	// ErrUnauthorized maps HTTP 401/403 from the remote service.
	ErrUnauthorized = errors.New("API token rejected")

	// ErrNotFound maps HTTP 404 on snippet lookups and deletes.
	ErrNotFound = errors.New("snippet not found")

	// ErrUnsupportedLanguage is returned when a language has no entry in
	// the configured languages (or commands) map.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrStaleSnippet is returned when a locally tracked snippet no
	// longer exists remotely; the update flow refuses to push over it.
	ErrStaleSnippet = errors.New("snippet no longer exists remotely")
)

// APIError is returned when the remote service responds with a non-2xx
// status not covered by a sentinel above.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("glot: HTTP %d: %s", e.StatusCode, e.Message)
}

// TransportError wraps a network-level failure (connection refused, DNS,
// timeout) so it stays distinguishable from a bad response body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("glot: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a malformed JSON response body.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("glot: decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
