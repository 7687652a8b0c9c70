package repository

import (
	"errors"
	"fmt"
)

// Remote outcome kinds. The orchestration layer switches on these
// instead of transport-specific error types.
var (
	// ErrUnreachable marks a connection-level failure: the remote
	// service could not be reached at all.
	ErrUnreachable = errors.New("listing service unreachable")

	// ErrNotFound marks a 404 on a fetch-by-id.
	ErrNotFound = errors.New("listing not found in remote service")
)

// StatusError is any other non-2xx response from the remote service,
// carrying the HTTP status code so callers can recognize the
// known-defect code that triggers fallback.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("listing service returned status %d: %s", e.Code, e.Body)
}

// StatusCode extracts the HTTP status code from err, if err carries one.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
