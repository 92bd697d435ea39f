package quote

import "errors"

var (
	// ErrUnavailable indicates the remote quote service is unreachable.
	ErrUnavailable = errors.New("quote service unavailable")

	// ErrTimeout indicates the remote request exceeded the configured timeout.
	ErrTimeout = errors.New("quote request timed out")

	// ErrMalformed indicates the remote response could not be parsed
	// into a usable quote.
	ErrMalformed = errors.New("malformed quote response")
)
