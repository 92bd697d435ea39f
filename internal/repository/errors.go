package repository

import "errors"

// ErrNotFound is returned when a record does not exist under the requested
// ownership scope. Callers that treat missing records as a silent no-op
// test for it with errors.Is.
var ErrNotFound = errors.New("not found")
