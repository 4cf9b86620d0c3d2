package backend

import (
	"errors"
	"fmt"
)

// ErrConnection replaces any transport-level failure. Screens show a generic
// "check your connection" message instead of a raw network error.
var ErrConnection = errors.New("could not reach the learning server - check your connection")

// APIError is a non-2xx response from the backend. Detail is the backend's
// own message and is shown to the user verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
}

// IsAuthError reports whether the error is a 401 from the backend, meaning
// the stored token is no longer accepted
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
