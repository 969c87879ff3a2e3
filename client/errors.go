package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for the request pipeline's failure taxonomy. Callers can
// test these with errors.Is to decide between "sign in again", "not allowed",
// and "try later".
var (
	// ErrSessionExpired means the session could not be renewed and has been
	// terminated. The user has to sign in again.
	ErrSessionExpired = errors.New("session expired")

	// ErrPermissionDenied means the backend rejected the request for the
	// current role. The session itself is still valid.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrServer means the backend failed with a 5xx status. The request may
	// succeed if retried manually.
	ErrServer = errors.New("server error")
)

// StatusError reports a non-2xx response that does not map to any of the
// sentinel categories above.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d. Body: %s", e.StatusCode, e.Body)
}
