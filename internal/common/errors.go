package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrBadRequest = errors.New("bad request")
)

// StoreError wraps an I/O or parse failure from a record store. It always
// maps to a 500; callers do not retry.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Collection, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// AuthorizationError reports a caller role ranked below an operation's
// required role. Both roles are carried for the 403 response body.
type AuthorizationError struct {
	Required string
	Current  string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("access denied: role %q is below required %q", e.Current, e.Required)
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	var authzErr *AuthorizationError
	if errors.As(err, &authzErr) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
