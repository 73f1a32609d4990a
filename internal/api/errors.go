package api

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned when an auth-required call finds no
// persisted token. No network request is made in that case.
var ErrAuthRequired = errors.New("authentication required")

// FallbackErrorMessage is used when an error response carries no
// parseable message.
const FallbackErrorMessage = "API request failed"

// Error is a non-2xx response from the backend.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// AsError unwraps err into an *Error if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is a backend error with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == status
}
