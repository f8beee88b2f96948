package api

import (
	"errors"
	"fmt"
)

// GenericFailure is shown when the solver gives no usable error message.
const GenericFailure = "Failed to solve words"

// APIError is a non-2xx answer from the solver.
type APIError struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("solver returned %d: %s", e.Status, e.Message)
}

// TransportError covers network failures and bodies that could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorMessage returns the text shown to the user for a failed solve.
// Server messages are passed through verbatim; everything else collapses to GenericFailure.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return GenericFailure
}
