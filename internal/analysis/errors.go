package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput means nothing was entered to analyze.
	ErrMissingInput = errors.New("no content to analyze")
	// ErrStatus means the endpoint answered with a non-2xx status.
	ErrStatus = errors.New("analysis endpoint returned an error status")
	// ErrTransport means the endpoint could not be reached or its URL is malformed.
	ErrTransport = errors.New("analysis endpoint unreachable")
	// ErrDecode means the reply was not a JSON object.
	ErrDecode = errors.New("malformed analysis reply")
)

// StatusError carries the status code of a failed workflow call.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d", ErrStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}
