package fetch

import (
	"errors"
	"strconv"
)

// ErrBodyConsumed is returned when the body of a response is read more than once.
var ErrBodyConsumed = errors.New("response body already consumed")

type (
	// TransportError is a failure reported by the host while making the request or reading the response.
	TransportError struct {
		// Err is what the host reported.
		Err error
	}

	// StatusError is created for responses that the host does not consider ok.
	StatusError struct {
		// Code is the HTTP status code of the response.
		Code int
		// Message describes the status.
		Message string
	}

	// JSONError is a failure to encode a request body or decode a response body.
	JSONError struct {
		// Message describes what could not be encoded or decoded.
		Message string
		// Err is the cause, if any.
		Err error
	}
)

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport error"
	}
	return "transport error: " + e.Err.Error()
}

// Unwrap returns the host error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// newStatusError creates the error for a status code.
// The response body is not included.
func newStatusError(code int) *StatusError {
	e := StatusError{
		Code:    code,
		Message: "HTTP Error " + strconv.Itoa(code),
	}
	return &e
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return e.Message
}

// Error implements the error interface.
func (e *JSONError) Error() string {
	return "json error: " + e.Message
}

// Unwrap returns the encoding or decoding cause.
func (e *JSONError) Unwrap() error {
	return e.Err
}
