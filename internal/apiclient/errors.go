package apiclient

import (
	"errors"
	"fmt"
)

var (
	errNullBody     = errors.New("null response body")
	errTrailingData = errors.New("unexpected data after response value")
)

// NetworkError means the request could not be completed (refused, reset, DNS, canceled).
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("apiclient: %s %s: network error: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TransportError means the server answered outside the 2xx range.
type TransportError struct {
	Method     string
	URL        string
	Status     int
	StatusText string
	// Body holds the start of the response body for diagnostics.
	Body string
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("apiclient: %s %s: %d %s", e.Method, e.URL, e.Status, e.StatusText)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// DecodeError means the response body did not match the expected shape.
type DecodeError struct {
	Method string
	URL    string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("apiclient: %s %s: decode response: %v", e.Method, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var dErr *DecodeError
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}
