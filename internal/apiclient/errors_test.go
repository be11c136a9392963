package apiclient

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTransportErrorString(t *testing.T) {
	err := &TransportError{Method: "GET", URL: "http://x/api/teams", Status: 500, StatusText: "Internal Server Error"}
	if got := err.Error(); !strings.Contains(got, "500 Internal Server Error") {
		t.Fatalf("expected status in error string, got %q", got)
	}

	wrapped := fmt.Errorf("refresh teams: %w", err)
	tErr, ok := AsTransportError(wrapped)
	if !ok || tErr.Status != 500 {
		t.Fatalf("expected to unwrap transport error")
	}
	if _, ok := AsNetworkError(wrapped); ok {
		t.Fatalf("did not expect network error")
	}
}

func TestNetworkAndDecodeErrorsUnwrap(t *testing.T) {
	cause := errors.New("cause")

	netErr := &NetworkError{Method: "GET", URL: "u", Err: cause}
	if !errors.Is(netErr, cause) {
		t.Fatalf("expected network error to unwrap cause")
	}
	decErr := &DecodeError{Method: "GET", URL: "u", Err: cause}
	if !errors.Is(decErr, cause) {
		t.Fatalf("expected decode error to unwrap cause")
	}
	if got, ok := AsDecodeError(fmt.Errorf("wrap: %w", decErr)); !ok || got != decErr {
		t.Fatalf("expected to unwrap decode error")
	}
}
