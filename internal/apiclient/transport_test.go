package apiclient

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlash(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"http://127.0.0.1:8000/api/", "http://127.0.0.1:8000/api"},
		{"http://127.0.0.1:8000/api", "http://127.0.0.1:8000/api"},
		{" http://127.0.0.1:8787/api ", "http://127.0.0.1:8787/api"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestRouteLabel(t *testing.T) {
	cases := map[string]string{
		"/teams":            "teams",
		"/simulate-game/12": "simulate-game",
		"/players?x=1":      "players",
		"/":                 "root",
		"":                  "root",
	}
	for input, want := range cases {
		if got := routeLabel(input); got != want {
			t.Fatalf("route %q expected %s, got %s", input, want, got)
		}
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	a, b := newRequestID(), newRequestID()
	if a == "" || a == b {
		t.Fatalf("expected unique request ids, got %q and %q", a, b)
	}
}
