package apiclient

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns the provided client or a default one.
// The default has no timeout: waiting is bounded only by the caller's context.
func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{}
}

func normalizeBaseURL(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), "/")
}

// routeLabel collapses a request path to its first segment so ids stay out of metric labels.
func routeLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}

// statusText prefers the server's reason phrase and falls back to the canonical one.
func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, prefix)); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func newRequestID() string {
	return uuid.NewString()
}
