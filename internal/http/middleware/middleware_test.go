package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/preston-bernstein/gridiron-gm/internal/logging"
	"github.com/preston-bernstein/gridiron-gm/internal/testutil"
)

func TestLoggingSetsRequestIDAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		if logging.FromContext(r.Context(), nil) == nil {
			t.Fatalf("expected request logger in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.Serve(Logging(logger)(next), http.MethodGet, "/healthz", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	out := buf.String()
	if !strings.Contains(out, "request complete") || !strings.Contains(out, "status_code=418") || !strings.Contains(out, "path=/healthz") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestLoggingGeneratesUUIDWhenMissingOrInvalid(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Logging(nil)(next)

	rr := testutil.Serve(handler, http.MethodGet, "/metrics", nil)
	if _, err := uuid.Parse(rr.Header().Get("X-Request-ID")); err != nil {
		t.Fatalf("expected generated uuid, got %q", rr.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces")
	rr = testutil.ServeRequest(handler, req)
	if got := rr.Header().Get("X-Request-ID"); got == "bad id with spaces" {
		t.Fatalf("expected invalid id replaced")
	}
}

func TestLoggingKeepsValidIncomingID(t *testing.T) {
	handler := Logging(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("X-Request-ID", "scrape-42")

	rr := testutil.ServeRequest(handler, req)
	if got := rr.Header().Get("X-Request-ID"); got != "scrape-42" {
		t.Fatalf("expected incoming id echoed, got %q", got)
	}
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ww := &responseWriter{ResponseWriter: rr, status: http.StatusOK}
	if _, err := ww.Write([]byte("ok")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if ww.status != http.StatusOK {
		t.Fatalf("expected default status 200, got %d", ww.status)
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
