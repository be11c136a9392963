package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/gridiron-gm/internal/poller"
	"github.com/preston-bernstein/gridiron-gm/internal/testutil"
)

type stubListener struct {
	addr net.Addr
}

func (s *stubListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (s *stubListener) Close() error              { return nil }
func (s *stubListener) Addr() net.Addr            { return s.addr }

func TestNetHTTPServerListenAndServeWithCustomListener(t *testing.T) {
	l := &stubListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}
	srv := &http.Server{Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv, listener: l}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from stub listener")
	}
}

func TestNetHTTPServerListenAndServeWithoutListener(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = srv.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	srv := &http.Server{Addr: ":1234", Handler: handler}
	s := netHTTPServer{srv: srv}

	if s.Addr() != ":1234" {
		t.Fatalf("expected addr passthrough")
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
	_ = s.Shutdown(context.Background())
}

func TestMetricsRouterHealthz(t *testing.T) {
	status := poller.Status{ConsecutiveFailures: 1, LastError: "owners down"}
	router := newMetricsRouter(nil, nil, func() poller.Status { return status })

	rr := testutil.Serve(router, http.MethodGet, "/healthz", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var body healthzResponse
	testutil.DecodeJSON(t, rr, &body)
	if body.Status != "degraded" || body.LastError != "owners down" || body.ConsecutiveFailures != 1 {
		t.Fatalf("unexpected degraded body %+v", body)
	}

	status = poller.Status{LastSuccess: time.Now()}
	rr = testutil.Serve(router, http.MethodGet, "/healthz", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil || body.Status != "ok" {
		t.Fatalf("unexpected ok body %+v err %v", body, err)
	}
}

func TestMetricsRouterHealthzWithoutStatus(t *testing.T) {
	rr := testutil.Serve(newMetricsRouter(nil, nil, nil), http.MethodGet, "/healthz", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestMetricsRouterServesExporter(t *testing.T) {
	exporter := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("api_requests_total 1\n"))
	})
	router := newMetricsRouter(nil, exporter, nil)

	rr := testutil.Serve(router, http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.String() != "api_requests_total 1\n" {
		t.Fatalf("unexpected metrics body %q", rr.Body.String())
	}

	rr = testutil.Serve(newMetricsRouter(nil, nil, nil), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestBuildMetricsServer(t *testing.T) {
	srv := buildMetricsServer("9191", nil, nil, nil)
	if srv.Addr() != ":9191" || srv.Handler() == nil {
		t.Fatalf("unexpected metrics server addr=%q", srv.Addr())
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/healthz", nil)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id middleware on the metrics router")
	}
}
