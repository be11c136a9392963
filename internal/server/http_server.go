package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/gridiron-gm/internal/http/middleware"
	"github.com/preston-bernstein/gridiron-gm/internal/poller"
)

// httpServer abstracts the HTTP server implementation for easier testing.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv      *http.Server
	listener net.Listener
}

func (s netHTTPServer) ListenAndServe() error {
	if s.listener != nil {
		return s.srv.Serve(s.listener)
	}
	return s.srv.ListenAndServe()
}

func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netHTTPServer) Addr() string                       { return s.srv.Addr }
func (s netHTTPServer) Handler() http.Handler              { return s.srv.Handler }

type healthzResponse struct {
	Status              string `json:"status"`
	ConsecutiveFailures int    `json:"consecutive_failures"`
	LastError           string `json:"last_error,omitempty"`
}

// newMetricsRouter serves the exporter on /metrics and the watch loop health on /healthz.
func newMetricsRouter(logger *slog.Logger, metricsHandler http.Handler, status func() poller.Status) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger))
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		resp := healthzResponse{Status: "ok"}
		code := http.StatusOK
		if status != nil {
			st := status()
			resp.ConsecutiveFailures = st.ConsecutiveFailures
			resp.LastError = st.LastError
			if !st.IsReady() {
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	})
	return r
}

func buildMetricsServer(port string, logger *slog.Logger, metricsHandler http.Handler, status func() poller.Status) httpServer {
	return netHTTPServer{
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      newMetricsRouter(logger, metricsHandler, status),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}
