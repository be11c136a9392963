package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/gridiron-gm/internal/apiclient"
	"github.com/preston-bernstein/gridiron-gm/internal/app/state"
	"github.com/preston-bernstein/gridiron-gm/internal/backend"
	"github.com/preston-bernstein/gridiron-gm/internal/config"
	"github.com/preston-bernstein/gridiron-gm/internal/endpoint"
	"github.com/preston-bernstein/gridiron-gm/internal/logging"
	"github.com/preston-bernstein/gridiron-gm/internal/metrics"
	"github.com/preston-bernstein/gridiron-gm/internal/poller"
)

// TargetOverride names a base URL supplied by configuration instead of the resolver.
const TargetOverride = "override"

var metricsSetup = metrics.Setup

// Server wires the resolved backend, the state controller, the watch loop and telemetry.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	target        endpoint.Target
	controller    *state.Controller
	watcher       Watcher
	metricsServer httpServer
	metricsStop   func(context.Context) error
	afterRefresh  func(state.Report)
}

// New builds a Server from configuration. It does no I/O against the backend.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsHandler, metricsShutdown := buildMetrics(cfg, logger)
	target := resolveTarget(cfg)

	client := apiclient.NewClient(apiclient.Config{
		BaseURL: target.BaseURL,
		Logger:  logger,
		Metrics: recorder,
	})
	ctrl := state.New(state.Config{
		Backend: backend.NewHTTPService(client),
		Logger:  logger,
		Metrics: recorder,
	})
	srv := &Server{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		target:      target,
		controller:  ctrl,
		metricsStop: metricsShutdown,
	}
	watcher := poller.New(srv.refresh, logger, cfg.WatchInterval)
	srv.watcher = watcher
	if metricsHandler != nil && cfg.Metrics.Enabled {
		srv.metricsServer = buildMetricsServer(cfg.Metrics.Port, logger, metricsHandler, watcher.Status)
	}

	logging.Info(logger, "backend resolved",
		slog.String(logging.FieldTarget, target.Name),
		slog.String(logging.FieldBaseURL, target.BaseURL),
	)
	return srv
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, ctrl *state.Controller, watcher Watcher, metricsSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics.NewRecorder(),
		target:        resolveTarget(cfg),
		controller:    ctrl,
		watcher:       watcher,
		metricsServer: metricsSrv,
	}
}

// resolveTarget applies the base URL override before falling back to the resolver.
func resolveTarget(cfg config.Config) endpoint.Target {
	if cfg.BaseURLOverride != "" {
		return endpoint.Target{Name: TargetOverride, BaseURL: cfg.BaseURLOverride}
	}
	return endpoint.ResolveTarget(endpoint.Signal{DesktopBridge: cfg.Desktop})
}

// Controller exposes the state controller for one-shot commands.
func (s *Server) Controller() *state.Controller {
	return s.controller
}

// Target reports which backend requests go to.
func (s *Server) Target() endpoint.Target {
	return s.target
}

// Metrics exposes the recorder shared by the client and controller.
func (s *Server) Metrics() *metrics.Recorder {
	return s.metrics
}

// OnRefresh registers fn to run after every watch cycle. Call it before Watch.
func (s *Server) OnRefresh(fn func(state.Report)) {
	s.afterRefresh = fn
}

func (s *Server) refresh(ctx context.Context) error {
	report := s.controller.RefreshAll(ctx)
	if s.afterRefresh != nil {
		s.afterRefresh(report)
	}
	return report.Err()
}

// Watch starts telemetry and the watch loop, then blocks until ctx is cancelled and shuts down.
func (s *Server) Watch(ctx context.Context) {
	s.startMetrics()
	s.watcher.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

// Close flushes telemetry for commands that never call Watch.
func (s *Server) Close(ctx context.Context) error {
	if s.metricsStop == nil {
		return nil
	}
	return s.metricsStop(ctx)
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.watcher.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop watch loop", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
		}
	}()
}
