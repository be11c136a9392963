package state

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/gridiron-gm/internal/logging"
	"github.com/preston-bernstein/gridiron-gm/internal/store"
)

// Reporter receives each per-resource refresh failure exactly once.
type Reporter interface {
	Report(resource store.Resource, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(resource store.Resource, err error)

func (f ReporterFunc) Report(resource store.Resource, err error) { f(resource, err) }

// LogReporter reports failures as structured error logs.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(resource store.Resource, err error) {
	logging.Error(r.Logger, "refresh failed", err, slog.String(logging.FieldResource, string(resource)))
}

// Report is the outcome of one RefreshAll cycle.
type Report struct {
	Errors   map[store.Resource]error
	Duration time.Duration
}

// OK reports whether every resource refreshed.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Failed lists the failed resources in refresh order.
func (r Report) Failed() []store.Resource {
	var out []store.Resource
	for _, res := range store.Resources {
		if _, ok := r.Errors[res]; ok {
			out = append(out, res)
		}
	}
	return out
}

// Err joins the per-resource errors, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("refresh %s: %w", res, r.Errors[res]))
	}
	return errors.Join(errs...)
}
