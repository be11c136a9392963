package metrics

import (
	"sync"
	"time"
)

type routeStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

type mutationStats struct {
	calls  int
	errors int
}

// Recorder captures lightweight, in-memory metrics about backend calls.
// When telemetry is enabled the same events are mirrored into OpenTelemetry instruments.
type Recorder struct {
	mu              sync.Mutex
	routes          map[string]*routeStats
	mutations       map[string]*mutationStats
	refreshCycles   int
	refreshFailures int
	otel            *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		routes:    make(map[string]*routeStats),
		mutations: make(map[string]*mutationStats),
		otel:      otel,
	}
}

// RecordRequest increments counters for a backend call and stores the last observed latency.
func (r *Recorder) RecordRequest(route string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureRoute(route)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRequest(route, duration, err)
	}
}

// RecordRefreshCycle tracks one full refresh and how many resources failed in it.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, failures int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshCycles++
	r.refreshFailures += failures
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, failures)
	}
}

// RecordMutation tracks a write issued by the state controller.
func (r *Recorder) RecordMutation(kind string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.mutations[kind]
	if !ok {
		stats = &mutationStats{}
		r.mutations[kind] = stats
	}
	stats.calls++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMutation(kind, err)
	}
}

// Snapshot is a copy of the current stats for one route.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

// Snapshot returns a copy of the current stats for the route.
func (r *Recorder) Snapshot(route string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.routes[route]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// Requests returns the total calls recorded for a route.
func (r *Recorder) Requests(route string) int {
	return r.Snapshot(route).Calls
}

// RequestErrors returns the failed calls recorded for a route.
func (r *Recorder) RequestErrors(route string) int {
	return r.Snapshot(route).Errors
}

// LastLatency returns the last recorded latency for a route.
func (r *Recorder) LastLatency(route string) time.Duration {
	return r.Snapshot(route).LastLatency
}

// RefreshCycles returns how many refresh cycles have completed.
func (r *Recorder) RefreshCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshCycles
}

// RefreshFailures returns the total per-resource failures across refresh cycles.
func (r *Recorder) RefreshFailures() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshFailures
}

// Mutations returns calls and errors recorded for a mutation kind.
func (r *Recorder) Mutations(kind string) (calls int, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.mutations[kind]; ok {
		return stats.calls, stats.errors
	}
	return 0, 0
}

// caller must hold r.mu
func (r *Recorder) ensureRoute(route string) *routeStats {
	stats, ok := r.routes[route]
	if !ok {
		stats = &routeStats{}
		r.routes[route] = stats
	}
	return stats
}
