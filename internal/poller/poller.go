package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/gridiron-gm/internal/logging"
)

const defaultInterval = 5 * time.Second

// RefreshFunc runs one refresh cycle and returns its combined error, if any.
type RefreshFunc func(ctx context.Context) error

// Poller runs a refresh on an interval until stopped.
type Poller struct {
	refresh  RefreshFunc
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once

	// startMu guards started and ticker.
	startMu sync.Mutex
	started bool
	ticker  *time.Ticker

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the watch loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. A non-positive interval uses the default.
func New(refresh RefreshFunc, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresh:  refresh,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Interval returns the refresh interval in use.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	ticker := time.NewTicker(p.interval)
	p.ticker = ticker
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "watch started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "watch stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "watch stopped")
				return
			case <-ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	if p.refresh == nil {
		return
	}

	if err := p.refresh(ctx); err != nil {
		logging.Warn(p.logger, "watch refresh incomplete", "error", err)
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	logging.Debug(p.logger, "watch refreshed", slog.Int64(logging.FieldDurationMS, p.now().Sub(start).Milliseconds()))
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
