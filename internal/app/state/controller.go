// Package state owns the client-side view of the backend and the operations that change it.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/gridiron-gm/internal/backend"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/owners"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/players"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
	"github.com/preston-bernstein/gridiron-gm/internal/logging"
	"github.com/preston-bernstein/gridiron-gm/internal/metrics"
	"github.com/preston-bernstein/gridiron-gm/internal/store"
)

// Mutation kinds recorded in metrics.
const (
	MutationOwner    = "owner"
	MutationTeam     = "team"
	MutationPlayer   = "player"
	MutationSimulate = "simulate"
)

// ErrInvalidGameID is returned for game ids below 1; no request is sent.
var ErrInvalidGameID = errors.New("state: game id must be >= 1")

// Config wires the controller. Store defaults to an empty MemoryStore and
// Reporter to a LogReporter over Logger.
type Config struct {
	Backend  backend.Service
	Store    *store.MemoryStore
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Reporter Reporter
}

// Controller refreshes the store from the backend and issues mutations.
type Controller struct {
	backend  backend.Service
	store    *store.MemoryStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
	reporter Reporter
	now      func() time.Time

	// writeMu serializes a mutation with its follow-up refresh.
	writeMu   sync.Mutex
	observers observers

	lastMu sync.Mutex
	last   Report
}

// New constructs a Controller.
func New(cfg Config) *Controller {
	st := cfg.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = LogReporter{Logger: cfg.Logger}
	}
	return &Controller{
		backend:  cfg.Backend,
		store:    st,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		reporter: reporter,
		now:      time.Now,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() store.Snapshot {
	return c.store.Snapshot()
}

// Subscribe registers fn for change events and returns a function that removes it.
func (c *Controller) Subscribe(fn func(Event)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return c.observers.add(fn)
}

// LastRefresh returns the report of the most recent RefreshAll, including the
// follow-up refresh of a mutation. It is the zero Report before any refresh.
func (c *Controller) LastRefresh() Report {
	c.lastMu.Lock()
	defer c.lastMu.Unlock()
	return c.last
}

// RefreshAll fetches health, version, owners, teams and players in that order.
// A failed fetch keeps that resource's prior snapshot and does not stop the others.
func (c *Controller) RefreshAll(ctx context.Context) Report {
	start := c.now()
	report := Report{Errors: make(map[store.Resource]error)}

	for _, res := range store.Resources {
		c.store.BeginLoad(res)
		if err := c.fetch(ctx, res); err != nil {
			c.store.FailLoad(res)
			report.Errors[res] = err
			c.reporter.Report(res, err)
			continue
		}
		c.observers.notify(Event{Kind: EventRefreshed, Resource: res})
	}

	report.Duration = c.now().Sub(start)
	c.lastMu.Lock()
	c.last = report
	c.lastMu.Unlock()
	c.metrics.RecordRefreshCycle(report.Duration, len(report.Errors))
	logging.Debug(logging.FromContext(ctx, c.logger), "refresh complete",
		slog.Int("failures", len(report.Errors)),
		slog.Int64(logging.FieldDurationMS, report.Duration.Milliseconds()),
	)
	return report
}

func (c *Controller) fetch(ctx context.Context, res store.Resource) error {
	switch res {
	case store.ResourceHealth:
		h, err := c.backend.Health(ctx)
		if err != nil {
			return err
		}
		c.store.SetHealth(h)
	case store.ResourceVersion:
		v, err := c.backend.Version(ctx)
		if err != nil {
			return err
		}
		c.store.SetVersion(v)
	case store.ResourceOwners:
		list, err := c.backend.Owners(ctx)
		if err != nil {
			return err
		}
		c.store.SetOwners(list)
	case store.ResourceTeams:
		list, err := c.backend.Teams(ctx)
		if err != nil {
			return err
		}
		c.store.SetTeams(list)
	case store.ResourcePlayers:
		list, err := c.backend.Players(ctx)
		if err != nil {
			return err
		}
		c.store.SetPlayers(list)
	default:
		return fmt.Errorf("state: unknown resource %q", res)
	}
	return nil
}

// AddOwner creates an owner and refreshes. A blank name is a no-op.
func (c *Controller) AddOwner(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return c.mutate(ctx, MutationOwner, func() error {
		_, err := c.backend.CreateOwner(ctx, owners.Create{Name: name})
		return err
	})
}

// AddTeam creates a team and refreshes. A blank name is a no-op.
func (c *Controller) AddTeam(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return c.mutate(ctx, MutationTeam, func() error {
		_, err := c.backend.CreateTeam(ctx, teams.Create{Name: name})
		return err
	})
}

// AddPlayer creates a player and refreshes. A blank name is a no-op; a blank
// position becomes players.DefaultPosition; a nil teamID leaves the player unassigned.
func (c *Controller) AddPlayer(ctx context.Context, name, position string, teamID *int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	position = strings.TrimSpace(position)
	if position == "" {
		position = players.DefaultPosition
	}
	in := players.Create{Name: name, Position: position}
	if teamID != nil {
		id := *teamID
		in.TeamID = &id
	}
	return c.mutate(ctx, MutationPlayer, func() error {
		_, err := c.backend.CreatePlayer(ctx, in)
		return err
	})
}

// mutate runs write and, only if it succeeds, a full refresh. Refresh failures
// go to the reporter and LastRefresh; they are not returned.
func (c *Controller) mutate(ctx context.Context, kind string, write func() error) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	err := write()
	c.metrics.RecordMutation(kind, err)
	if err != nil {
		logging.Error(logging.FromContext(ctx, c.logger), "mutation failed", err, slog.String(metrics.AttrMutation, kind))
		return fmt.Errorf("add %s: %w", kind, err)
	}

	c.RefreshAll(ctx)
	return nil
}
