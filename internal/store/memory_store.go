package store

import (
	"slices"
	"sync"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/games"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/meta"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/owners"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/players"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
)

// Resource names one independently refreshed collection or value.
type Resource string

const (
	ResourceHealth  Resource = "health"
	ResourceVersion Resource = "version"
	ResourceOwners  Resource = "owners"
	ResourceTeams   Resource = "teams"
	ResourcePlayers Resource = "players"
)

// Resources lists every refreshed resource in refresh order.
var Resources = []Resource{ResourceHealth, ResourceVersion, ResourceOwners, ResourceTeams, ResourcePlayers}

// Status is the load state of a single resource.
type Status int

const (
	StatusEmpty Status = iota
	StatusLoading
	StatusPopulated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusPopulated:
		return "populated"
	default:
		return "empty"
	}
}

// Snapshot is a consistent copy of everything the store holds.
type Snapshot struct {
	Health     meta.Health
	Version    meta.Version
	Owners     []owners.Owner
	Teams      []teams.Team
	Players    []players.Player
	Simulation *games.SimulationResult
	Statuses   map[Resource]Status
}

type tracker interface {
	begin()
	fail()
	state() Status
}

// slot holds one resource value. A failed load returns to the state seen before it began.
type slot[T any] struct {
	mu     sync.RWMutex
	status Status
	prior  Status
	value  T
	clone  func(T) T
}

func newSlot[T any](clone func(T) T) *slot[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &slot[T]{clone: clone}
}

func (s *slot[T]) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusLoading {
		s.prior = s.status
	}
	s.status = StatusLoading
}

func (s *slot[T]) fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusLoading {
		s.status = s.prior
	}
}

func (s *slot[T]) replace(v T) {
	v = s.clone(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.status = StatusPopulated
}

func (s *slot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.value)
}

func (s *slot[T]) state() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// MemoryStore keeps thread-safe per-resource snapshots in memory.
type MemoryStore struct {
	health  *slot[meta.Health]
	version *slot[meta.Version]
	owners  *slot[[]owners.Owner]
	teams   *slot[[]teams.Team]
	players *slot[[]players.Player]

	simMu      sync.RWMutex
	simulation *games.SimulationResult

	trackers map[Resource]tracker
}

// NewMemoryStore constructs a store with every resource empty.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		health:  newSlot[meta.Health](nil),
		version: newSlot[meta.Version](nil),
		owners:  newSlot(cloneList[owners.Owner]),
		teams:   newSlot(cloneTeams),
		players: newSlot(clonePlayers),
	}
	s.trackers = map[Resource]tracker{
		ResourceHealth:  s.health,
		ResourceVersion: s.version,
		ResourceOwners:  s.owners,
		ResourceTeams:   s.teams,
		ResourcePlayers: s.players,
	}
	return s
}

// BeginLoad marks a resource as loading. Unknown resources are ignored.
func (s *MemoryStore) BeginLoad(r Resource) {
	if t, ok := s.trackers[r]; ok {
		t.begin()
	}
}

// FailLoad reverts a loading resource to its previous state, keeping its value.
func (s *MemoryStore) FailLoad(r Resource) {
	if t, ok := s.trackers[r]; ok {
		t.fail()
	}
}

// Status reports the load state of a resource.
func (s *MemoryStore) Status(r Resource) Status {
	if t, ok := s.trackers[r]; ok {
		return t.state()
	}
	return StatusEmpty
}

func (s *MemoryStore) SetHealth(h meta.Health)          { s.health.replace(h) }
func (s *MemoryStore) SetVersion(v meta.Version)        { s.version.replace(v) }
func (s *MemoryStore) SetOwners(list []owners.Owner)    { s.owners.replace(list) }
func (s *MemoryStore) SetTeams(list []teams.Team)       { s.teams.replace(list) }
func (s *MemoryStore) SetPlayers(list []players.Player) { s.players.replace(list) }
func (s *MemoryStore) Health() meta.Health              { return s.health.get() }
func (s *MemoryStore) Version() meta.Version            { return s.version.get() }
func (s *MemoryStore) Owners() []owners.Owner           { return s.owners.get() }
func (s *MemoryStore) Teams() []teams.Team              { return s.teams.get() }
func (s *MemoryStore) Players() []players.Player        { return s.players.get() }

// SetSimulation holds the latest simulation result.
func (s *MemoryStore) SetSimulation(res games.SimulationResult) {
	s.simMu.Lock()
	defer s.simMu.Unlock()
	s.simulation = &res
}

// Simulation returns the latest simulation result, if any.
func (s *MemoryStore) Simulation() (games.SimulationResult, bool) {
	s.simMu.RLock()
	defer s.simMu.RUnlock()
	if s.simulation == nil {
		return games.SimulationResult{}, false
	}
	return *s.simulation, true
}

// Snapshot returns copies of every resource. Each resource is internally consistent.
func (s *MemoryStore) Snapshot() Snapshot {
	snap := Snapshot{
		Health:   s.Health(),
		Version:  s.Version(),
		Owners:   s.Owners(),
		Teams:    s.Teams(),
		Players:  s.Players(),
		Statuses: make(map[Resource]Status, len(s.trackers)),
	}
	if res, ok := s.Simulation(); ok {
		snap.Simulation = &res
	}
	for r, t := range s.trackers {
		snap.Statuses[r] = t.state()
	}
	return snap
}

func cloneList[T any](list []T) []T {
	if list == nil {
		return nil
	}
	return slices.Clone(list)
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTeams(list []teams.Team) []teams.Team {
	out := cloneList(list)
	for i := range out {
		out[i].OwnerID = cloneIntPtr(out[i].OwnerID)
	}
	return out
}

func clonePlayers(list []players.Player) []players.Player {
	out := cloneList(list)
	for i := range out {
		out[i].TeamID = cloneIntPtr(out[i].TeamID)
	}
	return out
}
