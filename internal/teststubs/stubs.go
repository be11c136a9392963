package teststubs

import (
	"context"
	"sync"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/games"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/meta"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/owners"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/players"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
)

// Operation names recorded by StubBackend.
const (
	OpHealth       = "health"
	OpVersion      = "version"
	OpOwners       = "owners"
	OpTeams        = "teams"
	OpPlayers      = "players"
	OpCreateOwner  = "create-owner"
	OpCreateTeam   = "create-team"
	OpCreatePlayer = "create-player"
	OpSimulateGame = "simulate-game"
)

// Call is one recorded invocation; Input holds the create payload or game id.
type Call struct {
	Op    string
	Input any
}

// StubBackend is a test double for backend.Service that records every call.
type StubBackend struct {
	mu sync.Mutex

	HealthVal  meta.Health
	VersionVal meta.Version
	OwnersVal  []owners.Owner
	TeamsVal   []teams.Team
	PlayersVal []players.Player
	SimResult  games.SimulationResult

	// Errs makes the named operation fail.
	Errs map[string]error

	calls []Call
}

// SetErr makes op fail with err; a nil err clears it.
func (s *StubBackend) SetErr(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Errs == nil {
		s.Errs = make(map[string]error)
	}
	if err == nil {
		delete(s.Errs, op)
		return
	}
	s.Errs[op] = err
}

// Calls returns a copy of recorded calls in order.
func (s *StubBackend) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// Ops returns the recorded operation names in order.
func (s *StubBackend) Ops() []string {
	calls := s.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Op
	}
	return out
}

// Count returns how many times op was called.
func (s *StubBackend) Count(op string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset clears recorded calls.
func (s *StubBackend) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *StubBackend) record(op string, input any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Op: op, Input: input})
	return s.Errs[op]
}

func (s *StubBackend) Health(ctx context.Context) (meta.Health, error) {
	_ = ctx
	if err := s.record(OpHealth, nil); err != nil {
		return meta.Health{}, err
	}
	return s.HealthVal, nil
}

func (s *StubBackend) Version(ctx context.Context) (meta.Version, error) {
	_ = ctx
	if err := s.record(OpVersion, nil); err != nil {
		return meta.Version{}, err
	}
	return s.VersionVal, nil
}

func (s *StubBackend) Owners(ctx context.Context) ([]owners.Owner, error) {
	_ = ctx
	if err := s.record(OpOwners, nil); err != nil {
		return nil, err
	}
	return s.OwnersVal, nil
}

func (s *StubBackend) Teams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	if err := s.record(OpTeams, nil); err != nil {
		return nil, err
	}
	return s.TeamsVal, nil
}

func (s *StubBackend) Players(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	if err := s.record(OpPlayers, nil); err != nil {
		return nil, err
	}
	return s.PlayersVal, nil
}

func (s *StubBackend) CreateOwner(ctx context.Context, in owners.Create) (owners.Owner, error) {
	_ = ctx
	if err := s.record(OpCreateOwner, in); err != nil {
		return owners.Owner{}, err
	}
	return owners.Owner{ID: len(s.OwnersVal) + 1, Name: in.Name}, nil
}

func (s *StubBackend) CreateTeam(ctx context.Context, in teams.Create) (teams.Team, error) {
	_ = ctx
	if err := s.record(OpCreateTeam, in); err != nil {
		return teams.Team{}, err
	}
	return teams.Team{ID: len(s.TeamsVal) + 1, Name: in.Name, OwnerID: in.OwnerID}, nil
}

func (s *StubBackend) CreatePlayer(ctx context.Context, in players.Create) (players.Player, error) {
	_ = ctx
	if err := s.record(OpCreatePlayer, in); err != nil {
		return players.Player{}, err
	}
	return players.Player{ID: len(s.PlayersVal) + 1, Name: in.Name, Position: in.Position, TeamID: in.TeamID}, nil
}

func (s *StubBackend) SimulateGame(ctx context.Context, gameID int) (games.SimulationResult, error) {
	_ = ctx
	if err := s.record(OpSimulateGame, gameID); err != nil {
		return games.SimulationResult{}, err
	}
	res := s.SimResult
	res.GameID = gameID
	return res, nil
}
