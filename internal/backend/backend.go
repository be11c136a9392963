// Package backend exposes the gridiron service resources as typed operations.
package backend

import (
	"context"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/games"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/meta"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/owners"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/players"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
)

// Reader fetches the read resources refreshed on every cycle.
type Reader interface {
	Health(ctx context.Context) (meta.Health, error)
	Version(ctx context.Context) (meta.Version, error)
	Owners(ctx context.Context) ([]owners.Owner, error)
	Teams(ctx context.Context) ([]teams.Team, error)
	Players(ctx context.Context) ([]players.Player, error)
}

// Writer submits creation and simulation requests.
type Writer interface {
	CreateOwner(ctx context.Context, in owners.Create) (owners.Owner, error)
	CreateTeam(ctx context.Context, in teams.Create) (teams.Team, error)
	CreatePlayer(ctx context.Context, in players.Create) (players.Player, error)
	SimulateGame(ctx context.Context, gameID int) (games.SimulationResult, error)
}

// Service combines read and write capabilities.
type Service interface {
	Reader
	Writer
}
