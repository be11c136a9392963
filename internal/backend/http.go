package backend

import (
	"context"

	"github.com/preston-bernstein/gridiron-gm/internal/apiclient"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/games"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/meta"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/owners"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/players"
	"github.com/preston-bernstein/gridiron-gm/internal/domain/teams"
)

// HTTPService implements Service over the JSON API.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService wraps an apiclient.Client.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// BaseURL reports the base URL requests go to.
func (s *HTTPService) BaseURL() string {
	return s.client.BaseURL()
}

func (s *HTTPService) Health(ctx context.Context) (meta.Health, error) {
	return apiclient.Get[meta.Health](ctx, s.client, PathHealth)
}

func (s *HTTPService) Version(ctx context.Context) (meta.Version, error) {
	return apiclient.Get[meta.Version](ctx, s.client, PathVersion)
}

func (s *HTTPService) Owners(ctx context.Context) ([]owners.Owner, error) {
	return apiclient.Get[[]owners.Owner](ctx, s.client, PathOwners)
}

func (s *HTTPService) Teams(ctx context.Context) ([]teams.Team, error) {
	return apiclient.Get[[]teams.Team](ctx, s.client, PathTeams)
}

func (s *HTTPService) Players(ctx context.Context) ([]players.Player, error) {
	return apiclient.Get[[]players.Player](ctx, s.client, PathPlayers)
}

func (s *HTTPService) CreateOwner(ctx context.Context, in owners.Create) (owners.Owner, error) {
	return apiclient.Post[owners.Owner](ctx, s.client, PathOwners, in)
}

func (s *HTTPService) CreateTeam(ctx context.Context, in teams.Create) (teams.Team, error) {
	return apiclient.Post[teams.Team](ctx, s.client, PathTeams, in)
}

func (s *HTTPService) CreatePlayer(ctx context.Context, in players.Create) (players.Player, error) {
	return apiclient.Post[players.Player](ctx, s.client, PathPlayers, in)
}

// SimulateGame posts with no body.
func (s *HTTPService) SimulateGame(ctx context.Context, gameID int) (games.SimulationResult, error) {
	return apiclient.Post[games.SimulationResult](ctx, s.client, SimulateGamePath(gameID), nil)
}

var _ Service = (*HTTPService)(nil)
