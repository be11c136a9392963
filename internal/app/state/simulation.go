package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/gridiron-gm/internal/domain/games"
	"github.com/preston-bernstein/gridiron-gm/internal/logging"
	"github.com/preston-bernstein/gridiron-gm/internal/metrics"
)

// SimulateGame asks the backend to simulate gameID and holds the result.
// Collections are not refreshed.
func (c *Controller) SimulateGame(ctx context.Context, gameID int) (games.SimulationResult, error) {
	if gameID < 1 {
		return games.SimulationResult{}, ErrInvalidGameID
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	res, err := c.backend.SimulateGame(ctx, gameID)
	c.metrics.RecordMutation(MutationSimulate, err)
	if err != nil {
		logging.Error(logging.FromContext(ctx, c.logger), "simulation failed", err, slog.String(metrics.AttrMutation, MutationSimulate))
		return games.SimulationResult{}, fmt.Errorf("simulate game %d: %w", gameID, err)
	}

	c.store.SetSimulation(res)
	c.observers.notify(Event{Kind: EventSimulated})
	return res, nil
}

// SimulationDisplay renders the last simulation result, or "" before any.
func (c *Controller) SimulationDisplay() string {
	res, ok := c.store.Simulation()
	if !ok {
		return ""
	}
	return res.String()
}
