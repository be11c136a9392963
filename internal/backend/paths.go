package backend

import "strconv"

const (
	PathHealth       = "/health"
	PathVersion      = "/version"
	PathOwners       = "/owners"
	PathTeams        = "/teams"
	PathPlayers      = "/players"
	pathSimulateGame = "/simulate-game/"
)

// SimulateGamePath returns the per-game simulation path.
func SimulateGamePath(gameID int) string {
	return pathSimulateGame + strconv.Itoa(gameID)
}
