package games

import "fmt"

// Winner values reported by the backend.
const (
	WinnerHome = "home"
	WinnerAway = "away"
)

// SimulationResult is the payload of POST /simulate-game/{id}. It is transient and never stored in a collection.
type SimulationResult struct {
	GameID int    `json:"game_id"`
	Home   int    `json:"home"`
	Away   int    `json:"away"`
	Winner string `json:"winner"`
}

// String renders the result for display, e.g. "21 - 17 (winner: home)".
func (r SimulationResult) String() string {
	return fmt.Sprintf("%d - %d (winner: %s)", r.Home, r.Away, r.Winner)
}
