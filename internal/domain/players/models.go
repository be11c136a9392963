package players

// DefaultPosition is used when a player is created without a position.
const DefaultPosition = "QB"

// Player is the backend player shape. TeamID references a teams.Team when set.
type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	TeamID   *int   `json:"team_id,omitempty"`
}

// Create is the payload for POST /players. A nil TeamID is omitted from the body.
type Create struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	TeamID   *int   `json:"team_id,omitempty"`
}
