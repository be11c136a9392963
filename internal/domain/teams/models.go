package teams

// Team is the backend team shape. OwnerID references an owners.Owner when set.
type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	OwnerID *int   `json:"owner_id,omitempty"`
}

// Create is the payload for POST /teams. A nil OwnerID is omitted from the body.
type Create struct {
	Name    string `json:"name"`
	OwnerID *int   `json:"owner_id,omitempty"`
}

// IndexByID maps teams by id for label lookups.
func IndexByID(items []Team) map[int]Team {
	out := make(map[int]Team, len(items))
	for _, t := range items {
		out[t.ID] = t
	}
	return out
}
