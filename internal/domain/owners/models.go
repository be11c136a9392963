package owners

// Owner is a team owner as returned by the backend.
type Owner struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Create is the payload for POST /owners.
type Create struct {
	Name string `json:"name"`
}
