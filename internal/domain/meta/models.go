package meta

// Health is the payload of GET /health.
type Health struct {
	Status string `json:"status"`
}

// Version is the payload of GET /version.
type Version struct {
	Version string `json:"version"`
}
