package server

import (
	"context"

	"github.com/preston-bernstein/gridiron-gm/internal/poller"
)

// Watcher defines the minimal watch loop behavior needed by the server.
type Watcher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
