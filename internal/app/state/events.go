package state

import (
	"sync"

	"github.com/preston-bernstein/gridiron-gm/internal/store"
)

// EventKind says what changed.
type EventKind string

const (
	EventRefreshed EventKind = "refreshed"
	EventSimulated EventKind = "simulated"
)

// Event is delivered to subscribers after a snapshot replacement or a simulation.
// Resource is empty for EventSimulated.
type Event struct {
	Kind     EventKind
	Resource store.Resource
}

type observers struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(Event)
}

func (o *observers) add(fn func(Event)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fns == nil {
		o.fns = make(map[int]func(Event))
	}
	id := o.nextID
	o.nextID++
	o.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.fns, id)
		})
	}
}

func (o *observers) notify(ev Event) {
	o.mu.Lock()
	fns := make([]func(Event), 0, len(o.fns))
	for _, fn := range o.fns {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
