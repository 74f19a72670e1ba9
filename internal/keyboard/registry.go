package keyboard

import (
	"sync"

	"pocketchat/internal/logger"
)

// Listener receives lifecycle events.
type Listener func(Event)

type listenerEntry struct {
	id int
	fn Listener
}

// Registry maps event kinds to subscriber sets. Dispatch order is insertion
// order, which keeps tests deterministic. A listener that panics is isolated:
// the panic is recovered and logged, and remaining listeners still run.
type Registry struct {
	mu      sync.Mutex
	entries map[EventKind][]listenerEntry
	nextID  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[EventKind][]listenerEntry)}
}

// AddListener subscribes fn to kind and returns an unsubscribe function.
// Unsubscribing twice is a no-op, not an error.
func (r *Registry) AddListener(kind EventKind, fn Listener) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.entries[kind] = append(r.entries[kind], listenerEntry{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.remove(kind, id)
		})
	}
}

func (r *Registry) remove(kind EventKind, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.entries[kind]
	for i, e := range list {
		if e.id == id {
			r.entries[kind] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners drops every subscriber for the given kinds, or for all
// kinds when none are given.
func (r *Registry) RemoveAllListeners(kinds ...EventKind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(kinds) == 0 {
		r.entries = make(map[EventKind][]listenerEntry)
		return
	}
	for _, k := range kinds {
		delete(r.entries, k)
	}
}

// Len returns the number of subscribers for a kind.
func (r *Registry) Len(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries[kind])
}

// Dispatch delivers ev to the kind's subscribers synchronously, in insertion
// order. Listener failures never propagate to the caller.
func (r *Registry) Dispatch(ev Event) {
	r.mu.Lock()
	list := r.entries[ev.Kind]
	fns := make([]Listener, len(list))
	for i, e := range list {
		fns[i] = e.fn
	}
	r.mu.Unlock()

	for _, fn := range fns {
		safeInvoke(ev, fn)
	}
}

func safeInvoke(ev Event, fn Listener) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Keyboard: listener panicked during %s dispatch: %v", ev.Kind, rec)
		}
	}()
	fn(ev)
}
