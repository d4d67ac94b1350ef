package syncbus

import (
	"sync"

	"storefront/internal/domain/service"
)

type registryEntry struct {
	bus  *Bus
	refs int
}

// Registry keeps one Bus per session while anything is attached to it.
type Registry struct {
	mu    sync.Mutex
	buses map[string]*registryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{buses: make(map[string]*registryEntry)}
}

// Attach returns the session's bus, creating it if needed, and a release func.
// The bus is forgotten after the last release.
func (r *Registry) Attach(sessionID string) (*Bus, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.buses[sessionID]
	if !ok {
		entry = &registryEntry{bus: NewBus()}
		r.buses[sessionID] = entry
	}
	entry.refs++

	var once sync.Once

	return entry.bus, func() {
		once.Do(func() { r.release(sessionID, entry) })
	}
}

func (r *Registry) release(sessionID string, entry *registryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.refs--
	if entry.refs <= 0 && r.buses[sessionID] == entry {
		delete(r.buses, sessionID)
	}
}

// Lookup returns the attached bus of a session, or a fresh detached bus nobody listens to.
func (r *Registry) Lookup(sessionID string) *Bus {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.buses[sessionID]; ok {
		return entry.bus
	}

	return NewBus()
}

// Len returns the number of sessions with an attached bus.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.buses)
}

// Events implements service.CartEventsRegistry.
func (r *Registry) Events(sessionID string) service.CartEvents {
	return r.Lookup(sessionID)
}
