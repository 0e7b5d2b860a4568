// Package pages holds the registry mapping client-chosen page identifiers
// to engine page handles.
package pages

import (
	"fmt"
	"sync"

	"github.com/marionet/marionet/pkg/engine"
)

// DefaultID is the identifier bound at startup to the engine's initial page.
const DefaultID = "default"

// ErrAlreadyExists is returned by Register when the identifier is taken.
var ErrAlreadyExists = fmt.Errorf("page identifier already registered")

// Registry maps page identifiers to page handles. Identifiers are unique;
// a binding is never overwritten. Safe for use from concurrent connections.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]engine.Page
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pages: make(map[string]engine.Page),
	}
}

// Register binds id to handle. It fails with ErrAlreadyExists when id is
// already bound, leaving the existing binding untouched. The check and the
// insert happen under one lock, so concurrent connections cannot both claim
// the same identifier.
func (r *Registry) Register(id string, handle engine.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[id]; exists {
		return ErrAlreadyExists
	}
	r.pages[id] = handle
	return nil
}

// Resolve returns the handle bound to id. Absence is not an error; the
// second return reports whether the identifier is bound.
func (r *Registry) Resolve(id string) (engine.Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.pages[id]
	return handle, ok
}

// SeedDefault binds DefaultID to the engine's initial page. Called once
// during startup before any client command is processed; seeding twice is a
// no-op so a restart-safe startup path cannot fail here.
func (r *Registry) SeedDefault(handle engine.Page) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[DefaultID]; exists {
		return
	}
	r.pages[DefaultID] = handle
}

// Len returns the number of bound identifiers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}
