package bundle

import (
	"sync"

	"catena/internal/category"
	"catena/internal/logging"
)

// Registry associates capability bundles with the category kind that owns
// them. A kind owns at most one bundle per role; bundles belong to kinds,
// never to node instances.
type Registry struct {
	mu      sync.RWMutex
	bundles map[registryKey]*Bundle
}

type registryKey struct {
	kind category.Kind
	role Role
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bundles: make(map[registryKey]*Bundle)}
}

// Register installs b as the (kind, role) bundle, replacing any previous
// one.
func (r *Registry) Register(kind category.Kind, role Role, b *Bundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bundles[registryKey{kind, role}] = b
	logging.Bundle("registered %d %s operations for %s", b.Len(), role, kind)
}

// Lookup returns the bundle owned by kind for role.
func (r *Registry) Lookup(kind category.Kind, role Role) (*Bundle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bundles[registryKey{kind, role}]
	return b, ok
}
