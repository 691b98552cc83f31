// Package registry manages the catalog of available tags.
package registry

import (
	"sort"
	"sync"

	"github.com/aretw0/weft/pkg/ports"
)

// Registry maps tag names to their implementations.
type Registry struct {
	mu   sync.RWMutex
	tags map[string]ports.Tag
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		tags: make(map[string]ports.Tag),
	}
}

// Register adds a tag to the registry.
// If a tag with the same name exists, it is overwritten.
func (r *Registry) Register(name string, tag ports.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags[name] = tag
}

// Lookup returns the implementation for a tag name.
func (r *Registry) Lookup(name string) (ports.Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag, ok := r.tags[name]
	return tag, ok
}

// Names returns all registered tag names in deterministic order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tags))
	for name := range r.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
