package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores adapters by name, providing discovery and duplication
// safeguards. Deployments can embed or wrap this for dependency injection.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// Register adds an adapter by its Name(). Duplicate names return an error.
func (r *Registry) Register(adapter Adapter) error {
	if adapter == nil {
		return fmt.Errorf("render: adapter is required")
	}
	name := adapter.Name()
	if name == "" {
		return fmt.Errorf("render: adapter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("render: adapter %q already registered", name)
	}

	r.adapters[name] = adapter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(adapter Adapter) {
	if err := r.Register(adapter); err != nil {
		panic(err)
	}
}

// Get retrieves an adapter by name.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("render: adapter %q not found", name)
	}
	return adapter, nil
}

// MustGet panics if the adapter is missing.
func (r *Registry) MustGet(name string) Adapter {
	adapter, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return adapter
}

// List returns a sorted list of adapter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an adapter is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.adapters[name]
	return ok
}
