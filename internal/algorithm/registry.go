package algorithm

import (
	"fmt"
	"sort"
	"sync"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/config"
)

// #region registry

// Registry maps algorithm names to constructors. It is an explicit object
// handed to the trainer rather than package-level mutable state, so tests
// and embedders can build their own. Names are unique: re-registration is
// rejected to prevent silent shadowing.
type Registry struct {
	mu    sync.Mutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a named constructor. A duplicate name is a configuration
// error, not an overwrite.
func (r *Registry) Register(name string, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name == "" {
		return &config.Error{Field: "algorithm", Reason: "registration with empty name"}
	}
	if _, exists := r.ctors[name]; exists {
		return &config.Error{Field: "algorithm", Reason: fmt.Sprintf("%q already registered", name)}
	}
	r.ctors[name] = ctor
	return nil
}

// Resolve instantiates the named plugin. An unregistered name fails with a
// configuration error naming the known algorithms, before any I/O begins.
func (r *Registry) Resolve(name string) (Plugin, error) {
	r.mu.Lock()
	ctor, ok := r.ctors[name]
	r.mu.Unlock()
	if !ok {
		return nil, &config.Error{
			Field:  "algorithm",
			Reason: fmt.Sprintf("unknown algorithm %q, available: %v", name, r.Names()),
		}
	}
	return ctor(), nil
}

// Names returns the registered algorithm names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// #endregion registry

// #region default-registry

// DefaultRegistry returns a registry with the built-in algorithms. Called
// once at process startup; construction cannot collide with itself, so
// registration errors here are impossible by construction.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("dpo", func() Plugin { return NewDPO() })
	r.Register("ppo", func() Plugin { return NewPPO() })
	return r
}

// #endregion default-registry
