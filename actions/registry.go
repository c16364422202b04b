package actions

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the generators of all known namespaces.
type Registry struct {
	generators map[string]*Generator
	mu         sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]*Generator),
	}
}

// Register adds the generator of a namespace.
// A namespace can only be registered once.
func (r *Registry) Register(g *Generator) error {
	if g == nil || g.base == nil || g.base.Namespace == "" {
		return ErrNamespaceRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	namespace := g.base.Namespace
	if _, exists := r.generators[namespace]; exists {
		return fmt.Errorf("generator for namespace %s already registered", namespace)
	}

	r.generators[namespace] = g
	return nil
}

// MustRegister registers a generator and panics if it fails.
func (r *Registry) MustRegister(g *Generator) {
	if err := r.Register(g); err != nil {
		panic(err)
	}
}

// Unregister removes the generator of a namespace.
func (r *Registry) Unregister(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.generators, namespace)
}

// Get returns the generator of a namespace.
func (r *Registry) Get(namespace string) (*Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generators[namespace]
	return g, ok
}

// Namespaces returns the registered namespaces in sorted order.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	namespaces := make([]string, 0, len(r.generators))
	for namespace := range r.generators {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)
	return namespaces
}

// CreateActions builds the descriptors of the given namespaces, or of every
// registered namespace when none are given. Namespaces are built in the
// order given, otherwise sorted. The first mapping error aborts the build.
func (r *Registry) CreateActions(namespaces ...string) ([]Descriptor, error) {
	if len(namespaces) == 0 {
		namespaces = r.Namespaces()
	}

	var all []Descriptor
	for _, namespace := range namespaces {
		g, ok := r.Get(namespace)
		if !ok {
			return nil, fmt.Errorf("no generator registered for namespace %s", namespace)
		}
		descriptors, err := g.CreateActions()
		if err != nil {
			return nil, fmt.Errorf("failed to create %s actions: %w", namespace, err)
		}
		all = append(all, descriptors...)
	}
	return all, nil
}

// CreateAllActions builds the descriptors of every registered namespace.
func (r *Registry) CreateAllActions() ([]Descriptor, error) {
	return r.CreateActions()
}
