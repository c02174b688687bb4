package opt

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

// Factory builds an engine for a problem instance. Each engine draws its
// randomness from the supplied generator only, so runs stay reproducible
// and independently seeded runs can execute in parallel.
type Factory func(problem *knapsack.Problem, rng *rand.Rand) (Optimizer, error)

// ErrNilFactory is returned when registering something that cannot
// produce an Optimizer.
var ErrNilFactory = errors.New("optimizer factory is nil")

// ErrNotFound is returned when a requested algorithm is not registered.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents an unregistered algorithm name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return "algorithm not registered: " + e.Name
	}
	return "algorithm not registered"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// Registry maps algorithm names to engine factories. It is an explicit
// object constructed at the composition root, not process-wide state, and
// is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given name, replacing any previous
// registration. Empty names and nil factories are rejected.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	return nil
}

// Get instantiates the named engine for a problem. Unknown names yield a
// NotFoundError; a registry entry whose factory fails or produces nil
// surfaces that as an error without touching registry state.
func (r *Registry) Get(name string, problem *knapsack.Problem, rng *rand.Rand) (Optimizer, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	engine, err := factory(problem, rng)
	if err != nil {
		return nil, fmt.Errorf("construct %q: %w", name, err)
	}
	if engine == nil {
		return nil, fmt.Errorf("construct %q: factory returned no optimizer", name)
	}
	return engine, nil
}

// Has reports whether an algorithm is registered under the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// List returns the registered algorithm names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
