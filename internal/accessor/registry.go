package accessor

import (
	"sync"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// Sentinel errors for registry operations.
var (
	// ErrAlreadyRegistered is returned when a handle name is already in use.
	ErrAlreadyRegistered = errors.New("accessor already registered")

	// ErrInvalidAccessor is returned for a nil handle or one without a name.
	ErrInvalidAccessor = errors.New("invalid accessor")
)

// Registry holds the handles a host can choose from.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Accessor
	order  []string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Accessor),
	}
}

// Register adds a handle under its name.
func (r *Registry) Register(a *Accessor) error {
	if a == nil || a.Name() == "" {
		return ErrInvalidAccessor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[a.Name()]; exists {
		return errors.Wrap(ErrAlreadyRegistered, a.Name())
	}
	r.byName[a.Name()] = a
	r.order = append(r.order, a.Name())
	return nil
}

// Unregister removes the named handle and reports whether it was present.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; !exists {
		return false
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the named handle.
func (r *Registry) Get(name string) (*Accessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byName[name]
	return a, ok
}

// All returns every handle in registration order.
func (r *Registry) All() []*Accessor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Accessor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Available returns the registered handles whose executable exists.
func (r *Registry) Available() []*Accessor {
	all := r.All()
	out := make([]*Accessor, 0, len(all))
	for _, a := range all {
		if a.IsAvailable() {
			out = append(out, a)
		}
	}
	return out
}

// Default returns the aggregate handle for model.
func (r *Registry) Default(model ProjectModel) (*Accessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if a := r.byName[name]; a.Aggregate() && a.Model() == model {
			return a, true
		}
	}
	return nil, false
}

// Len returns the number of registered handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
