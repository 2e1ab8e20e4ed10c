package accessor

import (
	"context"
	"sync"

	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
)

// Collector is the discovery entry point a Module starts from.
type Collector interface {
	CollectAllPaths(ctx context.Context) *install.Set
}

// Module owns the handles it registered between Startup and Shutdown.
type Module struct {
	collector Collector
	registry  *Registry
	opts      Options

	mu         sync.Mutex
	registered []string
}

// NewModule returns a Module that registers into registry.
func NewModule(collector Collector, registry *Registry, opts Options) *Module {
	return &Module{
		collector: collector,
		registry:  registry,
		opts:      opts,
	}
}

// Startup runs discovery and registers one handle per generated name. A
// name already present in the registry is skipped. It returns
// errors.ErrNoInstalls when discovery finds nothing.
func (m *Module) Startup(ctx context.Context) ([]*Accessor, error) {
	logger := logging.FromContext(ctx)
	opts := m.opts
	if opts.Logger == nil {
		opts.Logger = logger
	}

	set := m.collector.CollectAllPaths(ctx)
	sorted := set.Sorted()
	logger.Debug("discovery complete", "installs", len(sorted))
	if len(sorted) == 0 {
		return nil, errors.ErrNoInstalls
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var added []*Accessor
	for _, a := range Generate(sorted, opts) {
		if err := m.registry.Register(a); err != nil {
			logger.Warn("handle skipped", "name", a.Name(), "path", a.ExecutablePath(), "error", err)
			continue
		}
		m.registered = append(m.registered, a.Name())
		added = append(added, a)
	}
	return added, nil
}

// Shutdown unregisters every handle this module registered.
func (m *Module) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range m.registered {
		m.registry.Unregister(name)
	}
	m.registered = nil
}
