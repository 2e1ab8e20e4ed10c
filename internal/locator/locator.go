package locator

import (
	"context"
	"slices"
	"time"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
	"github.com/thoreinstein/riderctl/internal/process"
)

// Strategy produces admitted installs from one source.
type Strategy interface {
	Name() string
	Find(ctx context.Context) []install.Info
}

// Options wires a platform's strategies to their collaborators.
type Options struct {
	// Runner executes the search utility. Nil disables the search strategy.
	Runner process.Runner
	// Registry reads the Windows registry. Nil disables registry lookups.
	Registry RegistryReader
	// Resources locates the override list.
	Resources ResourceLocator

	ToolboxLocation string
	CustomPaths     []string
	SearchTimeout   time.Duration
	Exclude         []string
	Disabled        []string
}

// OptionsFromConfig copies the discovery settings out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := Options{
		ToolboxLocation: cfg.Toolbox.Location,
		CustomPaths:     cfg.CustomPaths,
		SearchTimeout:   cfg.Search.Timeout,
		Exclude:         cfg.Search.Exclude,
		Disabled:        cfg.Search.Disabled,
	}
	if cfg.ResourcesDir != "" {
		opts.Resources = ResourceDir(cfg.ResourcesDir)
	}
	return opts
}

// Locator runs discovery strategies in a fixed order.
type Locator struct {
	strategies []Strategy
}

// New returns a Locator over the given strategies.
func New(strategies ...Strategy) *Locator {
	return &Locator{strategies: strategies}
}

// ForPlatform builds the standard strategy sequence for p: Toolbox,
// well-known paths, search utility, registry, override list. Strategies
// named in opts.Disabled are left out.
func ForPlatform(p Platform, opts Options) *Locator {
	if opts.SearchTimeout <= 0 {
		opts.SearchTimeout = config.DefaultSearchTimeout
	}

	all := []Strategy{
		&Toolbox{Platform: p, Location: opts.ToolboxLocation, Registry: opts.Registry},
		&WellKnown{Platform: p},
	}
	if p.Search != nil && opts.Runner != nil {
		all = append(all, &Search{
			Platform: p,
			Runner:   opts.Runner,
			Timeout:  opts.SearchTimeout,
			Exclude:  opts.Exclude,
		})
	}
	if p.Registry && opts.Registry != nil {
		all = append(all, &Uninstall{Platform: p, Reader: opts.Registry})
	}
	all = append(all, &Override{Platform: p, Resources: opts.Resources, Paths: opts.CustomPaths})

	kept := all[:0]
	for _, s := range all {
		if !slices.Contains(opts.Disabled, s.Name()) {
			kept = append(kept, s)
		}
	}
	return New(kept...)
}

// Strategies returns the strategy names in run order.
func (l *Locator) Strategies() []string {
	names := make([]string, len(l.strategies))
	for i, s := range l.strategies {
		names[i] = s.Name()
	}
	return names
}

// CollectAllPaths runs every strategy and merges the results. The first
// record seen for a path wins. It never fails; an empty set means nothing
// was found.
func (l *Locator) CollectAllPaths(ctx context.Context) *install.Set {
	logger := logging.FromContext(ctx)
	set := install.NewSet()
	for _, s := range l.strategies {
		if ctx.Err() != nil {
			logger.Debug("discovery cancelled", "strategy", s.Name())
			break
		}
		found := s.Find(ctx)
		added := set.Append(found)
		logger.Debug("strategy finished", "strategy", s.Name(), "found", len(found), "added", added)
	}
	return set
}
