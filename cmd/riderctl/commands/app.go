package commands

import (
	"context"
	"runtime"

	"github.com/thoreinstein/riderctl/internal/accessor"
	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/locator"
	"github.com/thoreinstein/riderctl/internal/process"
)

// launcher starts Rider. Tests replace it.
var launcher process.Launcher = process.Exec{}

// newCollector builds the discovery entry point. Tests replace it.
var newCollector = func(cfg *config.Config) (accessor.Collector, error) {
	p, err := currentPlatform()
	if err != nil {
		return nil, err
	}
	return newLocator(p, cfg), nil
}

// currentPlatform describes the running operating system.
func currentPlatform() (locator.Platform, error) {
	p, ok := locator.ForOS(runtime.GOOS, locator.SystemEnv())
	if !ok {
		return p, errors.NewSystemError(
			errors.Newf("unsupported operating system %q", runtime.GOOS),
			"riderctl supports linux, darwin and windows",
		)
	}
	return p, nil
}

// locatorOptions wires the system collaborators into the configured
// discovery options.
func locatorOptions(cfg *config.Config) locator.Options {
	opts := locator.OptionsFromConfig(cfg)
	opts.Runner = process.Exec{}
	opts.Registry = locator.SystemRegistry()
	if opts.Resources == nil {
		opts.Resources = locator.ExecutableResources{}
	}
	return opts
}

func newLocator(p locator.Platform, cfg *config.Config) *locator.Locator {
	return locator.ForPlatform(p, locatorOptions(cfg))
}

// session is one discovery run with its registered handles.
type session struct {
	registry *accessor.Registry
	module   *accessor.Module
}

// startSession runs discovery and registers every handle. solutions may be
// nil when no handle will be launched.
func startSession(ctx context.Context, cfg *config.Config, solutions *accessor.SolutionCache) (*session, error) {
	collector, err := newCollector(cfg)
	if err != nil {
		return nil, err
	}

	registry := accessor.NewRegistry()
	module := accessor.NewModule(collector, registry, accessor.Options{
		Launcher:   launcher,
		Solutions:  solutions,
		EngineRoot: cfg.EngineRoot,
	})
	if _, err := module.Startup(ctx); err != nil {
		if errors.Is(err, errors.ErrNoInstalls) {
			return nil, errors.NewUserError(err, "Run: riderctl doctor")
		}
		return nil, errors.Wrap(err, "starting discovery")
	}
	return &session{registry: registry, module: module}, nil
}

func (s *session) close() {
	s.module.Shutdown()
}
