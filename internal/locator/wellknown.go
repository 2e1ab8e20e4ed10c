package locator

import (
	"context"
	"path/filepath"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
)

// WellKnown finds manual installs in the platform's usual directories.
type WellKnown struct {
	Platform Platform
}

// Name implements Strategy.
func (w *WellKnown) Name() string { return config.StrategyWellKnown }

// Find implements Strategy.
func (w *WellKnown) Find(ctx context.Context) []install.Info {
	logger := logging.FromContext(ctx).With("strategy", w.Name())

	var found []install.Info
	for _, pattern := range w.Platform.WellKnown {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			logger.Debug("bad pattern", "pattern", pattern, "error", err)
			continue
		}
		for _, m := range matches {
			if info, ok := w.Platform.Admit(m, install.OriginInstalled); ok {
				found = append(found, info)
			} else {
				logger.Log(ctx, logging.LevelTrace, "rejected", "path", m)
			}
		}
	}
	return found
}
