package locator

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
	"github.com/thoreinstein/riderctl/internal/metadata"
	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// toolboxSkipDirs are never descended into while searching app directories.
var toolboxSkipDirs = []string{"plugins", "lib", "jbr"}

// Toolbox finds installs managed by JetBrains Toolbox.
type Toolbox struct {
	Platform Platform
	// Location replaces every default Toolbox data directory.
	Location string
	// Registry supplies the Toolbox location on Windows.
	Registry RegistryReader
}

// Name implements Strategy.
func (t *Toolbox) Name() string { return config.StrategyToolbox }

// Find implements Strategy.
func (t *Toolbox) Find(ctx context.Context) []install.Info {
	logger := logging.FromContext(ctx).With("strategy", t.Name())

	var found []install.Info
	for _, root := range t.searchRoots() {
		if !fileutil.DirExists(root) {
			logger.Debug("toolbox root missing", "dir", root)
			continue
		}
		for _, candidate := range t.walk(ctx, root) {
			info, instRoot, ok := t.Platform.admit(candidate, install.OriginToolbox)
			if !ok {
				logger.Log(ctx, logging.LevelTrace, "rejected", "path", candidate)
				continue
			}
			if stale(info, instRoot) {
				logger.Debug("superseded by history", "path", info.Path, "build", info.Build)
				continue
			}
			found = append(found, info)
		}
	}
	return found
}

// Bases returns the Toolbox data directories in lookup order, after
// applying each one's settings override.
func (t *Toolbox) Bases() []string {
	var bases []string
	switch {
	case t.Location != "":
		bases = []string{t.Location}
	default:
		if t.Platform.Registry && t.Registry != nil {
			bases = append(bases, ToolboxFromRegistry(t.Registry)...)
		}
		if t.Platform.ToolboxBase != "" {
			bases = append(bases, t.Platform.ToolboxBase)
		}
	}

	out := make([]string, 0, len(bases))
	for _, base := range bases {
		if loc, ok := metadata.InstallLocation(filepath.Join(base, metadata.SettingsFile)); ok {
			base = loc
		}
		if !slices.Contains(out, base) {
			out = append(out, base)
		}
	}
	return out
}

func (t *Toolbox) searchRoots() []string {
	var roots []string
	for _, base := range t.Bases() {
		roots = append(roots, filepath.Join(base, "apps"))
	}
	for _, dir := range t.Platform.ToolboxAppDirs {
		if !slices.Contains(roots, dir) {
			roots = append(roots, dir)
		}
	}
	return roots
}

// walk returns every path under root whose base name matches one of the
// platform's patterns. Matched directories are not descended into.
func (t *Toolbox) walk(ctx context.Context, root string) []string {
	var hits []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return fs.SkipAll
		}
		name := d.Name()
		if d.IsDir() && path != root && slices.Contains(toolboxSkipDirs, name) {
			return fs.SkipDir
		}
		if !matchAny(t.Platform.ToolboxPatterns, name) {
			return nil
		}
		hits = append(hits, path)
		if d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	return hits
}

// stale reports whether the Toolbox history near root names a different
// build than the install's descriptor. Installs without a history file or
// without a known build are kept.
func stale(info install.Info, root string) bool {
	if info.Build == "" {
		return false
	}
	history, ok := metadata.FindHistory(root, metadata.DefaultHistoryDepth)
	if !ok {
		return false
	}
	last, ok := metadata.LastBuild(history)
	if !ok {
		return false
	}
	return last != info.Build
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}
