package locator

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
	"github.com/thoreinstein/riderctl/internal/paths"
	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// ResourceLocator reports the directory holding the override list.
type ResourceLocator interface {
	ResourceDir() string
}

// ResourceDir is a fixed resource directory.
type ResourceDir string

// ResourceDir implements ResourceLocator.
func (d ResourceDir) ResourceDir() string { return string(d) }

// ExecutableResources locates Resources/ next to the running binary.
type ExecutableResources struct{}

// ResourceDir implements ResourceLocator.
func (ExecutableResources) ResourceDir() string { return paths.ExecutableResourcesDir() }

// Override admits paths listed by hand: one per line in the resource
// file, plus the configured custom paths.
type Override struct {
	Platform  Platform
	Resources ResourceLocator
	Paths     []string
}

// Name implements Strategy.
func (o *Override) Name() string { return config.StrategyOverride }

// ListFile returns the override list path, or "" without a resource
// directory.
func (o *Override) ListFile() string {
	if o.Resources == nil {
		return ""
	}
	dir := o.Resources.ResourceDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, paths.ResourceFile)
}

// Candidates returns the override paths in lookup order, expanded and
// made absolute. A missing list file is not an error; an unreadable one is
// reported alongside the configured custom paths.
func (o *Override) Candidates() ([]string, error) {
	var (
		candidates []string
		listErr    error
	)
	if file := o.ListFile(); file != "" && fileutil.FileExists(file) {
		lines, err := fileutil.ReadLines(file)
		if err != nil {
			listErr = errors.Wrapf(err, "reading override list %s", file)
		}
		base := filepath.Dir(file)
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			candidates = append(candidates, expand(line, base))
		}
	}
	for _, p := range o.Paths {
		if p != "" {
			candidates = append(candidates, expand(p, ""))
		}
	}
	return candidates, listErr
}

// Find implements Strategy.
func (o *Override) Find(ctx context.Context) []install.Info {
	logger := logging.FromContext(ctx).With("strategy", o.Name())

	candidates, err := o.Candidates()
	if err != nil {
		logger.Debug("override list unreadable", "error", err)
	}

	var found []install.Info
	for _, c := range candidates {
		if info, ok := o.Platform.Admit(c, install.OriginCustom); ok {
			found = append(found, info)
		} else {
			logger.Debug("override rejected", "path", c)
		}
	}
	return found
}

// expand resolves a leading ~ against the home directory and relative
// paths against base.
func expand(p, base string) string {
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home := paths.Home(); home != "" {
			p = filepath.Join(home, p[1:])
		}
	}
	if !filepath.IsAbs(p) && base != "" {
		p = filepath.Join(base, p)
	}
	return p
}
