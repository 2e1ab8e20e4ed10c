package accessor

import (
	"os"
	"path/filepath"
	"sync"
)

// Finder locates the project file for a model.
type Finder interface {
	FindSolution(model ProjectModel) (string, bool)
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(ProjectModel) (string, bool)

// FindSolution implements Finder.
func (f FinderFunc) FindSolution(model ProjectModel) (string, bool) { return f(model) }

// SolutionCache remembers the project file found for each model. Lookups
// hold the lock across read, compute and store so concurrent callers share
// one Finder call. Misses are not cached.
type SolutionCache struct {
	mu      sync.Mutex
	finder  Finder
	entries map[ProjectModel]string
}

// NewSolutionCache returns an empty cache backed by finder.
func NewSolutionCache(finder Finder) *SolutionCache {
	return &SolutionCache{
		finder:  finder,
		entries: make(map[ProjectModel]string),
	}
}

// Get returns the project file for model, computing it on first use.
func (c *SolutionCache) Get(model ProjectModel) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.entries[model]; ok {
		return p, true
	}
	if c.finder == nil {
		return "", false
	}
	p, ok := c.finder.FindSolution(model)
	if !ok || p == "" {
		return "", false
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	c.entries[model] = p
	return p, true
}

// Refresh drops every cached entry; the next Get recomputes.
func (c *SolutionCache) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// DirFinder looks for a project file in Dir and then in each parent.
// When a directory holds several candidates the lexically first is used.
type DirFinder struct {
	Dir string
}

// FindSolution implements Finder.
func (d DirFinder) FindSolution(model ProjectModel) (string, bool) {
	dir := d.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		dir = wd
	}
	dir = filepath.Clean(dir)
	for {
		matches, _ := filepath.Glob(filepath.Join(dir, "*"+model.Extension()))
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && !fi.IsDir() {
				return m, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
