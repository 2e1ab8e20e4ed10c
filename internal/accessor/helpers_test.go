package accessor

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/version"
)

type launch struct {
	exe  string
	args []string
}

type fakeLauncher struct {
	mu       sync.Mutex
	launches []launch
	err      error
}

func (f *fakeLauncher) Start(exe string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.launches = append(f.launches, launch{exe: exe, args: args})
	return nil
}

type fakeCollector struct {
	infos []install.Info
}

func (f *fakeCollector) CollectAllPaths(context.Context) *install.Set {
	set := install.NewSet()
	set.Append(f.infos)
	return set
}

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func installAt(path, ver string, support install.SupportState, origin install.Origin) install.Info {
	return install.Info{
		Path:    path,
		Version: version.Parse(ver),
		Support: support,
		Origin:  origin,
	}
}

func names(handles []*Accessor) []string {
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = h.Name()
	}
	return out
}
