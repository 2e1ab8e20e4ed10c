package commands

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/riderctl/internal/accessor"
	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
	"github.com/thoreinstein/riderctl/internal/version"
)

type fakeCollector struct {
	infos []install.Info
}

func (f fakeCollector) CollectAllPaths(context.Context) *install.Set {
	set := install.NewSet()
	set.Append(f.infos)
	return set
}

type launch struct {
	name string
	args []string
}

type fakeLauncher struct {
	mu    sync.Mutex
	calls []launch
}

func (f *fakeLauncher) Start(name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, launch{name: name, args: args})
	return nil
}

// fakeInstall creates an executable file and returns a record for it.
func fakeInstall(t *testing.T, dir, ver string, origin install.Origin, support install.SupportState) install.Info {
	t.Helper()
	exe := filepath.Join(dir, "rider-"+ver, "bin", "rider.sh")
	touch(t, exe)
	return install.Info{
		Path:    exe,
		Version: version.Parse(ver),
		Build:   "RD-" + ver,
		Support: support,
		Origin:  origin,
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
}

// withInstalls swaps discovery and launching for fakes until the test
// ends.
func withInstalls(t *testing.T, infos ...install.Info) *fakeLauncher {
	t.Helper()
	fl := &fakeLauncher{}

	origCollector, origLauncher, origConfig := newCollector, launcher, loadedConfig
	t.Cleanup(func() {
		newCollector, launcher, loadedConfig = origCollector, origLauncher, origConfig
	})

	newCollector = func(*config.Config) (accessor.Collector, error) {
		return fakeCollector{infos: infos}, nil
	}
	launcher = fl
	loadedConfig = config.Default()
	return fl
}

// testCommand returns a command carrying a test logger in its context.
func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	c.SetContext(logging.NewContext(t.Context(), logging.ForTest(t)))
	return c
}

// setFlag assigns a package flag variable for the duration of the test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	orig := *p
	*p = v
	t.Cleanup(func() { *p = orig })
}
