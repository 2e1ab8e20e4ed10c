package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/locator"
	"github.com/thoreinstein/riderctl/internal/version"
)

type stubCheck struct {
	name   string
	status Severity
	ran    bool
}

func (c *stubCheck) Name() string     { return c.name }
func (c *stubCheck) Category() string { return "test" }
func (c *stubCheck) Run(context.Context) *CheckResult {
	c.ran = true
	return &CheckResult{Name: c.name, Category: "test", Status: c.status}
}

type staticSource struct {
	infos []install.Info
	calls int
}

func (s *staticSource) CollectAllPaths(context.Context) *install.Set {
	s.calls++
	set := install.NewSet()
	set.Append(s.infos)
	return set
}

func linuxPlatform(t *testing.T) (locator.Platform, locator.Env) {
	t.Helper()
	home, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	env := locator.Env{Home: home, DataHome: filepath.Join(home, ".local", "share")}
	p, ok := locator.ForOS("linux", env)
	if !ok {
		t.Fatal("linux platform not supported")
	}
	return p, env
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
}

// makeInstall lays out a minimal Linux install under root and returns its
// executable.
func makeInstall(t *testing.T, root string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, "plugins", "rider-cpp"), 0o755); err != nil {
		t.Fatal(err)
	}
	exe := filepath.Join(root, "bin", "rider.sh")
	writeFile(t, exe, "#!/bin/sh\n", 0o755)
	return exe
}

func newInfo(path, ver string) install.Info {
	return install.Info{Path: path, Version: version.Parse(ver), Origin: install.OriginInstalled}
}
