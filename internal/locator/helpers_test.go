package locator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
	"github.com/thoreinstein/riderctl/internal/process"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewContext(t.Context(), logging.ForTest(t))
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

// makeInstall lays out a Rider install root for layout and returns the
// executable path. An empty build writes no descriptor.
func makeInstall(t *testing.T, root string, layout Layout, build string) string {
	t.Helper()
	mustMkdir(t, filepath.Join(root, filepath.FromSlash(layout.Marker)))
	exe := filepath.Join(root, filepath.FromSlash(layout.Executable))
	mustWrite(t, exe, "#!/bin/sh\n")
	if build != "" {
		mustWrite(t, filepath.Join(root, filepath.FromSlash(layout.Descriptor)),
			`{"name": "Rider", "buildNumber": "`+build+`"}`)
	}
	return exe
}

// realPath resolves symlinks in temp directories so expectations match
// admitted paths on systems where the temp dir is itself a link.
func realPath(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func testPlatform(t *testing.T, goos string) (Platform, Env) {
	t.Helper()
	home := realPath(t, t.TempDir())
	env := Env{
		Home:         home,
		DataHome:     filepath.Join(home, ".local", "share"),
		LocalAppData: filepath.Join(home, "AppData", "Local"),
		ProgramFiles: filepath.Join(home, "Program Files"),
	}
	p, ok := ForOS(goos, env)
	if !ok {
		t.Fatalf("ForOS(%q) not supported", goos)
	}
	return p, env
}

func pathsOf(infos []install.Info) []string {
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.Path
	}
	return out
}

type fakeStrategy struct {
	name  string
	infos []install.Info
	calls int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Find(context.Context) []install.Info {
	f.calls++
	return f.infos
}

type fakeRunner struct {
	result process.Result
	err    error
	calls  []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (process.Result, error) {
	f.calls = append(f.calls, name)
	return f.result, f.err
}

type fakeRegistry struct {
	subkeys map[string][]string
	values  map[string]string
}

func regKey(root RegistryRoot, key, name string) string {
	return root.String() + `\` + key + `|` + name
}

func (f *fakeRegistry) SubKeys(root RegistryRoot, key string) ([]string, error) {
	subs, ok := f.subkeys[regKey(root, key, "")]
	if !ok {
		return nil, os.ErrNotExist
	}
	return subs, nil
}

func (f *fakeRegistry) String(root RegistryRoot, key, name string) (string, error) {
	v, ok := f.values[regKey(root, key, name)]
	if !ok {
		return "", os.ErrNotExist
	}
	return v, nil
}
