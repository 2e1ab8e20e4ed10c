package locator

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/metadata"
	"github.com/thoreinstein/riderctl/internal/version"
	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// binPattern splits an executable path into install root and bin tail.
var binPattern = regexp.MustCompile(`^(.*)/bin(/[^/]*)?$`)

// Admit validates candidate and builds its record. candidate may be an
// executable inside <root>/bin, an application bundle, or an install root
// directory. Candidates that do not exist or lack the plugin marker are
// rejected.
func (p Platform) Admit(candidate string, origin install.Origin) (install.Info, bool) {
	info, _, ok := p.admit(candidate, origin)
	return info, ok
}

// admit is Admit that also reports the install root.
func (p Platform) admit(candidate string, origin install.Origin) (install.Info, string, bool) {
	root, exe, ok := p.resolve(candidate)
	if !ok {
		return install.Info{}, "", false
	}
	if !fileutil.DirExists(filepath.Join(root, filepath.FromSlash(p.Layout.Marker))) {
		return install.Info{}, "", false
	}

	info := install.Info{
		Path:   exe,
		Origin: origin,
	}
	metadata.Enrich(&info, filepath.Join(root, filepath.FromSlash(p.Layout.Descriptor)))
	if !info.Version.IsInitialized() {
		info.Version = version.Parse(p.installName(root))
	}
	return info, root, true
}

// resolve maps a candidate to its install root and executable.
func (p Platform) resolve(candidate string) (root, exe string, ok bool) {
	if candidate == "" {
		return "", "", false
	}
	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", "", false
	}
	fi, err := os.Stat(resolved)
	if err != nil {
		return "", "", false
	}

	if !fi.IsDir() {
		m := binPattern.FindStringSubmatch(filepath.ToSlash(resolved))
		if m == nil || m[1] == "" {
			return "", "", false
		}
		return filepath.FromSlash(m[1]), resolved, true
	}

	root = resolved
	if p.isBundle(resolved) {
		root = filepath.Join(resolved, p.Layout.BundleRoot)
	}
	return root, filepath.Join(root, filepath.FromSlash(p.Layout.Executable)), true
}

func (p Platform) isBundle(dir string) bool {
	return p.Layout.BundleSuffix != "" && strings.HasSuffix(dir, p.Layout.BundleSuffix)
}

// installName is the fallback version text: the root's base name, or the
// bundle name without its suffix when the root is inside a bundle.
func (p Platform) installName(root string) string {
	if p.Layout.BundleRoot != "" && filepath.Base(root) == p.Layout.BundleRoot {
		parent := filepath.Dir(root)
		if p.isBundle(parent) {
			return strings.TrimSuffix(filepath.Base(parent), p.Layout.BundleSuffix)
		}
	}
	return filepath.Base(root)
}
