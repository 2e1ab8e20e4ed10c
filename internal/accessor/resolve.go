package accessor

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// engineDirs mark the engine-relative part of a source path.
var engineDirs = []string{"/Engine/Source/", "/Engine/Plugins/"}

// ResolveFile returns an absolute path to an existing file. A path that
// does not exist is rebased onto engineRoot from its /Engine/Source/ or
// /Engine/Plugins/ segment, so paths recorded on another machine still
// open.
func ResolveFile(path, engineRoot string) (string, bool) {
	if path == "" {
		return "", false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if fileutil.FileExists(path) {
		return path, true
	}
	if engineRoot == "" {
		return "", false
	}

	slashed := filepath.ToSlash(path)
	for _, dir := range engineDirs {
		idx := strings.Index(slashed, dir)
		if idx < 0 {
			continue
		}
		rebased := filepath.Join(engineRoot, filepath.FromSlash(slashed[idx+1:]))
		if fileutil.FileExists(rebased) {
			return rebased, true
		}
		return "", false
	}
	return "", false
}
