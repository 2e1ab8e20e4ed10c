package metadata

import (
	"path/filepath"

	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// HistoryFile is the Toolbox history file name.
const HistoryFile = ".history.json"

// DefaultHistoryDepth is how many parent directories FindHistory inspects
// above the install root. A macOS bundle root (<build>/Rider.app/Contents)
// sits three levels below the channel directory holding the history.
const DefaultHistoryDepth = 3

// LastBuild returns the build of the last entry in the history file at path.
func LastBuild(path string) (string, bool) {
	obj, ok := readObject(path)
	if !ok {
		return "", false
	}
	entries, ok := obj.array("history")
	if !ok || len(entries) == 0 {
		return "", false
	}
	last, ok := asObject(entries[len(entries)-1])
	if !ok {
		return "", false
	}
	item, ok := last.child("item")
	if !ok {
		return "", false
	}
	return item.str("build")
}

// FindHistory walks upward from root, inspecting root itself and up to depth
// parents, and returns the first history file found.
func FindHistory(root string, depth int) (string, bool) {
	dir := filepath.Clean(root)
	for i := 0; i <= depth; i++ {
		candidate := filepath.Join(dir, HistoryFile)
		if fileutil.FileExists(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}
