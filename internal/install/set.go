package install

import (
	"slices"
	"strings"
)

// Set is a collection holding at most one Info per normalized path. The
// first value added for a path is kept. The zero value is not usable; create
// one with NewSet.
type Set struct {
	items map[string]Info
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{items: make(map[string]Info)}
}

// Add inserts info unless an entry with the same normalized path is already
// present. It reports whether info was inserted.
func (s *Set) Add(info Info) bool {
	key := info.Key()
	if _, exists := s.items[key]; exists {
		return false
	}
	s.items[key] = info
	return true
}

// Append adds every value in infos and returns the number inserted.
func (s *Set) Append(infos []Info) int {
	added := 0
	for _, info := range infos {
		if s.Add(info) {
			added++
		}
	}
	return added
}

// Len returns the number of installs in the set.
func (s *Set) Len() int {
	return len(s.items)
}

// Sorted returns the installs ordered by ascending version. Installs with
// equal versions are ordered by normalized path so the result is
// deterministic.
func (s *Set) Sorted() []Info {
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Info, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.items[k])
	}
	slices.SortStableFunc(out, func(a, b Info) int {
		return a.Version.Compare(b.Version)
	})
	return out
}

// String lists the normalized paths in the set, mainly for log output.
func (s *Set) String() string {
	infos := s.Sorted()
	paths := make([]string, len(infos))
	for i, info := range infos {
		paths[i] = info.Key()
	}
	return "[" + strings.Join(paths, " ") + "]"
}
