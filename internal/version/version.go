// Package version models dotted numeric build versions such as the
// "buildNumber" field of a Rider product descriptor.
package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// Invalid is returned by Major, Minor and Patch when the component is absent.
const Invalid = -1

// Version is an immutable sequence of non-negative integer components.
// The zero value is an uninitialized version that sorts before every
// initialized one.
type Version struct {
	parts []int
}

// Parse splits text on '.' and converts every non-empty segment to an
// integer. A segment contributes its leading decimal digits; a segment
// without any leading digit contributes 0. Parse never fails: input without
// segments yields an uninitialized Version.
func Parse(text string) Version {
	var parts []int
	for _, segment := range strings.Split(strings.TrimSpace(text), ".") {
		if segment == "" {
			continue
		}
		parts = append(parts, leadingInt(segment))
	}
	return Version{parts: parts}
}

// leadingInt mirrors atoi semantics: leading whitespace is skipped and
// parsing stops at the first non-digit.
func leadingInt(segment string) int {
	segment = strings.TrimLeft(segment, " \t")
	end := 0
	for end < len(segment) && segment[end] >= '0' && segment[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(segment[:end])
	if err != nil {
		return 0
	}
	return n
}

// IsInitialized reports whether at least one component was parsed.
func (v Version) IsInitialized() bool {
	return len(v.parts) != 0
}

func (v Version) component(i int) int {
	if len(v.parts) > i {
		return v.parts[i]
	}
	return Invalid
}

// Major returns the first component or Invalid.
func (v Version) Major() int { return v.component(0) }

// Minor returns the second component or Invalid.
func (v Version) Minor() int { return v.component(1) }

// Patch returns the third component or Invalid.
func (v Version) Patch() int { return v.component(2) }

// Compare returns -1, 0 or 1. Components are compared pairwise; when one
// side runs out first with an equal common prefix, the shorter version is
// the smaller one, so "2.1" < "2.1.0".
func (v Version) Compare(other Version) int {
	n := min(len(v.parts), len(other.parts))
	for i := 0; i < n; i++ {
		switch {
		case v.parts[i] < other.parts[i]:
			return -1
		case v.parts[i] > other.parts[i]:
			return 1
		}
	}
	switch {
	case len(v.parts) < len(other.parts):
		return -1
	case len(v.parts) > len(other.parts):
		return 1
	}
	return 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// AtLeast reports whether v satisfies the minimum. An uninitialized version
// never satisfies a minimum.
func (v Version) AtLeast(minimum Version) bool {
	if !v.IsInitialized() {
		return false
	}
	return !v.Less(minimum)
}

// String joins the components with '.'. It is empty for an uninitialized
// version.
func (v Version) String() string {
	parts := make([]string, len(v.parts))
	for i, p := range v.parts {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ".")
}

// Semver converts the first three components into a semantic version so
// callers can evaluate constraint expressions. Missing components are zero.
func (v Version) Semver() (*semver.Version, error) {
	if !v.IsInitialized() {
		return nil, errors.New("version is not initialized")
	}
	var major, minor, patch uint64
	major = uint64(v.parts[0])
	if len(v.parts) > 1 {
		minor = uint64(v.parts[1])
	}
	if len(v.parts) > 2 {
		patch = uint64(v.parts[2])
	}
	return semver.New(major, minor, patch, "", ""), nil
}

// Satisfies reports whether v matches a semver constraint expression such as
// ">= 232". Uninitialized versions never match.
func (v Version) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, errors.Wrapf(err, "parsing constraint %q", constraint)
	}
	sv, err := v.Semver()
	if err != nil {
		return false, nil
	}
	return c.Check(sv), nil
}
