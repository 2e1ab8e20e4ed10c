// Package install defines the record describing one discovered Rider
// installation and the deduplicating collection discovery results are
// gathered into.
package install

import (
	"path"
	"strings"

	"github.com/thoreinstein/riderctl/internal/version"
)

// SupportState describes whether an install can open a project without a
// generated solution file.
type SupportState int

const (
	// SupportNone means the install only understands solution files.
	SupportNone SupportState = iota

	// SupportBeta means project-file support ships as an experimental feature.
	SupportBeta

	// SupportRelease means project-file support is generally available.
	SupportRelease
)

// String returns the string representation of the support state.
func (s SupportState) String() string {
	switch s {
	case SupportNone:
		return "none"
	case SupportBeta:
		return "beta"
	case SupportRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Origin records how an install was found.
type Origin int

const (
	// OriginInstalled is a manually installed copy found on disk.
	OriginInstalled Origin = iota

	// OriginToolbox is a copy managed by JetBrains Toolbox.
	OriginToolbox

	// OriginCustom is a copy listed in the manual override list.
	OriginCustom
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginInstalled:
		return "installed"
	case OriginToolbox:
		return "toolbox"
	case OriginCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Info describes one discovered install. Values are created by the locator
// only after the candidate passed the admission gate and are not modified
// afterwards.
type Info struct {
	// Path is the launchable executable or launcher script.
	Path string

	// Version is the build version from the product descriptor, or the
	// install directory name when the descriptor has none.
	Version version.Version

	// Build is the raw build number read from the descriptor. It is empty
	// when the descriptor was missing or had no build number.
	Build string

	// Support is the project-file support state.
	Support SupportState

	// Origin records which strategy found the install.
	Origin Origin
}

// NormalizePath unifies separators to '/' and collapses redundant segments
// so that different spellings of the same location compare equal.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

// Key returns the identity key of the install: its normalized path.
func (i Info) Key() string {
	return NormalizePath(i.Path)
}

// Less orders installs by version only.
func (i Info) Less(other Info) bool {
	return i.Version.Less(other.Version)
}

// Equal reports whether both values describe the same install: normalized
// paths match and neither version sorts before the other.
func (i Info) Equal(other Info) bool {
	return !i.Less(other) && !other.Less(i) && i.Key() == other.Key()
}
