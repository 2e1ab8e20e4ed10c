package locator

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/riderctl/internal/paths"
)

// Layout describes the inside of an install root.
type Layout struct {
	// BundleSuffix marks a directory candidate as an application bundle
	// whose install root is BundleRoot inside it.
	BundleSuffix string
	BundleRoot   string

	// Executable, Descriptor and Marker are relative to the install root.
	Executable string
	Descriptor string
	Marker     string
}

// SearchCommand is a platform search utility and the substring its output
// lines must contain.
type SearchCommand struct {
	Path   string
	Args   []string
	Filter string
}

// Platform is the data description of one operating system.
type Platform struct {
	GOOS   string
	Layout Layout

	// ToolboxBase is the default Toolbox data directory.
	ToolboxBase string
	// ToolboxAppDirs are searched in addition to <base>/apps.
	ToolboxAppDirs []string
	// ToolboxPatterns are file-name globs that mark an install.
	ToolboxPatterns []string

	// WellKnown are glob patterns for manual installs.
	WellKnown []string

	Search *SearchCommand

	// Registry enables the uninstall registry and the registry-provided
	// Toolbox location.
	Registry bool
}

// Env holds the machine facts a platform description is built from.
type Env struct {
	Home         string
	DataHome     string
	LocalAppData string
	ProgramFiles string
}

// SystemEnv reads Env from the running process.
func SystemEnv() Env {
	return Env{
		Home:         paths.Home(),
		DataHome:     paths.DataHome(),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
		ProgramFiles: paths.ProgramFiles(),
	}
}

const markerDir = "plugins/rider-cpp"

// ForOS returns the platform description for goos. The second result is
// false for operating systems Rider does not ship on.
func ForOS(goos string, env Env) (Platform, bool) {
	switch goos {
	case "linux":
		return linux(env), true
	case "darwin":
		return darwin(env), true
	case "windows":
		return windows(env), true
	default:
		return Platform{GOOS: goos}, false
	}
}

func linux(env Env) Platform {
	dataHome := env.DataHome
	if dataHome == "" && env.Home != "" {
		dataHome = filepath.Join(env.Home, ".local", "share")
	}
	return Platform{
		GOOS: "linux",
		Layout: Layout{
			Executable: "bin/rider.sh",
			Descriptor: "product-info.json",
			Marker:     markerDir,
		},
		ToolboxBase:     joinIf(dataHome, paths.ToolboxVendor, paths.ToolboxProduct),
		ToolboxPatterns: []string{"rider.sh"},
		WellKnown: nonEmpty(
			joinIf(env.Home, "Rider*"),
			"/opt/Rider*",
			"/opt/rider*",
			"/usr/local/bin/rider",
			"/snap/rider/current",
		),
		Search: &SearchCommand{
			Path:   "locate",
			Args:   []string{"-b", "rider.sh"},
			Filter: "rider.sh",
		},
	}
}

func darwin(env Env) Platform {
	return Platform{
		GOOS: "darwin",
		Layout: Layout{
			BundleSuffix: ".app",
			BundleRoot:   "Contents",
			Executable:   "MacOS/rider",
			Descriptor:   "Resources/product-info.json",
			Marker:       markerDir,
		},
		ToolboxBase:     joinIf(env.Home, "Library", "Application Support", paths.ToolboxVendor, paths.ToolboxProduct),
		ToolboxAppDirs:  nonEmpty(joinIf(env.Home, "Applications")),
		ToolboxPatterns: []string{"Rider*.app"},
		WellKnown: nonEmpty(
			"/Applications/Rider*.app",
			joinIf(env.Home, "Applications", "Rider*.app"),
		),
		Search: &SearchCommand{
			Path:   "/usr/bin/mdfind",
			Args:   []string{"kMDItemKind == Application"},
			Filter: "Rider",
		},
	}
}

func windows(env Env) Platform {
	return Platform{
		GOOS: "windows",
		Layout: Layout{
			Executable: "bin/rider64.exe",
			Descriptor: "product-info.json",
			Marker:     markerDir,
		},
		ToolboxBase:     joinIf(env.LocalAppData, paths.ToolboxVendor, paths.ToolboxProduct),
		ToolboxAppDirs:  nonEmpty(joinIf(env.LocalAppData, "Programs")),
		ToolboxPatterns: []string{"rider64.exe"},
		WellKnown: nonEmpty(
			joinIf(env.ProgramFiles, "JetBrains", "*Rider*", "bin", "rider64.exe"),
		),
		Registry: true,
	}
}

// joinIf joins elem onto base, or returns "" when base is unknown so that
// no pattern is ever rooted at the filesystem root by accident.
func joinIf(base string, elem ...string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
