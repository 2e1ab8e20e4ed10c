package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// AppName is the application name used for config and resource directories.
const AppName = "riderctl"

// ToolboxVendor and ToolboxProduct form the Toolbox data directory suffix
// (<DataHome>/JetBrains/Toolbox).
const (
	ToolboxVendor  = "JetBrains"
	ToolboxProduct = "Toolbox"
)

// ResourceFile is the name of the manual override list inside the
// resources directory.
const ResourceFile = "RiderLocations.txt"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// Home returns the user's home directory.
// Note: It returns an empty string on error. Use ResolveHome for proper
// error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "resolving home")
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// ConfigDir returns the riderctl configuration directory.
// Returns: <ConfigHome>/riderctl/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ToolboxDir returns the default JetBrains Toolbox data directory.
// Returns: <DataHome>/JetBrains/Toolbox/
func ToolboxDir() string {
	return filepath.Join(DataHome(), ToolboxVendor, ToolboxProduct)
}

// ProgramFiles returns the Windows program files directory. It is empty on
// other platforms.
func ProgramFiles() string {
	if runtime.GOOS != "windows" {
		return ""
	}
	if dir := os.Getenv("ProgramFiles"); dir != "" {
		return dir
	}
	return `C:\Program Files`
}

// ExecutableResourcesDir returns the Resources directory next to the running
// binary, or an empty string when the executable path is unknown.
func ExecutableResourcesDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "Resources")
}
