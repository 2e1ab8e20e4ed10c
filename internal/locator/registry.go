package locator

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
)

// RegistryRoot selects a registry hive.
type RegistryRoot int

const (
	CurrentUser RegistryRoot = iota
	LocalMachine
)

func (r RegistryRoot) String() string {
	if r == LocalMachine {
		return "HKLM"
	}
	return "HKCU"
}

// RegistryReader is the read-only registry surface discovery needs.
type RegistryReader interface {
	// SubKeys lists the immediate subkey names of key.
	SubKeys(root RegistryRoot, key string) ([]string, error)
	// String reads a string value; name "" reads the default value.
	String(root RegistryRoot, key, name string) (string, error)
}

// Registry keys read by discovery.
const (
	ToolboxKey   = `Software\JetBrains\Toolbox`
	UninstallKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
	Uninstall32  = `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`
)

var registryRoots = []RegistryRoot{CurrentUser, LocalMachine}

// toolboxBinPattern strips the trailing bin directory from the Toolbox
// executable location.
var toolboxBinPattern = regexp.MustCompile(`^(.*)/bin(/.*)?$`)

// ToolboxFromRegistry returns the Toolbox data directories recorded under
// HKCU and HKLM, in that order.
func ToolboxFromRegistry(r RegistryReader) []string {
	var dirs []string
	for _, root := range registryRoots {
		value, err := r.String(root, ToolboxKey, "")
		if err != nil || value == "" {
			continue
		}
		m := toolboxBinPattern.FindStringSubmatch(strings.ReplaceAll(value, `\`, "/"))
		if m == nil || m[1] == "" {
			continue
		}
		dirs = append(dirs, filepath.FromSlash(m[1]))
	}
	return dirs
}

// Uninstall finds installs recorded in the Windows uninstall registry.
type Uninstall struct {
	Platform Platform
	Reader   RegistryReader
}

// Name implements Strategy.
func (u *Uninstall) Name() string { return config.StrategyRegistry }

// Find implements Strategy.
func (u *Uninstall) Find(ctx context.Context) []install.Info {
	if u.Reader == nil {
		return nil
	}
	logger := logging.FromContext(ctx).With("strategy", u.Name())

	var found []install.Info
	for _, root := range registryRoots {
		for _, key := range []string{UninstallKey, Uninstall32} {
			subs, err := u.Reader.SubKeys(root, key)
			if err != nil {
				logger.Debug("registry key unreadable", "root", root, "key", key, "error", err)
				continue
			}
			for _, sub := range subs {
				if !strings.Contains(sub, "Rider") {
					continue
				}
				loc, err := u.Reader.String(root, key+`\`+sub, "InstallLocation")
				if err != nil || loc == "" {
					continue
				}
				exe := filepath.Join(filepath.FromSlash(strings.ReplaceAll(loc, `\`, "/")), filepath.FromSlash(u.Platform.Layout.Executable))
				if info, ok := u.Platform.Admit(exe, install.OriginInstalled); ok {
					found = append(found, info)
				} else {
					logger.Log(ctx, logging.LevelTrace, "rejected", "path", exe)
				}
			}
		}
	}
	return found
}
