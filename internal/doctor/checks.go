package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/locator"
	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// InstallSource runs discovery.
type InstallSource interface {
	CollectAllPaths(ctx context.Context) *install.Set
}

// Once wraps src so that checks sharing it run discovery a single time.
func Once(src InstallSource) InstallSource {
	return &onceSource{src: src}
}

type onceSource struct {
	src  InstallSource
	once sync.Once
	set  *install.Set
}

func (o *onceSource) CollectAllPaths(ctx context.Context) *install.Set {
	o.once.Do(func() { o.set = o.src.CollectAllPaths(ctx) })
	return o.set
}

func disabledResult(c Check) *CheckResult {
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Message:  "strategy disabled by configuration",
	}
}

// StrategiesCheck reports which discovery strategies will run.
type StrategiesCheck struct {
	enabled  []string
	disabled []string
}

var _ Check = (*StrategiesCheck)(nil)

// NewStrategiesCheck creates a check over the strategies l runs. disabled
// lists the names switched off by configuration.
func NewStrategiesCheck(l *locator.Locator, disabled []string) *StrategiesCheck {
	return &StrategiesCheck{enabled: l.Strategies(), disabled: disabled}
}

// Name returns the unique identifier for this check.
func (c *StrategiesCheck) Name() string { return "strategies" }

// Category returns the grouping for this check.
func (c *StrategiesCheck) Category() string { return "discovery" }

// Run executes the check.
func (c *StrategiesCheck) Run(context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details: map[string]any{
			"enabled":  c.enabled,
			"disabled": c.disabled,
		},
	}
	switch {
	case len(c.enabled) == 0:
		result.Status = SeverityError
		result.Message = "every discovery strategy is disabled"
		result.FixHint = "remove entries from search.disabled"
	case len(c.disabled) > 0:
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("running %s; disabled: %s",
			strings.Join(c.enabled, ", "), strings.Join(c.disabled, ", "))
	default:
		result.Status = SeverityPass
		result.Message = "running " + strings.Join(c.enabled, ", ")
	}
	return result
}

// ToolboxCheck reports the Toolbox data directories discovery will walk.
type ToolboxCheck struct {
	toolbox  *locator.Toolbox
	disabled bool
}

var _ Check = (*ToolboxCheck)(nil)

// NewToolboxCheck creates a Toolbox check.
func NewToolboxCheck(t *locator.Toolbox, disabled bool) *ToolboxCheck {
	return &ToolboxCheck{toolbox: t, disabled: disabled}
}

// Name returns the unique identifier for this check.
func (c *ToolboxCheck) Name() string { return "toolbox" }

// Category returns the grouping for this check.
func (c *ToolboxCheck) Category() string { return "discovery" }

// Run executes the check.
func (c *ToolboxCheck) Run(context.Context) *CheckResult {
	if c.disabled {
		return disabledResult(c)
	}

	var (
		dirs  []map[string]any
		found int
	)
	for _, base := range c.toolbox.Bases() {
		apps := filepath.Join(base, "apps")
		exists := fileutil.DirExists(base)
		hasApps := fileutil.DirExists(apps)
		if hasApps {
			found++
		}
		dirs = append(dirs, map[string]any{
			"path":   base,
			"exists": exists,
			"apps":   hasApps,
		})
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"directories": dirs},
	}
	switch {
	case len(dirs) == 0:
		result.Status = SeverityInfo
		result.Message = "no Toolbox data directory known on this machine"
	case found == 0:
		result.Status = SeverityInfo
		result.Message = "JetBrains Toolbox not found"
		result.FixHint = "set toolbox.location if Toolbox keeps its apps elsewhere"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d Toolbox apps director%s found", found, plural(found, "y", "ies"))
	}
	return result
}

// SearchUtilityCheck verifies that the platform search utility is
// installed.
type SearchUtilityCheck struct {
	cmd      *locator.SearchCommand
	disabled bool
	lookPath func(string) (string, error)
}

var _ Check = (*SearchUtilityCheck)(nil)

// NewSearchUtilityCheck creates a search utility check for p.
func NewSearchUtilityCheck(p locator.Platform, disabled bool) *SearchUtilityCheck {
	return &SearchUtilityCheck{cmd: p.Search, disabled: disabled, lookPath: exec.LookPath}
}

// Name returns the unique identifier for this check.
func (c *SearchUtilityCheck) Name() string { return "search-utility" }

// Category returns the grouping for this check.
func (c *SearchUtilityCheck) Category() string { return "discovery" }

// Run executes the check.
func (c *SearchUtilityCheck) Run(context.Context) *CheckResult {
	if c.disabled {
		return disabledResult(c)
	}
	if c.cmd == nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "this platform has no search utility",
		}
	}

	path := c.cmd.Path
	var err error
	if filepath.IsAbs(path) {
		if !fileutil.FileExists(path) {
			err = os.ErrNotExist
		}
	} else {
		path, err = c.lookPath(path)
	}
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%s not found; manual installs outside well-known paths will be missed", c.cmd.Path),
			Details:  map[string]any{"utility": c.cmd.Path},
			FixHint:  fmt.Sprintf("install %s or list Rider in custom_paths", filepath.Base(c.cmd.Path)),
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "using " + path,
		Details:  map[string]any{"utility": path, "args": c.cmd.Args},
	}
}

// OverrideListCheck validates every path in the override list and the
// configured custom paths.
type OverrideListCheck struct {
	override *locator.Override
	disabled bool
}

var _ Check = (*OverrideListCheck)(nil)

// NewOverrideListCheck creates an override list check.
func NewOverrideListCheck(o *locator.Override, disabled bool) *OverrideListCheck {
	return &OverrideListCheck{override: o, disabled: disabled}
}

// Name returns the unique identifier for this check.
func (c *OverrideListCheck) Name() string { return "override-list" }

// Category returns the grouping for this check.
func (c *OverrideListCheck) Category() string { return "discovery" }

// Run executes the check.
func (c *OverrideListCheck) Run(context.Context) *CheckResult {
	if c.disabled {
		return disabledResult(c)
	}

	file := c.override.ListFile()
	details := map[string]any{"list_file": file}
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  details,
	}

	candidates, err := c.override.Candidates()
	if err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		result.FixHint = "check the permissions of " + file
		return result
	}
	if len(candidates) == 0 {
		result.Status = SeverityInfo
		result.Message = "no override paths configured"
		return result
	}

	var accepted, rejected []string
	for _, candidate := range candidates {
		if _, ok := c.override.Platform.Admit(candidate, install.OriginCustom); ok {
			accepted = append(accepted, candidate)
		} else {
			rejected = append(rejected, candidate)
		}
	}
	details["accepted"] = accepted
	details["rejected"] = rejected

	if len(rejected) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d of %d override path(s) are not Rider installs", len(rejected), len(candidates))
		result.FixHint = "remove stale entries: " + strings.Join(rejected, ", ")
		return result
	}
	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d override path(s) accepted", len(accepted))
	return result
}

// InstallsCheck runs discovery and lists what it found.
type InstallsCheck struct {
	source InstallSource
}

var _ Check = (*InstallsCheck)(nil)

// NewInstallsCheck creates an installs check over source.
func NewInstallsCheck(source InstallSource) *InstallsCheck {
	return &InstallsCheck{source: source}
}

// Name returns the unique identifier for this check.
func (c *InstallsCheck) Name() string { return "installs" }

// Category returns the grouping for this check.
func (c *InstallsCheck) Category() string { return "discovery" }

// Run executes the check.
func (c *InstallsCheck) Run(ctx context.Context) *CheckResult {
	sorted := c.source.CollectAllPaths(ctx).Sorted()
	if len(sorted) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "no Rider installations found",
			FixHint:  "install Rider, or add its path to custom_paths",
		}
	}

	installs := make([]map[string]any, 0, len(sorted))
	for _, info := range sorted {
		installs = append(installs, map[string]any{
			"path":    info.Path,
			"version": info.Version.String(),
			"build":   info.Build,
			"origin":  info.Origin.String(),
			"support": info.Support.String(),
		})
	}
	newest := sorted[len(sorted)-1]
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("found %d installation(s), newest %s", len(sorted), newest.Version),
		Details:  map[string]any{"installs": installs},
	}
}

// ExecutableCheck verifies that every discovered executable can be
// launched.
type ExecutableCheck struct {
	source InstallSource
	goos   string
}

var _ Check = (*ExecutableCheck)(nil)

// NewExecutableCheck creates an executable check over source.
func NewExecutableCheck(source InstallSource) *ExecutableCheck {
	return &ExecutableCheck{source: source, goos: runtime.GOOS}
}

// Name returns the unique identifier for this check.
func (c *ExecutableCheck) Name() string { return "executables" }

// Category returns the grouping for this check.
func (c *ExecutableCheck) Category() string { return "filesystem" }

// Run executes the check.
func (c *ExecutableCheck) Run(ctx context.Context) *CheckResult {
	sorted := c.source.CollectAllPaths(ctx).Sorted()

	var issues []map[string]any
	var hints []string
	for _, info := range sorted {
		fi, err := os.Stat(info.Path)
		switch {
		case err != nil:
			issues = append(issues, map[string]any{"path": info.Path, "problem": err.Error()})
		case fi.IsDir():
			issues = append(issues, map[string]any{"path": info.Path, "problem": "is a directory"})
		// Unix permissions don't apply on Windows
		case c.goos != "windows" && fi.Mode().Perm()&0o111 == 0:
			issues = append(issues, map[string]any{
				"path":        info.Path,
				"problem":     "not executable",
				"permissions": formatPermissions(fi.Mode()),
			})
			hints = append(hints, "chmod +x "+info.Path)
		}
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}
	if len(issues) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("all %d executable(s) are launchable", len(sorted))
		return result
	}
	result.Status = SeverityError
	result.Message = fmt.Sprintf("%d of %d executable(s) cannot be launched", len(issues), len(sorted))
	result.Details = map[string]any{"issues": issues}
	result.FixHint = strings.Join(hints, "; ")
	return result
}

// formatPermissions returns a human-readable permission string (e.g., "0644").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
