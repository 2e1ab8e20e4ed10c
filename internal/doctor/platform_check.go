package doctor

import (
	"context"
	"fmt"

	"github.com/thoreinstein/riderctl/internal/locator"
)

// PlatformCheck verifies that the operating system has a discovery layout.
type PlatformCheck struct {
	goos string
	env  locator.Env
}

// Ensure PlatformCheck implements Check interface.
var _ Check = (*PlatformCheck)(nil)

// NewPlatformCheck creates a platform check for goos using the machine
// facts in env.
func NewPlatformCheck(goos string, env locator.Env) *PlatformCheck {
	return &PlatformCheck{goos: goos, env: env}
}

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string {
	return "platform"
}

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string {
	return "platform"
}

// Run reports the platform layout discovery will use.
func (c *PlatformCheck) Run(context.Context) *CheckResult {
	p, ok := locator.ForOS(c.goos, c.env)
	if !ok {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("unsupported operating system %q", c.goos),
			FixHint:  "Rider discovery supports linux, darwin and windows",
		}
	}

	details := map[string]any{
		"os":           p.GOOS,
		"executable":   p.Layout.Executable,
		"toolbox_base": p.ToolboxBase,
		"well_known":   p.WellKnown,
		"registry":     p.Registry,
	}
	if p.Search != nil {
		details["search_utility"] = p.Search.Path
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%s layout, executable %s", p.GOOS, p.Layout.Executable),
		Details:  details,
	}
	if c.env.Home == "" {
		result.Status = SeverityWarning
		result.Message = "home directory not found; per-user locations are skipped"
		result.FixHint = "set HOME (USERPROFILE on Windows)"
	}
	return result
}
