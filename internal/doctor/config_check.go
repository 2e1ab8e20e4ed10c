package doctor

import (
	"context"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// ConfigCheck reports whether the configuration loaded and validated.
type ConfigCheck struct {
	file    string
	loadErr error
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a config check from the outcome of loading file.
// An empty file means defaults were used.
func NewConfigCheck(file string, loadErr error) *ConfigCheck {
	return &ConfigCheck{file: file, loadErr: loadErr}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string { return "config" }

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string { return "config" }

// Run executes the check.
func (c *ConfigCheck) Run(context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"file": c.file},
	}
	switch {
	case c.loadErr != nil:
		result.Status = SeverityError
		result.Message = c.loadErr.Error()
		switch {
		case errors.Is(c.loadErr, errors.ErrNotFound):
			result.FixHint = "check the --config path"
		case errors.Is(c.loadErr, errors.ErrInvalidConfig):
			result.FixHint = "fix the reported field, then run: riderctl config show"
		default:
			result.FixHint = "the file could not be parsed; see the file-syntax check"
		}
	case c.file == "":
		result.Status = SeverityInfo
		result.Message = "no config file; using defaults"
	default:
		result.Status = SeverityPass
		result.Message = "loaded " + c.file
	}
	return result
}
