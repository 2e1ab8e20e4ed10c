package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a config version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidStrategy indicates an unrecognized strategy name in search.disabled.
	ErrInvalidStrategy = errors.New("invalid strategy")

	// ErrInvalidTimeout indicates a non-positive search timeout.
	ErrInvalidTimeout = errors.New("search timeout must be positive")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "version %d", cfg.Version))
	}

	if cfg.Search.Timeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}

	for _, name := range cfg.Search.Disabled {
		if !slices.Contains(Strategies, name) {
			errs = append(errs, &StrategyError{Strategy: name, Err: ErrInvalidStrategy})
		}
	}

	fields := []struct {
		name string
		path string
	}{
		{"toolbox.location", cfg.Toolbox.Location},
		{"resources_dir", cfg.ResourcesDir},
		{"engine_root", cfg.EngineRoot},
	}
	for _, f := range fields {
		if err := validatePath(f.path); err != nil {
			errs = append(errs, &PathError{Field: f.name, Path: f.path, Err: err})
		}
	}
	for _, p := range cfg.CustomPaths {
		if p == "" {
			continue
		}
		if err := validatePath(p); err != nil {
			errs = append(errs, &PathError{Field: "custom_paths", Path: p, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// StrategyError names an unknown strategy.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return e.Err.Error() + ": " + e.Strategy
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
